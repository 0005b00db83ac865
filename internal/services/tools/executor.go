package tools

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/sashabaranov/go-openai"

	"github.com/orderdesk/orderdesk/internal/orders"
)

var (
	// ErrUnknownFunction is returned when the completion service requests
	// a function outside the fixed descriptor set. Unreachable in normal
	// operation; kept as a defensive branch.
	ErrUnknownFunction = errors.New("unknown function")

	// ErrInvalidArguments is returned when the argument payload does not
	// decode or fails schema validation.
	ErrInvalidArguments = errors.New("invalid function arguments")
)

// operation is the closed set of order operations the executor can
// dispatch. Function names from the wire are resolved to an operation
// exactly once, at the executor boundary.
type operation int

const (
	opUnknown operation = iota
	opLookupOrder
	opCancelOrder
)

func resolveOperation(name string) operation {
	switch name {
	case lookupOrderStatusName:
		return opLookupOrder
	case cancelOrderName:
		return opCancelOrder
	default:
		return opUnknown
	}
}

// Executor dispatches tool calls from the completion service to the
// order catalog.
type Executor struct {
	catalog  *orders.Catalog
	validate *validator.Validate
}

func NewExecutor(catalog *orders.Catalog) *Executor {
	return &Executor{
		catalog:  catalog,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// ExecuteToolCall runs a single tool call and returns the catalog's
// sentence. Order absence is a normal textual outcome, never an error.
func (e *Executor) ExecuteToolCall(tool openai.ToolCall) (string, error) {
	log.Info().Str("function", tool.Function.Name).Msg("Executing tool call")

	if tool.Type != openai.ToolTypeFunction {
		return "", fmt.Errorf("%w: unsupported tool type %q", ErrUnknownFunction, tool.Type)
	}

	op := resolveOperation(tool.Function.Name)
	if op == opUnknown {
		return "", fmt.Errorf("%w: %s", ErrUnknownFunction, tool.Function.Name)
	}

	var params OrderParams
	if err := json.Unmarshal([]byte(tool.Function.Arguments), &params); err != nil {
		log.Error().Err(err).Str("function", tool.Function.Name).Msg("Failed to parse tool arguments")
		return "", fmt.Errorf("%w: %v", ErrInvalidArguments, err)
	}
	if err := e.validate.Struct(params); err != nil {
		log.Error().Err(err).Str("function", tool.Function.Name).Msg("Tool arguments failed validation")
		return "", fmt.Errorf("%w: %v", ErrInvalidArguments, err)
	}

	switch op {
	case opLookupOrder:
		return e.catalog.Lookup(params.OrderID), nil
	case opCancelOrder:
		return e.catalog.Cancel(params.OrderID), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFunction, tool.Function.Name)
	}
}
