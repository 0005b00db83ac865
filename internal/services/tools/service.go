package tools

import (
	"encoding/json"

	"github.com/sashabaranov/go-openai"
)

const (
	lookupOrderStatusName = "lookup_order_status"
	cancelOrderName       = "cancel_order"
)

// orderParamsSchema is the JSON-schema parameter spec shared by both
// functions: a single required string order_id.
var orderParamsSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"order_id": {"type": "string", "description": "The order ID."}
	},
	"required": ["order_id"]
}`)

// Definitions returns the fixed set of callable-function descriptors
// advertised to the completion service on every request.
func Definitions() []openai.Tool {
	return []openai.Tool{
		{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        lookupOrderStatusName,
				Description: "Retrieve the status of an order by order ID.",
				Parameters:  orderParamsSchema,
			},
		},
		{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        cancelOrderName,
				Description: "Cancel an order by order ID.",
				Parameters:  orderParamsSchema,
			},
		},
	}
}
