package chat

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sashabaranov/go-openai"

	"github.com/orderdesk/orderdesk/internal/services/tools"
)

var (
	// ErrUpstream is returned when the completion service is unreachable,
	// rejects the call, or does not answer within the configured timeout.
	ErrUpstream = errors.New("completion service error")

	// ErrMalformedResponse is returned when the completion service answers
	// without the fields the contract requires.
	ErrMalformedResponse = errors.New("malformed completion response")
)

type Implementation struct {
	client   CompletionClient
	executor *tools.Executor
	model    string
	timeout  time.Duration
}

func NewService(client CompletionClient, executor *tools.Executor, model string, timeout time.Duration) (*Implementation, error) {
	if client == nil {
		return nil, fmt.Errorf("completion client is required")
	}
	if executor == nil {
		return nil, fmt.Errorf("tool executor is required")
	}
	return &Implementation{
		client:   client,
		executor: executor,
		model:    model,
		timeout:  timeout,
	}, nil
}

// Respond sends the user text plus the fixed function descriptors to the
// completion service. A function-call reply is dispatched to the order
// catalog and its sentence returned; a free-text reply is returned
// verbatim. One synchronous upstream call per inbound message, with no
// store locks held while waiting.
func (s *Implementation) Respond(ctx context.Context, userText string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: userText,
			},
		},
		Tools: tools.Definitions(),
	}

	resp, err := s.client.CreateChatCompletion(ctx, req)
	if err != nil {
		log.Error().Err(err).Msg("Failed to get chat completion")
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no response choices returned", ErrMalformedResponse)
	}

	message := resp.Choices[0].Message

	if len(message.ToolCalls) > 0 {
		result, err := s.executor.ExecuteToolCall(message.ToolCalls[0])
		if err != nil {
			return "", err
		}
		return result, nil
	}

	log.Debug().Int("content_length", len(message.Content)).Msg("Returning free-text completion")
	return message.Content, nil
}
