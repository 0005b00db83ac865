package chat

import (
	"context"

	"github.com/sashabaranov/go-openai"
)

// Service defines the interface for assistant responses.
type Service interface {
	// Respond produces the assistant's reply to a single user message.
	Respond(ctx context.Context, userText string) (string, error)
}

// CompletionClient is the part of the OpenAI client the dispatcher uses.
// *openai.Client satisfies it.
type CompletionClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}
