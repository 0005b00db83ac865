package services

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/sashabaranov/go-openai"

	"github.com/orderdesk/orderdesk/internal/config"
	"github.com/orderdesk/orderdesk/internal/conversations"
	"github.com/orderdesk/orderdesk/internal/orders"
	"github.com/orderdesk/orderdesk/internal/services/chat"
	"github.com/orderdesk/orderdesk/internal/services/tools"
)

type Services struct {
	orderCatalog      *orders.Catalog
	conversationStore *conversations.Store
	chatService       *chat.Implementation
}

// InitializeServices initializes all required services
func InitializeServices() (*Services, error) {
	log.Info().Msg("Initializing core services")

	orderCatalog := orders.Load(config.GetOrdersFile())
	log.Info().Int("orders", orderCatalog.Len()).Msg("Initializing order catalog")

	conversationStore := conversations.NewStore()
	log.Info().Msg("Initializing conversation store")

	executor := tools.NewExecutor(orderCatalog)

	// The OpenAI key is required; config exits the process when it is
	// missing.
	client := openai.NewClient(config.GetOpenAIKey())
	chatService, err := chat.NewService(client, executor, config.GetOpenAIModel(), config.GetOpenAITimeout())
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize chat service - required for message processing")
		return nil, fmt.Errorf("failed to initialize chat service: %w", err)
	}
	log.Info().Str("model", config.GetOpenAIModel()).Msg("Initializing chat service")

	log.Info().Msg("All services initialized successfully")

	return &Services{
		orderCatalog:      orderCatalog,
		conversationStore: conversationStore,
		chatService:       chatService,
	}, nil
}

func (s *Services) GetOrderCatalog() *orders.Catalog {
	return s.orderCatalog
}

func (s *Services) GetConversationStore() *conversations.Store {
	return s.conversationStore
}

func (s *Services) GetChatService() *chat.Implementation {
	return s.chatService
}
