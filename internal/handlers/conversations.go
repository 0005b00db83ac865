package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/orderdesk/orderdesk/internal/conversations"
	"github.com/orderdesk/orderdesk/internal/services/chat"
	"github.com/orderdesk/orderdesk/pkg/httpext"
)

// ConversationResponse is the body returned when a conversation is created.
type ConversationResponse struct {
	ConversationID string `json:"conversation_id"`
}

// MessageRequest is the body of an inbound user message.
type MessageRequest struct {
	Content string `json:"content" validate:"required"`
}

// HandleCreateConversation starts a new conversation and returns its id.
func HandleCreateConversation(store *conversations.Store, w http.ResponseWriter, r *http.Request) {
	id := store.Create()

	log.Info().Str("conversation_id", id).Msg("Created conversation")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(ConversationResponse{ConversationID: id}); err != nil {
		log.Error().Err(err).Msg("Failed to encode conversation response")
	}
}

// HandleListMessages returns the full ordered history of a conversation.
func HandleListMessages(store *conversations.Store, w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	messages, err := store.Messages(id)
	if err != nil {
		if errors.Is(err, conversations.ErrNotFound) {
			httpext.JsonError(w, "Conversation not found", http.StatusNotFound)
			return
		}
		log.Error().Err(err).Str("conversation_id", id).Msg("Failed to list messages")
		httpext.JsonError(w, "Failed to list messages", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(messages); err != nil {
		log.Error().Err(err).Str("conversation_id", id).Msg("Failed to encode messages")
	}
}

// HandlePostMessage appends a user message, asks the assistant for a
// reply, appends that reply, and returns it. The user message is
// retained even when the upstream call fails.
func HandlePostMessage(store *conversations.Store, chatService chat.Service, w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req MessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn().Err(err).Msg("Client sent malformed JSON request")
		httpext.JsonError(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	// use a single instance of Validate, it caches struct info
	validate := validator.New(validator.WithRequiredStructEnabled())

	if err := validate.Struct(req); err != nil {
		log.Warn().Err(err).Msg("Request validation failed")
		httpext.JsonError(w, "Content is required", http.StatusBadRequest)
		return
	}

	userMessage := conversations.Message{
		Role:    conversations.RoleUser,
		Content: req.Content,
	}
	if err := store.Append(id, userMessage); err != nil {
		if errors.Is(err, conversations.ErrNotFound) {
			httpext.JsonError(w, "Conversation not found", http.StatusNotFound)
			return
		}
		log.Error().Err(err).Str("conversation_id", id).Msg("Failed to append user message")
		httpext.JsonError(w, "Failed to store message", http.StatusInternalServerError)
		return
	}

	reply, err := chatService.Respond(r.Context(), req.Content)
	if err != nil {
		log.Error().Err(err).Str("conversation_id", id).Msg("Failed to generate assistant reply")
		if errors.Is(err, chat.ErrUpstream) {
			httpext.JsonError(w, "Assistant service unavailable", http.StatusBadGateway)
			return
		}
		httpext.JsonError(w, "Failed to process message", http.StatusInternalServerError)
		return
	}

	assistantMessage := conversations.Message{
		Role:    conversations.RoleAssistant,
		Content: reply,
	}
	if err := store.Append(id, assistantMessage); err != nil {
		log.Error().Err(err).Str("conversation_id", id).Msg("Failed to append assistant message")
		httpext.JsonError(w, "Failed to store message", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(assistantMessage); err != nil {
		log.Error().Err(err).Str("conversation_id", id).Msg("Failed to encode assistant message")
	}
}
