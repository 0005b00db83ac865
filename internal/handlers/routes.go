package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/orderdesk/orderdesk/internal/services"
)

// RegisterRoutes wires the conversation endpoints onto the router.
func RegisterRoutes(router *mux.Router, services *services.Services) {
	router.HandleFunc("/conversations", func(w http.ResponseWriter, r *http.Request) {
		HandleCreateConversation(services.GetConversationStore(), w, r)
	}).Methods("POST")

	router.HandleFunc("/conversations/{id}/messages", func(w http.ResponseWriter, r *http.Request) {
		HandleListMessages(services.GetConversationStore(), w, r)
	}).Methods("GET")

	router.HandleFunc("/conversations/{id}/messages", func(w http.ResponseWriter, r *http.Request) {
		HandlePostMessage(services.GetConversationStore(), services.GetChatService(), w, r)
	}).Methods("POST")
}
