package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/orderdesk/orderdesk/internal/services"
)

func TestMainServer(t *testing.T) {
	ordersFile := filepath.Join(t.TempDir(), "orders.csv")
	if err := os.WriteFile(ordersFile, []byte("order_id,status,item\n42,shipped,Widget\n"), 0o644); err != nil {
		t.Fatalf("Failed to write orders file: %v", err)
	}
	t.Setenv("OPENAI_KEY", "test-key")
	t.Setenv("ORDERS_FILE", ordersFile)

	svcs, err := services.InitializeServices()
	if err != nil {
		t.Fatalf("Failed to initialize services: %v", err)
	}

	// Start test server
	server := httptest.NewServer(setupRouter(svcs))
	defer server.Close()

	t.Run("create conversation endpoint", func(t *testing.T) {
		resp, err := http.Post(server.URL+"/conversations", "application/json", nil)
		if err != nil {
			t.Fatalf("Failed to make request: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusCreated {
			t.Errorf("Expected status code %d, got %d", http.StatusCreated, resp.StatusCode)
		}

		var created struct {
			ConversationID string `json:"conversation_id"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if created.ConversationID == "" {
			t.Error("Expected conversation_id to be set")
		}

		// A fresh conversation lists an empty history
		listResp, err := http.Get(server.URL + "/conversations/" + created.ConversationID + "/messages")
		if err != nil {
			t.Fatalf("Failed to make request: %v", err)
		}
		defer listResp.Body.Close()

		if listResp.StatusCode != http.StatusOK {
			t.Errorf("Expected status code %d, got %d", http.StatusOK, listResp.StatusCode)
		}
		var messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		}
		if err := json.NewDecoder(listResp.Body).Decode(&messages); err != nil {
			t.Fatalf("Failed to decode list response: %v", err)
		}
		if len(messages) != 0 {
			t.Errorf("Expected empty history, got %d messages", len(messages))
		}
	})

	t.Run("unknown conversation", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/conversations/missing/messages")
		if err != nil {
			t.Fatalf("Failed to make request: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("Expected status code %d, got %d", http.StatusNotFound, resp.StatusCode)
		}
	})

	t.Run("invalid endpoint", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/invalid")
		if err != nil {
			t.Fatalf("Failed to make request: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("Expected status code %d, got %d", http.StatusNotFound, resp.StatusCode)
		}
	})
}
