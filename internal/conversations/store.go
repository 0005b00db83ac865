package conversations

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

// ErrNotFound is returned for operations against an unknown conversation id.
var ErrNotFound = errors.New("conversation not found")

// Store holds every conversation for the process lifetime. Access is
// serialized behind a single lock; appends within one conversation keep
// request-arrival order.
type Store struct {
	mu            sync.RWMutex
	conversations map[string][]Message
}

func NewStore() *Store {
	return &Store{
		conversations: make(map[string][]Message),
	}
}

// Create starts a new empty conversation and returns its id.
func (s *Store) Create() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New().String()
	s.conversations[id] = []Message{}
	return id
}

// Append adds a message to the end of a conversation.
func (s *Store) Append(id string, msg Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	messages, exists := s.conversations[id]
	if !exists {
		return ErrNotFound
	}
	s.conversations[id] = append(messages, msg)
	return nil
}

// Messages returns the full ordered history of a conversation. The
// returned slice is a copy so callers cannot corrupt stored history.
func (s *Store) Messages(id string) ([]Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	messages, exists := s.conversations[id]
	if !exists {
		return nil, ErrNotFound
	}
	out := make([]Message, len(messages))
	copy(out, messages)
	return out, nil
}
