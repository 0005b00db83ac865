package conversations

// Message roles. Only the two roles exchanged over the HTTP surface are
// stored; tool and system turns never reach the store.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single turn in a conversation. Messages are never mutated
// after append.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
