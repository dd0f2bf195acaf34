package models

// Chat roles accepted by the completion providers.
const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

// ChatMessage is a single turn of a completion conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
