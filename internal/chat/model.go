package chat

import "errors"

var ErrUnauthorized = errors.New("chat configuration requires the admin role")

// Turn roles in a conversation.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one message of the running conversation.
type Turn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}
