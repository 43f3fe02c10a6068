package http

import (
	"github.com/mythoslab/mythos-backend/internal/chat"
)

// TurnBody is one conversation message in a request.
type TurnBody struct {
	Role string `json:"role" binding:"required,oneof=user assistant"`
	Text string `json:"text" binding:"required"`
}

// ConverseBody is the payload for POST /v1/chat.
type ConverseBody struct {
	Messages []TurnBody `json:"messages" binding:"required,min=1,dive"`
}

func (b ConverseBody) ToTurns() []chat.Turn {
	turns := make([]chat.Turn, len(b.Messages))
	for i, m := range b.Messages {
		turns[i] = chat.Turn{Role: m.Role, Text: m.Text}
	}
	return turns
}

// ConverseResponse is the reply envelope for POST /v1/chat.
type ConverseResponse struct {
	Reply string `json:"reply"`
}

// APIKeyBody is the payload for PUT /v1/chat/apikey.
// An empty key clears the stored one.
type APIKeyBody struct {
	APIKey string `json:"api_key"`
}
