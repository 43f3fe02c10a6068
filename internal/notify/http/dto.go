package http

import (
	"time"

	"github.com/mythoslab/mythos-backend/internal/notify"
)

// Response is the shape of a notification returned by the API.
type Response struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Severity  string    `json:"severity"`
	CreatedAt time.Time `json:"created_at"`
}

func NewResponse(n notify.Notification) Response {
	return Response{
		ID:        n.ID,
		Message:   n.Message,
		Severity:  string(n.Severity),
		CreatedAt: n.CreatedAt,
	}
}
