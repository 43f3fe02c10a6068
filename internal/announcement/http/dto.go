package http

import (
	"time"

	"github.com/mythoslab/mythos-backend/internal/announcement"
)

// Response is the shape of announcement data returned by the API.
type Response struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Message  string    `json:"message"`
	Author   string    `json:"author"`
	Verified bool      `json:"verified"`
	Date     time.Time `json:"date"`
}

func NewResponse(a announcement.Announcement) Response {
	return Response{
		ID:       a.ID,
		Title:    a.Title,
		Message:  a.Message,
		Author:   a.Author,
		Verified: a.Verified,
		Date:     a.Date,
	}
}

// CreateBody is the payload for POST /v1/announcements.
type CreateBody struct {
	Title   string `json:"title" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// UpdateBody is the payload for PATCH /v1/announcements/:id.
// Edits always carry the full draft, mirroring the edit form.
type UpdateBody struct {
	Title   string `json:"title" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// ListQuery holds the query parameters for GET /v1/announcements.
type ListQuery struct {
	Keyword   string `form:"q"`
	SortBy    string `form:"sort_by" binding:"omitempty,oneof=date title author"`
	SortOrder string `form:"sort_order" binding:"omitempty,oneof=asc desc"`
	Page      int    `form:"page"`
}
