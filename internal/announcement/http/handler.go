package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mythoslab/mythos-backend/internal/announcement"
	"github.com/mythoslab/mythos-backend/internal/auth"
	"github.com/mythoslab/mythos-backend/internal/pkg/request"
	"github.com/mythoslab/mythos-backend/internal/pkg/response"
)

type Handler struct {
	service announcement.Service
}

func NewHandler(service announcement.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	var req ListQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	filter := announcement.Filter{
		Keyword:   req.Keyword,
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
		Page:      req.Page,
	}

	if filter.SortBy == "" {
		filter.SortBy = announcement.SortByDate
	}
	if filter.SortOrder == "" {
		filter.SortOrder = "desc"
	}

	page := h.service.Query(c.Request.Context(), filter)

	items := make([]Response, len(page.Items))
	for i, a := range page.Items {
		items[i] = NewResponse(a)
	}

	resp := response.NewPageResponse(items, page.Page, announcement.PageSize, page.PageCount, page.Total)
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	draft := announcement.Draft{
		Title:   body.Title,
		Message: body.Message,
	}

	a, err := h.service.Publish(c.Request.Context(), draft, auth.GetActor(c))
	if err != nil {
		switch {
		case errors.Is(err, announcement.ErrUnauthorized):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, announcement.ErrInvalidTitle),
			errors.Is(err, announcement.ErrInvalidMessage):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to publish announcement"})
		}
		return
	}

	c.JSON(http.StatusCreated, NewResponse(a))
}

func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	var body UpdateBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	draft := announcement.Draft{
		Title:   body.Title,
		Message: body.Message,
	}

	a, err := h.service.Update(c.Request.Context(), uri.ID, draft, auth.GetActor(c))
	if err != nil {
		switch {
		case errors.Is(err, announcement.ErrUnauthorized):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, announcement.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "announcement not found"})
		case errors.Is(err, announcement.ErrInvalidTitle),
			errors.Is(err, announcement.ErrInvalidMessage):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update announcement"})
		}
		return
	}

	c.JSON(http.StatusOK, NewResponse(a))
}

func (h *Handler) Delete(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	// Remove is idempotent; deleting an unknown id still returns 204.
	if err := h.service.Remove(c.Request.Context(), req.ID, auth.GetActor(c)); err != nil {
		switch {
		case errors.Is(err, announcement.ErrUnauthorized):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete announcement"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
