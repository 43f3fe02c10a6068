package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mythoslab/mythos-backend/internal/notify"
)

type Handler struct {
	center *notify.Center
}

func NewHandler(center *notify.Center) *Handler {
	return &Handler{center: center}
}

// List returns the notifications currently on screen.
func (h *Handler) List(c *gin.Context) {
	active := h.center.Active()

	items := make([]Response, len(active))
	for i, n := range active {
		items[i] = NewResponse(n)
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}
