package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mythoslab/mythos-backend/internal/auth"
	"github.com/mythoslab/mythos-backend/internal/chat"
	"github.com/mythoslab/mythos-backend/internal/pkg/apperror"
	"github.com/mythoslab/mythos-backend/internal/pkg/response"
)

type Handler struct {
	service chat.Service
}

func NewHandler(service chat.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Converse(c *gin.Context) {
	var body ConverseBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, apperror.Wrap(err, http.StatusBadRequest, "invalid request body"))
		return
	}

	reply := h.service.Converse(c.Request.Context(), body.ToTurns(), auth.GetActor(c))
	c.JSON(http.StatusOK, ConverseResponse{Reply: reply})
}

func (h *Handler) SetAPIKey(c *gin.Context) {
	var body APIKeyBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, apperror.Wrap(err, http.StatusBadRequest, "invalid request body"))
		return
	}

	if err := h.service.SetAPIKey(c.Request.Context(), body.APIKey, auth.GetActor(c)); err != nil {
		if errors.Is(err, chat.ErrUnauthorized) {
			response.Error(c, apperror.Wrap(err, http.StatusForbidden, err.Error()))
			return
		}
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
