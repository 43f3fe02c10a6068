package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mythoslab/mythos-backend/internal/auth"
	"github.com/mythoslab/mythos-backend/internal/pkg/apperror"
	"github.com/mythoslab/mythos-backend/internal/pkg/response"
	"github.com/mythoslab/mythos-backend/internal/settings"
)

type Handler struct {
	service settings.Service
}

func NewHandler(service settings.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Get(c *gin.Context) {
	s := h.service.Get(c.Request.Context())
	c.JSON(http.StatusOK, NewResponse(s))
}

func (h *Handler) Update(c *gin.Context) {
	var body UpdateBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, apperror.Wrap(err, http.StatusBadRequest, "invalid request body"))
		return
	}

	s, err := h.service.Update(c.Request.Context(), body.ToSettings(), auth.GetActor(c))
	if err != nil {
		if errors.Is(err, settings.ErrUnauthorized) {
			response.Error(c, apperror.Wrap(err, http.StatusForbidden, err.Error()))
			return
		}
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewResponse(s))
}
