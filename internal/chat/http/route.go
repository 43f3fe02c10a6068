package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/chat")

	// === Authenticated Routes ===
	group.Use(authMiddleware)
	{
		group.POST("", h.Converse)
	}

	// === Administration Routes (Admin Only) ===
	adminGroup := group.Group("")
	adminGroup.Use(adminMiddleware)
	{
		adminGroup.PUT("/apikey", h.SetAPIKey)
	}
}
