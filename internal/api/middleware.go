package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mythoslab/mythos-backend/internal/auth"
)

// RequireAdmin ensures the authenticated session holds the admin role.
// It MUST be used after auth.AuthRequired middleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := auth.GetActor(c)
		if actor.Name == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		if !actor.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden: admin access required"})
			return
		}

		c.Next()
	}
}
