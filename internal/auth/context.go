package auth

import "github.com/gin-gonic/gin"

// GetUserName returns the authenticated session's display name or empty string.
func GetUserName(c *gin.Context) string {
	if v, ok := c.Get("userName"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// GetUserRole returns the authenticated session's role or empty Role.
func GetUserRole(c *gin.Context) Role {
	if v, ok := c.Get("userRole"); ok {
		if s, ok := v.(string); ok {
			if r, valid := ParseRole(s); valid {
				return r
			}
		}
	}
	return ""
}

// GetActor returns the authenticated session as an Actor.
// A zero Actor means the request carries no valid session.
func GetActor(c *gin.Context) Actor {
	return Actor{
		Name: GetUserName(c),
		Role: GetUserRole(c),
	}
}
