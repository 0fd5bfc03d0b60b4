package middleware

import (
	"net/http"
	"strings"

	"github.com/psalmsin1759/menuja-backend/helpers"

	"github.com/gin-gonic/gin"
)

// Authentication gates a route group behind a Bearer token and records the
// verified admin identity on the request context.
func Authentication() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization header missing or invalid"})
			c.Abort()
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := helpers.ValidateToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("admin_id", claims.Admin_id)
		c.Set("role", claims.Role)
		c.Next()
	}
}
