package middleware

import (
	"net/http"

	"github.com/abdulaziz1812/service-review-system-server/utils"

	"github.com/gin-gonic/gin"
)

// AuthRequired guards a route group with the cookie credential. Requests
// without a valid token are rejected; otherwise the decoded email is set
// on the context.
//
// No data route currently uses this guard; every endpoint is reachable
// without a credential, matching the behavior the server has always had.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie("token")
		if err != nil || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing auth cookie"})
			return
		}

		email, err := utils.ExtractEmailFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set("email", email)
		c.Next()
	}
}
