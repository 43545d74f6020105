package middleware

import (
	"net/http"
	"strings"

	"invoice-generator/internal/auth"
	"invoice-generator/internal/session"

	"github.com/gin-gonic/gin"
)

// SessionMiddleware checks the Bearer session token and loads that
// session's invoice store into the request context.
func SessionMiddleware(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Get the token from the "Authorization" header
		// Format: "Bearer <token>"
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		// 2. Remove the "Bearer " prefix
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header must start with Bearer"})
			c.Abort()
			return
		}

		// 3. Validate the token using our auth package
		claims, err := auth.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		// 4. Look up the session's invoice store. A valid token whose
		// session already idled out means the browser must start over.
		store := sessions.Get(claims.SessionID)
		if store == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired, please start a new one"})
			c.Abort()
			return
		}

		// 5. Hand the store to the next handler
		c.Set("store", store)
		c.Next()
	}
}
