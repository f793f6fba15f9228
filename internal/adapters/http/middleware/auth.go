package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/trendloom/backoffice/internal/core/auth"
)

// ContextUserID is the gin context key holding the authenticated user id.
const ContextUserID = "userID"

type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// requestToken accepts either an Authorization bearer header or the legacy
// bare "token" header still sent by older admin panel builds.
func requestToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer"))
	}
	return c.GetHeader("token")
}

func abortUnauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "not authorized, login again"})
	c.Abort()
}

func RequireAdmin(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := requestToken(c)
		if token == "" {
			abortUnauthorized(c)
			return
		}

		claims, err := verifier.Verify(token)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		if !claims.Admin {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "admin access required"})
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Next()
	}
}
