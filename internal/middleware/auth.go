package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/shelfmate/catalog/internal/auth"
	"github.com/shelfmate/catalog/internal/validation"
)

// ContextUserID is the gin context key under which RequireAuth stores the
// authenticated user's id.
const ContextUserID = "user_id"

// RequireAuth validates the Authorization bearer token and stores the
// resolved user id in the request context. Any failure aborts with 401;
// requests never proceed with an anonymous identity.
func RequireAuth(tm *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthorized(c, "missing authorization header")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortUnauthorized(c, "invalid authorization header format")
			return
		}

		userID, err := tm.Resolve(parts[1])
		if err != nil {
			abortUnauthorized(c, "invalid or expired token")
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, validation.ErrorResponse{
		Code:    "UNAUTHORIZED",
		Message: message,
	})
}
