package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContextAccountIDKey is the gin context key holding the authenticated account id.
const ContextAccountIDKey = "account_id"

// TokenVerifier checks a session token and returns the account id it binds.
type TokenVerifier interface {
	Verify(tokenString string) (uuid.UUID, error)
}

// Auth returns a gin middleware that requires a valid Bearer session token.
// All rejection paths share one generic message.
func Auth(verifier TokenVerifier, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		const prefix = "Bearer "

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, prefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   "unauthorized",
				"message": "Missing or invalid session token.",
			})
			return
		}

		accountID, err := verifier.Verify(strings.TrimPrefix(header, prefix))
		if err != nil {
			log.Warn("rejected session token", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   "unauthorized",
				"message": "Missing or invalid session token.",
			})
			return
		}

		c.Set(ContextAccountIDKey, accountID)
		c.Next()
	}
}

// AccountIDFromContext extracts the authenticated account id set by Auth.
func AccountIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(ContextAccountIDKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
