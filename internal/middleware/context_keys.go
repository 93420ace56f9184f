package middleware

import (
	"context"

	"github.com/SscSPs/mma_web/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// sessionKey is the key used to store the authenticated session.
const sessionKey = contextKey("session")

// WithSession returns a copy of ctx carrying the session.
func WithSession(ctx context.Context, session *domain.Session) context.Context {
	return context.WithValue(ctx, sessionKey, session)
}

// GetSessionFromContext retrieves the session placed by SessionAuthMiddleware.
func GetSessionFromContext(c *gin.Context) (*domain.Session, bool) {
	if v, exists := c.Get(string(sessionKey)); exists {
		if session, ok := v.(*domain.Session); ok {
			return session, true
		}
	}
	session, ok := c.Request.Context().Value(sessionKey).(*domain.Session)
	return session, ok && session != nil
}

// GetUserIDFromContext retrieves the authenticated user ID.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	session, ok := GetSessionFromContext(c)
	if !ok {
		return "", false
	}
	return session.UserID, true
}
