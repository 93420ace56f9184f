package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/mma_web/internal/apperrors"
	portssvc "github.com/SscSPs/mma_web/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// SessionCookieName is the cookie browsers carry the session token in.
const SessionCookieName = "mma_session"

// SessionAuthMiddleware resolves the bearer token (or session cookie) into a live
// session and stores it in the context. Requests without a valid session are rejected.
func SessionAuthMiddleware(resolver portssvc.SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		token, ok := extractToken(c)
		if !ok {
			logger.Warn("Session token missing or malformed")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		session, err := resolver.ResolveToken(c.Request.Context(), token)
		if err != nil {
			status := apperrors.StatusCode(err)
			msg := "Invalid or expired session"
			if status != http.StatusUnauthorized {
				logger.Error("Failed to resolve session", slog.String("error", err.Error()))
				msg = "Failed to resolve session"
			} else {
				logger.Warn("Rejected session token", slog.String("error", err.Error()))
			}
			c.AbortWithStatusJSON(status, gin.H{"error": msg})
			return
		}

		enriched := logger.With(slog.String("user_id", session.UserID), slog.String("session_id", session.SessionID))
		ctx := WithLogger(WithSession(c.Request.Context(), session), enriched)
		c.Request = c.Request.WithContext(ctx)
		c.Set(string(sessionKey), session)

		c.Next()
	}
}

// RequireCompany rejects requests whose session has no active company.
func RequireCompany() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := GetSessionFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}
		if !session.HasCompany() {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Select a company first", "code": "NO_COMPANY_SELECTED"})
			return
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		cookie, err := c.Cookie(SessionCookieName)
		if err != nil || cookie == "" {
			return "", false
		}
		return cookie, true
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
