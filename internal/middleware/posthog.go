package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/mma_web/internal/utils"
	"github.com/gin-gonic/gin"
)

// pathsToSkip contains paths that should not be tracked
var pathsToSkip = map[string]bool{
	"/health": true,
}

// PosthogMiddleware records one event per successful authenticated API call.
func PosthogMiddleware(tracker utils.EventTracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tracker == nil || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		session, ok := GetSessionFromContext(c)
		if !ok {
			return
		}

		// "/api/v1/transactions/:id" becomes "api_v1_transactions_:id"
		eventName := strings.ReplaceAll(strings.TrimPrefix(c.FullPath(), "/"), "/", "_")
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"status_code": c.Writer.Status(),
		}
		if session.HasCompany() {
			props["company_id"] = session.CompanyID
		}
		tracker.Enqueue(session.UserID, eventName, props)
	}
}
