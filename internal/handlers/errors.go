package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/mma_web/internal/apperrors"
	"github.com/SscSPs/mma_web/internal/core/domain"
	"github.com/SscSPs/mma_web/internal/middleware"
	"github.com/SscSPs/mma_web/internal/utils/accounting"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the error body every endpoint answers with.
// Code and Difference are only set for journal entry validation failures.
type ErrorResponse struct {
	Error      string `json:"error"`
	Code       string `json:"code,omitempty"`
	Difference string `json:"difference,omitempty"`
}

// userMessager is implemented by errors that carry a message meant for the end user,
// such as rejections relayed from the accounting backend.
type userMessager interface {
	UserMessage() string
}

// respondError maps err to a status and writes the error body. Server-side failures
// answer with fallback instead of the internal message.
func respondError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status := apperrors.StatusCode(err)

	var verr *accounting.ValidationError
	if errors.As(err, &verr) {
		res := ErrorResponse{Error: verr.Message(), Code: string(verr.Code)}
		if verr.Code == accounting.CodeUnbalanced {
			res.Difference = verr.Difference.StringFixed(2)
		}
		logger.Warn("Journal entry rejected", slog.String("code", res.Code))
		c.JSON(http.StatusBadRequest, res)
		return
	}

	msg := err.Error()
	var appErr *apperrors.AppError
	var userErr userMessager
	if errors.As(err, &appErr) {
		msg = appErr.Message
	} else if errors.As(err, &userErr) && userErr.UserMessage() != "" {
		msg = userErr.UserMessage()
	}

	switch {
	case status >= http.StatusInternalServerError && !errors.Is(err, apperrors.ErrSubmissionFailed):
		logger.Error(fallback, slog.String("error", err.Error()))
		msg = fallback
	case status >= http.StatusInternalServerError:
		logger.Error(fallback, slog.String("error", err.Error()))
	default:
		logger.Warn(fallback, slog.String("error", err.Error()), slog.Int("status", status))
	}
	c.JSON(status, ErrorResponse{Error: msg})
}

// bindError answers a request whose body or query failed binding.
func bindError(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
}

// sessionOrAbort fetches the session placed by the auth middleware.
func sessionOrAbort(c *gin.Context) (*domain.Session, bool) {
	session, ok := middleware.GetSessionFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Session not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return nil, false
	}
	return session, true
}
