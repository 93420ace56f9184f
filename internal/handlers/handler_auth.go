package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/mma_web/internal/apperrors"
	"github.com/SscSPs/mma_web/internal/core/domain"
	portssvc "github.com/SscSPs/mma_web/internal/core/ports/services"
	"github.com/SscSPs/mma_web/internal/dto"
	"github.com/SscSPs/mma_web/internal/middleware"
	"github.com/gin-gonic/gin"
)

const oauthStateCookie = "mma_oauth_state"

// authHandler handles session endpoints.
type authHandler struct {
	authService   portssvc.AuthSvcFacade
	googleService portssvc.GoogleOAuthSvcFacade
	secureCookies bool
}

func newAuthHandler(as portssvc.AuthSvcFacade, gs portssvc.GoogleOAuthSvcFacade, secureCookies bool) *authHandler {
	return &authHandler{authService: as, googleService: gs, secureCookies: secureCookies}
}

// registerAuthRoutes registers the public login routes. loginLimit guards the
// credential endpoints and may be nil.
func registerAuthRoutes(r *gin.Engine, h *authHandler, loginLimit gin.HandlerFunc) {
	auth := r.Group("/api/v1/auth")
	if loginLimit != nil {
		auth.POST("/login", loginLimit, h.login)
		auth.POST("/google/exchange-code", loginLimit, h.exchangeGoogleCode)
	} else {
		auth.POST("/login", h.login)
		auth.POST("/google/exchange-code", h.exchangeGoogleCode)
	}
	auth.GET("/google/login", h.googleLoginURL)
}

// registerSessionRoutes registers the routes that act on the caller's own session.
func registerSessionRoutes(rg *gin.RouterGroup, h *authHandler) {
	rg.GET("/auth/session", h.getSession)
	rg.POST("/auth/logout", h.logout)
}

// login godoc
// @Summary User login
// @Description Authenticates against the accounting backend and starts a session.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse "Accounting backend unavailable"
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	session, token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if apperrors.StatusCode(err) == http.StatusUnauthorized || apperrors.StatusCode(err) == http.StatusBadRequest {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid email or password"})
			return
		}
		respondError(c, err, "Failed to log in")
		return
	}

	h.setSessionCookie(c, token, session)
	c.JSON(http.StatusOK, dto.ToLoginResponse(session, token))
}

// googleLoginURL godoc
// @Summary Start Google sign-in
// @Description Returns the Google consent URL and sets the CSRF state cookie.
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 404 {object} ErrorResponse "Google sign-in not configured"
// @Router /auth/google/login [get]
func (h *authHandler) googleLoginURL(c *gin.Context) {
	if !h.googleService.Enabled() {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Google sign-in is not enabled"})
		return
	}
	state, err := h.googleService.GenerateStateString(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to start Google sign-in")
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oauthStateCookie, state, int((10 * time.Minute).Seconds()), "/", "", h.secureCookies, true)
	c.JSON(http.StatusOK, gin.H{"url": h.googleService.GetGoogleLoginURL(c.Request.Context(), state)})
}

// exchangeGoogleCode godoc
// @Summary Exchange a Google authorization code for a session
// @Description Exchanges the code, verifies the ID token and logs in with the backend.
// @Tags auth
// @Accept json
// @Produce json
// @Param code body dto.GoogleExchangeRequest true "Authorization code"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/google/exchange-code [post]
func (h *authHandler) exchangeGoogleCode(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	if !h.googleService.Enabled() {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Google sign-in is not enabled"})
		return
	}

	var req dto.GoogleExchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	if expected, err := c.Cookie(oauthStateCookie); err == nil && expected != req.State {
		logger.Warn("OAuth state mismatch")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid OAuth state"})
		return
	}

	token, err := h.googleService.ExchangeCodeForToken(ctx, req.Code)
	if err != nil {
		logger.Warn("Google code exchange failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid authorization code"})
		return
	}
	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		logger.Error("Google token response carried no id_token")
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Google did not return an ID token"})
		return
	}
	if _, err := h.googleService.ValidateGoogleIDToken(ctx, rawIDToken); err != nil {
		respondError(c, err, "Failed to verify Google identity")
		return
	}

	session, sessionToken, err := h.authService.LoginWithGoogleIDToken(ctx, rawIDToken)
	if err != nil {
		respondError(c, err, "Failed to log in with Google")
		return
	}

	c.SetCookie(oauthStateCookie, "", -1, "/", "", h.secureCookies, true)
	h.setSessionCookie(c, sessionToken, session)
	c.JSON(http.StatusOK, dto.ToLoginResponse(session, sessionToken))
}

// getSession godoc
// @Summary Current session
// @Description Returns the caller's session, including the selected company.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.SessionResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/session [get]
func (h *authHandler) getSession(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ToSessionResponse(session))
}

// logout godoc
// @Summary Log out
// @Description Ends the session and revokes the backend token.
// @Tags auth
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	if err := h.authService.Logout(c.Request.Context(), session); err != nil {
		respondError(c, err, "Failed to log out")
		return
	}
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", h.secureCookies, true)
	c.Status(http.StatusNoContent)
}

func (h *authHandler) setSessionCookie(c *gin.Context, token string, session *domain.Session) {
	maxAge := int(time.Until(session.ExpiresAt).Seconds())
	if maxAge <= 0 {
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, token, maxAge, "/", "", h.secureCookies, true)
}
