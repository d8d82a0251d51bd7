package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pocketfin/pocketfin_backend/internal/core/domain"
	portssvc "github.com/pocketfin/pocketfin_backend/internal/core/ports/services"
	"github.com/pocketfin/pocketfin_backend/internal/dto"
	"github.com/pocketfin/pocketfin_backend/internal/middleware"
	"github.com/pocketfin/pocketfin_backend/internal/platform/config"
)

const oauthStateCookieName = "oauth_state"

// googleOAuthHandler handles the Google sign-in flows: the browser redirect
// flow and the mobile code-exchange flow.
type googleOAuthHandler struct {
	googleOAuthService portssvc.GoogleOAuthSvcFacade
	userService        portssvc.UserSvcFacade
	tokenService       portssvc.TokenSvcFacade
	cfg                *config.Config
}

func newGoogleOAuthHandler(services *portssvc.ServiceContainer, cfg *config.Config) *googleOAuthHandler {
	return &googleOAuthHandler{
		googleOAuthService: services.GoogleOAuth,
		userService:        services.User,
		tokenService:       services.Token,
		cfg:                cfg,
	}
}

// registerGoogleOAuthRoutes registers the public Google OAuth routes.
func registerGoogleOAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := newGoogleOAuthHandler(services, cfg)

	google := r.Group("/api/v1/auth/google")
	{
		google.GET("/login", h.redirectToGoogle)
		google.GET("/callback", h.callback)
		google.POST("/exchange-code", h.exchangeCode)
	}
}

// ExchangeCodeRequest is the JSON body for the mobile code-exchange flow.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// redirectToGoogle godoc
// @Summary Start Google sign-in
// @Description Redirects the browser to Google's consent screen with a CSRF
// @Description state cookie.
// @Tags oauth
// @Success 307
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/login [get]
func (h *googleOAuthHandler) redirectToGoogle(c *gin.Context) {
	state, err := h.googleOAuthService.GenerateStateString(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to start Google sign-in"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oauthStateCookieName, state, 600, "/", "", h.cfg.IsProduction, true)
	c.Redirect(http.StatusTemporaryRedirect, h.googleOAuthService.GetGoogleLoginURL(c.Request.Context(), state))
}

// callback godoc
// @Summary Google sign-in callback
// @Description Handles Google's redirect, resolves the user and redirects
// @Description back to the frontend with a session established.
// @Tags oauth
// @Success 307
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/google/callback [get]
func (h *googleOAuthHandler) callback(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	stateCookie, err := c.Cookie(oauthStateCookieName)
	if err != nil || stateCookie == "" || c.Query("state") != stateCookie {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "OAuth state mismatch"})
		return
	}
	c.SetCookie(oauthStateCookieName, "", -1, "/", "", h.cfg.IsProduction, true)

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Authorization code missing"})
		return
	}

	token, err := h.googleOAuthService.ExchangeCodeForToken(c.Request.Context(), code)
	if err != nil {
		logger.Error("Failed to exchange authorization code", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Google sign-in failed"})
		return
	}

	info, err := h.googleOAuthService.GetUserInfo(c.Request.Context(), token)
	if err != nil {
		logger.Error("Failed to fetch Google profile", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Google sign-in failed"})
		return
	}

	_, accessToken, err := h.establishSession(c, info)
	if err != nil {
		logger.Error("Failed to establish Google session", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to sign in"})
		return
	}

	c.Redirect(http.StatusTemporaryRedirect, h.cfg.FrontendBaseURL+"/auth/callback#token="+accessToken)
}

// exchangeCode godoc
// @Summary Exchange a Google authorization code
// @Description Exchanges an authorization code obtained by the mobile client
// @Description for an application JWT. The Google ID token is validated
// @Description before any account is touched.
// @Tags oauth
// @Accept json
// @Produce json
// @Param code body ExchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/exchange-code [post]
func (h *googleOAuthHandler) exchangeCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req ExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	token, err := h.googleOAuthService.ExchangeCodeForToken(c.Request.Context(), req.Code)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "invalid_grant") {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid or expired authorization code"})
			return
		}
		logger.Error("Failed to exchange authorization code", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Failed to reach Google"})
		return
	}

	idToken, ok := token.Extra("id_token").(string)
	if !ok || idToken == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "ID token missing from Google response"})
		return
	}

	payload, err := h.googleOAuthService.ValidateGoogleIDToken(c.Request.Context(), idToken)
	if err != nil {
		logger.Warn("Google ID token validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid Google ID token"})
		return
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	if email == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Email missing from Google token"})
		return
	}

	info := &domain.GoogleUserInfo{ID: payload.Subject, Email: email, Name: name}
	user, accessToken, err := h.establishSession(c, info)
	if err != nil {
		logger.Error("Failed to establish Google session", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to sign in"})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Token: accessToken, User: dto.ToUserResponse(user)})
}

// establishSession resolves the account for a Google profile and issues the
// token pair, reusing the cookie flow shared with password login.
func (h *googleOAuthHandler) establishSession(c *gin.Context, info *domain.GoogleUserInfo) (*domain.User, string, error) {
	user, err := h.userService.FindOrCreateGoogleUser(c.Request.Context(), *info)
	if err != nil {
		return nil, "", err
	}

	auth := newAuthHandler(h.userService, h.tokenService, h.cfg)
	accessToken, err := auth.issueTokens(c, user)
	if err != nil {
		return nil, "", err
	}
	return user, accessToken, nil
}
