package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/pocketfin/pocketfin_backend/internal/core/ports/services"
	"github.com/pocketfin/pocketfin_backend/internal/dto"
)

// gamificationHandler handles HTTP requests for streaks, badges and
// challenges.
type gamificationHandler struct {
	gamificationService portssvc.GamificationSvcFacade
}

func newGamificationHandler(gs portssvc.GamificationSvcFacade) *gamificationHandler {
	return &gamificationHandler{gamificationService: gs}
}

// registerGamificationRoutes registers routes related to gamification.
func registerGamificationRoutes(rg *gin.RouterGroup, gamificationService portssvc.GamificationSvcFacade) {
	h := newGamificationHandler(gamificationService)

	gamification := rg.Group("/gamification")
	{
		gamification.POST("/login", h.recordLogin)
		gamification.GET("/streak", h.getStreak)
		gamification.GET("/badges", h.listBadges)
		gamification.POST("/challenges", h.activateChallenge)
		gamification.GET("/challenges", h.listChallenges)
		gamification.POST("/challenges/refresh", h.refreshChallenges)
	}
}

// recordLogin godoc
// @Summary Record a login for streak tracking
// @Description Applies the daily streak rules for a login happening now.
// @Description Repeat logins on the same calendar day are no-ops.
// @Tags gamification
// @Produce json
// @Success 200 {object} dto.RecordLoginResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /gamification/login [post]
func (h *gamificationHandler) recordLogin(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	result, err := h.gamificationService.RecordLogin(c.Request.Context(), userID, time.Now())
	if err != nil {
		respondWithError(c, err, "Failed to record login")
		return
	}

	c.JSON(http.StatusOK, result)
}

// getStreak godoc
// @Summary Get the current login streak
// @Tags gamification
// @Produce json
// @Success 200 {object} dto.StreakResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /gamification/streak [get]
func (h *gamificationHandler) getStreak(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	streak, err := h.gamificationService.GetStreak(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err, "Failed to fetch streak")
		return
	}

	c.JSON(http.StatusOK, streak)
}

// listBadges godoc
// @Summary List the badge catalog
// @Description Returns every badge in the catalog annotated with whether and
// @Description when the user earned it.
// @Tags gamification
// @Produce json
// @Success 200 {object} dto.ListBadgesResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /gamification/badges [get]
func (h *gamificationHandler) listBadges(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	badges, err := h.gamificationService.ListBadges(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err, "Failed to list badges")
		return
	}

	c.JSON(http.StatusOK, badges)
}

// activateChallenge godoc
// @Summary Activate a challenge
// @Description Instantiates a challenge from the static catalog. Only one
// @Description active instance of a template is allowed at a time.
// @Tags gamification
// @Accept json
// @Produce json
// @Param challenge body dto.ActivateChallengeRequest true "Challenge template"
// @Success 201 {object} dto.ChallengeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Unknown challenge template"
// @Failure 409 {object} ErrorResponse "Template already active"
// @Security BearerAuth
// @Router /gamification/challenges [post]
func (h *gamificationHandler) activateChallenge(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.ActivateChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	challenge, err := h.gamificationService.ActivateChallenge(c.Request.Context(), userID, req, time.Now())
	if err != nil {
		respondWithError(c, err, "Failed to activate challenge")
		return
	}

	c.JSON(http.StatusCreated, dto.ToChallengeResponse(challenge))
}

// listChallenges godoc
// @Summary List the user's challenges
// @Tags gamification
// @Produce json
// @Success 200 {object} dto.ListChallengesResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /gamification/challenges [get]
func (h *gamificationHandler) listChallenges(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	challenges, err := h.gamificationService.ListChallenges(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err, "Failed to list challenges")
		return
	}

	c.JSON(http.StatusOK, challenges)
}

// refreshChallenges godoc
// @Summary Recompute active challenge progress
// @Description Recomputes every active challenge from qualifying ledger
// @Description entries and settles any whose window has closed.
// @Tags gamification
// @Produce json
// @Success 200 {object} dto.ListChallengesResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /gamification/challenges/refresh [post]
func (h *gamificationHandler) refreshChallenges(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	if err := h.gamificationService.RefreshChallenges(c.Request.Context(), userID, time.Now()); err != nil {
		respondWithError(c, err, "Failed to refresh challenges")
		return
	}

	challenges, err := h.gamificationService.ListChallenges(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err, "Failed to list challenges")
		return
	}

	c.JSON(http.StatusOK, challenges)
}
