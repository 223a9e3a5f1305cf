package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joseph-ezekiel/verboheit-mlc/internal/dto"
	"github.com/joseph-ezekiel/verboheit-mlc/internal/service"
	"github.com/rs/zerolog/log"
)

// AccountController serves the unauthenticated surface: login, token
// refresh and the two registration endpoints.
type AccountController struct {
	accountSvc service.AccountService
}

func NewAccountController(accountSvc service.AccountService) *AccountController {
	return &AccountController{accountSvc: accountSvc}
}

// Login godoc
// @Summary Log in with username and password
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginDTO true "Login credentials"
// @Success 200 {object} auth.TokenPair
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (ctrl *AccountController) Login(c *gin.Context) {
	var req dto.LoginDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind LoginDTO")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: err.Error()})
		return
	}

	pair, err := ctrl.accountSvc.Login(req)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, pair)
}

// Refresh godoc
// @Summary Trade a refresh token for a new token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param token body dto.RefreshDTO true "Refresh token"
// @Success 200 {object} auth.TokenPair
// @Failure 401 {object} dto.ErrorResponse "Invalid or expired token"
// @Router /auth/token/refresh [post]
func (ctrl *AccountController) Refresh(c *gin.Context) {
	var req dto.RefreshDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: err.Error()})
		return
	}

	pair, err := ctrl.accountSvc.Refresh(req.Refresh)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, pair)
}

// Logout godoc
// @Summary Log out
// @Description Tokens are stateless; logout is advisory and clients drop their pair.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Router /auth/logout [post]
func (ctrl *AccountController) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Logged out."})
}

// RegisterCandidate godoc
// @Summary Register a new candidate account
// @Tags registration
// @Accept json
// @Produce json
// @Param registration body dto.CandidateRegisterDTO true "Candidate registration data"
// @Success 201 {object} dto.CandidateDTO
// @Failure 400 {object} dto.ErrorResponse "Validation failure or username taken"
// @Failure 403 {object} dto.ErrorResponse "Registration is currently closed."
// @Router /register/candidate [post]
func (ctrl *AccountController) RegisterCandidate(c *gin.Context) {
	var req dto.CandidateRegisterDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind CandidateRegisterDTO")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: err.Error()})
		return
	}

	candidate, err := ctrl.accountSvc.RegisterCandidate(req)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, candidate)
}

// RegisterStaff godoc
// @Summary Register a new staff account
// @Tags registration
// @Accept json
// @Produce json
// @Param registration body dto.StaffRegisterDTO true "Staff registration data"
// @Success 201 {object} dto.StaffDTO
// @Failure 400 {object} dto.ErrorResponse "Validation failure or username taken"
// @Failure 403 {object} dto.ErrorResponse "Registration is currently closed."
// @Router /register/staff [post]
func (ctrl *AccountController) RegisterStaff(c *gin.Context) {
	var req dto.StaffRegisterDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind StaffRegisterDTO")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: err.Error()})
		return
	}

	staff, err := ctrl.accountSvc.RegisterStaff(req)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, staff)
}

// APIRoot godoc
// @Summary List the top-level API endpoints
// @Tags root
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (ctrl *AccountController) APIRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"login":              "/api/v1/auth/login/",
		"token_refresh":      "/api/v1/auth/token/refresh/",
		"register_candidate": "/api/v1/register/candidate/",
		"register_staff":     "/api/v1/register/staff/",
		"exams":              "/api/v1/exams/",
		"questions":          "/api/v1/questions/",
		"candidates":         "/api/v1/candidates/",
		"staff":              "/api/v1/staff/",
		"leaderboard":        "/api/v1/load-leaderboard/",
		"docs":               "/swagger/index.html",
	})
}
