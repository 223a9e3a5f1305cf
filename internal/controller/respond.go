package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/joseph-ezekiel/verboheit-mlc/internal/dto"
	"github.com/joseph-ezekiel/verboheit-mlc/internal/service"
	"github.com/rs/zerolog/log"
)

// ParseID reads a numeric path parameter, writing a 400 itself on bad input.
func ParseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(id), true
}

// RespondServiceError translates service sentinels into their HTTP shape.
// Anything unrecognized is a 500; the cause is logged, never leaked.
func RespondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrExamNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Detail: "Exam not found."})
	case errors.Is(err, service.ErrQuestionNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Detail: "Question not found."})
	case errors.Is(err, service.ErrCandidateNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Detail: "Candidate not found."})
	case errors.Is(err, service.ErrStaffNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Detail: "Staff not found."})
	case errors.Is(err, service.ErrScoreNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Detail: "Score not found."})
	case errors.Is(err, service.ErrNotPublished):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Detail: "Leaderboard not published yet."})
	case errors.Is(err, service.ErrWrongStage), errors.Is(err, service.ErrExamClosed), errors.Is(err, service.ErrLeaderboardClosed):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Detail: "Not allowed."})
	case errors.Is(err, service.ErrRegistrationClosed):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Detail: "Registration is currently closed."})
	case errors.Is(err, service.ErrAlreadySubmitted):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "You have already submitted answers for this exam."})
	case errors.Is(err, service.ErrEmptyAnswers):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "No answers provided."})
	case errors.Is(err, service.ErrUsernameTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "A user with that username already exists."})
	case errors.Is(err, service.ErrInvalidRole):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "Invalid role."})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Detail: "No active account found with the given credentials."})
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled service error")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Detail: "Internal server error."})
	}
}
