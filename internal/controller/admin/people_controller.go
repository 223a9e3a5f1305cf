package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joseph-ezekiel/verboheit-mlc/internal/controller"
	"github.com/joseph-ezekiel/verboheit-mlc/internal/dto"
	"github.com/joseph-ezekiel/verboheit-mlc/internal/service"
)

// PeopleController handles staff views over candidate and staff accounts.
type PeopleController struct {
	accountSvc service.AccountService
	scoreSvc   service.ScoreService
}

func NewPeopleController(accountSvc service.AccountService, scoreSvc service.ScoreService) *PeopleController {
	return &PeopleController{accountSvc: accountSvc, scoreSvc: scoreSvc}
}

// ListCandidates godoc
// @Summary (Staff) List all candidates
// @Tags Staff - People
// @Produce json
// @Success 200 {array} dto.CandidateDTO
// @Router /candidates [get]
// @Security BearerAuth
func (ctrl *PeopleController) ListCandidates(c *gin.Context) {
	candidates, err := ctrl.accountSvc.ListCandidates()
	if err != nil {
		controller.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, candidates)
}

// GetCandidate godoc
// @Summary (Staff) Get a candidate
// @Tags Staff - People
// @Produce json
// @Param id path int true "Candidate ID"
// @Success 200 {object} dto.CandidateDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /candidates/{id} [get]
// @Security BearerAuth
func (ctrl *PeopleController) GetCandidate(c *gin.Context) {
	id, ok := controller.ParseID(c, "id")
	if !ok {
		return
	}
	candidate, err := ctrl.accountSvc.GetCandidate(id)
	if err != nil {
		controller.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, candidate)
}

// AssignCandidateRole godoc
// @Summary (Staff) Assign a competition role to a candidate
// @Tags Staff - People
// @Accept json
// @Produce json
// @Param id path int true "Candidate ID"
// @Param role body dto.RoleAssignDTO true "New role"
// @Success 200 {object} dto.CandidateDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid role"
// @Failure 404 {object} dto.ErrorResponse
// @Router /candidates/{id}/assign-role [post]
// @Security BearerAuth
func (ctrl *PeopleController) AssignCandidateRole(c *gin.Context) {
	id, ok := controller.ParseID(c, "id")
	if !ok {
		return
	}
	var req dto.RoleAssignDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: err.Error()})
		return
	}

	candidate, err := ctrl.accountSvc.AssignCandidateRole(id, req.Role)
	if err != nil {
		controller.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, candidate)
}

// CandidateScores godoc
// @Summary (Staff) List all recorded scores for a candidate
// @Tags Staff - People
// @Produce json
// @Param id path int true "Candidate ID"
// @Success 200 {array} dto.ScoreDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /candidates/{id}/scores [get]
// @Security BearerAuth
func (ctrl *PeopleController) CandidateScores(c *gin.Context) {
	id, ok := controller.ParseID(c, "id")
	if !ok {
		return
	}
	scores, err := ctrl.scoreSvc.CandidateScores(id)
	if err != nil {
		controller.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, scores)
}

// CandidateExamHistory godoc
// @Summary (Staff) List a candidate's stage exams with their results
// @Tags Staff - People
// @Produce json
// @Param id path int true "Candidate ID"
// @Success 200 {array} dto.ExamHistoryDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /candidates/{id}/exam-history [get]
// @Security BearerAuth
func (ctrl *PeopleController) CandidateExamHistory(c *gin.Context) {
	id, ok := controller.ParseID(c, "id")
	if !ok {
		return
	}
	history, err := ctrl.scoreSvc.ExamHistory(id)
	if err != nil {
		controller.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

// ListStaff godoc
// @Summary (Staff) List all staff accounts
// @Tags Staff - People
// @Produce json
// @Success 200 {array} dto.StaffDTO
// @Router /staff [get]
// @Security BearerAuth
func (ctrl *PeopleController) ListStaff(c *gin.Context) {
	staff, err := ctrl.accountSvc.ListStaff()
	if err != nil {
		controller.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, staff)
}

// GetStaff godoc
// @Summary (Staff) Get a staff account
// @Tags Staff - People
// @Produce json
// @Param id path int true "Staff ID"
// @Success 200 {object} dto.StaffDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /staff/{id} [get]
// @Security BearerAuth
func (ctrl *PeopleController) GetStaff(c *gin.Context) {
	id, ok := controller.ParseID(c, "id")
	if !ok {
		return
	}
	staff, err := ctrl.accountSvc.GetStaff(id)
	if err != nil {
		controller.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, staff)
}

// AssignStaffRole godoc
// @Summary (Owner) Assign a role to a staff account
// @Tags Staff - People
// @Accept json
// @Produce json
// @Param id path int true "Staff ID"
// @Param role body dto.RoleAssignDTO true "New role"
// @Success 200 {object} dto.StaffDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid role"
// @Failure 404 {object} dto.ErrorResponse
// @Router /staff/{id}/assign-role [post]
// @Security BearerAuth
func (ctrl *PeopleController) AssignStaffRole(c *gin.Context) {
	id, ok := controller.ParseID(c, "id")
	if !ok {
		return
	}
	var req dto.RoleAssignDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: err.Error()})
		return
	}

	staff, err := ctrl.accountSvc.AssignStaffRole(id, req.Role)
	if err != nil {
		controller.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, staff)
}
