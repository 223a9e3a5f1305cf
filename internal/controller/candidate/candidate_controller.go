package candidate

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joseph-ezekiel/verboheit-mlc/internal/auth"
	"github.com/joseph-ezekiel/verboheit-mlc/internal/controller"
	"github.com/joseph-ezekiel/verboheit-mlc/internal/dto"
	"github.com/joseph-ezekiel/verboheit-mlc/internal/service"
	"github.com/rs/zerolog/log"
)

// CandidateController is the candidate-facing surface: sitting exams,
// submitting answers, the dashboard and the published leaderboard.
type CandidateController struct {
	examSvc        service.ExamService
	submissionSvc  service.SubmissionService
	dashboardSvc   service.DashboardService
	leaderboardSvc service.LeaderboardService
	accountSvc     service.AccountService
}

func NewCandidateController(examSvc service.ExamService, submissionSvc service.SubmissionService, dashboardSvc service.DashboardService, leaderboardSvc service.LeaderboardService, accountSvc service.AccountService) *CandidateController {
	return &CandidateController{
		examSvc:        examSvc,
		submissionSvc:  submissionSvc,
		dashboardSvc:   dashboardSvc,
		leaderboardSvc: leaderboardSvc,
		accountSvc:     accountSvc,
	}
}

// Me godoc
// @Summary (Candidate) Get the caller's candidate profile
// @Tags Candidate
// @Produce json
// @Success 200 {object} dto.CandidateDTO
// @Router /candidates/me [get]
// @Security BearerAuth
func (ctrl *CandidateController) Me(c *gin.Context) {
	principal := auth.GetPrincipal(c)
	candidate, err := ctrl.accountSvc.GetCandidate(principal.Candidate.ID)
	if err != nil {
		controller.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, candidate)
}

// TakeExam godoc
// @Summary (Candidate) Open an exam for sitting
// @Description Returns the exam questions without correct answers. Only exams
// @Description matching the candidate's stage and inside their open window qualify.
// @Tags Candidate
// @Produce json
// @Param id path int true "Exam ID"
// @Success 200 {object} dto.CandidateExamDTO
// @Failure 403 {object} dto.ErrorResponse "Not allowed."
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Router /exams/{id}/take-exam [get]
// @Security BearerAuth
func (ctrl *CandidateController) TakeExam(c *gin.Context) {
	id, ok := controller.ParseID(c, "id")
	if !ok {
		return
	}
	principal := auth.GetPrincipal(c)
	exam, err := ctrl.examSvc.TakeExam(principal.Candidate, id)
	if err != nil {
		controller.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, exam)
}

// SubmitExamAnswers godoc
// @Summary (Candidate) Submit the full answer sheet for an exam
// @Description One submission per candidate per exam. The sheet is scored
// @Description immediately; repeats are rejected and never change the recorded score.
// @Tags Candidate
// @Accept json
// @Produce json
// @Param id path int true "Exam ID"
// @Param answers body dto.AnswerBulkDTO true "Selected options per question"
// @Success 201 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Already submitted or invalid sheet"
// @Failure 404 {object} dto.ErrorResponse "Exam or question not found"
// @Router /exams/{id}/submit-exam-answers [post]
// @Security BearerAuth
func (ctrl *CandidateController) SubmitExamAnswers(c *gin.Context) {
	id, ok := controller.ParseID(c, "id")
	if !ok {
		return
	}
	var req dto.AnswerBulkDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind AnswerBulkDTO")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: err.Error()})
		return
	}

	principal := auth.GetPrincipal(c)
	if err := ctrl.submissionSvc.SubmitAnswers(principal.Candidate.ID, id, req); err != nil {
		controller.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.MessageResponse{Message: "Answers submitted!"})
}

// Dashboard godoc
// @Summary (Candidate) Profile, stats, open exams and recent scores
// @Tags Candidate
// @Produce json
// @Success 200 {object} dto.CandidateDashboardDTO
// @Router /dashboard/candidate [get]
// @Security BearerAuth
func (ctrl *CandidateController) Dashboard(c *gin.Context) {
	principal := auth.GetPrincipal(c)
	dashboard, err := ctrl.dashboardSvc.CandidateDashboard(principal.Candidate)
	if err != nil {
		controller.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

// LoadLeaderboard godoc
// @Summary Load the most recently published leaderboard
// @Tags Candidate
// @Produce json
// @Success 200 {object} dto.LeaderboardDTO
// @Failure 403 {object} dto.ErrorResponse "Leaderboard closed"
// @Failure 404 {object} dto.ErrorResponse "Leaderboard not published yet."
// @Router /load-leaderboard [get]
// @Security BearerAuth
func (ctrl *CandidateController) LoadLeaderboard(c *gin.Context) {
	leaderboard, err := ctrl.leaderboardSvc.Load()
	if err != nil {
		controller.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, leaderboard)
}
