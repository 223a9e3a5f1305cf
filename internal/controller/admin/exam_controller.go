package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joseph-ezekiel/verboheit-mlc/internal/auth"
	"github.com/joseph-ezekiel/verboheit-mlc/internal/controller"
	"github.com/joseph-ezekiel/verboheit-mlc/internal/dto"
	"github.com/joseph-ezekiel/verboheit-mlc/internal/service"
	"github.com/rs/zerolog/log"
)

// ExamController is the staff-side exam surface: CRUD plus manual scoring.
type ExamController struct {
	examSvc  service.ExamService
	scoreSvc service.ScoreService
}

func NewExamController(examSvc service.ExamService, scoreSvc service.ScoreService) *ExamController {
	return &ExamController{examSvc: examSvc, scoreSvc: scoreSvc}
}

// ListExams godoc
// @Summary (Staff) List all exams
// @Tags Staff - Exams
// @Produce json
// @Success 200 {array} dto.ExamListDTO
// @Failure 403 {object} dto.ErrorResponse
// @Router /exams [get]
// @Security BearerAuth
func (ctrl *ExamController) ListExams(c *gin.Context) {
	exams, err := ctrl.examSvc.ListExams()
	if err != nil {
		controller.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, exams)
}

// CreateExam godoc
// @Summary (Staff) Create a new exam
// @Tags Staff - Exams
// @Accept json
// @Produce json
// @Param exam body dto.ExamCreateDTO true "Exam data, optionally with question IDs"
// @Success 201 {object} dto.ExamDetailDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /exams [post]
// @Security BearerAuth
func (ctrl *ExamController) CreateExam(c *gin.Context) {
	var req dto.ExamCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind ExamCreateDTO")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: err.Error()})
		return
	}

	principal := auth.GetPrincipal(c)
	exam, err := ctrl.examSvc.CreateExam(req, principal.Staff.ID)
	if err != nil {
		controller.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, exam)
}

// GetExam godoc
// @Summary (Staff) Get an exam with its questions
// @Tags Staff - Exams
// @Produce json
// @Param id path int true "Exam ID"
// @Success 200 {object} dto.ExamDetailDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /exams/{id} [get]
// @Security BearerAuth
func (ctrl *ExamController) GetExam(c *gin.Context) {
	id, ok := controller.ParseID(c, "id")
	if !ok {
		return
	}
	exam, err := ctrl.examSvc.GetExam(id)
	if err != nil {
		controller.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, exam)
}

// UpdateExam godoc
// @Summary (Staff) Update an exam
// @Tags Staff - Exams
// @Accept json
// @Produce json
// @Param id path int true "Exam ID"
// @Param exam body dto.ExamUpdateDTO true "Updated exam data"
// @Success 200 {object} dto.ExamDetailDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /exams/{id} [put]
// @Security BearerAuth
func (ctrl *ExamController) UpdateExam(c *gin.Context) {
	id, ok := controller.ParseID(c, "id")
	if !ok {
		return
	}
	var req dto.ExamUpdateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: err.Error()})
		return
	}

	principal := auth.GetPrincipal(c)
	exam, err := ctrl.examSvc.UpdateExam(id, req, principal.Staff.ID)
	if err != nil {
		controller.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, exam)
}

// DeleteExam godoc
// @Summary (Staff) Delete an exam
// @Tags Staff - Exams
// @Produce json
// @Param id path int true "Exam ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /exams/{id} [delete]
// @Security BearerAuth
func (ctrl *ExamController) DeleteExam(c *gin.Context) {
	id, ok := controller.ParseID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.examSvc.DeleteExam(id); err != nil {
		controller.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Exam deleted successfully."})
}

// ListExamQuestions godoc
// @Summary (Staff) List an exam's questions with answers
// @Tags Staff - Exams
// @Produce json
// @Param id path int true "Exam ID"
// @Success 200 {array} dto.QuestionDetailDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /exams/{id}/questions [get]
// @Security BearerAuth
func (ctrl *ExamController) ListExamQuestions(c *gin.Context) {
	id, ok := controller.ParseID(c, "id")
	if !ok {
		return
	}
	questions, err := ctrl.examSvc.ListExamQuestions(id)
	if err != nil {
		controller.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, questions)
}

// SubmitExamScore godoc
// @Summary (Staff) Record a manual score for a candidate on an exam
// @Description Overwrites any auto-computed score for the pair and marks it manually scored.
// @Tags Staff - Exams
// @Accept json
// @Produce json
// @Param id path int true "Exam ID"
// @Param score body dto.ManualScoreDTO true "Candidate and score"
// @Success 200 {object} dto.ScoreDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /exams/{id}/submit-exam-score [put]
// @Security BearerAuth
func (ctrl *ExamController) SubmitExamScore(c *gin.Context) {
	id, ok := controller.ParseID(c, "id")
	if !ok {
		return
	}
	var req dto.ManualScoreDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind ManualScoreDTO")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: err.Error()})
		return
	}

	principal := auth.GetPrincipal(c)
	score, err := ctrl.scoreSvc.SubmitManual(id, req, principal.Staff.ID)
	if err != nil {
		controller.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, score)
}
