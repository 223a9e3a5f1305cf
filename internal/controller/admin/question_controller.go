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

type QuestionController struct {
	questionSvc service.QuestionService
}

func NewQuestionController(questionSvc service.QuestionService) *QuestionController {
	return &QuestionController{questionSvc: questionSvc}
}

// ListQuestions godoc
// @Summary (Staff) List all questions
// @Tags Staff - Questions
// @Produce json
// @Success 200 {array} dto.QuestionDetailDTO
// @Router /questions [get]
// @Security BearerAuth
func (ctrl *QuestionController) ListQuestions(c *gin.Context) {
	questions, err := ctrl.questionSvc.ListQuestions()
	if err != nil {
		controller.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, questions)
}

// CreateQuestion godoc
// @Summary (Staff) Create a new question
// @Tags Staff - Questions
// @Accept json
// @Produce json
// @Param question body dto.QuestionCreateDTO true "Question data"
// @Success 201 {object} dto.QuestionDetailDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /questions [post]
// @Security BearerAuth
func (ctrl *QuestionController) CreateQuestion(c *gin.Context) {
	var req dto.QuestionCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind QuestionCreateDTO")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: err.Error()})
		return
	}

	principal := auth.GetPrincipal(c)
	question, err := ctrl.questionSvc.CreateQuestion(req, principal.Staff.ID)
	if err != nil {
		controller.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, question)
}

// GetQuestion godoc
// @Summary (Staff) Get a question
// @Tags Staff - Questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.QuestionDetailDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /questions/{id} [get]
// @Security BearerAuth
func (ctrl *QuestionController) GetQuestion(c *gin.Context) {
	id, ok := controller.ParseID(c, "id")
	if !ok {
		return
	}
	question, err := ctrl.questionSvc.GetQuestion(id)
	if err != nil {
		controller.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, question)
}

// UpdateQuestion godoc
// @Summary (Staff) Update a question
// @Tags Staff - Questions
// @Accept json
// @Produce json
// @Param id path int true "Question ID"
// @Param question body dto.QuestionCreateDTO true "Updated question data"
// @Success 200 {object} dto.QuestionDetailDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /questions/{id} [put]
// @Security BearerAuth
func (ctrl *QuestionController) UpdateQuestion(c *gin.Context) {
	id, ok := controller.ParseID(c, "id")
	if !ok {
		return
	}
	var req dto.QuestionCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: err.Error()})
		return
	}

	principal := auth.GetPrincipal(c)
	question, err := ctrl.questionSvc.UpdateQuestion(id, req, principal.Staff.ID)
	if err != nil {
		controller.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, question)
}

// DeleteQuestion godoc
// @Summary (Staff) Delete a question
// @Tags Staff - Questions
// @Param id path int true "Question ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse
// @Router /questions/{id} [delete]
// @Security BearerAuth
func (ctrl *QuestionController) DeleteQuestion(c *gin.Context) {
	id, ok := controller.ParseID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.questionSvc.DeleteQuestion(id); err != nil {
		controller.RespondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
