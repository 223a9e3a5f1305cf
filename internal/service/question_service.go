package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/joseph-ezekiel/verboheit-mlc/internal/dto"
	"github.com/joseph-ezekiel/verboheit-mlc/internal/model"
	"github.com/joseph-ezekiel/verboheit-mlc/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type QuestionService interface {
	CreateQuestion(req dto.QuestionCreateDTO, staffID uint) (*dto.QuestionDetailDTO, error)
	GetQuestion(questionID uint) (*dto.QuestionDetailDTO, error)
	ListQuestions() ([]dto.QuestionDetailDTO, error)
	UpdateQuestion(questionID uint, req dto.QuestionCreateDTO, staffID uint) (*dto.QuestionDetailDTO, error)
	DeleteQuestion(questionID uint) error
}

type questionService struct {
	questionRepo repository.QuestionRepository
}

func NewQuestionService(questionRepo repository.QuestionRepository) QuestionService {
	return &questionService{questionRepo: questionRepo}
}

func (s *questionService) CreateQuestion(req dto.QuestionCreateDTO, staffID uint) (*dto.QuestionDetailDTO, error) {
	question := model.Question{
		Text:          req.Text,
		OptionA:       req.OptionA,
		OptionB:       req.OptionB,
		OptionC:       req.OptionC,
		OptionD:       req.OptionD,
		CorrectAnswer: req.CorrectAnswer,
		Difficulty:    req.Difficulty,
		CreatedByID:   &staffID,
	}
	if err := s.questionRepo.Create(&question); err != nil {
		log.Error().Err(err).Msg("Failed to create question")
		return nil, fmt.Errorf("creating question: %w", err)
	}
	return s.GetQuestion(question.ID)
}

func (s *questionService) GetQuestion(questionID uint) (*dto.QuestionDetailDTO, error) {
	question, err := s.questionRepo.FindByID(questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("loading question %d: %w", questionID, err)
	}
	var resp dto.QuestionDetailDTO
	if err := copier.Copy(&resp, question); err != nil {
		return nil, fmt.Errorf("preparing question response: %w", err)
	}
	return &resp, nil
}

func (s *questionService) ListQuestions() ([]dto.QuestionDetailDTO, error) {
	questions, err := s.questionRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("listing questions: %w", err)
	}
	dtos := make([]dto.QuestionDetailDTO, 0, len(questions))
	for _, q := range questions {
		var qd dto.QuestionDetailDTO
		if err := copier.Copy(&qd, &q); err != nil {
			return nil, fmt.Errorf("preparing question response: %w", err)
		}
		dtos = append(dtos, qd)
	}
	return dtos, nil
}

func (s *questionService) UpdateQuestion(questionID uint, req dto.QuestionCreateDTO, staffID uint) (*dto.QuestionDetailDTO, error) {
	question, err := s.questionRepo.FindByID(questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("loading question %d: %w", questionID, err)
	}

	question.Text = req.Text
	question.OptionA = req.OptionA
	question.OptionB = req.OptionB
	question.OptionC = req.OptionC
	question.OptionD = req.OptionD
	question.CorrectAnswer = req.CorrectAnswer
	question.Difficulty = req.Difficulty
	question.UpdatedByID = &staffID
	if err := s.questionRepo.Update(question); err != nil {
		return nil, fmt.Errorf("updating question %d: %w", questionID, err)
	}
	return s.GetQuestion(questionID)
}

func (s *questionService) DeleteQuestion(questionID uint) error {
	if _, err := s.questionRepo.FindByID(questionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrQuestionNotFound
		}
		return fmt.Errorf("loading question %d: %w", questionID, err)
	}
	return s.questionRepo.Delete(questionID)
}
