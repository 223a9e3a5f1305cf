package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/jinzhu/copier"
	"github.com/joseph-ezekiel/verboheit-mlc/internal/dto"
	"github.com/joseph-ezekiel/verboheit-mlc/internal/model"
	"github.com/joseph-ezekiel/verboheit-mlc/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ExamService covers staff exam management and the candidate take-exam gate.
type ExamService interface {
	CreateExam(req dto.ExamCreateDTO, staffID uint) (*dto.ExamDetailDTO, error)
	GetExam(examID uint) (*dto.ExamDetailDTO, error)
	ListExams() ([]dto.ExamListDTO, error)
	UpdateExam(examID uint, req dto.ExamUpdateDTO, staffID uint) (*dto.ExamDetailDTO, error)
	DeleteExam(examID uint) error
	ListExamQuestions(examID uint) ([]dto.QuestionDetailDTO, error)
	// TakeExam returns the exam with its questions, stripped of correct
	// answers, iff the exam is open to this candidate right now.
	TakeExam(candidate *model.Candidate, examID uint) (*dto.CandidateExamDTO, error)
}

type examService struct {
	examRepo     repository.ExamRepository
	questionRepo repository.QuestionRepository
	now          func() time.Time
}

func NewExamService(examRepo repository.ExamRepository, questionRepo repository.QuestionRepository) ExamService {
	return &examService{examRepo: examRepo, questionRepo: questionRepo, now: time.Now}
}

func (s *examService) CreateExam(req dto.ExamCreateDTO, staffID uint) (*dto.ExamDetailDTO, error) {
	questions, err := s.resolveQuestions(req.Questions)
	if err != nil {
		return nil, err
	}

	exam := model.Exam{
		Stage:             req.Stage,
		Title:             req.Title,
		Description:       req.Description,
		IsActive:          req.IsActive,
		ExamDate:          req.ExamDate,
		OpenDurationHours: req.OpenDurationHours,
		CountdownMinutes:  req.CountdownMinutes,
		CreatedByID:       &staffID,
		Questions:         questions,
	}
	if err := s.examRepo.Create(&exam); err != nil {
		log.Error().Err(err).Msg("Failed to create exam")
		return nil, fmt.Errorf("creating exam: %w", err)
	}
	return s.GetExam(exam.ID)
}

func (s *examService) GetExam(examID uint) (*dto.ExamDetailDTO, error) {
	exam, err := s.examRepo.FindByIDWithQuestions(examID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExamNotFound
		}
		return nil, fmt.Errorf("loading exam %d: %w", examID, err)
	}

	var resp dto.ExamDetailDTO
	if err := copier.Copy(&resp, exam); err != nil {
		return nil, fmt.Errorf("preparing exam response: %w", err)
	}
	resp.IsCurrentlyOpen = exam.OpenAt(s.now())
	return &resp, nil
}

func (s *examService) ListExams() ([]dto.ExamListDTO, error) {
	exams, err := s.examRepo.FindAllWithQuestionCount()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list exams")
		return nil, fmt.Errorf("listing exams: %w", err)
	}

	now := s.now()
	dtos := make([]dto.ExamListDTO, 0, len(exams))
	for _, e := range exams {
		dtos = append(dtos, dto.ExamListDTO{
			ID:                e.ID,
			Title:             e.Title,
			Stage:             e.Stage,
			Description:       e.Description,
			ExamDate:          e.ExamDate,
			CountdownMinutes:  e.CountdownMinutes,
			OpenDurationHours: e.OpenDurationHours,
			IsActive:          e.IsActive,
			IsCurrentlyOpen:   e.OpenAt(now),
			QuestionCount:     e.QuestionCount,
			DateCreated:       e.CreatedAt,
		})
	}
	return dtos, nil
}

func (s *examService) UpdateExam(examID uint, req dto.ExamUpdateDTO, staffID uint) (*dto.ExamDetailDTO, error) {
	exam, err := s.examRepo.FindByID(examID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExamNotFound
		}
		return nil, fmt.Errorf("loading exam %d: %w", examID, err)
	}

	exam.Stage = req.Stage
	exam.Title = req.Title
	exam.Description = req.Description
	exam.IsActive = req.IsActive
	exam.ExamDate = req.ExamDate
	exam.OpenDurationHours = req.OpenDurationHours
	exam.CountdownMinutes = req.CountdownMinutes
	exam.UpdatedByID = &staffID
	if err := s.examRepo.Update(exam); err != nil {
		return nil, fmt.Errorf("updating exam %d: %w", examID, err)
	}

	if req.Questions != nil {
		questions, err := s.resolveQuestions(req.Questions)
		if err != nil {
			return nil, err
		}
		if err := s.examRepo.ReplaceQuestions(exam, questions); err != nil {
			return nil, fmt.Errorf("replacing exam questions: %w", err)
		}
	}
	return s.GetExam(examID)
}

func (s *examService) DeleteExam(examID uint) error {
	if _, err := s.examRepo.FindByID(examID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrExamNotFound
		}
		return fmt.Errorf("loading exam %d: %w", examID, err)
	}
	if err := s.examRepo.Delete(examID); err != nil {
		return fmt.Errorf("deleting exam %d: %w", examID, err)
	}
	log.Info().Uint("examID", examID).Msg("Exam deleted")
	return nil
}

func (s *examService) ListExamQuestions(examID uint) ([]dto.QuestionDetailDTO, error) {
	exam, err := s.examRepo.FindByIDWithQuestions(examID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExamNotFound
		}
		return nil, fmt.Errorf("loading exam %d: %w", examID, err)
	}

	dtos := make([]dto.QuestionDetailDTO, 0, len(exam.Questions))
	for _, q := range exam.Questions {
		var qd dto.QuestionDetailDTO
		if err := copier.Copy(&qd, &q); err != nil {
			return nil, fmt.Errorf("preparing question response: %w", err)
		}
		dtos = append(dtos, qd)
	}
	return dtos, nil
}

func (s *examService) TakeExam(candidate *model.Candidate, examID uint) (*dto.CandidateExamDTO, error) {
	exam, err := s.examRepo.FindByIDWithQuestions(examID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExamNotFound
		}
		return nil, fmt.Errorf("loading exam %d: %w", examID, err)
	}

	if candidate.Role != exam.Stage {
		log.Info().
			Uint("candidateID", candidate.ID).
			Str("candidateRole", candidate.Role).
			Str("examStage", exam.Stage).
			Msg("Take-exam denied: stage mismatch")
		return nil, ErrWrongStage
	}
	if !exam.OpenAt(s.now()) {
		log.Info().
			Uint("candidateID", candidate.ID).
			Uint("examID", examID).
			Msg("Take-exam denied: exam not open")
		return nil, ErrExamClosed
	}

	resp := dto.CandidateExamDTO{
		ID:                exam.ID,
		Title:             exam.Title,
		Stage:             exam.Stage,
		Description:       exam.Description,
		ExamDate:          exam.ExamDate,
		OpenDurationHours: exam.OpenDurationHours,
		CountdownMinutes:  exam.CountdownMinutes,
	}
	resp.Questions = make([]dto.CandidateQuestionDTO, 0, len(exam.Questions))
	for _, q := range exam.Questions {
		resp.Questions = append(resp.Questions, dto.CandidateQuestionDTO{
			ID:      q.ID,
			Text:    q.Text,
			OptionA: q.OptionA,
			OptionB: q.OptionB,
			OptionC: q.OptionC,
			OptionD: q.OptionD,
		})
	}
	return &resp, nil
}

func (s *examService) resolveQuestions(ids []uint) ([]model.Question, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	questions, err := s.questionRepo.FindByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("resolving questions: %w", err)
	}
	if len(questions) != len(uniq(ids)) {
		return nil, ErrQuestionNotFound
	}
	return questions, nil
}
