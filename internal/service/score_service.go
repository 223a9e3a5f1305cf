package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/joseph-ezekiel/verboheit-mlc/internal/dto"
	"github.com/joseph-ezekiel/verboheit-mlc/internal/model"
	"github.com/joseph-ezekiel/verboheit-mlc/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ScoreService handles staff-entered scores and score reads.
type ScoreService interface {
	// SubmitManual records a staff-entered score for a candidate on an exam.
	// If an auto-scored row already exists it is overwritten and flagged as
	// manually scored.
	SubmitManual(examID uint, req dto.ManualScoreDTO, staffID uint) (*dto.ScoreDTO, error)
	CandidateScores(candidateID uint) ([]dto.ScoreDTO, error)
	// ExamHistory lists every exam of the candidate's current stage with the
	// candidate's result where one exists.
	ExamHistory(candidateID uint) ([]dto.ExamHistoryDTO, error)
}

type scoreService struct {
	scoreRepo     repository.ScoreRepository
	examRepo      repository.ExamRepository
	candidateRepo repository.CandidateRepository
	db            *gorm.DB
}

func NewScoreService(scoreRepo repository.ScoreRepository, examRepo repository.ExamRepository, candidateRepo repository.CandidateRepository, db *gorm.DB) ScoreService {
	return &scoreService{scoreRepo: scoreRepo, examRepo: examRepo, candidateRepo: candidateRepo, db: db}
}

func (s *scoreService) SubmitManual(examID uint, req dto.ManualScoreDTO, staffID uint) (*dto.ScoreDTO, error) {
	if _, err := s.examRepo.FindByID(examID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExamNotFound
		}
		return nil, fmt.Errorf("loading exam %d: %w", examID, err)
	}
	if _, err := s.candidateRepo.FindByID(req.CandidateID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCandidateNotFound
		}
		return nil, fmt.Errorf("loading candidate %d: %w", req.CandidateID, err)
	}

	var score model.CandidateScore
	err := s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("candidate_id = ? AND exam_id = ?", req.CandidateID, examID).First(&score).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			score = model.CandidateScore{CandidateID: req.CandidateID, ExamID: examID}
			if err := tx.Create(&score).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					// Lost a race with auto-scoring; take over that row.
					return tx.Where("candidate_id = ? AND exam_id = ?", req.CandidateID, examID).First(&score).Error
				}
				return err
			}
		case err != nil:
			return err
		}

		score.Score = round2(req.Score)
		score.AutoScore = false
		score.SubmittedByID = &staffID
		score.DateRecorded = time.Now()
		return tx.Save(&score).Error
	})
	if err != nil {
		log.Error().Err(err).
			Uint("candidateID", req.CandidateID).
			Uint("examID", examID).
			Msg("Failed to record manual score")
		return nil, fmt.Errorf("recording score: %w", err)
	}

	log.Info().
		Uint("candidateID", req.CandidateID).
		Uint("examID", examID).
		Float64("score", score.Score).
		Uint("staffID", staffID).
		Msg("Manual score recorded")
	return s.toDTO(score.ID)
}

func (s *scoreService) CandidateScores(candidateID uint) ([]dto.ScoreDTO, error) {
	if _, err := s.candidateRepo.FindByID(candidateID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCandidateNotFound
		}
		return nil, fmt.Errorf("loading candidate %d: %w", candidateID, err)
	}

	scores, err := s.scoreRepo.FindByCandidate(candidateID)
	if err != nil {
		return nil, fmt.Errorf("listing scores for candidate %d: %w", candidateID, err)
	}
	dtos := make([]dto.ScoreDTO, 0, len(scores))
	for _, sc := range scores {
		dtos = append(dtos, scoreToDTO(&sc))
	}
	return dtos, nil
}

func (s *scoreService) ExamHistory(candidateID uint) ([]dto.ExamHistoryDTO, error) {
	candidate, err := s.candidateRepo.FindByID(candidateID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCandidateNotFound
		}
		return nil, fmt.Errorf("loading candidate %d: %w", candidateID, err)
	}

	exams, err := s.examRepo.FindByStage(candidate.Role, false)
	if err != nil {
		return nil, fmt.Errorf("listing %s exams: %w", candidate.Role, err)
	}
	scores, err := s.scoreRepo.FindByCandidate(candidateID)
	if err != nil {
		return nil, fmt.Errorf("listing scores for candidate %d: %w", candidateID, err)
	}
	byExam := make(map[uint]*model.CandidateScore, len(scores))
	for i := range scores {
		byExam[scores[i].ExamID] = &scores[i]
	}

	history := make([]dto.ExamHistoryDTO, 0, len(exams))
	for _, e := range exams {
		entry := dto.ExamHistoryDTO{
			ExamID:    e.ID,
			ExamTitle: e.Title,
			Stage:     e.Stage,
			ExamDate:  e.ExamDate,
		}
		if sc, ok := byExam[e.ID]; ok {
			entry.Taken = true
			entry.Score = &sc.Score
			entry.AutoScore = sc.AutoScore
			entry.DateRecorded = &sc.DateRecorded
		}
		history = append(history, entry)
	}
	return history, nil
}

func (s *scoreService) toDTO(scoreID uint) (*dto.ScoreDTO, error) {
	var score model.CandidateScore
	if err := s.db.Preload("Exam").First(&score, scoreID).Error; err != nil {
		return nil, fmt.Errorf("loading score %d: %w", scoreID, err)
	}
	d := scoreToDTO(&score)
	return &d, nil
}

func scoreToDTO(score *model.CandidateScore) dto.ScoreDTO {
	d := dto.ScoreDTO{
		ID:            score.ID,
		CandidateID:   score.CandidateID,
		ExamID:        score.ExamID,
		Score:         score.Score,
		AutoScore:     score.AutoScore,
		SubmittedByID: score.SubmittedByID,
		DateRecorded:  score.DateRecorded,
		DateUpdated:   score.DateUpdated,
	}
	if score.Exam.ID != 0 {
		d.ExamTitle = score.Exam.Title
	}
	return d
}
