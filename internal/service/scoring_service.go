package service

import (
	"fmt"
	"math"
	"time"

	"github.com/joseph-ezekiel/verboheit-mlc/internal/model"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ScoringService converts a candidate's persisted answers into a percentage
// score and writes it back to the CandidateScore row.
type ScoringService interface {
	// Score computes and persists the score using the given handle, which may
	// be a transaction so that submission and scoring commit atomically.
	Score(tx *gorm.DB, score *model.CandidateScore) (float64, error)
}

type scoringService struct {
	// snapshotQuestions picks the denominator: the exam's question set as it
	// was at submission time (the rows actually recorded) instead of the
	// exam's current question set, which staff may have edited since.
	snapshotQuestions bool
	now               func() time.Time
}

func NewScoringService(snapshotQuestions bool) ScoringService {
	return &scoringService{snapshotQuestions: snapshotQuestions, now: time.Now}
}

func (s *scoringService) Score(tx *gorm.DB, score *model.CandidateScore) (float64, error) {
	total, err := s.totalQuestions(tx, score)
	if err != nil {
		return 0, fmt.Errorf("counting exam questions: %w", err)
	}

	var correct int64
	err = tx.Model(&model.CandidateAnswer{}).
		Joins("JOIN questions ON questions.id = candidate_answers.question_id AND questions.deleted_at IS NULL").
		Where("candidate_answers.candidate_score_id = ?", score.ID).
		Where("candidate_answers.selected_option <> ''").
		Where("candidate_answers.selected_option = questions.correct_answer").
		Count(&correct).Error
	if err != nil {
		return 0, fmt.Errorf("counting correct answers: %w", err)
	}

	// An exam with no questions scores 0 rather than erroring out.
	var value float64
	if total > 0 {
		value = round2(float64(correct) / float64(total) * 100)
	}

	score.Score = value
	score.AutoScore = true
	score.SubmittedByID = nil
	score.DateRecorded = s.now()
	if err := tx.Save(score).Error; err != nil {
		return 0, fmt.Errorf("persisting score: %w", err)
	}

	log.Info().
		Uint("candidateID", score.CandidateID).
		Uint("examID", score.ExamID).
		Int64("correct", correct).
		Int64("total", total).
		Float64("score", value).
		Msg("Auto-scored exam submission")
	return value, nil
}

func (s *scoringService) totalQuestions(tx *gorm.DB, score *model.CandidateScore) (int64, error) {
	if s.snapshotQuestions {
		var total int64
		err := tx.Model(&model.CandidateAnswer{}).
			Where("candidate_score_id = ?", score.ID).
			Count(&total).Error
		return total, err
	}

	var total int64
	err := tx.Table("exam_questions").
		Joins("JOIN questions ON questions.id = exam_questions.question_id AND questions.deleted_at IS NULL").
		Where("exam_questions.exam_id = ?", score.ExamID).
		Count(&total).Error
	return total, err
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
