package service

import (
	"errors"
	"fmt"

	"github.com/joseph-ezekiel/verboheit-mlc/internal/dto"
	"github.com/joseph-ezekiel/verboheit-mlc/internal/model"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// SubmissionService handles a candidate's bulk answer submission for an exam.
type SubmissionService interface {
	SubmitAnswers(candidateID, examID uint, req dto.AnswerBulkDTO) error
}

type submissionService struct {
	scoring ScoringService
	db      *gorm.DB
}

func NewSubmissionService(scoring ScoringService, db *gorm.DB) SubmissionService {
	return &submissionService{scoring: scoring, db: db}
}

// SubmitAnswers persists the candidate's answer set and auto-scores it, all in
// one transaction. A submission is accepted exactly once per (candidate, exam):
// the existence check gives the clean error for the common case, and the
// unique index on (candidate_score_id, question_id) settles any race between
// concurrent submissions: the loser's insert fails and rolls back.
func (s *submissionService) SubmitAnswers(candidateID, examID uint, req dto.AnswerBulkDTO) error {
	if len(req.Answers) == 0 {
		return ErrEmptyAnswers
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var exam model.Exam
		if err := tx.First(&exam, examID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrExamNotFound
			}
			return fmt.Errorf("loading exam %d: %w", examID, err)
		}

		// Get or create the score row. An existing row keeps its score; the
		// scoring engine overwrites it only after the answers are accepted.
		var score model.CandidateScore
		err := tx.Where(model.CandidateScore{CandidateID: candidateID, ExamID: examID}).
			FirstOrCreate(&score).Error
		if err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// A concurrent request created the row between our lookup and
				// insert. Re-read it; the answer existence check below decides.
				if err := tx.Where("candidate_id = ? AND exam_id = ?", candidateID, examID).
					First(&score).Error; err != nil {
					return fmt.Errorf("reloading candidate score: %w", err)
				}
			} else {
				return fmt.Errorf("resolving candidate score: %w", err)
			}
		}

		var existing int64
		if err := tx.Model(&model.CandidateAnswer{}).
			Where("candidate_score_id = ?", score.ID).
			Count(&existing).Error; err != nil {
			return fmt.Errorf("checking prior answers: %w", err)
		}
		if existing > 0 {
			return ErrAlreadySubmitted
		}

		questionIDs := make([]uint, 0, len(req.Answers))
		for _, a := range req.Answers {
			questionIDs = append(questionIDs, a.Question)
		}
		var known int64
		if err := tx.Model(&model.Question{}).
			Where("id IN ?", questionIDs).
			Count(&known).Error; err != nil {
			return fmt.Errorf("validating question references: %w", err)
		}
		if known < int64(len(uniq(questionIDs))) {
			return ErrQuestionNotFound
		}

		answers := make([]model.CandidateAnswer, 0, len(req.Answers))
		for _, a := range req.Answers {
			answers = append(answers, model.CandidateAnswer{
				CandidateScoreID: score.ID,
				QuestionID:       a.Question,
				SelectedOption:   a.SelectedOption,
			})
		}
		if err := tx.Create(&answers).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// Lost the race against a concurrent submission, or the batch
				// itself referenced a question twice. Either way the unique
				// index is authoritative.
				return ErrAlreadySubmitted
			}
			return fmt.Errorf("writing answers: %w", err)
		}

		if _, err := s.scoring.Score(tx, &score); err != nil {
			return fmt.Errorf("auto-scoring submission: %w", err)
		}
		return nil
	})
	if err != nil {
		log.Warn().Err(err).
			Uint("candidateID", candidateID).
			Uint("examID", examID).
			Msg("Answer submission rejected")
		return err
	}

	log.Info().
		Uint("candidateID", candidateID).
		Uint("examID", examID).
		Int("answerCount", len(req.Answers)).
		Msg("Answer submission accepted")
	return nil
}

func uniq(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
