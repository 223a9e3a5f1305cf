package service

import (
	"errors"
	"testing"

	"github.com/joseph-ezekiel/verboheit-mlc/internal/dto"
	"github.com/joseph-ezekiel/verboheit-mlc/internal/model"
)

func answersFor(exam *model.Exam, options ...string) dto.AnswerBulkDTO {
	var req dto.AnswerBulkDTO
	for i, opt := range options {
		req.Answers = append(req.Answers, dto.AnswerDTO{
			Question:       exam.Questions[i].ID,
			SelectedOption: opt,
		})
	}
	return req
}

func TestSubmitAnswersScoresSubmission(t *testing.T) {
	db := newTestDB(t)
	svc := NewSubmissionService(NewScoringService(false), db)
	candidate := seedCandidate(t, db, "amaka", model.CandidateRoleScreening)
	exam := seedExam(t, db, model.StageScreening, "A", "B", "C", "D")

	// Two right, two wrong.
	req := answersFor(exam, "A", "B", "D", "A")
	if err := svc.SubmitAnswers(candidate.ID, exam.ID, req); err != nil {
		t.Fatalf("SubmitAnswers: %v", err)
	}

	var score model.CandidateScore
	if err := db.Where("candidate_id = ? AND exam_id = ?", candidate.ID, exam.ID).First(&score).Error; err != nil {
		t.Fatalf("loading score row: %v", err)
	}
	if score.Score != 50 {
		t.Errorf("score = %v, want 50", score.Score)
	}
	if !score.AutoScore {
		t.Error("AutoScore = false, want true")
	}
	if score.SubmittedByID != nil {
		t.Errorf("SubmittedByID = %v, want nil", *score.SubmittedByID)
	}

	var answerCount int64
	db.Model(&model.CandidateAnswer{}).Where("candidate_score_id = ?", score.ID).Count(&answerCount)
	if answerCount != 4 {
		t.Errorf("persisted answers = %d, want 4", answerCount)
	}
}

func TestSubmitAnswersRejectsSecondSubmission(t *testing.T) {
	db := newTestDB(t)
	svc := NewSubmissionService(NewScoringService(false), db)
	candidate := seedCandidate(t, db, "bola", model.CandidateRoleScreening)
	exam := seedExam(t, db, model.StageScreening, "A", "B")

	if err := svc.SubmitAnswers(candidate.ID, exam.ID, answersFor(exam, "A", "B")); err != nil {
		t.Fatalf("first SubmitAnswers: %v", err)
	}

	err := svc.SubmitAnswers(candidate.ID, exam.ID, answersFor(exam, "C", "D"))
	if !errors.Is(err, ErrAlreadySubmitted) {
		t.Fatalf("second SubmitAnswers err = %v, want ErrAlreadySubmitted", err)
	}

	// The original perfect score must survive the rejected resubmission.
	var score model.CandidateScore
	db.Where("candidate_id = ? AND exam_id = ?", candidate.ID, exam.ID).First(&score)
	if score.Score != 100 {
		t.Errorf("score after rejected resubmission = %v, want 100", score.Score)
	}
	var answerCount int64
	db.Model(&model.CandidateAnswer{}).Where("candidate_score_id = ?", score.ID).Count(&answerCount)
	if answerCount != 2 {
		t.Errorf("answers after rejected resubmission = %d, want 2", answerCount)
	}
}

func TestSubmitAnswersEmptySheet(t *testing.T) {
	db := newTestDB(t)
	svc := NewSubmissionService(NewScoringService(false), db)
	candidate := seedCandidate(t, db, "chidi", model.CandidateRoleScreening)
	exam := seedExam(t, db, model.StageScreening, "A")

	err := svc.SubmitAnswers(candidate.ID, exam.ID, dto.AnswerBulkDTO{})
	if !errors.Is(err, ErrEmptyAnswers) {
		t.Fatalf("err = %v, want ErrEmptyAnswers", err)
	}
}

func TestSubmitAnswersUnknownExam(t *testing.T) {
	db := newTestDB(t)
	svc := NewSubmissionService(NewScoringService(false), db)
	candidate := seedCandidate(t, db, "dayo", model.CandidateRoleScreening)

	err := svc.SubmitAnswers(candidate.ID, 999, dto.AnswerBulkDTO{
		Answers: []dto.AnswerDTO{{Question: 1, SelectedOption: "A"}},
	})
	if !errors.Is(err, ErrExamNotFound) {
		t.Fatalf("err = %v, want ErrExamNotFound", err)
	}
}

func TestSubmitAnswersUnknownQuestion(t *testing.T) {
	db := newTestDB(t)
	svc := NewSubmissionService(NewScoringService(false), db)
	candidate := seedCandidate(t, db, "ebuka", model.CandidateRoleScreening)
	exam := seedExam(t, db, model.StageScreening, "A")

	err := svc.SubmitAnswers(candidate.ID, exam.ID, dto.AnswerBulkDTO{
		Answers: []dto.AnswerDTO{{Question: 9999, SelectedOption: "A"}},
	})
	if !errors.Is(err, ErrQuestionNotFound) {
		t.Fatalf("err = %v, want ErrQuestionNotFound", err)
	}

	// Nothing from the rejected submission sticks.
	var scoreCount int64
	db.Model(&model.CandidateScore{}).Where("candidate_id = ?", candidate.ID).Count(&scoreCount)
	if scoreCount != 0 {
		t.Errorf("score rows after rollback = %d, want 0", scoreCount)
	}
}

func TestSubmitAnswersBlankOptionCountsAsUnanswered(t *testing.T) {
	db := newTestDB(t)
	svc := NewSubmissionService(NewScoringService(false), db)
	candidate := seedCandidate(t, db, "funke", model.CandidateRoleScreening)
	exam := seedExam(t, db, model.StageScreening, "A", "B")

	// One answered correctly, one left blank.
	req := answersFor(exam, "A", "")
	if err := svc.SubmitAnswers(candidate.ID, exam.ID, req); err != nil {
		t.Fatalf("SubmitAnswers: %v", err)
	}

	var score model.CandidateScore
	db.Where("candidate_id = ? AND exam_id = ?", candidate.ID, exam.ID).First(&score)
	if score.Score != 50 {
		t.Errorf("score = %v, want 50", score.Score)
	}
}

func TestSubmitAnswersZeroQuestionExam(t *testing.T) {
	db := newTestDB(t)
	svc := NewSubmissionService(NewScoringService(false), db)
	candidate := seedCandidate(t, db, "gozie", model.CandidateRoleScreening)
	exam := seedExam(t, db, model.StageScreening)
	// A standalone question not attached to the exam.
	other := seedExam(t, db, model.StageLeague, "A")

	req := dto.AnswerBulkDTO{
		Answers: []dto.AnswerDTO{{Question: other.Questions[0].ID, SelectedOption: "A"}},
	}
	if err := svc.SubmitAnswers(candidate.ID, exam.ID, req); err != nil {
		t.Fatalf("SubmitAnswers: %v", err)
	}

	var score model.CandidateScore
	db.Where("candidate_id = ? AND exam_id = ?", candidate.ID, exam.ID).First(&score)
	if score.Score != 0 {
		t.Errorf("score for zero-question exam = %v, want 0", score.Score)
	}
	if !score.AutoScore {
		t.Error("AutoScore = false, want true")
	}
}
