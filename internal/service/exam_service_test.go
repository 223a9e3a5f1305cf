package service

import (
	"errors"
	"testing"
	"time"

	"github.com/joseph-ezekiel/verboheit-mlc/internal/model"
	"github.com/joseph-ezekiel/verboheit-mlc/internal/repository"
)

func TestTakeExamStageMismatch(t *testing.T) {
	db := newTestDB(t)
	svc := &examService{
		examRepo:     repository.NewExamRepository(db),
		questionRepo: repository.NewQuestionRepository(db),
		now:          fixedNow(t),
	}
	candidate := seedCandidate(t, db, "nkechi", model.CandidateRoleScreening)
	exam := seedExam(t, db, model.StageLeague, "A")

	_, err := svc.TakeExam(candidate, exam.ID)
	if !errors.Is(err, ErrWrongStage) {
		t.Fatalf("err = %v, want ErrWrongStage", err)
	}
}

func TestTakeExamClosedWindow(t *testing.T) {
	db := newTestDB(t)
	now := fixedNow(t)
	svc := &examService{
		examRepo:     repository.NewExamRepository(db),
		questionRepo: repository.NewQuestionRepository(db),
		now:          now,
	}
	candidate := seedCandidate(t, db, "obi", model.CandidateRoleLeague)

	tests := []struct {
		name     string
		mutate   func(*model.Exam)
		wantOpen bool
	}{
		{"inactive exam", func(e *model.Exam) { e.IsActive = false }, false},
		{"window already over", func(e *model.Exam) {
			date := now().Add(-3 * time.Hour)
			e.ExamDate = &date
			e.OpenDurationHours = 2
		}, false},
		{"window not started", func(e *model.Exam) {
			date := now().Add(time.Hour)
			e.ExamDate = &date
			e.OpenDurationHours = 2
		}, false},
		{"inside window", func(e *model.Exam) {
			date := now().Add(-time.Hour)
			e.ExamDate = &date
			e.OpenDurationHours = 2
		}, true},
		{"no scheduled date", func(e *model.Exam) {}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exam := seedExam(t, db, model.StageLeague, "A")
			tt.mutate(exam)
			if err := db.Save(exam).Error; err != nil {
				t.Fatalf("saving exam: %v", err)
			}

			_, err := svc.TakeExam(candidate, exam.ID)
			if tt.wantOpen && err != nil {
				t.Fatalf("TakeExam: %v, want success", err)
			}
			if !tt.wantOpen && !errors.Is(err, ErrExamClosed) {
				t.Fatalf("err = %v, want ErrExamClosed", err)
			}
		})
	}
}

func TestTakeExamHidesCorrectAnswers(t *testing.T) {
	db := newTestDB(t)
	svc := &examService{
		examRepo:     repository.NewExamRepository(db),
		questionRepo: repository.NewQuestionRepository(db),
		now:          fixedNow(t),
	}
	candidate := seedCandidate(t, db, "pelumi", model.CandidateRoleLeague)
	exam := seedExam(t, db, model.StageLeague, "A", "B", "C")

	resp, err := svc.TakeExam(candidate, exam.ID)
	if err != nil {
		t.Fatalf("TakeExam: %v", err)
	}
	if len(resp.Questions) != 3 {
		t.Fatalf("questions = %d, want 3", len(resp.Questions))
	}
	for _, q := range resp.Questions {
		if q.Text == "" || q.OptionA == "" {
			t.Errorf("question %d missing body fields", q.ID)
		}
	}
}

func TestTakeExamNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := &examService{
		examRepo:     repository.NewExamRepository(db),
		questionRepo: repository.NewQuestionRepository(db),
		now:          fixedNow(t),
	}
	candidate := seedCandidate(t, db, "quadri", model.CandidateRoleLeague)

	_, err := svc.TakeExam(candidate, 404)
	if !errors.Is(err, ErrExamNotFound) {
		t.Fatalf("err = %v, want ErrExamNotFound", err)
	}
}
