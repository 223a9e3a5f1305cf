package service

import (
	"testing"

	"github.com/joseph-ezekiel/verboheit-mlc/internal/model"
	"gorm.io/gorm"
)

func scoreWithAnswers(t *testing.T, db *gorm.DB, exam *model.Exam, candidateID uint, options ...string) *model.CandidateScore {
	t.Helper()
	score := model.CandidateScore{CandidateID: candidateID, ExamID: exam.ID}
	if err := db.Create(&score).Error; err != nil {
		t.Fatalf("creating score row: %v", err)
	}
	for i, opt := range options {
		answer := model.CandidateAnswer{
			CandidateScoreID: score.ID,
			QuestionID:       exam.Questions[i].ID,
			SelectedOption:   opt,
		}
		if err := db.Create(&answer).Error; err != nil {
			t.Fatalf("creating answer row: %v", err)
		}
	}
	return &score
}

func TestScoreRoundsToTwoDecimals(t *testing.T) {
	db := newTestDB(t)
	candidate := seedCandidate(t, db, "hauwa", model.CandidateRoleScreening)
	exam := seedExam(t, db, model.StageScreening, "A", "B", "C")
	score := scoreWithAnswers(t, db, exam, candidate.ID, "A", "A", "A")

	value, err := NewScoringService(false).Score(db, score)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if value != 33.33 {
		t.Errorf("score = %v, want 33.33 (1 of 3)", value)
	}
}

func TestScoreGrid(t *testing.T) {
	tests := []struct {
		name    string
		correct []string
		given   []string
		want    float64
	}{
		{"all correct", []string{"A", "B"}, []string{"A", "B"}, 100},
		{"none correct", []string{"A", "B"}, []string{"B", "A"}, 0},
		{"half correct", []string{"A", "B", "C", "D"}, []string{"A", "B", "A", "A"}, 50},
		{"all blank", []string{"A", "B"}, []string{"", ""}, 0},
		{"no questions", nil, nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := newTestDB(t)
			candidate := seedCandidate(t, db, "kemi", model.CandidateRoleScreening)
			exam := seedExam(t, db, model.StageScreening, tt.correct...)
			score := scoreWithAnswers(t, db, exam, candidate.ID, tt.given...)

			value, err := NewScoringService(false).Score(db, score)
			if err != nil {
				t.Fatalf("Score: %v", err)
			}
			if value != tt.want {
				t.Errorf("score = %v, want %v", value, tt.want)
			}
		})
	}
}

func TestScoreSnapshotDenominator(t *testing.T) {
	db := newTestDB(t)
	candidate := seedCandidate(t, db, "lara", model.CandidateRoleScreening)
	exam := seedExam(t, db, model.StageScreening, "A", "B", "C", "D")

	// The candidate only ever saw the first two questions.
	score := scoreWithAnswers(t, db, exam, candidate.ID, "A", "C")

	live, err := NewScoringService(false).Score(db, score)
	if err != nil {
		t.Fatalf("Score (live): %v", err)
	}
	if live != 25 {
		t.Errorf("live-denominator score = %v, want 25 (1 of 4)", live)
	}

	snapshot, err := NewScoringService(true).Score(db, score)
	if err != nil {
		t.Fatalf("Score (snapshot): %v", err)
	}
	if snapshot != 50 {
		t.Errorf("snapshot-denominator score = %v, want 50 (1 of 2)", snapshot)
	}
}

func TestScoreClearsManualAttribution(t *testing.T) {
	db := newTestDB(t)
	candidate := seedCandidate(t, db, "mina", model.CandidateRoleScreening)
	staff := seedStaff(t, db, "owner1", model.StaffRoleOwner)
	exam := seedExam(t, db, model.StageScreening, "A")
	score := scoreWithAnswers(t, db, exam, candidate.ID, "A")

	// Pretend a staff member had touched the row before auto-scoring ran.
	score.SubmittedByID = &staff.ID
	score.AutoScore = false
	if err := db.Save(score).Error; err != nil {
		t.Fatalf("saving score: %v", err)
	}

	if _, err := NewScoringService(false).Score(db, score); err != nil {
		t.Fatalf("Score: %v", err)
	}

	var reloaded model.CandidateScore
	db.First(&reloaded, score.ID)
	if !reloaded.AutoScore {
		t.Error("AutoScore = false, want true after auto-scoring")
	}
	if reloaded.SubmittedByID != nil {
		t.Errorf("SubmittedByID = %v, want nil after auto-scoring", *reloaded.SubmittedByID)
	}
}
