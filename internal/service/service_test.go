package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/joseph-ezekiel/verboheit-mlc/internal/model"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens an in-memory sqlite database with the same error
// translation the production postgres connection uses, so duplicate-key
// handling behaves identically.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	err = db.AutoMigrate(
		&model.User{},
		&model.Candidate{},
		&model.Staff{},
		&model.Question{},
		&model.Exam{},
		&model.CandidateScore{},
		&model.CandidateAnswer{},
		&model.LeaderboardSnapshot{},
		&model.FeatureFlag{},
	)
	if err != nil {
		t.Fatalf("migrating test database: %v", err)
	}
	return db
}

func seedCandidate(t *testing.T, db *gorm.DB, username, role string) *model.Candidate {
	t.Helper()
	user := model.User{
		Username:     username,
		Email:        username + "@example.com",
		FirstName:    "Test",
		LastName:     username,
		PasswordHash: "x",
		IsActive:     true,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seeding user %s: %v", username, err)
	}
	candidate := model.Candidate{
		UserID:   user.ID,
		School:   "Test High",
		Role:     role,
		IsActive: true,
	}
	if err := db.Create(&candidate).Error; err != nil {
		t.Fatalf("seeding candidate %s: %v", username, err)
	}
	candidate.User = user
	return &candidate
}

func seedStaff(t *testing.T, db *gorm.DB, username, role string) *model.Staff {
	t.Helper()
	user := model.User{
		Username:     username,
		Email:        username + "@example.com",
		FirstName:    "Staff",
		LastName:     username,
		PasswordHash: "x",
		IsActive:     true,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seeding user %s: %v", username, err)
	}
	staff := model.Staff{UserID: user.ID, Role: role, IsActive: true}
	if err := db.Create(&staff).Error; err != nil {
		t.Fatalf("seeding staff %s: %v", username, err)
	}
	staff.User = user
	return &staff
}

// seedExam creates an open exam with one question per correct answer given.
func seedExam(t *testing.T, db *gorm.DB, stage string, correctAnswers ...string) *model.Exam {
	t.Helper()
	questions := make([]model.Question, 0, len(correctAnswers))
	for i, answer := range correctAnswers {
		questions = append(questions, model.Question{
			Text:          fmt.Sprintf("Question %d", i+1),
			OptionA:       "a",
			OptionB:       "b",
			OptionC:       "c",
			OptionD:       "d",
			CorrectAnswer: answer,
			Difficulty:    "medium",
		})
	}
	exam := model.Exam{
		Stage:     stage,
		Title:     stage + " exam",
		IsActive:  true,
		Questions: questions,
	}
	if err := db.Create(&exam).Error; err != nil {
		t.Fatalf("seeding exam: %v", err)
	}
	return &exam
}

func seedScore(t *testing.T, db *gorm.DB, candidateID, examID uint, value float64) *model.CandidateScore {
	t.Helper()
	score := model.CandidateScore{
		CandidateID: candidateID,
		ExamID:      examID,
		Score:       value,
		AutoScore:   true,
	}
	if err := db.Create(&score).Error; err != nil {
		t.Fatalf("seeding score: %v", err)
	}
	return &score
}

func fixedNow(t *testing.T) func() time.Time {
	t.Helper()
	at := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return at }
}
