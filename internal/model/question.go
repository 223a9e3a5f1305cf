package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

var Difficulties = []string{DifficultyEasy, DifficultyMedium, DifficultyHard}

// AnswerOptions are the option keys a candidate may select. An empty string
// means the question was left unanswered.
var AnswerOptions = []string{"A", "B", "C", "D"}

// Question is a multiple-choice item. Questions are created independently and
// attached to exams via a many-to-many relation, so one question may appear in
// any number of exams.
type Question struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	Text          string         `json:"text" gorm:"type:text;not null"`
	OptionA       string         `json:"option_a" gorm:"not null"`
	OptionB       string         `json:"option_b" gorm:"not null"`
	OptionC       string         `json:"option_c" gorm:"not null"`
	OptionD       string         `json:"option_d" gorm:"not null"`
	CorrectAnswer string         `json:"correct_answer" gorm:"size:1;not null"`
	Difficulty    string         `json:"difficulty" gorm:"size:10;default:'medium'"`
	CreatedByID   *uint          `json:"created_by,omitempty" gorm:"index"`
	CreatedBy     *Staff         `json:"-" gorm:"foreignKey:CreatedByID;constraint:OnDelete:SET NULL"`
	UpdatedByID   *uint          `json:"updated_by,omitempty"`
	UpdatedBy     *Staff         `json:"-" gorm:"foreignKey:UpdatedByID;constraint:OnDelete:SET NULL"`
	CreatedAt     time.Time      `json:"date_created"`
	UpdatedAt     time.Time      `json:"date_updated"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func ValidAnswerOption(opt string) bool {
	for _, o := range AnswerOptions {
		if o == opt {
			return true
		}
	}
	return false
}

func ValidDifficulty(d string) bool {
	for _, v := range Difficulties {
		if v == d {
			return true
		}
	}
	return false
}
