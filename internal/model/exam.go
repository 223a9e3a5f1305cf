package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	StageScreening = "screening"
	StageLeague    = "league"
)

var ExamStages = []string{StageScreening, StageLeague}

// Exam is a scheduled assessment for one competition stage. A nil ExamDate
// means the exam has no schedule and is open whenever it is active.
type Exam struct {
	ID                uint           `gorm:"primarykey" json:"id"`
	Stage             string         `json:"stage" gorm:"size:20;default:'league';index"`
	Title             string         `json:"title" gorm:"size:100;not null"`
	Description       string         `json:"description" gorm:"type:text"`
	IsActive          bool           `json:"is_active" gorm:"default:false;index"`
	ExamDate          *time.Time     `json:"exam_date" gorm:"index"`
	OpenDurationHours int            `json:"open_duration_hours" gorm:"default:2"`
	CountdownMinutes  int            `json:"countdown_minutes" gorm:"default:60"`
	CreatedByID       *uint          `json:"created_by,omitempty"`
	CreatedBy         *Staff         `json:"-" gorm:"foreignKey:CreatedByID;constraint:OnDelete:SET NULL"`
	UpdatedByID       *uint          `json:"updated_by,omitempty"`
	UpdatedBy         *Staff         `json:"-" gorm:"foreignKey:UpdatedByID;constraint:OnDelete:SET NULL"`
	Questions         []Question     `json:"questions,omitempty" gorm:"many2many:exam_questions"`
	CreatedAt         time.Time      `json:"date_created"`
	UpdatedAt         time.Time      `json:"date_updated"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}

// OpenAt reports whether the exam accepts submissions at the given instant.
// An inactive exam is never open. An exam without a date is open whenever it
// is active. Otherwise the window runs from ExamDate to
// ExamDate+OpenDurationHours, inclusive on both ends.
//
// Stage eligibility is a separate concern checked by the exam service; this
// predicate is purely about the time window.
func (e *Exam) OpenAt(now time.Time) bool {
	if !e.IsActive {
		return false
	}
	if e.ExamDate == nil {
		return true
	}
	closesAt := e.ExamDate.Add(time.Duration(e.OpenDurationHours) * time.Hour)
	return !now.Before(*e.ExamDate) && !now.After(closesAt)
}

func ValidExamStage(stage string) bool {
	for _, s := range ExamStages {
		if s == stage {
			return true
		}
	}
	return false
}
