package model

import "time"

// CandidateScore records one candidate's result for one exam. The composite
// unique index on (candidate_id, exam_id) guarantees at most one row per pair;
// repeat submissions must update this row, never duplicate it.
type CandidateScore struct {
	ID            uint       `gorm:"primarykey" json:"id"`
	CandidateID   uint       `json:"candidate_id" gorm:"not null;uniqueIndex:idx_candidate_exam"`
	Candidate     Candidate  `json:"-" gorm:"foreignKey:CandidateID;constraint:OnDelete:CASCADE"`
	ExamID        uint       `json:"exam_id" gorm:"not null;uniqueIndex:idx_candidate_exam"`
	Exam          Exam       `json:"exam,omitempty" gorm:"foreignKey:ExamID;constraint:OnDelete:CASCADE"`
	Score         float64    `json:"score" gorm:"type:decimal(5,2);default:0"`
	DateRecorded  time.Time  `json:"date_recorded" gorm:"autoCreateTime"`
	DateUpdated   time.Time  `json:"date_updated" gorm:"autoUpdateTime"`
	SubmittedByID *uint      `json:"submitted_by"`
	SubmittedBy   *Staff     `json:"-" gorm:"foreignKey:SubmittedByID;constraint:OnDelete:SET NULL"`
	// AutoScore distinguishes algorithmically computed scores from manual
	// staff overrides. A nil SubmittedByID together with AutoScore implies
	// the scoring engine wrote the row.
	AutoScore bool `json:"auto_score" gorm:"default:false"`

	Answers []CandidateAnswer `json:"answers,omitempty" gorm:"foreignKey:CandidateScoreID;constraint:OnDelete:CASCADE"`
}
