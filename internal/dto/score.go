package dto

import "time"

// ManualScoreDTO is a staff-entered score for one candidate on one exam.
type ManualScoreDTO struct {
	CandidateID uint    `json:"candidate_id" binding:"required"`
	Score       float64 `json:"score" binding:"min=0,max=100"`
}

// ExamHistoryDTO pairs one stage exam with the candidate's result, if any.
type ExamHistoryDTO struct {
	ExamID       uint       `json:"exam_id"`
	ExamTitle    string     `json:"exam_title"`
	Stage        string     `json:"stage"`
	ExamDate     *time.Time `json:"exam_date"`
	Taken        bool       `json:"taken"`
	Score        *float64   `json:"score,omitempty"`
	AutoScore    bool       `json:"auto_score"`
	DateRecorded *time.Time `json:"date_recorded,omitempty"`
}

type ScoreDTO struct {
	ID            uint      `json:"id"`
	CandidateID   uint      `json:"candidate_id"`
	ExamID        uint      `json:"exam_id"`
	ExamTitle     string    `json:"exam_title,omitempty"`
	Score         float64   `json:"score"`
	AutoScore     bool      `json:"auto_score"`
	SubmittedByID *uint     `json:"submitted_by"`
	DateRecorded  time.Time `json:"date_recorded"`
	DateUpdated   time.Time `json:"date_updated"`
}
