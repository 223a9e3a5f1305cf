package dto

import "time"

type ExamCreateDTO struct {
	Stage             string     `json:"stage" binding:"required,oneof=screening league"`
	Title             string     `json:"title" binding:"required"`
	Description       string     `json:"description"`
	IsActive          bool       `json:"is_active"`
	ExamDate          *time.Time `json:"exam_date"`
	OpenDurationHours int        `json:"open_duration_hours" binding:"omitempty,min=0"`
	CountdownMinutes  int        `json:"countdown_minutes" binding:"omitempty,min=0"`
	Questions         []uint     `json:"questions"`
}

type ExamUpdateDTO = ExamCreateDTO

type ExamListDTO struct {
	ID                uint       `json:"id"`
	Title             string     `json:"title"`
	Stage             string     `json:"stage"`
	Description       string     `json:"description"`
	ExamDate          *time.Time `json:"exam_date"`
	CountdownMinutes  int        `json:"countdown_minutes"`
	OpenDurationHours int        `json:"open_duration_hours"`
	IsActive          bool       `json:"is_active"`
	IsCurrentlyOpen   bool       `json:"is_currently_open"`
	QuestionCount     int64      `json:"question_count"`
	DateCreated       time.Time  `json:"date_created"`
}

type ExamDetailDTO struct {
	ID                uint                `json:"id"`
	Title             string              `json:"title"`
	Stage             string              `json:"stage"`
	Description       string              `json:"description"`
	ExamDate          *time.Time          `json:"exam_date"`
	CountdownMinutes  int                 `json:"countdown_minutes"`
	OpenDurationHours int                 `json:"open_duration_hours"`
	IsActive          bool                `json:"is_active"`
	IsCurrentlyOpen   bool                `json:"is_currently_open"`
	Questions         []QuestionDetailDTO `json:"questions"`
	CreatedAt         time.Time           `json:"date_created"`
	UpdatedAt         time.Time           `json:"date_updated"`
}

// CandidateExamDTO is the exam as shown to a candidate sitting it: questions
// included, correct answers never.
type CandidateExamDTO struct {
	ID                uint                   `json:"id"`
	Title             string                 `json:"title"`
	Stage             string                 `json:"stage"`
	Description       string                 `json:"description"`
	ExamDate          *time.Time             `json:"exam_date"`
	OpenDurationHours int                    `json:"open_duration_hours"`
	CountdownMinutes  int                    `json:"countdown_minutes"`
	Questions         []CandidateQuestionDTO `json:"questions"`
}

type CandidateQuestionDTO struct {
	ID      uint   `json:"id"`
	Text    string `json:"text"`
	OptionA string `json:"option_a"`
	OptionB string `json:"option_b"`
	OptionC string `json:"option_c"`
	OptionD string `json:"option_d"`
}
