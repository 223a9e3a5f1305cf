package model

import "time"

// CandidateAnswer is one selected option for one question within a candidate's
// exam attempt. The unique index on (candidate_score_id, question_id) is the
// authoritative guard against double submission: once any answer rows exist
// for a CandidateScore, further bulk submissions are rejected, and two
// concurrent submissions racing past the existence check collide here.
type CandidateAnswer struct {
	ID               uint           `gorm:"primarykey" json:"id"`
	CandidateScoreID uint           `json:"candidate_score_id" gorm:"not null;uniqueIndex:idx_score_question"`
	CandidateScore   CandidateScore `json:"-" gorm:"foreignKey:CandidateScoreID;constraint:OnDelete:CASCADE"`
	QuestionID       uint           `json:"question_id" gorm:"not null;uniqueIndex:idx_score_question"`
	Question         Question       `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	// SelectedOption is "A".."D", or empty for a question left unanswered.
	SelectedOption string    `json:"selected_option" gorm:"size:1"`
	AnsweredAt     time.Time `json:"answered_at" gorm:"autoUpdateTime"`
}
