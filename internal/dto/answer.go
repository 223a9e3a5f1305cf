package dto

// AnswerDTO is one selected option for one question. An empty SelectedOption
// records the question as seen but unanswered.
type AnswerDTO struct {
	Question       uint   `json:"question" binding:"required"`
	SelectedOption string `json:"selected_option" binding:"omitempty,oneof=A B C D"`
}

// AnswerBulkDTO is the full answer sheet a candidate submits in one request.
type AnswerBulkDTO struct {
	Answers []AnswerDTO `json:"answers" binding:"required,dive"`
}
