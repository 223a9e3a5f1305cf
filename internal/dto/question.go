package dto

import "time"

type QuestionCreateDTO struct {
	Text          string `json:"text" binding:"required"`
	OptionA       string `json:"option_a" binding:"required"`
	OptionB       string `json:"option_b" binding:"required"`
	OptionC       string `json:"option_c" binding:"required"`
	OptionD       string `json:"option_d" binding:"required"`
	CorrectAnswer string `json:"correct_answer" binding:"required,oneof=A B C D"`
	Difficulty    string `json:"difficulty" binding:"omitempty,oneof=easy medium hard"`
}

type QuestionDetailDTO struct {
	ID            uint      `json:"id"`
	Text          string    `json:"text"`
	OptionA       string    `json:"option_a"`
	OptionB       string    `json:"option_b"`
	OptionC       string    `json:"option_c"`
	OptionD       string    `json:"option_d"`
	CorrectAnswer string    `json:"correct_answer"`
	Difficulty    string    `json:"difficulty"`
	CreatedAt     time.Time `json:"date_created"`
	UpdatedAt     time.Time `json:"date_updated"`
}
