package dto

// MessageResponse wraps success messages that carry no entity body.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the error body for validation and lookup failures.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
