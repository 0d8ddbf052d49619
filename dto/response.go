package dto

// ErrorResponseDTO is the common error envelope.
type ErrorResponseDTO struct {
	Error string `json:"error" example:"input cannot be empty"`
}
