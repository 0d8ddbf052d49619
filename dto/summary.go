package dto

import "summarize-api/models"

// UsageDTO exposes the token counters of one request.
type UsageDTO struct {
	PromptTokenCount     uint `json:"prompt_token_count" example:"85"`
	CandidatesTokenCount uint `json:"candidates_token_count" example:"120"`
	TotalTokenCount      uint `json:"total_token_count" example:"205"`
}

// SummaryResponseDTO is the JSON body for a completed summarization.
type SummaryResponseDTO struct {
	Title   string   `json:"title" example:"The Essence of Artificial Intelligence"`
	Summary string   `json:"summary" example:"Artificial intelligence (AI) refers to machine-demonstrated intelligence..."`
	Usage   UsageDTO `json:"usage"`
}

// FromModelResult flattens a models.ModelResult into the transport shape.
func FromModelResult(r *models.ModelResult) SummaryResponseDTO {
	return SummaryResponseDTO{
		Title:   r.Title,
		Summary: r.Summary,
		Usage: UsageDTO{
			PromptTokenCount:     r.Usage.PromptTokens,
			CandidatesTokenCount: r.Usage.CandidateTokens,
			TotalTokenCount:      r.Usage.TotalTokens,
		},
	}
}
