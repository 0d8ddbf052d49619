package summarizer

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"

	"summarize-api/models"
)

// Invoker performs a single request/response exchange with the generative
// model. Implementations must wrap every provider failure into
// ModelInvocationError.
type Invoker interface {
	Invoke(ctx context.Context, payload models.Payload, instruction string, gen GenConfig) (*models.ModelResult, error)
}

// GeminiInvoker talks to the Gemini API through the genai SDK. The client
// handle is created once at startup and is read-only afterwards.
type GeminiInvoker struct {
	client *genai.Client
	model  string
}

// NewGeminiInvoker builds the process-wide Gemini client.
func NewGeminiInvoker(ctx context.Context, apiKey, model string) (*GeminiInvoker, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiInvoker{client: client, model: model}, nil
}

// resultSchema constrains structured responses to a {title, summary}
// object.
var resultSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"title":   {Type: genai.TypeString},
		"summary": {Type: genai.TypeString},
	},
	Required: []string{"title", "summary"},
}

// Invoke sends the payload with the given instruction and interprets the
// response: a parsed {title, summary} object in structured mode, the raw
// text otherwise. Token usage is surfaced in both modes; counters missing
// from the response are reported as zero.
func (g *GeminiInvoker) Invoke(ctx context.Context, payload models.Payload, instruction string, gen GenConfig) (*models.ModelResult, error) {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: instruction}}},
		Temperature:       genai.Ptr(gen.Temperature),
	}
	switch gen.Mode {
	case models.ModeStructured:
		cfg.ResponseMIMEType = "application/json"
		cfg.ResponseSchema = resultSchema
	case models.ModeFreeText:
		cfg.ResponseMIMEType = "text/plain"
	default:
		return nil, &ModelInvocationError{Err: fmt.Errorf("unknown generation mode %d", gen.Mode)}
	}

	var contents []*genai.Content
	switch payload.Kind {
	case models.PayloadText:
		contents = genai.Text(payload.Text)
	case models.PayloadBinary:
		parts := make([]*genai.Part, 0, len(payload.Parts))
		for _, p := range payload.Parts {
			parts = append(parts, genai.NewPartFromBytes(p.Data, p.MIMEType))
		}
		contents = []*genai.Content{{Parts: parts, Role: genai.RoleUser}}
	default:
		return nil, &ModelInvocationError{Err: fmt.Errorf("unknown payload kind %d", payload.Kind)}
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, cfg)
	if err != nil {
		return nil, &ModelInvocationError{Err: err}
	}

	result := &models.ModelResult{Usage: usageFrom(resp)}

	if gen.Mode == models.ModeStructured {
		var parsed struct {
			Title   string `json:"title"`
			Summary string `json:"summary"`
		}
		if err := json.Unmarshal([]byte(resp.Text()), &parsed); err != nil {
			// A structured request must come back as the requested shape;
			// falling back to raw text would hide the violation.
			return nil, &ModelInvocationError{Err: fmt.Errorf("response violates the requested schema: %w", err)}
		}
		result.Title = parsed.Title
		result.Summary = parsed.Summary
		return result, nil
	}

	result.Summary = resp.Text()
	return result, nil
}

func usageFrom(resp *genai.GenerateContentResponse) models.Usage {
	if resp == nil || resp.UsageMetadata == nil {
		return models.Usage{}
	}
	return models.Usage{
		PromptTokens:    uint(resp.UsageMetadata.PromptTokenCount),
		CandidateTokens: uint(resp.UsageMetadata.CandidatesTokenCount),
		TotalTokens:     uint(resp.UsageMetadata.TotalTokenCount),
	}
}
