package models

import (
	"fmt"
	"strings"
)

// Length controls how long a structured summary should be.
type Length string

const (
	LengthShort    Length = "short"
	LengthMedium   Length = "medium"
	LengthDetailed Length = "detailed"
)

// lengthPhrases maps each length to the directive phrase sent to the model.
// The phrases are part of the external contract; do not reword them.
var lengthPhrases = map[Length]string{
	LengthShort:    "short (1 paragraph)",
	LengthMedium:   "medium (3 paragraphs)",
	LengthDetailed: "detailed",
}

// Phrase returns the directive phrase for the length.
func (l Length) Phrase() string {
	return lengthPhrases[l]
}

// ParseLength parses a user-supplied length token. The empty string means
// "not specified" and parses to ("", false, nil).
func ParseLength(s string) (Length, bool, error) {
	if strings.TrimSpace(s) == "" {
		return "", false, nil
	}
	l := Length(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := lengthPhrases[l]; !ok {
		return "", false, fmt.Errorf("unknown length %q", s)
	}
	return l, true, nil
}

// Tone controls the voice of the generated text.
type Tone string

const (
	ToneProfessional Tone = "professional"
	ToneCasual       Tone = "casual"
	ToneSimple       Tone = "simple"
	ToneTechnical    Tone = "technical"
)

// tonePhrases maps each tone to the descriptive phrase sent to the model.
// The phrases are part of the external contract; do not reword them.
var tonePhrases = map[Tone]string{
	ToneProfessional: "Professional",
	ToneCasual:       "Casual",
	ToneSimple:       "Simple, for a general audience",
	ToneTechnical:    "Technical, for an expert audience",
}

// Phrase returns the descriptive phrase for the tone.
func (t Tone) Phrase() string {
	return tonePhrases[t]
}

// ParseTone parses a user-supplied tone token. The empty string means
// "not specified" and parses to ("", false, nil).
func ParseTone(s string) (Tone, bool, error) {
	if strings.TrimSpace(s) == "" {
		return "", false, nil
	}
	t := Tone(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := tonePhrases[t]; !ok {
		return "", false, fmt.Errorf("unknown tone %q", s)
	}
	return t, true, nil
}

// Mode selects the shape of the model response.
type Mode int

const (
	// ModeStructured constrains the response to a {title, summary} object.
	ModeStructured Mode = iota
	// ModeFreeText lets the model answer an arbitrary custom prompt with
	// an unconstrained string.
	ModeFreeText
)

func (m Mode) String() string {
	switch m {
	case ModeStructured:
		return "structured"
	case ModeFreeText:
		return "free_text"
	default:
		return "unknown"
	}
}

// Modifiers are the caller-supplied knobs of one summarization request.
// Length and Tone are optional; an empty value means "not specified".
type Modifiers struct {
	Length       Length
	Tone         Tone
	CustomPrompt string
}

// Mode returns ModeFreeText iff a non-blank custom prompt was supplied,
// ModeStructured otherwise.
func (m Modifiers) Mode() Mode {
	if strings.TrimSpace(m.CustomPrompt) != "" {
		return ModeFreeText
	}
	return ModeStructured
}

// Usage carries the token counters reported by the model.
type Usage struct {
	PromptTokens    uint `json:"prompt_token_count"`
	CandidateTokens uint `json:"candidates_token_count"`
	TotalTokens     uint `json:"total_token_count"`
}

// Add returns the element-wise sum of two usages. The two-step PDF
// pipeline accumulates usage from both model calls through it.
func (u Usage) Add(o Usage) Usage {
	return Usage{
		PromptTokens:    u.PromptTokens + o.PromptTokens,
		CandidateTokens: u.CandidateTokens + o.CandidateTokens,
		TotalTokens:     u.TotalTokens + o.TotalTokens,
	}
}

// ModelResult is the uniform outcome of one orchestration call. Title is
// produced by the model only in structured mode; in free-text mode the
// orchestrator fills it in from the custom prompt.
type ModelResult struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Usage   Usage  `json:"usage"`
}
