package summarizer

import (
	"fmt"
	"strings"

	"summarize-api/models"
)

// defaultTemperature keeps generation deterministic-leaning.
const defaultTemperature = 0.2

// defaultPrompt is the canonical summarization directive for text input.
const defaultPrompt = "Generate a detailed summary and a compelling title for the following content."

// Binary inputs get a document-aware directive: singular phrasing for one
// file, synthesis phrasing when several must be reconciled.
const (
	singleDocPrompt = "Generate a detailed summary and a compelling title for the provided document."
	multiDocPrompt  = "Generate a detailed summary and a compelling title that combine and reconcile the information across the provided documents."
)

// GenConfig describes the generation request shape handed to the invoker.
type GenConfig struct {
	Mode        models.Mode
	Temperature float32
}

// basePrompt returns the caller's custom prompt when one was supplied,
// otherwise the canonical summarization directive for the input shape.
// docCount is 0 for plain text input.
func basePrompt(mods models.Modifiers, docCount int) string {
	if custom := strings.TrimSpace(mods.CustomPrompt); custom != "" {
		return custom
	}
	switch {
	case docCount == 1:
		return singleDocPrompt
	case docCount > 1:
		return multiDocPrompt
	default:
		return defaultPrompt
	}
}

// BuildInstruction assembles the system instruction and generation config
// for one model call. mode is passed explicitly because the two-step PDF
// pipeline forces a free-text narrative pass regardless of the modifiers.
//
// Tone applies in both modes. Length applies only to structured
// summarization; it is meaningless for arbitrary custom tasks and is
// suppressed in free-text mode.
func BuildInstruction(mods models.Modifiers, docCount int, mode models.Mode) (string, GenConfig) {
	base := basePrompt(mods, docCount)

	var b strings.Builder
	if docCount > 0 {
		fmt.Fprintf(&b, "You are a helpful AI assistant. The user wants you to do the following with the provided file(s): '%s'.", base)
	} else {
		fmt.Fprintf(&b, "You are a helpful AI assistant. The user wants you to do the following: '%s'.", base)
	}
	if mods.Tone != "" {
		fmt.Fprintf(&b, " Your tone must be %s.", mods.Tone.Phrase())
	}
	if mods.Length != "" && mode == models.ModeStructured {
		fmt.Fprintf(&b, " The length should be %s.", mods.Length.Phrase())
	}

	return b.String(), GenConfig{Mode: mode, Temperature: defaultTemperature}
}
