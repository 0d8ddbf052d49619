package summarizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"summarize-api/models"
)

func TestBuildInstructionStructuredDefaults(t *testing.T) {
	instruction, gen := BuildInstruction(models.Modifiers{}, 0, models.ModeStructured)

	assert.Contains(t, instruction, "Generate a detailed summary and a compelling title for the following content.")
	assert.Equal(t, models.ModeStructured, gen.Mode)
	assert.InDelta(t, 0.2, gen.Temperature, 0.0001)
}

func TestBuildInstructionLengthPhrases(t *testing.T) {
	cases := map[models.Length]string{
		models.LengthShort:    "short (1 paragraph)",
		models.LengthMedium:   "medium (3 paragraphs)",
		models.LengthDetailed: "detailed",
	}
	for length, phrase := range cases {
		mods := models.Modifiers{Length: length}
		instruction, _ := BuildInstruction(mods, 0, models.ModeStructured)
		assert.Contains(t, instruction, "The length should be "+phrase+".")
	}
}

func TestBuildInstructionSuppressesLengthInFreeText(t *testing.T) {
	mods := models.Modifiers{
		Length:       models.LengthDetailed,
		CustomPrompt: "Extract all dates mentioned",
	}
	instruction, gen := BuildInstruction(mods, 0, models.ModeFreeText)

	assert.NotContains(t, instruction, "The length should be")
	assert.Contains(t, instruction, "'Extract all dates mentioned'")
	assert.Equal(t, models.ModeFreeText, gen.Mode)
}

func TestBuildInstructionTonePhrases(t *testing.T) {
	for _, mode := range []models.Mode{models.ModeStructured, models.ModeFreeText} {
		mods := models.Modifiers{Tone: models.ToneCasual}
		if mode == models.ModeFreeText {
			mods.CustomPrompt = "rewrite as a tweet"
		}
		instruction, _ := BuildInstruction(mods, 0, mode)
		assert.Contains(t, instruction, "Your tone must be Casual.")
	}
}

func TestBuildInstructionTrimsCustomPrompt(t *testing.T) {
	mods := models.Modifiers{CustomPrompt: "  translate to German  "}
	instruction, _ := BuildInstruction(mods, 0, models.ModeFreeText)
	assert.Contains(t, instruction, "'translate to German'")
	assert.NotContains(t, instruction, "'  translate")
}

func TestBuildInstructionDocumentPhrasing(t *testing.T) {
	instruction, _ := BuildInstruction(models.Modifiers{}, 1, models.ModeStructured)
	assert.Contains(t, instruction, "with the provided file(s)")
	assert.Contains(t, instruction, singleDocPrompt)

	instruction, _ = BuildInstruction(models.Modifiers{}, 3, models.ModeStructured)
	assert.Contains(t, instruction, multiDocPrompt)
	assert.True(t, strings.Contains(instruction, "combine and reconcile"))
}
