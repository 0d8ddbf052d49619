package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"summarize-api/models"
)

func TestModifiersMode(t *testing.T) {
	cases := []struct {
		name   string
		prompt string
		want   models.Mode
	}{
		{"no prompt", "", models.ModeStructured},
		{"blank prompt", "   \n\t ", models.ModeStructured},
		{"custom prompt", "Translate this to French", models.ModeFreeText},
		{"padded prompt", "  list key points  ", models.ModeFreeText},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mods := models.Modifiers{CustomPrompt: tc.prompt}
			assert.Equal(t, tc.want, mods.Mode())
		})
	}
}

func TestParseLength(t *testing.T) {
	l, ok, err := models.ParseLength("Short")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, models.LengthShort, l)
	assert.Equal(t, "short (1 paragraph)", l.Phrase())

	_, ok, err = models.ParseLength("")
	assert.NoError(t, err)
	assert.False(t, ok)

	_, _, err = models.ParseLength("gigantic")
	assert.Error(t, err)
}

func TestParseTone(t *testing.T) {
	tone, ok, err := models.ParseTone("TECHNICAL")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Technical, for an expert audience", tone.Phrase())

	tone, _, err = models.ParseTone("simple")
	assert.NoError(t, err)
	assert.Equal(t, "Simple, for a general audience", tone.Phrase())

	_, _, err = models.ParseTone("sarcastic")
	assert.Error(t, err)
}

func TestParseOutputFormat(t *testing.T) {
	f, err := models.ParseOutputFormat("")
	assert.NoError(t, err)
	assert.Equal(t, models.FormatJSON, f)

	f, err = models.ParseOutputFormat("DOCX")
	assert.NoError(t, err)
	assert.Equal(t, models.FormatDOCX, f)

	_, err = models.ParseOutputFormat("xlsx")
	assert.Error(t, err)
}

func TestUsageAdd(t *testing.T) {
	sum := models.Usage{PromptTokens: 10, CandidateTokens: 20, TotalTokens: 30}.
		Add(models.Usage{PromptTokens: 1, CandidateTokens: 2, TotalTokens: 3})
	assert.Equal(t, models.Usage{PromptTokens: 11, CandidateTokens: 22, TotalTokens: 33}, sum)
}
