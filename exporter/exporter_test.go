package exporter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"summarize-api/exporter"
)

func TestToPDF(t *testing.T) {
	data, err := exporter.ToPDF("A short summary.\nWith a second line.")
	require.NoError(t, err)

	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestToDOCX(t *testing.T) {
	data, err := exporter.ToDOCX("A short summary.")
	require.NoError(t, err)

	require.NotEmpty(t, data)
	// DOCX files are ZIP archives.
	assert.Equal(t, []byte{'P', 'K'}, data[:2])
}
