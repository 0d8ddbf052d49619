// Package exporter converts a final summary string into downloadable
// document bytes. All conversions are pure and stateless.
package exporter

import (
	"bytes"

	"github.com/fumiama/go-docx"
	"github.com/go-pdf/fpdf"
)

// ToPDF renders the text as a single-column A4 PDF.
func ToPDF(text string) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "", 12)

	// Core fonts are cp1252-only; unmappable runes are replaced rather
	// than failing the export.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.MultiCell(0, 10, tr(text), "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ToDOCX renders the text as a Word document with a single paragraph.
func ToDOCX(text string) ([]byte, error) {
	doc := docx.New().WithDefaultTheme()
	doc.AddParagraph().AddText(text)

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
