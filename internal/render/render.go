// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render turns a similarity report into deliverable files: a
// paginated PDF for the requester and a YAML export for archival.
package render

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/similarity-engine/pkg/types"
)

// PDFRenderer lays out reports in the classic single-page format:
// centered heading, best match highlighted, ranked list, average line,
// and an issuance footer with the verification code.
type PDFRenderer struct{}

// Render produces the PDF bytes for a report. Titles and abstracts may
// contain non-ASCII text; runes the document encoding cannot represent
// are substituted rather than failing the render.
func (PDFRenderer) Render(rep types.SimilarityReport, requester types.Requester) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(true, 15)
	doc.AddPage()
	doc.SetFont("Arial", "", 12)
	tr := doc.UnicodeTranslatorFromDescriptor("")

	doc.CellFormat(0, 10, tr("Similarity Report"), "", 1, "C", false, 0, "")
	doc.Ln(10)

	if rep.Status == types.StatusNoCandidates {
		doc.MultiCell(0, 10, tr("No references were found to compare against."), "", "L", false)
		doc.Ln(5)
	} else {
		doc.CellFormat(0, 10, tr("Closest matching reference:"), "", 1, "L", false, 0, "")
		doc.SetTextColor(0, 0, 255)
		doc.MultiCell(0, 10, tr(rep.TopCandidates[0].Title), "", "L", false)
		doc.SetTextColor(0, 0, 0)
		doc.Ln(10)

		doc.CellFormat(0, 10, tr(fmt.Sprintf("Top %d references by similarity:", len(rep.TopCandidates))), "", 1, "L", false, 0, "")
		doc.Ln(5)

		for i, c := range rep.TopCandidates {
			line := fmt.Sprintf("%d. %s - %.2f%%\n%s", i+1, c.Title, c.Score*100, c.SourceURL)
			doc.MultiCell(0, 10, tr(line), "", "L", false)
			doc.Ln(2)
		}

		doc.Ln(5)
		doc.CellFormat(0, 10, tr(fmt.Sprintf("Average similarity: %.2f%%", rep.AverageScore*100)), "", 1, "L", false, 0, "")
	}

	doc.Ln(10)
	doc.CellFormat(0, 10, tr(fmt.Sprintf("Issued to: %s <%s>", requester.Name, requester.Email)), "", 1, "L", false, 0, "")
	doc.CellFormat(0, 10, tr(fmt.Sprintf("Verification code: %s", rep.VerificationCode)), "", 1, "L", false, 0, "")
	doc.CellFormat(0, 10, tr(fmt.Sprintf("Generated: %s", rep.GeneratedAt.Format("2006-01-02 15:04 UTC"))), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing report PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// YAML serializes the report for archival next to the PDF.
func YAML(rep types.SimilarityReport) ([]byte, error) {
	data, err := yaml.Marshal(rep)
	if err != nil {
		return nil, fmt.Errorf("marshaling report: %w", err)
	}
	return data, nil
}
