// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract pulls comparable plain text out of submitted PDF documents.
package extract

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrUnreadableDocument means text extraction failed entirely: the file
// could not be parsed as a PDF or yielded no text at all. The pipeline
// does not proceed past this error.
var ErrUnreadableDocument = errors.New("document cannot be read")

// Normalize trims leading and trailing whitespace from raw extracted
// text. Empty input yields empty output; Normalize never fails.
func Normalize(raw string) string {
	return strings.TrimSpace(raw)
}

// PDF extracts plain text from PDF files on disk.
type PDF struct{}

// Text returns the normalized plain text of the document at path. Pages
// that cannot be decoded contribute empty text rather than failing the
// whole call; a document with no extractable text at all is unreadable.
func (PDF) Text(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreadableDocument, err)
	}
	defer f.Close()

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(text)
	}

	out := Normalize(b.String())
	if out == "" {
		return "", fmt.Errorf("%w: no extractable text", ErrUnreadableDocument)
	}
	return out, nil
}
