// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/similarity-engine/pkg/types"
)

// FormatTable writes the report as a human-readable table to w.
func FormatTable(rep types.SimilarityReport, w io.Writer) {
	if rep.Status == types.StatusNoCandidates {
		fmt.Fprintln(w, "No references found.")
		fmt.Fprintf(w, "Verification code: %s\n", rep.VerificationCode)
		return
	}

	fmt.Fprintf(w, "%-4s  %-60s  %-7s  %s\n", "Rank", "Title", "Match", "Link")
	fmt.Fprintln(w, strings.Repeat("-", 100))

	for i, c := range rep.TopCandidates {
		title := c.Title
		if len(title) > 60 {
			title = title[:57] + "..."
		}
		fmt.Fprintf(w, "%-4d  %-60s  %6.2f%%  %s\n", i+1, title, c.Score*100, c.SourceURL)
	}

	fmt.Fprintf(w, "\nAverage similarity: %.2f%%\n", rep.AverageScore*100)
	fmt.Fprintf(w, "Verification code:  %s\n", rep.VerificationCode)
}

// FormatJSON writes the report as indented JSON to w.
func FormatJSON(rep types.SimilarityReport, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}
