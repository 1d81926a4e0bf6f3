// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sources queries bibliographic search APIs and merges their
// results into one deduplicated candidate list.
package sources

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"unicode"

	"github.com/pdiddy/similarity-engine/pkg/types"
)

// Fallback literals substituted when a provider omits a field. Abstracts
// are legitimately often absent and stay empty instead.
const (
	TitleUnavailable = "title unavailable"
	LinkUnavailable  = "link unavailable"
)

// queryTokens is the number of leading tokens of the submitted text used
// as the search query. Full-text queries exceed provider length limits
// and are dominated by the opening tokens' lexical signature anyway.
const queryTokens = 10

// Source searches a single bibliographic API. Each provider (CrossRef,
// OpenAlex, Semantic Scholar) implements this interface; adding a
// provider is a matter of implementing one response mapping.
type Source interface {
	Name() string
	Search(ctx context.Context, query string, cfg types.SourcesConfig) ([]types.CandidateReference, error)
}

// BuildQuery returns the search query for a submitted text: its first
// ten whitespace-delimited tokens joined by single spaces.
func BuildQuery(text string) string {
	fields := strings.Fields(text)
	if len(fields) > queryTokens {
		fields = fields[:queryTokens]
	}
	return strings.Join(fields, " ")
}

// GatherOutput holds the merged candidates and per-source failure notes.
type GatherOutput struct {
	// Candidates is the deduplicated list in discovery order:
	// source-declaration order first, original within-source order second.
	Candidates []types.CandidateReference

	// DupsRemoved counts candidates dropped by title deduplication.
	DupsRemoved int

	// SourceErrors describes every source that failed or timed out.
	// When it covers all sources, Candidates is empty.
	SourceErrors []string
}

// Gather queries every source concurrently and merges the results. A
// failing or timed-out source contributes zero candidates and a warning
// on w; it never suppresses the other sources' results. Candidates whose
// normalized titles collide are dropped, first occurrence wins. Merging
// follows declaration order, not completion order, so the output is
// stable across runs.
func Gather(ctx context.Context, text string, srcs []Source, cfg types.SourcesConfig, w io.Writer) GatherOutput {
	query := BuildQuery(text)

	perSource := make([][]types.CandidateReference, len(srcs))
	errs := make([]error, len(srcs))

	var wg sync.WaitGroup
	for i, src := range srcs {
		wg.Add(1)
		go func(i int, src Source) {
			defer wg.Done()
			callCtx := ctx
			if cfg.Timeout > 0 {
				var cancel context.CancelFunc
				callCtx, cancel = context.WithTimeout(ctx, cfg.Timeout)
				defer cancel()
			}
			perSource[i], errs[i] = src.Search(callCtx, query, cfg)
		}(i, src)
	}
	wg.Wait()

	var out GatherOutput
	seen := make(map[string]bool)
	for i, src := range srcs {
		if errs[i] != nil {
			msg := fmt.Sprintf("%s: %v", src.Name(), errs[i])
			out.SourceErrors = append(out.SourceErrors, msg)
			fmt.Fprintf(w, "warning: source %s unavailable: %v\n", src.Name(), errs[i])
			continue
		}
		for _, c := range perSource[i] {
			key := normalizeTitle(c.Title)
			if seen[key] {
				out.DupsRemoved++
				continue
			}
			seen[key] = true
			out.Candidates = append(out.Candidates, c)
		}
	}
	return out
}

// normalizeTitle returns a lowercased, punctuation-stripped,
// whitespace-collapsed version of the title used as the dedup key.
func normalizeTitle(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// resultCap returns the per-source result count to request.
func resultCap(cfg types.SourcesConfig) int {
	if cfg.MaxResults > 0 {
		return cfg.MaxResults
	}
	return 10
}
