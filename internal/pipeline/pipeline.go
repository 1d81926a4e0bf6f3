// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs one submission end to end: extract text, gather
// candidate references, score them, build the report, record the
// verification code, and render the deliverables. Collaborators are
// injected so adapter sets, stores, and renderers are configuration
// rather than copy-pasted pipeline variants.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pdiddy/similarity-engine/internal/report"
	"github.com/pdiddy/similarity-engine/internal/similarity"
	"github.com/pdiddy/similarity-engine/internal/sources"
	"github.com/pdiddy/similarity-engine/pkg/types"
)

// Extractor produces comparable plain text for a document on disk.
type Extractor interface {
	Text(path string) (string, error)
}

// RecordStore persists issued verification codes.
type RecordStore interface {
	Put(ctx context.Context, code string, requester types.Requester, issuedAt time.Time) error
}

// Renderer produces the deliverable PDF for a finished report.
type Renderer interface {
	Render(rep types.SimilarityReport, requester types.Requester) ([]byte, error)
}

// Deps holds the pipeline's collaborators. Store and Renderer may be nil
// to skip recording or rendering.
type Deps struct {
	Extractor Extractor
	Sources   []sources.Source
	Store     RecordStore
	Renderer  Renderer
}

// Result is the outcome of one submission.
type Result struct {
	Report types.SimilarityReport

	// PDF is the rendered report, nil when no renderer was configured.
	PDF []byte

	// SourceErrors lists reference sources that failed or timed out.
	SourceErrors []string
}

// Run processes one submitted document. Extraction failure aborts
// immediately; source failures degrade to warnings; an empty candidate
// pool yields a no_candidates report whose verification code is still
// generated and recorded, so authenticity checks work regardless.
func Run(ctx context.Context, path string, requester types.Requester, deps Deps, cfg types.PipelineConfig, w io.Writer) (Result, error) {
	text, err := deps.Extractor.Text(path)
	if err != nil {
		return Result{}, err
	}
	fmt.Fprintf(w, "extracted %d characters\n", len(text))

	gathered := sources.Gather(ctx, text, deps.Sources, cfg.Sources, w)
	fmt.Fprintf(w, "gathered %d candidates (%d duplicates removed)\n",
		len(gathered.Candidates), gathered.DupsRemoved)

	scored := make([]types.ScoredCandidate, 0, len(gathered.Candidates))
	for _, c := range gathered.Candidates {
		scored = append(scored, similarity.Score(text, c))
	}

	rep := report.Build(text, scored, cfg.Report)
	res := Result{Report: rep, SourceErrors: gathered.SourceErrors}

	if deps.Store != nil {
		if err := deps.Store.Put(ctx, rep.VerificationCode, requester, rep.GeneratedAt); err != nil {
			return res, fmt.Errorf("recording verification code: %w", err)
		}
	}

	if deps.Renderer != nil {
		pdf, err := deps.Renderer.Render(rep, requester)
		if err != nil {
			return res, fmt.Errorf("rendering report: %w", err)
		}
		res.PDF = pdf
	}

	return res, nil
}
