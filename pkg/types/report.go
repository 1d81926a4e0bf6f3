// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the similarity-engine pipeline.
package types

import "time"

// CandidateReference is one published work retrieved from a reference
// source, normalized into a uniform shape. Fields a provider omits are
// filled with readable fallbacks by the source adapter, so callers can
// always render something; only Abstract may legitimately be empty.
type CandidateReference struct {
	// Title is the work's title, or "title unavailable".
	Title string `json:"title" yaml:"title"`

	// Abstract is the work's abstract. Empty when the provider has none.
	Abstract string `json:"abstract" yaml:"abstract"`

	// SourceURL links to the work, or "link unavailable".
	SourceURL string `json:"source_url" yaml:"source_url"`

	// Source identifies which adapter found this candidate
	// (e.g. "crossref", "openalex").
	Source string `json:"source" yaml:"source"`
}

// ScoredCandidate is a CandidateReference annotated with its similarity
// score against one specific submitted text.
type ScoredCandidate struct {
	Title     string `json:"title" yaml:"title"`
	SourceURL string `json:"source_url" yaml:"source_url"`
	Source    string `json:"source" yaml:"source"`

	// Score is the similarity ratio in [0,1].
	Score float64 `json:"score" yaml:"score"`
}

// ReportStatus tells whether a report carries comparison data.
type ReportStatus string

const (
	// StatusOK means at least one candidate was scored.
	StatusOK ReportStatus = "ok"

	// StatusNoCandidates means no reference source contributed any
	// candidate; the report carries a verification code but no ranking.
	StatusNoCandidates ReportStatus = "no_candidates"
)

// SimilarityReport is the outcome of one submission: the ranked top
// candidates, the headline average, and the verification code bound to
// the submitted text. Immutable once built.
type SimilarityReport struct {
	Status ReportStatus `json:"status" yaml:"status"`

	// TopCandidates holds at most the configured top-N candidates,
	// ordered by score descending with ties in discovery order.
	TopCandidates []ScoredCandidate `json:"top_candidates" yaml:"top_candidates"`

	// AverageScore is the mean similarity over the top slots, computed
	// per the configured divisor policy.
	AverageScore float64 `json:"average_score" yaml:"average_score"`

	// VerificationCode is the short uppercase digest of the submitted
	// text, persisted in the record store for later authenticity checks.
	VerificationCode string `json:"verification_code" yaml:"verification_code"`

	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
}

// Requester identifies the person a report is issued to.
type Requester struct {
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email" yaml:"email"`
}
