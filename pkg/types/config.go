// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout bounds each outbound request. A timed-out source behaves
	// like a failed one: zero candidates, pipeline proceeds.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "similarity-engine/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SourcesConfig holds settings for the reference-gathering stage.
type SourcesConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxResults caps the result count requested from each source (default 10).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// EnableCrossref controls whether the CrossRef source is queried.
	EnableCrossref bool `json:"enable_crossref" yaml:"enable_crossref"`

	// EnableOpenAlex controls whether the OpenAlex source is queried.
	EnableOpenAlex bool `json:"enable_openalex" yaml:"enable_openalex"`

	// EnableSemanticScholar controls whether the Semantic Scholar source is queried.
	EnableSemanticScholar bool `json:"enable_semantic_scholar" yaml:"enable_semantic_scholar"`

	// CrossrefMailto is an optional contact address for CrossRef's polite pool.
	CrossrefMailto string `json:"crossref_mailto,omitempty" yaml:"crossref_mailto,omitempty"`

	// OpenAlexEmail is an optional contact address for OpenAlex's polite pool.
	OpenAlexEmail string `json:"openalex_email,omitempty" yaml:"openalex_email,omitempty"`

	// SemanticScholarAPIKey is an optional API key for higher rate limits.
	SemanticScholarAPIKey string `json:"semantic_scholar_api_key,omitempty" yaml:"semantic_scholar_api_key,omitempty"`
}

// DivisorPolicy selects how the headline average is computed when fewer
// than TopN candidates are available.
type DivisorPolicy string

const (
	// DivisorFixed always divides the score sum by TopN, the behavior the
	// checker has always shipped with. It understates the average when the
	// candidate pool is short.
	DivisorFixed DivisorPolicy = "fixed"

	// DivisorActual divides by the number of slots actually filled.
	DivisorActual DivisorPolicy = "actual"
)

// ReportConfig holds settings for the ranking/reporting stage.
type ReportConfig struct {
	// TopN is the number of top candidates kept in the report (default 5).
	TopN int `json:"top_n" yaml:"top_n"`

	// AverageDivisor selects the divisor policy for the headline average
	// (default fixed).
	AverageDivisor DivisorPolicy `json:"average_divisor" yaml:"average_divisor"`

	// OutputDir is the directory report files are written to (default "reports").
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}

// RecordStoreConfig holds settings for the issued-code record store.
type RecordStoreConfig struct {
	// Dir is the directory holding the SQLite database (default "records").
	Dir string `json:"dir" yaml:"dir"`
}

// PipelineConfig groups all stage configurations for one submission pipeline.
type PipelineConfig struct {
	Sources SourcesConfig     `json:"sources" yaml:"sources"`
	Report  ReportConfig      `json:"report" yaml:"report"`
	Records RecordStoreConfig `json:"records" yaml:"records"`
}
