// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pdiddy/similarity-engine/internal/httputil"
	"github.com/pdiddy/similarity-engine/pkg/types"
)

// semanticAPIBase is the Semantic Scholar paper search endpoint. Declared
// as a var so tests can substitute an httptest server.
var semanticAPIBase = "https://api.semanticscholar.org/graph/v1/paper/search"

const semanticFields = "title,abstract,url,externalIds"

// SemanticScholarSource queries the Semantic Scholar API.
type SemanticScholarSource struct {
	Client *http.Client
	APIKey string
}

// Name returns the source identifier.
func (s *SemanticScholarSource) Name() string { return "semantic_scholar" }

// Search queries Semantic Scholar and maps each paper into a
// CandidateReference. The public endpoint rate-limits aggressively, so
// the request goes through the 429 retry helper.
func (s *SemanticScholarSource) Search(ctx context.Context, query string, cfg types.SourcesConfig) ([]types.CandidateReference, error) {
	if query == "" {
		return nil, fmt.Errorf("empty Semantic Scholar query")
	}

	params := url.Values{
		"query":  {query},
		"limit":  {fmt.Sprintf("%d", resultCap(cfg))},
		"fields": {semanticFields},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, semanticAPIBase+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)
	if s.APIKey != "" {
		req.Header.Set("x-api-key", s.APIKey)
	}

	resp, err := httputil.DoWithRetry(ctx, s.Client, req, 0)
	if err != nil {
		return nil, fmt.Errorf("Semantic Scholar API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Semantic Scholar API returned HTTP %d", resp.StatusCode)
	}

	var sr semanticResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("parsing Semantic Scholar response: %w", err)
	}

	var results []types.CandidateReference
	for _, paper := range sr.Data {
		c := types.CandidateReference{
			Title:     TitleUnavailable,
			Abstract:  paper.Abstract,
			SourceURL: LinkUnavailable,
			Source:    "semantic_scholar",
		}
		if paper.Title != "" {
			c.Title = paper.Title
		}
		if paper.URL != "" {
			c.SourceURL = paper.URL
		} else if paper.ExternalIDs.DOI != "" {
			c.SourceURL = "https://doi.org/" + paper.ExternalIDs.DOI
		}
		results = append(results, c)
	}
	return results, nil
}

// Semantic Scholar API JSON structures.
type semanticResponse struct {
	Total int             `json:"total"`
	Data  []semanticPaper `json:"data"`
}

type semanticPaper struct {
	PaperID     string              `json:"paperId"`
	Title       string              `json:"title"`
	Abstract    string              `json:"abstract"`
	URL         string              `json:"url"`
	ExternalIDs semanticExternalIDs `json:"externalIds"`
}

type semanticExternalIDs struct {
	DOI string `json:"DOI"`
}
