// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pdiddy/similarity-engine/pkg/types"
)

// crossrefAPIBase is the CrossRef works search endpoint. Declared as a
// var so tests can substitute an httptest server.
var crossrefAPIBase = "https://api.crossref.org/works"

// CrossrefSource queries the CrossRef REST API.
type CrossrefSource struct {
	Client *http.Client
	// Mailto is sent as the mailto parameter for polite pool access.
	Mailto string
}

// Name returns the source identifier.
func (s *CrossrefSource) Name() string { return "crossref" }

// Search queries CrossRef and maps each work into a CandidateReference.
func (s *CrossrefSource) Search(ctx context.Context, query string, cfg types.SourcesConfig) ([]types.CandidateReference, error) {
	if query == "" {
		return nil, fmt.Errorf("empty CrossRef query")
	}

	params := url.Values{
		"query": {query},
		"rows":  {fmt.Sprintf("%d", resultCap(cfg))},
	}
	if s.Mailto != "" {
		params.Set("mailto", s.Mailto)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, crossrefAPIBase+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("CrossRef API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("CrossRef API returned HTTP %d", resp.StatusCode)
	}

	var cr crossrefResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return nil, fmt.Errorf("parsing CrossRef response: %w", err)
	}

	var results []types.CandidateReference
	for _, item := range cr.Message.Items {
		c := types.CandidateReference{
			Title:     TitleUnavailable,
			Abstract:  item.Abstract,
			SourceURL: LinkUnavailable,
			Source:    "crossref",
		}
		// CrossRef returns the title as a list; the first entry is the
		// primary title.
		if len(item.Title) > 0 && item.Title[0] != "" {
			c.Title = item.Title[0]
		}
		if item.URL != "" {
			c.SourceURL = item.URL
		}
		results = append(results, c)
	}
	return results, nil
}

// CrossRef API JSON structures.
type crossrefResponse struct {
	Message crossrefMessage `json:"message"`
}

type crossrefMessage struct {
	Items []crossrefItem `json:"items"`
}

type crossrefItem struct {
	Title    []string `json:"title"`
	Abstract string   `json:"abstract"`
	URL      string   `json:"URL"`
}
