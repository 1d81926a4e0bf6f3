// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/pdiddy/similarity-engine/pkg/types"
)

// openAlexAPIBase is the OpenAlex Works search endpoint. Declared as a
// var so tests can substitute an httptest server.
var openAlexAPIBase = "https://api.openalex.org/works"

// OpenAlexSource queries the OpenAlex API.
type OpenAlexSource struct {
	Client *http.Client
	// Email is sent as mailto parameter for polite pool access.
	Email string
}

// Name returns the source identifier.
func (s *OpenAlexSource) Name() string { return "openalex" }

// Search queries OpenAlex and maps each work into a CandidateReference.
func (s *OpenAlexSource) Search(ctx context.Context, query string, cfg types.SourcesConfig) ([]types.CandidateReference, error) {
	if query == "" {
		return nil, fmt.Errorf("empty OpenAlex query")
	}

	params := url.Values{
		"search":   {query},
		"per_page": {fmt.Sprintf("%d", resultCap(cfg))},
		"page":     {"1"},
	}
	if s.Email != "" {
		params.Set("mailto", s.Email)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, openAlexAPIBase+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("OpenAlex API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("OpenAlex API returned HTTP %d", resp.StatusCode)
	}

	var oar openAlexResponse
	if err := json.NewDecoder(resp.Body).Decode(&oar); err != nil {
		return nil, fmt.Errorf("parsing OpenAlex response: %w", err)
	}

	var results []types.CandidateReference
	for _, work := range oar.Results {
		c := types.CandidateReference{
			Title:     TitleUnavailable,
			Abstract:  reconstructAbstract(work.AbstractInvertedIndex),
			SourceURL: LinkUnavailable,
			Source:    "openalex",
		}
		if work.Title != "" {
			c.Title = work.Title
		}
		// Prefer the DOI link; fall back to the OpenAlex work URL.
		if work.DOI != "" {
			c.SourceURL = work.DOI
		} else if work.ID != "" {
			c.SourceURL = work.ID
		}
		results = append(results, c)
	}
	return results, nil
}

// reconstructAbstract converts OpenAlex's abstract_inverted_index back to
// plain text. The inverted index maps each word to the positions where
// that word appears.
func reconstructAbstract(invertedIndex map[string][]int) string {
	if len(invertedIndex) == 0 {
		return ""
	}

	type posWord struct {
		pos  int
		word string
	}
	var pairs []posWord
	for word, positions := range invertedIndex {
		for _, pos := range positions {
			pairs = append(pairs, posWord{pos: pos, word: word})
		}
	}

	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].pos < pairs[j].pos
	})

	words := make([]string, len(pairs))
	for i, p := range pairs {
		words[i] = p.word
	}
	return strings.Join(words, " ")
}

// OpenAlex API JSON structures.
type openAlexResponse struct {
	Results []openAlexWork `json:"results"`
}

type openAlexWork struct {
	ID                    string           `json:"id"`
	Title                 string           `json:"title"`
	DOI                   string           `json:"doi"`
	AbstractInvertedIndex map[string][]int `json:"abstract_inverted_index"`
}
