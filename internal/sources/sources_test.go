// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sources

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/pdiddy/similarity-engine/pkg/types"
)

// --- mock source ---

type mockSource struct {
	name    string
	results []types.CandidateReference
	err     error
	delay   time.Duration
}

func (m *mockSource) Name() string { return m.name }

func (m *mockSource) Search(ctx context.Context, _ string, _ types.SourcesConfig) ([]types.CandidateReference, error) {
	if m.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(m.delay):
		}
	}
	return m.results, m.err
}

func testCfg() types.SourcesConfig {
	return types.SourcesConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   10 * time.Second,
			UserAgent: "test/0.1",
		},
		MaxResults: 10,
	}
}

func candidate(title, source string) types.CandidateReference {
	return types.CandidateReference{
		Title:     title,
		SourceURL: "https://example.org/" + source,
		Source:    source,
	}
}

// --- BuildQuery ---

func TestBuildQuery(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"short text", "The quick brown fox", "The quick brown fox"},
		{"exactly ten", "a b c d e f g h i j", "a b c d e f g h i j"},
		{"truncated to ten", "a b c d e f g h i j k l m", "a b c d e f g h i j"},
		{"collapses whitespace", "one\ttwo\n  three", "one two three"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildQuery(tt.text); got != tt.want {
				t.Errorf("BuildQuery(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

// --- deduplication ---

func TestGatherDedupFirstWins(t *testing.T) {
	first := &mockSource{name: "a", results: []types.CandidateReference{
		{Title: "Paper X", Abstract: "abstract from a", SourceURL: "https://a.example/x", Source: "a"},
	}}
	second := &mockSource{name: "b", results: []types.CandidateReference{
		{Title: "paper x!", Abstract: "different abstract", SourceURL: "https://b.example/x", Source: "b"},
	}}

	var buf bytes.Buffer
	out := Gather(context.Background(), "text", []Source{first, second}, testCfg(), &buf)

	if len(out.Candidates) != 1 {
		t.Fatalf("len(Candidates) = %d, want 1", len(out.Candidates))
	}
	if out.DupsRemoved != 1 {
		t.Errorf("DupsRemoved = %d, want 1", out.DupsRemoved)
	}
	// First occurrence wins wholesale: no field merging.
	got := out.Candidates[0]
	if got.Abstract != "abstract from a" || got.Source != "a" {
		t.Errorf("kept candidate = %+v, want the first occurrence untouched", got)
	}
}

func TestGatherNoDuplicates(t *testing.T) {
	src := &mockSource{name: "a", results: []types.CandidateReference{
		candidate("Paper A", "a"),
		candidate("Paper B", "a"),
	}}

	var buf bytes.Buffer
	out := Gather(context.Background(), "text", []Source{src}, testCfg(), &buf)
	if len(out.Candidates) != 2 || out.DupsRemoved != 0 {
		t.Errorf("got %d candidates, %d dups; want 2, 0", len(out.Candidates), out.DupsRemoved)
	}
}

// --- resilience ---

func TestGatherContinuesAfterSourceFailure(t *testing.T) {
	failing := &mockSource{name: "failing", err: fmt.Errorf("network error")}
	working := &mockSource{name: "working", results: []types.CandidateReference{
		candidate("Paper A", "working"),
	}}

	var buf bytes.Buffer
	out := Gather(context.Background(), "text", []Source{failing, working}, testCfg(), &buf)

	if len(out.Candidates) != 1 {
		t.Errorf("len(Candidates) = %d, want 1", len(out.Candidates))
	}
	if len(out.SourceErrors) != 1 {
		t.Errorf("len(SourceErrors) = %d, want 1", len(out.SourceErrors))
	}
	if !strings.Contains(buf.String(), "warning: source failing unavailable") {
		t.Errorf("progress output missing warning, got %q", buf.String())
	}
}

func TestGatherAllSourcesFail(t *testing.T) {
	a := &mockSource{name: "a", err: fmt.Errorf("boom")}
	b := &mockSource{name: "b", err: fmt.Errorf("boom")}

	var buf bytes.Buffer
	out := Gather(context.Background(), "text", []Source{a, b}, testCfg(), &buf)

	if len(out.Candidates) != 0 {
		t.Errorf("len(Candidates) = %d, want 0", len(out.Candidates))
	}
	if len(out.SourceErrors) != 2 {
		t.Errorf("len(SourceErrors) = %d, want 2", len(out.SourceErrors))
	}
}

func TestGatherTimeoutBehavesLikeFailure(t *testing.T) {
	slow := &mockSource{name: "slow", delay: 500 * time.Millisecond, results: []types.CandidateReference{
		candidate("Slow Paper", "slow"),
	}}
	fast := &mockSource{name: "fast", results: []types.CandidateReference{
		candidate("Fast Paper", "fast"),
	}}

	cfg := testCfg()
	cfg.Timeout = 20 * time.Millisecond

	var buf bytes.Buffer
	out := Gather(context.Background(), "text", []Source{slow, fast}, cfg, &buf)

	if len(out.Candidates) != 1 || out.Candidates[0].Title != "Fast Paper" {
		t.Errorf("Candidates = %+v, want only the fast source's result", out.Candidates)
	}
	if len(out.SourceErrors) != 1 {
		t.Errorf("len(SourceErrors) = %d, want 1", len(out.SourceErrors))
	}
}

// --- ordering ---

func TestGatherPreservesDeclarationOrder(t *testing.T) {
	// The slow source is declared first and must still come first in the
	// merged output: discovery order is declaration order, not completion
	// order.
	slow := &mockSource{name: "slow", delay: 30 * time.Millisecond, results: []types.CandidateReference{
		candidate("Slow One", "slow"),
		candidate("Slow Two", "slow"),
	}}
	fast := &mockSource{name: "fast", results: []types.CandidateReference{
		candidate("Fast One", "fast"),
	}}

	var buf bytes.Buffer
	out := Gather(context.Background(), "text", []Source{slow, fast}, testCfg(), &buf)

	want := []string{"Slow One", "Slow Two", "Fast One"}
	if len(out.Candidates) != len(want) {
		t.Fatalf("len(Candidates) = %d, want %d", len(out.Candidates), len(want))
	}
	for i, title := range want {
		if out.Candidates[i].Title != title {
			t.Errorf("Candidates[%d].Title = %q, want %q", i, out.Candidates[i].Title, title)
		}
	}
}

// --- normalizeTitle ---

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Paper X", "paper x"},
		{"  PAPER   X  ", "paper x"},
		{"Paper X!", "paper x"},
		{"Paper: X", "paper x"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := normalizeTitle(tt.input); got != tt.want {
				t.Errorf("normalizeTitle(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
