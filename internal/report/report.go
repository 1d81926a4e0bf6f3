// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report ranks scored candidates and assembles the similarity
// report, including the verification code bound to the submitted text.
package report

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
	"time"

	"github.com/pdiddy/similarity-engine/pkg/types"
)

// codeLength is the number of hex digits kept from the digest.
const codeLength = 10

// defaultTopN is the number of report slots when none is configured.
const defaultTopN = 5

// Code derives the verification code for a submitted text: the SHA-256
// digest of its exact bytes, truncated to the first ten hex characters
// and upper-cased. Identical text always yields the identical code; any
// byte-level change yields a different code with overwhelming
// probability.
func Code(text string) string {
	sum := sha256.Sum256([]byte(text))
	return strings.ToUpper(hex.EncodeToString(sum[:])[:codeLength])
}

// Build assembles the report for one submission: stable-sorts the scored
// candidates by score descending (ties keep discovery order), keeps the
// top N, and computes the headline average per the configured divisor
// policy. Zero candidates produce a no_candidates report with the
// verification code still present, never an error.
func Build(text string, scored []types.ScoredCandidate, cfg types.ReportConfig) types.SimilarityReport {
	topN := cfg.TopN
	if topN <= 0 {
		topN = defaultTopN
	}

	ranked := make([]types.ScoredCandidate, len(scored))
	copy(ranked, scored)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}

	rep := types.SimilarityReport{
		Status:           types.StatusOK,
		TopCandidates:    ranked,
		AverageScore:     average(ranked, topN, cfg.AverageDivisor),
		VerificationCode: Code(text),
		GeneratedAt:      time.Now().UTC(),
	}
	if len(ranked) == 0 {
		rep.Status = types.StatusNoCandidates
	}
	return rep
}

// average computes the headline statistic over the top slots. The fixed
// policy divides by topN even when fewer slots are filled — that is the
// behavior the checker has always shipped with, kept as the default so
// existing reports stay comparable. The actual policy divides by the
// filled slot count.
func average(ranked []types.ScoredCandidate, topN int, policy types.DivisorPolicy) float64 {
	if len(ranked) == 0 {
		return 0
	}
	var sum float64
	for _, c := range ranked {
		sum += c.Score
	}
	if policy == types.DivisorActual {
		return sum / float64(len(ranked))
	}
	return sum / float64(topN)
}
