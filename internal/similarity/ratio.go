// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package similarity computes a bounded lexical-overlap ratio between a
// submitted text and a candidate reference.
package similarity

import "github.com/pdiddy/similarity-engine/pkg/types"

// Ratio returns 2*M/T, where M is the total length of the matching
// blocks found by repeatedly taking the longest common substring of the
// two rune sequences and recursing on the pieces to its left and right,
// and T is the combined length of both sequences. The result is in
// [0,1]: 1.0 when the sequences are identical and non-empty, 0.0 when
// they share nothing or T is zero.
//
// The submitted text is always passed as a; the block search scans a
// left to right, so the ratio is deterministic even though the formula
// is symmetric. No case folding or token normalization is applied.
func Ratio(a, b string) float64 {
	ar := []rune(a)
	br := []rune(b)
	total := len(ar) + len(br)
	if total == 0 {
		return 0
	}
	matched := matchingLength(ar, br)
	return 2 * float64(matched) / float64(total)
}

// Score compares the submitted text against a candidate's comparable
// text (title, a space, then the abstract) and annotates the candidate
// with the resulting ratio. Pure: no network, no mutation of c.
func Score(text string, c types.CandidateReference) types.ScoredCandidate {
	comparable := c.Title + " " + c.Abstract
	return types.ScoredCandidate{
		Title:     c.Title,
		SourceURL: c.SourceURL,
		Source:    c.Source,
		Score:     Ratio(text, comparable),
	}
}

// matchingLength sums the lengths of all matching blocks between a and b.
func matchingLength(a, b []rune) int {
	// Positions of every rune in b, for the inner matching loop.
	b2j := make(map[rune][]int, len(b))
	for j, r := range b {
		b2j[r] = append(b2j[r], j)
	}

	type span struct{ alo, ahi, blo, bhi int }
	queue := []span{{0, len(a), 0, len(b)}}
	matched := 0

	for len(queue) > 0 {
		s := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		i, j, size := longestMatch(a, b2j, s.alo, s.ahi, s.blo, s.bhi)
		if size == 0 {
			continue
		}
		matched += size
		if s.alo < i && s.blo < j {
			queue = append(queue, span{s.alo, i, s.blo, j})
		}
		if i+size < s.ahi && j+size < s.bhi {
			queue = append(queue, span{i + size, s.ahi, j + size, s.bhi})
		}
	}
	return matched
}

// longestMatch finds the longest block a[i:i+size] == b[j:j+size] with
// alo <= i < i+size <= ahi and blo <= j < j+size <= bhi. Among equally
// long blocks it prefers the one starting earliest in a, then earliest
// in b, which keeps the recursion deterministic.
func longestMatch(a []rune, b2j map[rune][]int, alo, ahi, blo, bhi int) (besti, bestj, size int) {
	besti, bestj = alo, blo

	// j2len[j] is the length of the longest match ending at a[i-1], b[j].
	j2len := make(map[int]int)
	for i := alo; i < ahi; i++ {
		next := make(map[int]int)
		for _, j := range b2j[a[i]] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			k := j2len[j-1] + 1
			next[j] = k
			if k > size {
				besti, bestj, size = i-k+1, j-k+1, k
			}
		}
		j2len = next
	}
	return besti, bestj, size
}
