//
// dts - Russian draughts decision tree statistics tool
//
// MIT License
//
// Copyright (c) 2018-2026 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package stats aggregates counters over a DFS traversal of the
// draughts decision tree: total boards visited, a branching-factor
// histogram, wins credited by parity of depth, cache hits, and
// depth-limit cutoffs. A Stats value is mergeable, so workers in a
// multi-threaded search can each keep their own and fold them together
// at the end.
package stats

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var out = message.NewPrinter(language.German)

// Stats holds every counter the DFS drivers feed. The zero value is a
// valid, empty Stats.
type Stats struct {
	TotalBoards uint64

	// WidthHist[n] counts visited positions whose branching factor was
	// exactly n. It grows on demand as wider branching factors are seen.
	WidthHist []uint64

	// MoverWins/OpponentWins count terminal positions (branching factor
	// 0) credited to the loser by depth parity: even depth means the
	// root's own side-to-move had no move, odd depth means the
	// opponent did.
	MoverWins    uint64
	OpponentWins uint64

	DepthCutoffs uint64
	CacheHits    uint64
}

// Consume absorbs one visited-position event: the number of successors
// it had (width) and its depth from the root (root is depth 0). A width
// of 0 is a terminal position and is credited as a loss for the side to
// move at that depth, with MoverWins/OpponentWins chosen by the parity
// of depth relative to the root's side to move.
func (s *Stats) Consume(width, depth int) {
	s.TotalBoards++
	if width >= len(s.WidthHist) {
		grown := make([]uint64, width+1)
		copy(grown, s.WidthHist)
		s.WidthHist = grown
	}
	s.WidthHist[width]++
	if width == 0 {
		if depth%2 == 0 {
			s.OpponentWins++
		} else {
			s.MoverWins++
		}
	}
}

// CacheHit records that a successor's fingerprint was already present
// in the transposition cache.
func (s *Stats) CacheHit() {
	s.CacheHits++
}

// DepthCutoff records that recursion was refused because the
// configured depth limit was reached.
func (s *Stats) DepthCutoff() {
	s.DepthCutoffs++
}

// Merge folds other into s: scalars add pointwise, and the histograms
// add element-wise after the shorter one is conceptually padded with
// zeros. Merge is commutative and associative, so worker results can be
// combined in any order.
func (s *Stats) Merge(other *Stats) {
	s.TotalBoards += other.TotalBoards
	s.MoverWins += other.MoverWins
	s.OpponentWins += other.OpponentWins
	s.DepthCutoffs += other.DepthCutoffs
	s.CacheHits += other.CacheHits

	if len(other.WidthHist) > len(s.WidthHist) {
		grown := make([]uint64, len(other.WidthHist))
		copy(grown, s.WidthHist)
		s.WidthHist = grown
	}
	for i, v := range other.WidthHist {
		s.WidthHist[i] += v
	}
}

// String renders the counters with German-locale thousands separators,
// matching the rest of the tool's number formatting.
func (s *Stats) String() string {
	return out.Sprintf(
		"boards=%d moverWins=%d opponentWins=%d depthCutoffs=%d cacheHits=%d widthHist=%v",
		s.TotalBoards, s.MoverWins, s.OpponentWins, s.DepthCutoffs, s.CacheHits, s.WidthHist,
	)
}
