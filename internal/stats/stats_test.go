/*
 * MIT License
 *
 * Copyright (c) 2018-2026 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsumeBuildsHistogram(t *testing.T) {
	var s Stats
	s.Consume(3, 1)
	s.Consume(0, 2)
	s.Consume(7, 1)

	assert.Equal(t, uint64(3), s.TotalBoards)
	assert.Equal(t, uint64(1), s.WidthHist[0])
	assert.Equal(t, uint64(1), s.WidthHist[3])
	assert.Equal(t, uint64(1), s.WidthHist[7])
	assert.Len(t, s.WidthHist, 8)
}

func TestConsumeCreditsWinByDepthParity(t *testing.T) {
	var s Stats
	s.Consume(0, 0) // root's own side to move has no move: opponent wins
	assert.Equal(t, uint64(1), s.OpponentWins)
	assert.Equal(t, uint64(0), s.MoverWins)

	var s2 Stats
	s2.Consume(0, 1) // opponent (at depth 1) has no move: root's mover wins
	assert.Equal(t, uint64(1), s2.MoverWins)
	assert.Equal(t, uint64(0), s2.OpponentWins)
}

func TestCacheHitAndDepthCutoff(t *testing.T) {
	var s Stats
	s.CacheHit()
	s.CacheHit()
	s.DepthCutoff()
	assert.Equal(t, uint64(2), s.CacheHits)
	assert.Equal(t, uint64(1), s.DepthCutoffs)
}

func TestMergeIsCommutativeAndPadsHistograms(t *testing.T) {
	a := Stats{TotalBoards: 5, WidthHist: []uint64{1, 2}, MoverWins: 1}
	b := Stats{TotalBoards: 3, WidthHist: []uint64{1, 1, 1}, OpponentWins: 2, CacheHits: 4}

	ab := a
	ab.Merge(&b)

	ba := b
	ba.Merge(&a)

	assert.Equal(t, ab.TotalBoards, ba.TotalBoards)
	assert.Equal(t, ab.MoverWins, ba.MoverWins)
	assert.Equal(t, ab.OpponentWins, ba.OpponentWins)
	assert.Equal(t, ab.CacheHits, ba.CacheHits)
	assert.Equal(t, []uint64{2, 3, 1}, ab.WidthHist)
	assert.Equal(t, []uint64{2, 3, 1}, ba.WidthHist)
}

func TestMergeIsAssociative(t *testing.T) {
	a := Stats{TotalBoards: 1, WidthHist: []uint64{1}}
	b := Stats{TotalBoards: 2, WidthHist: []uint64{0, 1}}
	c := Stats{TotalBoards: 3, WidthHist: []uint64{0, 0, 1}}

	abThenC := a
	abThenC.Merge(&b)
	abThenC.Merge(&c)

	bcFirst := b
	bcFirst.Merge(&c)
	aThenBC := a
	aThenBC.Merge(&bcFirst)

	assert.Equal(t, abThenC.TotalBoards, aThenBC.TotalBoards)
	assert.Equal(t, abThenC.WidthHist, aThenBC.WidthHist)
}
