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

package tables

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/dts/internal/board"
)

func TestFwdDstCorner(t *testing.T) {
	// square 0 (a1) only has one forward diagonal neighbour: b2 (index 4).
	dsts := T.FwdDst[0]
	assert.Len(t, dsts, 1)
	assert.Equal(t, board.ItemMask(4), dsts[0])
}

func TestKingMoveFromCornerHasSevenSquares(t *testing.T) {
	total := 0
	for d := 0; d < 4; d++ {
		total += len(T.KingMove[0][d])
	}
	// from a corner only one diagonal ray exists, with 7 squares on it.
	assert.Equal(t, 7, total)
}

func TestManCapLandingIsTwoStepsAway(t *testing.T) {
	for i := 0; i < board.NumSquares; i++ {
		xi, yi := board.XYFromIndex(i)
		for _, c := range T.ManCap[i] {
			assert.NotEqual(t, c.Landing, i)
			x, y := board.XYFromIndex(c.Landing)
			assert.True(t, (x-xi == 2 || xi-x == 2) && (y-yi == 2 || yi-y == 2),
				"landing %d from %d", c.Landing, i)
		}
	}
}

func TestKingCapLandingsAreOrdered(t *testing.T) {
	// for every square and direction, each capture point has at least one
	// landing square, and its landings lie at strictly increasing distance
	// from the starting square.
	for i := 0; i < board.NumSquares; i++ {
		xi, _ := board.XYFromIndex(i)
		for d := 0; d < 4; d++ {
			for _, c := range T.KingCap[i][d] {
				assert.NotEmpty(t, c.Landings)
				prev := 0
				for _, l := range c.Landings {
					x, _ := board.XYFromIndex(l)
					dist := x - xi
					if dist < 0 {
						dist = -dist
					}
					assert.Greater(t, dist, prev)
					prev = dist
				}
			}
		}
	}
}
