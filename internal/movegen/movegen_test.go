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

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/dts/internal/board"
	"github.com/frankkopp/dts/internal/position"
)

func TestInitialPositionBranchingFactor(t *testing.T) {
	g := New()
	succ := g.Successors(position.Initial)
	assert.Len(t, succ, 7)
}

func TestLoneManCornerMove(t *testing.T) {
	p := position.Position{Sides: [2]position.Side{
		{Items: board.Bitmap(board.ItemMask(0))},
		{},
	}}
	g := New()
	succ := g.Successors(p)
	assert.Len(t, succ, 1)
	assert.Equal(t, board.Bitmap(board.ItemMask(4)), succ[0].Sides[0].Items)
}

func TestManPromotesOnReachingKingRow(t *testing.T) {
	p := position.Position{Sides: [2]position.Side{
		{Items: board.Bitmap(board.ItemMask(24))},
		{},
	}}
	g := New()
	succ := g.Successors(p)
	assert.Len(t, succ, 1)
	assert.Equal(t, board.Bitmap(board.ItemMask(28)), succ[0].Sides[0].Items)
	assert.Equal(t, board.Bitmap(board.ItemMask(28)), succ[0].Sides[0].Kings)
}

func TestForcedCaptureSuppressesOtherMoves(t *testing.T) {
	// man at 17 can capture the opponent man at 21, landing on 26; a second
	// own man at 0 has a simple move available but must not appear, since
	// capture is mandatory whenever any piece on the board has one.
	p := position.Position{Sides: [2]position.Side{
		{Items: board.Bitmap(board.ItemMask(17)).Add(board.ItemMask(0))},
		{Items: board.Bitmap(board.ItemMask(21))},
	}}
	g := New()
	succ := g.Successors(p)
	assert.Len(t, succ, 1)

	want := position.Position{Sides: [2]position.Side{
		{Items: board.Bitmap(board.ItemMask(0)).Add(board.ItemMask(26))},
		{},
	}}
	assert.True(t, succ[0].Equal(want))
}

func TestKingLongSlideFromCorner(t *testing.T) {
	p := position.Position{Sides: [2]position.Side{
		{Items: board.Bitmap(board.ItemMask(0)), Kings: board.Bitmap(board.ItemMask(0))},
		{},
	}}
	g := New()
	succ := g.Successors(p)
	assert.Len(t, succ, 7)
}

func TestKingMultiCaptureDedupByFinalPosition(t *testing.T) {
	// king at 0, enemies at 9 (distance 2) and 22 (distance 5) along the
	// same ray. The king may stop at either 13 or 18 after the first
	// capture before continuing on to capture the piece at 22 and land on
	// 27 - two distinct paths producing an identical final position, which
	// must collapse to a single successor.
	p := position.Position{Sides: [2]position.Side{
		{Items: board.Bitmap(board.ItemMask(0)), Kings: board.Bitmap(board.ItemMask(0))},
		{Items: board.Bitmap(board.ItemMask(9)).Add(board.ItemMask(22))},
	}}
	g := New()
	succ := g.Successors(p)

	count := 0
	for _, s := range succ {
		if s.Sides[0].Items == board.Bitmap(board.ItemMask(27)) && s.Sides[1].Items == 0 {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestItemSuccessorsOnlyMovesRequestedPiece(t *testing.T) {
	p := position.Initial
	g := New()
	succ := g.ItemSuccessors(p, 9)
	for _, s := range succ {
		assert.True(t, s.Sides[0].Items.Has(board.ItemMask(12)) || s.Sides[0].Items.Has(board.ItemMask(13)))
		assert.False(t, s.Sides[0].Items.Has(board.ItemMask(9)))
	}
	assert.Len(t, succ, 2)
}
