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

package ffi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetInitialBoardMatchesStartingPosition(t *testing.T) {
	b := GetInitialBoard()
	assert.Equal(t, uint32(0x00000FFF), b.WItems)
	assert.Equal(t, uint32(0xFFF00000), b.BItems)
	assert.Equal(t, uint32(0), b.WKings)
	assert.Equal(t, uint32(0), b.BKings)
}

func TestGenerateMovesFromInitialPositionHasSevenSuccessors(t *testing.T) {
	var out []Board
	n := GenerateMoves(&out, GetInitialBoard(), true)
	assert.Equal(t, 7, n)
	assert.Len(t, out, 7)
}

func TestGenerateMovesRejectsEmptyBoard(t *testing.T) {
	var out []Board
	n := GenerateMoves(&out, Board{}, true)
	assert.Equal(t, -1, n)
}

func TestGenerateMovesBlackTurnNormalizesOrientation(t *testing.T) {
	initial := GetInitialBoard()
	var out []Board
	n := GenerateMoves(&out, initial, false)
	assert.Equal(t, 7, n)
	for _, b := range out {
		assert.NotEqual(t, initial.BItems, b.BItems)
	}
}

func TestGenerateItemMovesRejectsEmptySquare(t *testing.T) {
	var out []Board
	n := GenerateItemMoves(&out, GetInitialBoard(), true, 16)
	assert.Equal(t, -1, n)
}

func TestGenerateItemMovesOnlyMovesRequestedPiece(t *testing.T) {
	var out []Board
	n := GenerateItemMoves(&out, GetInitialBoard(), true, 9)
	assert.Equal(t, 2, n)
}

func TestVerifyMoveAcceptsLegalMoveAndRejectsIllegalOne(t *testing.T) {
	assert.True(t, VerifyMove(GetInitialBoard(), true, 9, 13))
	assert.False(t, VerifyMove(GetInitialBoard(), true, 9, 17))
}

func TestWalkAllMovesVisitsEveryPositionWithinDepth(t *testing.T) {
	visited := 0
	stopped := WalkAllMoves(GetInitialBoard(), true, func(b Board, depth int) bool {
		visited++
		return true
	}, 1)
	assert.False(t, stopped)
	assert.Equal(t, 7, visited)
}

func TestWalkAllMovesStopsWhenCallbackReturnsFalse(t *testing.T) {
	visited := 0
	stopped := WalkAllMoves(GetInitialBoard(), true, func(b Board, depth int) bool {
		visited++
		return false
	}, 3)
	assert.True(t, stopped)
	assert.Equal(t, 1, visited)
}

func TestBuildBoundedTreeRootHasSevenChildrenAtDepthOne(t *testing.T) {
	root := BuildBoundedTree(GetInitialBoard(), true, 1)
	require.NotNil(t, root)
	assert.Len(t, root.Children, 7)
	for _, c := range root.Children {
		assert.Equal(t, StatusDepthLimit, c.Status)
	}
}
