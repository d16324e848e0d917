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

// Package ffi is the stable, absolute-color board surface meant to be
// exported across a C boundary (see cmd/dtscgo): unlike
// internal/position, whose Position always carries the side to move in
// Sides[0], Board always carries white's and black's pieces in their
// own fixed fields. Every entry point here normalizes a Board plus an
// is-white-turn flag into a mover-first Position, calls into
// internal/movegen, and converts back.
package ffi

import (
	"github.com/frankkopp/dts/internal/board"
	"github.com/frankkopp/dts/internal/cache"
	"github.com/frankkopp/dts/internal/movegen"
	"github.com/frankkopp/dts/internal/position"
)

// Board is the absolute-color board representation: w/b fields always
// mean white/black, regardless of whose turn it is.
type Board struct {
	WKings uint32
	WItems uint32
	BKings uint32
	BItems uint32
}

// GetInitialBoard returns the standard Russian draughts starting
// position with white's men on the low squares.
func GetInitialBoard() Board {
	return positionToBoard(position.Initial, true)
}

// GenerateMoves fills out with every position reachable in one full
// move (mandatory-capture chains included) from b, preserving b's
// orientation in the results. isWhiteTurn false means b is given with
// black to move. Returns the number of successors generated, or a
// negative sentinel if b's from-square bitmaps are invalid (callers
// must not pass a board violating the invariants in internal/position;
// this only guards the one cheap, common mistake of an empty board).
func GenerateMoves(out *[]Board, b Board, isWhiteTurn bool) int {
	p := boardToPosition(b, isWhiteTurn)
	if p.Occupied() == 0 {
		return -1
	}
	succ := movegen.New().Successors(p)
	*out = (*out)[:0]
	for _, s := range succ {
		*out = append(*out, positionToBoard(s, isWhiteTurn))
	}
	return len(succ)
}

// GenerateItemMoves generates only the successors that move the piece
// currently on square itemIndex (0..31, in b's own orientation),
// supplementing GenerateMoves for an interactive board editor: if any
// piece on the board has a mandatory capture, only itemIndex's own
// captures are produced (and none, if some other piece must capture
// instead); otherwise only itemIndex's simple moves. Returns a
// negative sentinel for an out-of-range or empty square.
func GenerateItemMoves(out *[]Board, b Board, isWhiteTurn bool, itemIndex int) int {
	if itemIndex < 0 || itemIndex >= board.NumSquares {
		return -1
	}
	p := boardToPosition(b, isWhiteTurn)
	if !p.OwnItems().Has(board.ItemMask(itemIndex)) {
		return -1
	}
	succ := movegen.New().ItemSuccessors(p, itemIndex)
	*out = (*out)[:0]
	for _, s := range succ {
		*out = append(*out, positionToBoard(s, isWhiteTurn))
	}
	return len(succ)
}

// VerifyMove reports whether moving (and, for a capture chain, ending)
// from square from to square to is a legal full move for the piece on
// from, by generating from's own successors and checking whether any
// of them has to's bit newly set and from's bit cleared in the mover's
// item bitmap.
func VerifyMove(b Board, isWhiteTurn bool, from, to int) bool {
	if from < 0 || from >= board.NumSquares || to < 0 || to >= board.NumSquares {
		return false
	}
	p := boardToPosition(b, isWhiteTurn)
	if !p.OwnItems().Has(board.ItemMask(from)) {
		return false
	}
	if p.Occupied().Has(board.ItemMask(to)) {
		return false
	}
	toMask := board.Bitmap(0).Add(board.ItemMask(to))
	for _, s := range movegen.New().ItemSuccessors(p, from) {
		if s.Sides[0].Items.HasAll(toMask) && !s.Sides[0].Items.Has(board.ItemMask(from)) {
			return true
		}
	}
	return false
}

// WalkCallback is invoked for every non-root position visited by
// WalkAllMoves, in the caller's orientation, with depth measured from
// the root. Returning false stops the traversal early.
type WalkCallback func(b Board, depth int) bool

// WalkAllMoves runs a cache-enabled depth-first walk below b up to
// maxDepth plies, invoking callback for every newly-seen position
// other than the root itself; a position whose fingerprint was already
// inserted (a transposition) is not revisited or reported again.
// Returns false if the walk completed every reachable branch within
// maxDepth, true if callback requested an early stop.
func WalkAllMoves(b Board, isWhiteTurn bool, callback WalkCallback, maxDepth int) (stopped bool) {
	root := boardToPosition(b, isWhiteTurn)
	seen := cache.NewStd()
	gens := make([]*movegen.Generator, maxDepth+1)
	var walk func(p position.Position, depth int, white bool) bool
	walk = func(p position.Position, depth int, white bool) bool {
		if gens[depth] == nil {
			gens[depth] = movegen.New()
		}
		for _, s := range gens[depth].Successors(p) {
			hi, lo := s.Fingerprint()
			if !seen.Insert(hi, lo) {
				continue
			}
			if !callback(positionToBoard(s, white), depth+1) {
				return false
			}
			if depth+1 < maxDepth {
				if !walk(s.Rotate(), depth+1, !white) {
					return false
				}
			}
		}
		return true
	}
	return !walk(root, 0, isWhiteTurn)
}

func boardToPosition(b Board, isWhiteTurn bool) position.Position {
	if isWhiteTurn {
		return position.Position{Sides: [2]position.Side{
			{Items: board.Bitmap(b.WItems), Kings: board.Bitmap(b.WKings)},
			{Items: board.Bitmap(b.BItems), Kings: board.Bitmap(b.BKings)},
		}}
	}
	return position.Position{Sides: [2]position.Side{
		{Items: board.ReverseBits32(board.Bitmap(b.BItems)), Kings: board.ReverseBits32(board.Bitmap(b.BKings))},
		{Items: board.ReverseBits32(board.Bitmap(b.WItems)), Kings: board.ReverseBits32(board.Bitmap(b.WKings))},
	}}
}

func positionToBoard(p position.Position, isWhiteTurn bool) Board {
	if isWhiteTurn {
		return Board{
			WKings: uint32(p.Sides[0].Kings),
			WItems: uint32(p.Sides[0].Items),
			BKings: uint32(p.Sides[1].Kings),
			BItems: uint32(p.Sides[1].Items),
		}
	}
	return Board{
		WKings: uint32(board.ReverseBits32(p.Sides[1].Kings)),
		WItems: uint32(board.ReverseBits32(p.Sides[1].Items)),
		BKings: uint32(board.ReverseBits32(p.Sides[0].Kings)),
		BItems: uint32(board.ReverseBits32(p.Sides[0].Items)),
	}
}
