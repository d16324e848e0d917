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
// Package position defines the Position value type: two per-side
// bitmaps, the side-to-move/opponent ordering, rotation, and the
// 128-bit fingerprint the transposition cache keys on.
package position

import "github.com/frankkopp/dts/internal/board"

// Side holds one player's pieces. Kings must be a subset of Items.
type Side struct {
	Items board.Bitmap
	Kings board.Bitmap
}

// Position is an ordered pair of Sides: Sides[0] is always the side to
// move, Sides[1] the opponent. Positions are immutable values.
type Position struct {
	Sides [2]Side
}

// Initial is the standard Russian draughts starting position: 12 men
// per side on the back three rows, side-to-move's men on squares 0..11.
var Initial = Position{
	Sides: [2]Side{
		{Items: 0x00000FFF},
		{Items: 0xFFF00000},
	},
}

// Occupied returns the union of both sides' items.
func (p Position) Occupied() board.Bitmap {
	return p.Sides[0].Items.Union(p.Sides[1].Items)
}

// OwnItems implements board.Renderable.
func (p Position) OwnItems() board.Bitmap { return p.Sides[0].Items }

// OwnKings implements board.Renderable.
func (p Position) OwnKings() board.Bitmap { return p.Sides[0].Kings }

// OppItems implements board.Renderable.
func (p Position) OppItems() board.Bitmap { return p.Sides[1].Items }

// OppKings implements board.Renderable.
func (p Position) OppKings() board.Bitmap { return p.Sides[1].Kings }

// Rotate returns the position as seen by the opponent: the sides swap
// and every bitmap is mirrored by reversing all 32 bits. Rotate is an
// involution: Rotate(Rotate(p)) == p.
func (p Position) Rotate() Position {
	return Position{
		Sides: [2]Side{
			{
				Items: board.ReverseBits32(p.Sides[1].Items),
				Kings: board.ReverseBits32(p.Sides[1].Kings),
			},
			{
				Items: board.ReverseBits32(p.Sides[0].Items),
				Kings: board.ReverseBits32(p.Sides[0].Kings),
			},
		},
	}
}

// Fingerprint returns the 128-bit (as two uint64 words) canonical
// identifier of the position in its current orientation: the high word
// packs both sides' king bitmaps, the low word both sides' item
// bitmaps. Fingerprint is orientation-dependent by design, since it
// encodes whose turn it is.
func (p Position) Fingerprint() (hi, lo uint64) {
	hi = uint64(p.Sides[0].Kings)<<32 | uint64(p.Sides[1].Kings)
	lo = uint64(p.Sides[0].Items)<<32 | uint64(p.Sides[1].Items)
	return hi, lo
}

// Equal reports whether p and other have identical sides in the same
// orientation.
func (p Position) Equal(other Position) bool {
	return p.Sides[0] == other.Sides[0] && p.Sides[1] == other.Sides[1]
}

// Valid reports whether the whole-board invariants from the data model
// hold: kings are a subset of items for each side, no piece overlap
// between sides, and no opponent man stands on the opponent's own king
// row (squares 0..3 in this orientation), where it would have been
// crowned. It is not called on any hot path — §7 treats these
// invariants as assumed, not checked, during search — but is useful for
// tests and for validating FFI input.
func (p Position) Valid() bool {
	for _, s := range p.Sides {
		if !s.Items.HasAll(s.Kings) {
			return false
		}
		if s.Items.PopCount() > 12 {
			return false
		}
	}
	if p.Sides[0].Items.HasAny(p.Sides[1].Items) {
		return false
	}
	if p.Sides[1].Items.Diff(p.Sides[1].Kings).HasAny(board.ReverseBits32(board.KingRowMask)) {
		return false
	}
	return true
}
