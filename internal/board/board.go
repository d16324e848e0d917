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
// Package board provides the coordinate and bitboard primitives the rest
// of the engine is built on: converting between the 1D square index used
// everywhere else and 2D (x,y) board coordinates, single-bit masks, the
// king-row test, and 32-bit mirror reversal used by Rotate.
//
// The 32 playable squares are numbered row-major across dark squares
// only, starting at the side-to-move's back rank (0..3) and ending at
// the opponent's back rank (28..31), matching the numbering used
// throughout the original C++ implementation this package is ported
// from.
package board

import "fmt"

// Bitmap is a set of square indices, one bit per square.
type Bitmap uint32

// Mask is a single square expressed as a one-bit Bitmap.
type Mask uint32

// KingRowMask is the opponent's back rank in side-to-move orientation:
// squares 28..31.
const KingRowMask Bitmap = 0xF0000000

// NumSquares is the number of playable dark squares on the board.
const NumSquares = 32

// IndexFromXY converts 2D board coordinates (0 <= x,y < 8) to the
// corresponding square index. Only dark squares (where x,y have the
// expected parity) produce a meaningful result; callers are expected to
// only call this with coordinates produced by XYFromIndex or otherwise
// known to land on a dark square.
func IndexFromXY(x, y int) int {
	return 4*y + x/2
}

// XYFromIndex converts a square index (0..31) to 2D board coordinates.
func XYFromIndex(index int) (x, y int) {
	y = index / 4
	rem := index % 4
	if y%2 == 0 {
		x = 2 * rem
	} else {
		x = 2*rem + 1
	}
	return x, y
}

// ItemMask returns the single-bit mask for a square index.
func ItemMask(index int) Mask {
	return Mask(1 << uint(index))
}

// IsOnKingRow reports whether mask occupies one of the opponent's back
// rank squares (indices 28..31) in side-to-move orientation.
func IsOnKingRow(m Mask) bool {
	return Bitmap(m)&KingRowMask != 0
}

// Has reports whether the item occupies square sq.
func (b Bitmap) Has(sq Mask) bool {
	return b&Bitmap(sq) != 0
}

// HasAny reports whether b and other share any square.
func (b Bitmap) HasAny(other Bitmap) bool {
	return b&other != 0
}

// HasAll reports whether b contains every square set in other.
func (b Bitmap) HasAll(other Bitmap) bool {
	return b&other == other
}

// Add returns b with the given square added.
func (b Bitmap) Add(sq Mask) Bitmap {
	return b | Bitmap(sq)
}

// Remove returns b with the given square cleared.
func (b Bitmap) Remove(sq Mask) Bitmap {
	return b &^ Bitmap(sq)
}

// Union returns the set union of b and other.
func (b Bitmap) Union(other Bitmap) Bitmap {
	return b | other
}

// Diff returns b with every square in other cleared.
func (b Bitmap) Diff(other Bitmap) Bitmap {
	return b &^ other
}

// Select returns the subset of items that are also in mask.
func (b Bitmap) Select(mask Bitmap) Bitmap {
	return b & mask
}

// PopCount returns the number of squares set in b.
func (b Bitmap) PopCount() int {
	n := 0
	for x := b; x != 0; x &= x - 1 {
		n++
	}
	return n
}

// bitReverseTable256 reverses the bits within a single byte. Ported
// directly from the reference implementation's lookup table.
var bitReverseTable256 = [256]uint32{
	0x00, 0x80, 0x40, 0xC0, 0x20, 0xA0, 0x60, 0xE0, 0x10, 0x90, 0x50, 0xD0, 0x30, 0xB0, 0x70, 0xF0,
	0x08, 0x88, 0x48, 0xC8, 0x28, 0xA8, 0x68, 0xE8, 0x18, 0x98, 0x58, 0xD8, 0x38, 0xB8, 0x78, 0xF8,
	0x04, 0x84, 0x44, 0xC4, 0x24, 0xA4, 0x64, 0xE4, 0x14, 0x94, 0x54, 0xD4, 0x34, 0xB4, 0x74, 0xF4,
	0x0C, 0x8C, 0x4C, 0xCC, 0x2C, 0xAC, 0x6C, 0xEC, 0x1C, 0x9C, 0x5C, 0xDC, 0x3C, 0xBC, 0x7C, 0xFC,
	0x02, 0x82, 0x42, 0xC2, 0x22, 0xA2, 0x62, 0xE2, 0x12, 0x92, 0x52, 0xD2, 0x32, 0xB2, 0x72, 0xF2,
	0x0A, 0x8A, 0x4A, 0xCA, 0x2A, 0xAA, 0x6A, 0xEA, 0x1A, 0x9A, 0x5A, 0xDA, 0x3A, 0xBA, 0x7A, 0xFA,
	0x06, 0x86, 0x46, 0xC6, 0x26, 0xA6, 0x66, 0xE6, 0x16, 0x96, 0x56, 0xD6, 0x36, 0xB6, 0x76, 0xF6,
	0x0E, 0x8E, 0x4E, 0xCE, 0x2E, 0xAE, 0x6E, 0xEE, 0x1E, 0x9E, 0x5E, 0xDE, 0x3E, 0xBE, 0x7E, 0xFE,
	0x01, 0x81, 0x41, 0xC1, 0x21, 0xA1, 0x61, 0xE1, 0x11, 0x91, 0x51, 0xD1, 0x31, 0xB1, 0x71, 0xF1,
	0x09, 0x89, 0x49, 0xC9, 0x29, 0xA9, 0x69, 0xE9, 0x19, 0x99, 0x59, 0xD9, 0x39, 0xB9, 0x79, 0xF9,
	0x05, 0x85, 0x45, 0xC5, 0x25, 0xA5, 0x65, 0xE5, 0x15, 0x95, 0x55, 0xD5, 0x35, 0xB5, 0x75, 0xF5,
	0x0D, 0x8D, 0x4D, 0xCD, 0x2D, 0xAD, 0x6D, 0xED, 0x1D, 0x9D, 0x5D, 0xDD, 0x3D, 0xBD, 0x7D, 0xFD,
	0x03, 0x83, 0x43, 0xC3, 0x23, 0xA3, 0x63, 0xE3, 0x13, 0x93, 0x53, 0xD3, 0x33, 0xB3, 0x73, 0xF3,
	0x0B, 0x8B, 0x4B, 0xCB, 0x2B, 0xAB, 0x6B, 0xEB, 0x1B, 0x9B, 0x5B, 0xDB, 0x3B, 0xBB, 0x7B, 0xFB,
	0x07, 0x87, 0x47, 0xC7, 0x27, 0xA7, 0x67, 0xE7, 0x17, 0x97, 0x57, 0xD7, 0x37, 0xB7, 0x77, 0xF7,
	0x0F, 0x8F, 0x4F, 0xCF, 0x2F, 0xAF, 0x6F, 0xEF, 0x1F, 0x9F, 0x5F, 0xDF, 0x3F, 0xBF, 0x7F, 0xFF,
}

// ReverseBits32 reverses the bit order of a 32-bit bitmap, i.e. bit 0
// becomes bit 31 and vice versa. This corresponds to a 180-degree
// rotation of the physical board.
func ReverseBits32(m Bitmap) Bitmap {
	return Bitmap(bitReverseTable256[m&0xff]<<24) |
		Bitmap(bitReverseTable256[(m>>8)&0xff]<<16) |
		Bitmap(bitReverseTable256[(m>>16)&0xff]<<8) |
		Bitmap(bitReverseTable256[(m>>24)&0xff])
}

// String renders a Bitmap as its set of square indices, mostly for
// debugging and test failure messages.
func (b Bitmap) String() string {
	s := "{"
	first := true
	for i := 0; i < NumSquares; i++ {
		if b.Has(ItemMask(i)) {
			if !first {
				s += ","
			}
			s += fmt.Sprintf("%d", i)
			first = false
		}
	}
	return s + "}"
}
