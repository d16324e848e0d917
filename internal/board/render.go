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

package board

import "strings"

// columnLetters maps a 0..7 x coordinate to its file letter, a..h.
const columnLetters = "abcdefgh"

// SquareName returns the algebraic name ("a1".."h8") of a square index.
func SquareName(index int) string {
	x, y := XYFromIndex(index)
	return string(columnLetters[x]) + string(rune('1'+y))
}

// Glyphs used by Render, per spec: side-to-move man/king, opponent
// man/king, empty.
const (
	GlyphEmpty        = " "
	GlyphOwnMan       = "o"
	GlyphOwnKing      = "@"
	GlyphOpponentMan  = "x"
	GlyphOpponentKing = "#"
)

// indexGrid mirrors the reference implementation's format_table: for
// each of the 8 printed rows (row 8 down to row 1) and 8 columns
// (a..h), the dark-square index occupying that cell, or -1 for a light
// square.
var indexGrid = buildIndexGrid()

func buildIndexGrid() [8][8]int {
	var grid [8][8]int
	for row := range grid {
		for col := range grid[row] {
			grid[row][col] = -1
		}
	}
	for idx := 0; idx < NumSquares; idx++ {
		x, y := XYFromIndex(idx)
		row := 7 - y
		grid[row][x] = idx
	}
	return grid
}

// Renderable is the minimal view of a position Render needs, avoiding an
// import cycle with the position package.
type Renderable interface {
	// OwnItems/OwnKings describe the side to move, OppItems/OppKings the
	// opponent, all as Bitmap.
	OwnItems() Bitmap
	OwnKings() Bitmap
	OppItems() Bitmap
	OppKings() Bitmap
}

// Render draws an 8x8 ASCII grid exactly as spec.md §6 describes: rows
// labelled 8..1 top to bottom, columns a..h, cells separated by
// "+---+...+" rules.
func Render(p Renderable) string {
	var b strings.Builder
	rule := "  +---+---+---+---+---+---+---+---+\n"
	b.WriteString(rule)
	for row := 0; row < 8; row++ {
		b.WriteString(string(rune('8' - row)))
		b.WriteString(" |")
		for col := 0; col < 8; col++ {
			idx := indexGrid[row][col]
			glyph := GlyphEmpty
			if idx >= 0 {
				m := ItemMask(idx)
				switch {
				case p.OwnKings().Has(m):
					glyph = GlyphOwnKing
				case p.OwnItems().Has(m):
					glyph = GlyphOwnMan
				case p.OppKings().Has(m):
					glyph = GlyphOpponentKing
				case p.OppItems().Has(m):
					glyph = GlyphOpponentMan
				}
			}
			b.WriteString(" ")
			b.WriteString(glyph)
			b.WriteString(" |")
		}
		b.WriteString("\n")
		b.WriteString(rule)
	}
	b.WriteString("    a   b   c   d   e   f   g   h\n")
	return b.String()
}
