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
// Package tables holds the move-geometry tables the move generator
// consumes as pure mask arithmetic: forward destinations and capture
// pairs for men, and ray destinations/captures for kings, one entry per
// square index. They are generated once, at package initialization,
// mirroring the reference implementation's constexpr table generation
// (draughts_tables.h) but using Go slices in place of fixed-size C
// arrays with an explicit sentinel — a slice's length already carries
// the "end of list" information the sentinel exists to provide.
package tables

import "github.com/frankkopp/dts/internal/board"

type vec struct{ x, y int }

func (v vec) add(w vec) vec { return vec{v.x + w.x, v.y + w.y} }
func (v vec) scale(n int) vec {
	return vec{v.x * n, v.y * n}
}

func onBoard(v vec) bool {
	return v.x >= 0 && v.x < 8 && v.y >= 0 && v.y < 8
}

var (
	upLeft    = vec{-1, 1}
	upRight   = vec{1, 1}
	downLeft  = vec{-1, -1}
	downRight = vec{1, -1}

	fwdDirections = [2]vec{upLeft, upRight}
	allDirections = [4]vec{upLeft, upRight, downLeft, downRight}
)

// ManCapture is one possible man capture: the captured square and the
// landing square two steps beyond it, in a given direction.
type ManCapture struct {
	Captured board.Mask
	Landing  int
}

// KingCapture is one possible capture point along a king's ray: the
// single square that would be jumped, and the ordered list of landing
// squares strictly beyond it on the same ray.
type KingCapture struct {
	Captured board.Mask
	Landings []int
}

// Tables holds every precomputed per-square table.
type Tables struct {
	FwdDst     [board.NumSquares][]board.Mask
	FwdDstMask [board.NumSquares]board.Bitmap

	ManCap         [board.NumSquares][]ManCapture
	ManCapLandMask [board.NumSquares]board.Bitmap
	ManCapOverMask [board.NumSquares]board.Bitmap

	KingMove     [board.NumSquares][4][]board.Mask
	KingMoveMask [board.NumSquares]board.Bitmap

	KingCap         [board.NumSquares][4][]KingCapture
	KingCapOverMask [board.NumSquares]board.Bitmap
	KingCapLandMask [board.NumSquares]board.Bitmap
}

// T is the package-wide precomputed table set, built once at init time.
var T = build()

func build() *Tables {
	t := &Tables{}

	for i := 0; i < board.NumSquares; i++ {
		x, y := board.XYFromIndex(i)
		start := vec{x, y}

		for _, d := range fwdDirections {
			dst := start.add(d)
			if onBoard(dst) {
				m := board.ItemMask(board.IndexFromXY(dst.x, dst.y))
				t.FwdDst[i] = append(t.FwdDst[i], m)
				t.FwdDstMask[i] = t.FwdDstMask[i].Add(m)
			}
		}

		for _, d := range allDirections {
			capt := start.add(d)
			land := start.add(d.scale(2))
			if onBoard(land) {
				capMask := board.ItemMask(board.IndexFromXY(capt.x, capt.y))
				landIdx := board.IndexFromXY(land.x, land.y)
				t.ManCap[i] = append(t.ManCap[i], ManCapture{Captured: capMask, Landing: landIdx})
				t.ManCapLandMask[i] = t.ManCapLandMask[i].Add(board.ItemMask(landIdx))
				t.ManCapOverMask[i] = t.ManCapOverMask[i].Add(capMask)
			}
		}

		for d := 0; d < 4; d++ {
			dir := allDirections[d]
			for dist := 1; dist <= 7; dist++ {
				dst := start.add(dir.scale(dist))
				if !onBoard(dst) {
					break
				}
				m := board.ItemMask(board.IndexFromXY(dst.x, dst.y))
				t.KingMove[i][d] = append(t.KingMove[i][d], m)
				t.KingMoveMask[i] = t.KingMoveMask[i].Add(m)
			}

			for dist := 1; dist <= 6; dist++ {
				capt := start.add(dir.scale(dist))
				dest := start.add(dir.scale(dist + 1))
				if !onBoard(dest) {
					break
				}
				capMask := board.ItemMask(board.IndexFromXY(capt.x, capt.y))
				entry := KingCapture{Captured: capMask}
				for onBoard(dest) {
					landIdx := board.IndexFromXY(dest.x, dest.y)
					entry.Landings = append(entry.Landings, landIdx)
					t.KingCapLandMask[i] = t.KingCapLandMask[i].Add(board.ItemMask(landIdx))
					dest = dest.add(dir)
				}
				t.KingCap[i][d] = append(t.KingCap[i][d], entry)
				t.KingCapOverMask[i] = t.KingCapOverMask[i].Add(capMask)
			}
		}
	}

	return t
}
