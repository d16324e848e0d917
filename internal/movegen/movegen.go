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
// Package movegen implements the Russian draughts move generator: from
// a position it produces the complete, duplicate-free set of positions
// reachable in one full move by the side to move, enforcing mandatory
// capture and multi-jump chains for both men and kings.
//
// Captured pieces are tracked as a "captured" bitmap threaded through
// the capture recursion and are only removed from the opponent's side
// when a chain completes (doCapture); until then their square is still
// occupied for landing-square legality, matching the reference
// implementation this package is ported from.
//
// Promotion (man reaching the opponent's king row) is applied on every
// single-step move via doMove, exactly as the reference implementation
// does, but because the top-level dispatch between man-capture and
// king-capture recursion is decided once per chain (based on whether
// the moving piece was already a king when the chain started), a man
// that is promoted mid-chain keeps using man-capture rules for the rest
// of that chain; at chain end manCaptures clears the king bit again
// unless the final landing square is on the king row. The externally
// visible effect is that promotion only takes hold at chain end - see
// DESIGN.md for the full discussion.
package movegen

import (
	"github.com/frankkopp/dts/internal/board"
	"github.com/frankkopp/dts/internal/position"
	"github.com/frankkopp/dts/internal/tables"
)

// Generator produces successor positions for one position at a time.
// It reuses an internal buffer across calls; Successors returns a fresh
// copy of that buffer, so the returned slice stays valid after later
// calls on the same Generator. The DFS drivers keep one Generator per
// recursion depth.
type Generator struct {
	states []position.Position
	filter position.Position
}

// New creates an empty, ready to use Generator.
func New() *Generator {
	return &Generator{}
}

// Successors returns every position reachable from p in one full move
// by the side to move, with capture sequences deduplicated by final
// position. If capture is available for any piece, only capturing
// moves are returned (mandatory capture, rule 1 in spec.md §4.C).
func (g *Generator) Successors(p position.Position) []position.Position {
	g.reset()
	if g.genCapturesAll(p) == 0 {
		g.genMovesAll(p)
	}
	return g.snapshot()
}

// ItemSuccessors returns the successors reachable by moving only the
// piece on square idx - captures if any piece on the board has a
// capture available (mandatory capture still applies across the whole
// position), otherwise idx's own simple moves. This supplements the
// whole-position Successors contract for callers (the FFI surface)
// that want to drive move selection one piece at a time.
func (g *Generator) ItemSuccessors(p position.Position, idx int) []position.Position {
	g.reset()
	if g.genCapturesAll(p) > 0 {
		g.reset()
		g.genItemCaptures(p, idx)
	} else {
		g.genItemMoves(p, idx)
	}
	return g.snapshot()
}

func (g *Generator) reset() {
	g.states = g.states[:0]
	g.filter = position.Position{}
}

func (g *Generator) snapshot() []position.Position {
	out := make([]position.Position, len(g.states))
	copy(out, g.states)
	return out
}

func (g *Generator) genCapturesAll(p position.Position) int {
	count := 0
	for i := 0; i < board.NumSquares; i++ {
		count += g.genItemCaptures(p, i)
	}
	return count
}

func (g *Generator) genItemCaptures(p position.Position, idx int) int {
	m := board.ItemMask(idx)
	switch {
	case p.Sides[0].Kings.Has(m):
		return g.kingCaptures(p, idx, 0)
	case p.Sides[0].Items.Has(m):
		return g.manCaptures(p, idx, 0)
	default:
		return 0
	}
}

func (g *Generator) genMovesAll(p position.Position) {
	for i := 0; i < board.NumSquares; i++ {
		g.genItemMoves(p, i)
	}
}

func (g *Generator) genItemMoves(p position.Position, idx int) {
	m := board.ItemMask(idx)
	occupied := p.Occupied()
	switch {
	case p.Sides[0].Kings.Has(m):
		g.kingMoves(p, idx, occupied)
	case p.Sides[0].Items.Has(m):
		g.manMoves(p, idx, occupied)
	}
}

func (g *Generator) manMoves(p position.Position, idx int, occupied board.Bitmap) {
	for _, dst := range tables.T.FwdDst[idx] {
		if !occupied.Has(dst) {
			g.states = append(g.states, doMove(p, board.ItemMask(idx), dst))
		}
	}
}

func (g *Generator) kingMoves(p position.Position, idx int, occupied board.Bitmap) {
	for d := 0; d < 4; d++ {
		for _, dst := range tables.T.KingMove[idx][d] {
			if occupied.Has(dst) {
				break
			}
			g.states = append(g.states, doMove(p, board.ItemMask(idx), dst))
		}
	}
}

// manCaptures recursively extends a man's capture chain from square
// idx in position cur, with captured tracking the squares already
// jumped over in this chain. It returns the number of completed chains
// produced (regardless of whether they were accepted as new or
// rejected as duplicates) so callers can tell whether any capture was
// available here.
func (g *Generator) manCaptures(cur position.Position, idx int, captured board.Bitmap) int {
	occupied := cur.Occupied()
	mayCapture := cur.Sides[1].Items.Select(tables.T.ManCapOverMask[idx]).Diff(captured)

	produced := 0
	if mayCapture != 0 {
		for _, c := range tables.T.ManCap[idx] {
			landing := board.ItemMask(c.Landing)
			if mayCapture.Has(c.Captured) && !occupied.Has(landing) {
				next := doMove(cur, board.ItemMask(idx), landing)
				produced += g.manCaptures(next, c.Landing, captured.Add(c.Captured))
			}
		}
	}

	if produced == 0 {
		if captured != 0 {
			end := doCapture(cur, captured)
			if m := board.ItemMask(idx); !board.IsOnKingRow(m) {
				end.Sides[0].Kings = end.Sides[0].Kings.Remove(m)
			}
			g.tryAccept(end)
			return 1
		}
		return 0
	}
	return produced
}

// kingCaptures mirrors manCaptures for a king. Each of the 4 directions
// is walked as a ray, in order of increasing distance: an own piece
// blocks the ray outright, a capturable enemy may be jumped to any
// empty square beyond it (branching), and once a capturable enemy has
// been found along a ray no more distant squares are tried on that ray.
// An enemy already captured earlier in this chain is not capturable
// again and is passed over by the ray walk.
func (g *Generator) kingCaptures(cur position.Position, idx int, captured board.Bitmap) int {
	occupied := cur.Occupied()
	mayCapture := cur.Sides[1].Items.Select(tables.T.KingCapOverMask[idx]).Diff(captured)

	produced := 0
	if mayCapture != 0 {
		for d := 0; d < 4; d++ {
			for _, entry := range tables.T.KingCap[idx][d] {
				if cur.Sides[0].Items.Has(entry.Captured) {
					break
				}
				if mayCapture.Has(entry.Captured) {
					for _, landIdx := range entry.Landings {
						landing := board.ItemMask(landIdx)
						if occupied.Has(landing) {
							break
						}
						next := doMove(cur, board.ItemMask(idx), landing)
						produced += g.kingCaptures(next, landIdx, captured.Add(entry.Captured))
					}
					break
				}
			}
		}
	}

	if produced == 0 {
		if captured != 0 {
			g.tryAccept(doCapture(cur, captured))
			return 1
		}
		return 0
	}
	return produced
}

// tryAccept adds a completed chain's resulting position to the output
// set unless an identical position was already produced during this
// call. The running filter is a fast bitwise negative test (if the
// candidate has any bit the filter doesn't, it cannot be a duplicate);
// only candidates that pass the filter are checked for exact equality
// against the accepted list.
func (g *Generator) tryAccept(candidate position.Position) {
	if containsAll(g.filter, candidate) {
		for _, s := range g.states {
			if s.Equal(candidate) {
				return
			}
		}
	}
	g.states = append(g.states, candidate)
	g.filter.Sides[0].Kings = g.filter.Sides[0].Kings.Union(candidate.Sides[0].Kings)
	g.filter.Sides[0].Items = g.filter.Sides[0].Items.Union(candidate.Sides[0].Items)
	g.filter.Sides[1].Kings = g.filter.Sides[1].Kings.Union(candidate.Sides[1].Kings)
	g.filter.Sides[1].Items = g.filter.Sides[1].Items.Union(candidate.Sides[1].Items)
}

func containsAll(filter, candidate position.Position) bool {
	return filter.Sides[0].Kings.HasAll(candidate.Sides[0].Kings) &&
		filter.Sides[0].Items.HasAll(candidate.Sides[0].Items) &&
		filter.Sides[1].Kings.HasAll(candidate.Sides[1].Kings) &&
		filter.Sides[1].Items.HasAll(candidate.Sides[1].Items)
}

func doMove(p position.Position, src, dst board.Mask) position.Position {
	ns := p
	ns.Sides[0].Items = ns.Sides[0].Items.Remove(src).Add(dst)
	if ns.Sides[0].Kings.Has(src) {
		ns.Sides[0].Kings = ns.Sides[0].Kings.Remove(src).Add(dst)
	}
	if board.IsOnKingRow(dst) {
		ns.Sides[0].Kings = ns.Sides[0].Kings.Add(dst)
	}
	return ns
}

func doCapture(p position.Position, captured board.Bitmap) position.Position {
	ns := p
	ns.Sides[1].Items = ns.Sides[1].Items.Diff(captured)
	ns.Sides[1].Kings = ns.Sides[1].Kings.Diff(captured)
	return ns
}
