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

package ffi

import (
	"github.com/frankkopp/dts/internal/movegen"
	"github.com/frankkopp/dts/internal/position"
)

// TreeStatus classifies a BoundedTreeNode the way the reference
// wrapper's board_tree_node_t next_states_status field does: positive
// means "this many real children", the named constants cover the
// other cases.
type TreeStatus int

const (
	// StatusGameOver marks a node with no legal successors.
	StatusGameOver TreeStatus = 0
	// StatusLoop marks a node whose position already appears earlier
	// on the current root-to-node stack; LoopTarget points at that
	// earlier node instead of expanding further.
	StatusLoop TreeStatus = -1
	// StatusDepthLimit marks a node that was not expanded because the
	// bound was reached.
	StatusDepthLimit TreeStatus = -2
)

// BoundedTreeNode is one node of a finite, fully materialized game
// tree below a root, distinct from the callback-driven walk
// WalkAllMoves performs: it keeps the whole shape in memory and
// replaces would-be infinite loops (a transposition already on the
// current stack) with a back-pointer to the earlier node, the way
// stack_map_t does in the reference wrapper.
type BoundedTreeNode struct {
	State      Board
	Status     TreeStatus
	Children   []*BoundedTreeNode
	LoopTarget *BoundedTreeNode
}

// BuildBoundedTree materializes the game tree below b, up to bound
// plies deep, detecting in-progress-stack transpositions (not a
// whole-search cache: only positions still on the current
// root-to-node stack count as a loop) and marking them with
// StatusLoop instead of recursing into them again.
func BuildBoundedTree(b Board, isWhiteTurn bool, bound int) *BoundedTreeNode {
	root := boardToPosition(b, isWhiteTurn)
	stack := make(map[position.Position]*BoundedTreeNode)
	gens := make([]*movegen.Generator, bound+1)

	var build func(p position.Position, depth int) *BoundedTreeNode
	build = func(p position.Position, depth int) *BoundedTreeNode {
		white := isWhiteTurn == (depth%2 == 0)
		node := &BoundedTreeNode{State: positionToBoard(p, white)}
		stack[p] = node
		defer delete(stack, p)

		if depth >= bound {
			node.Status = StatusDepthLimit
			return node
		}

		if gens[depth] == nil {
			gens[depth] = movegen.New()
		}
		succ := gens[depth].Successors(p)
		if len(succ) == 0 {
			node.Status = StatusGameOver
			return node
		}

		node.Children = make([]*BoundedTreeNode, 0, len(succ))
		for _, s := range succ {
			rotated := s.Rotate()
			if existing, onStack := stack[rotated]; onStack {
				node.Children = append(node.Children, &BoundedTreeNode{
					State:      positionToBoard(rotated, !white),
					Status:     StatusLoop,
					LoopTarget: existing,
				})
				continue
			}
			node.Children = append(node.Children, build(rotated, depth+1))
		}
		node.Status = TreeStatus(len(node.Children))
		return node
	}

	return build(root, 0)
}
