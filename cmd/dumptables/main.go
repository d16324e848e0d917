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

// Command dumptables prints every precomputed move-geometry table in
// internal/tables in the same one-line-per-square shape the reference
// implementation's debug() dumps them in, for comparing a table
// rebuild against a known-good one by eye.
package main

import (
	"fmt"

	"github.com/frankkopp/dts/internal/board"
	"github.com/frankkopp/dts/internal/tables"
)

func main() {
	t := tables.T

	fmt.Println("fwd_moves:")
	for i := 0; i < board.NumSquares; i++ {
		fmt.Printf("%2d %08x -> ", i, 1<<uint(i))
		for _, m := range t.FwdDst[i] {
			fmt.Printf("%08x, ", uint32(m))
		}
		fmt.Println()
	}

	fmt.Println("captures:")
	for i := 0; i < board.NumSquares; i++ {
		fmt.Printf("%2d %08x -> ", i, 1<<uint(i))
		for _, c := range t.ManCap[i] {
			fmt.Printf("%08x_%d, ", uint32(c.Captured), c.Landing)
		}
		fmt.Println()
	}

	fmt.Println("king_moves:")
	for i := 0; i < board.NumSquares; i++ {
		fmt.Printf("%2d %08x -> ", i, 1<<uint(i))
		for _, ray := range t.KingMove[i] {
			fmt.Print("[")
			for j, m := range ray {
				if j > 0 {
					fmt.Print(", ")
				}
				fmt.Printf("%08x", uint32(m))
			}
			fmt.Print("], ")
		}
		fmt.Println()
	}

	fmt.Println("king_captures:")
	for i := 0; i < board.NumSquares; i++ {
		fmt.Printf("%2d %08x -> ", i, 1<<uint(i))
		for _, ray := range t.KingCap[i] {
			fmt.Print("[")
			for j, c := range ray {
				if j > 0 {
					fmt.Print(", ")
				}
				fmt.Printf("{%08x, [", uint32(c.Captured))
				for k, dst := range c.Landings {
					if k > 0 {
						fmt.Print(", ")
					}
					fmt.Printf("%d", dst)
				}
				fmt.Print("]}")
			}
			fmt.Print("], ")
		}
		fmt.Println()
	}

	fmt.Println("fwd_move_masks:")
	for i := 0; i < board.NumSquares; i++ {
		fmt.Printf("%2d %08x -> %08x\n", i, 1<<uint(i), uint32(t.FwdDstMask[i]))
	}
	fmt.Println("capture_landing_masks:")
	for i := 0; i < board.NumSquares; i++ {
		fmt.Printf("%2d %08x -> %08x\n", i, 1<<uint(i), uint32(t.ManCapLandMask[i]))
	}
	fmt.Println("capture_over_masks:")
	for i := 0; i < board.NumSquares; i++ {
		fmt.Printf("%2d %08x -> %08x\n", i, 1<<uint(i), uint32(t.ManCapOverMask[i]))
	}
	fmt.Println("king_move_masks:")
	for i := 0; i < board.NumSquares; i++ {
		fmt.Printf("%2d %08x -> %08x\n", i, 1<<uint(i), uint32(t.KingMoveMask[i]))
	}
	fmt.Println("king_capture_over_masks:")
	for i := 0; i < board.NumSquares; i++ {
		fmt.Printf("%2d %08x -> %08x\n", i, 1<<uint(i), uint32(t.KingCapOverMask[i]))
	}
	fmt.Println("king_capture_landing_masks:")
	for i := 0; i < board.NumSquares; i++ {
		fmt.Printf("%2d %08x -> %08x\n", i, 1<<uint(i), uint32(t.KingCapLandMask[i]))
	}
}
