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

// Package combinatorics estimates the number of legal Russian draughts
// piece placements by closed-form counting rather than enumeration: for
// each occupied-square count it sums, over every split of those pieces
// into men/kings on each side, the product of the relevant binomial
// coefficients.
package combinatorics

// BoardSquares is the number of playable (dark) squares.
const BoardSquares = 32

// MaxPiecesPerSide is the starting piece count cap per side.
const MaxPiecesPerSide = 12

// Binomial returns n-choose-k as a float64: the count of ways to place
// k indistinguishable markers on n labelled squares. Returns 0 for
// k<0 or k>n.
func Binomial(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	result := 1.0
	for i := 0; i < k; i++ {
		result *= float64(n - i)
		result /= float64(i + 1)
	}
	return result
}

// CountForOccupied estimates the number of distinct (side, men/king
// split) placements using exactly occupied squares of the 32, bounded
// by MaxPiecesPerSide pieces per side.
func CountForOccupied(occupied int) float64 {
	occVars := Binomial(BoardSquares, occupied)
	total := 0.0

	minWhites := maxInt(occupied-MaxPiecesPerSide, 1)
	maxWhites := minInt(occupied-1, MaxPiecesPerSide)
	for whites := minWhites; whites <= maxWhites; whites++ {
		wVars := Binomial(occupied, whites)
		blacks := occupied - whites

		wkTotal := 0.0
		for wk := 0; wk <= whites; wk++ {
			wkVars := 1.0
			if wk > 0 {
				wkVars = Binomial(whites, wk)
			}

			bkTotal := 0.0
			for bk := 0; bk <= blacks; bk++ {
				bkVars := 1.0
				if bk > 0 {
					bkVars = Binomial(blacks, bk)
				}
				bkTotal += bkVars
			}
			wkTotal += wkVars * bkTotal
		}
		total += wVars * wkTotal
	}

	return occVars * total
}

// TotalPositions sums CountForOccupied across every occupied-square
// count from 2 to 24 (the widest range where both sides can hold at
// least one and at most MaxPiecesPerSide pieces), halved because the
// per-occupied sum double-counts white/black swapped placements.
func TotalPositions() float64 {
	total := 0.0
	for occupied := 2; occupied <= 24; occupied++ {
		total += CountForOccupied(occupied)
	}
	return total / 2
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
