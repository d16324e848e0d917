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

package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexXYRoundTrip(t *testing.T) {
	for i := 0; i < NumSquares; i++ {
		x, y := XYFromIndex(i)
		assert.GreaterOrEqual(t, x, 0)
		assert.Less(t, x, 8)
		assert.GreaterOrEqual(t, y, 0)
		assert.Less(t, y, 8)
		assert.Equal(t, i, IndexFromXY(x, y), "round trip for index %d", i)
	}
}

func TestIsOnKingRow(t *testing.T) {
	for i := 0; i < 28; i++ {
		assert.False(t, IsOnKingRow(ItemMask(i)), "square %d should not be king row", i)
	}
	for i := 28; i < 32; i++ {
		assert.True(t, IsOnKingRow(ItemMask(i)), "square %d should be king row", i)
	}
}

func TestReverseBits32Involution(t *testing.T) {
	samples := []Bitmap{0, 0xFFFFFFFF, 0x0FFF, 0xFFF00000, 1, 0x80000000, 0xAAAAAAAA}
	for _, m := range samples {
		assert.Equal(t, m, ReverseBits32(ReverseBits32(m)), "reverse not involutive for %#x", uint32(m))
	}
}

func TestReverseBits32Corners(t *testing.T) {
	assert.Equal(t, Bitmap(1)<<31, ReverseBits32(1))
	assert.Equal(t, Bitmap(1), ReverseBits32(Bitmap(1)<<31))
}

func TestSquareNameCorners(t *testing.T) {
	assert.Equal(t, "a1", SquareName(0))
	assert.Equal(t, "h8", SquareName(31))
}
