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

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/dts/internal/board"
)

func TestInitialValid(t *testing.T) {
	assert.True(t, Initial.Valid())
	assert.Equal(t, 12, Initial.Sides[0].Items.PopCount())
	assert.Equal(t, 12, Initial.Sides[1].Items.PopCount())
	assert.Equal(t, board.Bitmap(0), Initial.Sides[0].Kings)
}

func TestRotateInvolution(t *testing.T) {
	p := Initial
	assert.True(t, p.Equal(p.Rotate().Rotate()))
}

func TestRotateSwapsSides(t *testing.T) {
	r := Initial.Rotate()
	assert.Equal(t, Initial.Sides[1].Items, board.ReverseBits32(r.Sides[0].Items))
	assert.Equal(t, Initial.Sides[0].Items, board.ReverseBits32(r.Sides[1].Items))
}

func TestFingerprintDiffersByOrientation(t *testing.T) {
	// Initial is symmetric under Rotate, so use a lone man, which is not.
	p := Position{Sides: [2]Side{{Items: board.Bitmap(board.ItemMask(0))}, {}}}
	hi1, lo1 := p.Fingerprint()
	hi2, lo2 := p.Rotate().Fingerprint()
	assert.False(t, hi1 == hi2 && lo1 == lo2)
}

func TestFingerprintStableForEqualPositions(t *testing.T) {
	hi1, lo1 := Initial.Fingerprint()
	hi2, lo2 := Initial.Fingerprint()
	assert.Equal(t, hi1, hi2)
	assert.Equal(t, lo1, lo2)
}
