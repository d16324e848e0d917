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

package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/dts/internal/cache"
	"github.com/frankkopp/dts/internal/position"
)

func TestRunCompletesOnLoneManDeadEnd(t *testing.T) {
	p := position.Position{}
	p.Sides[0].Items = 1 << 28 // man already on its own forward edge: no forward destination exists
	d := NewDriver(Limits{MaxDepth: DefaultMaxDepth}, nil)
	st, completed := d.Run(p)
	assert.True(t, completed)
	assert.Equal(t, uint64(1), st.TotalBoards)
}

func TestRunRespectsMaxDepthAsCutoff(t *testing.T) {
	d := NewDriver(Limits{MaxDepth: 1}, nil)
	st, completed := d.Run(position.Initial)
	assert.True(t, completed)
	assert.True(t, st.DepthCutoffs > 0)
}

func TestRunHonorsStopFlag(t *testing.T) {
	var stop int32 = 1
	d := NewDriver(Limits{MaxDepth: DefaultMaxDepth, SamplingInterval: 1}, &stop)
	_, completed := d.Run(position.Initial)
	assert.False(t, completed)
}

func TestRunHonorsTimeout(t *testing.T) {
	d := NewDriver(Limits{MaxDepth: DefaultMaxDepth, SamplingInterval: 1, Timeout: time.Nanosecond}, nil)
	time.Sleep(time.Millisecond)
	_, completed := d.Run(position.Initial)
	assert.False(t, completed)
}

func TestRunWithCacheRecordsHits(t *testing.T) {
	c := cache.NewStd()
	d := NewDriver(Limits{MaxDepth: 3, Cache: c}, nil)
	st, completed := d.Run(position.Initial)
	assert.True(t, completed)
	// two independent white moves played in either order around the same
	// black reply reach one position twice within 3 plies.
	assert.Greater(t, st.CacheHits, uint64(0))
}

func TestFixedSampleDropsDuplicatesForSmallWidth(t *testing.T) {
	assert.Equal(t, []int{0}, fixedSample(1, 3))
	assert.Equal(t, []int{0, 1}, fixedSample(2, 3))
	assert.Equal(t, []int{0, 1, 2}, fixedSample(3, 3))
	assert.Equal(t, []int{0, 4}, fixedSample(5, 2))
}

func TestIterateRandomizedVisitsEveryIndexExactlyOnce(t *testing.T) {
	d := NewDriver(Limits{MaxDepth: DefaultMaxDepth, Randomize: true}, nil)
	seen := make(map[int]bool)
	calls := 0
	d.iterate(6, func(i int) bool {
		seen[i] = true
		calls++
		return true
	})
	assert.Len(t, seen, 6)
	assert.Equal(t, 6, calls)
}

func TestIterateStopsEarlyWhenVisitReturnsFalse(t *testing.T) {
	d := NewDriver(Limits{MaxDepth: DefaultMaxDepth}, nil)
	count := 0
	d.iterate(10, func(i int) bool {
		count++
		return i < 2
	})
	assert.Equal(t, 3, count)
}
