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

// Package mtsearch is the multi-threaded counterpart of
// internal/search: it seeds a frontier of positions with a
// cache-less breadth-first expansion, partitions that frontier across
// workers, and runs one internal/search.Driver per worker over its own
// chunk, merging every worker's Stats at the end.
package mtsearch

import (
	"sync"

	"github.com/frankkopp/dts/internal/cache"
	"github.com/frankkopp/dts/internal/movegen"
	"github.com/frankkopp/dts/internal/position"
	"github.com/frankkopp/dts/internal/search"
	"github.com/frankkopp/dts/internal/stats"
)

// DefaultMinInitialBoardsPerThread is the seeding target per worker:
// seeding continues level by level until the frontier holds at least
// workers * MinInitialBoardsPerThread positions.
const DefaultMinInitialBoardsPerThread = 20

// Limits configures a multi-threaded run. Workers and
// MinInitialBoardsPerThread govern seeding and partitioning; Driver is
// applied to every worker's chunk except for its Cache field, which is
// replaced per worker: a fresh cache from CacheFactory when that is
// non-nil, none otherwise, so workers never share cache state.
type Limits struct {
	Workers                   int
	MinInitialBoardsPerThread int
	Driver                    search.Limits
	// CacheFactory builds a fresh cache for one worker. Nil disables
	// caching for every worker, regardless of Driver.Cache.
	CacheFactory func() (cache.Cache, error)
}

// Run seeds a frontier below root via breadth-first expansion,
// partitions it across Limits.Workers goroutines, and runs one
// internal/search.Driver per partition, returning the merged
// statistics and whether every worker completed without being
// cancelled.
func Run(root position.Position, limits Limits, stop *int32) (*stats.Stats, bool, error) {
	workers := limits.Workers
	if workers < 1 {
		workers = 1
	}
	minPerThread := limits.MinInitialBoardsPerThread
	if minPerThread < 1 {
		minPerThread = DefaultMinInitialBoardsPerThread
	}

	seedStats := &stats.Stats{}
	frontier, seedDepth := seed(root, workers*minPerThread, seedStats)

	chunks := partition(frontier, workers)

	results := make([]*stats.Stats, len(chunks))
	completions := make([]bool, len(chunks))
	errs := make([]error, len(chunks))

	var wg sync.WaitGroup
	for i, chunk := range chunks {
		i, chunk := i, chunk
		wg.Add(1)
		go func() {
			defer wg.Done()
			if len(chunk) == 0 {
				results[i] = &stats.Stats{}
				completions[i] = true
				return
			}
			workerLimits := limits.Driver
			if limits.CacheFactory != nil {
				c, err := limits.CacheFactory()
				if err != nil {
					errs[i] = err
					results[i] = &stats.Stats{}
					return
				}
				workerLimits.Cache = c
			} else {
				workerLimits.Cache = nil
			}
			driver := search.NewDriver(workerLimits, stop)
			workerStats := &stats.Stats{}
			completed := true
			for _, p := range chunk {
				st, ok := driver.RunFrom(p, seedDepth)
				workerStats.Merge(st)
				if !ok {
					completed = false
					break
				}
			}
			results[i] = workerStats
			completions[i] = completed
		}()
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return seedStats, false, err
		}
	}

	merged := seedStats
	completed := true
	for i, st := range results {
		merged.Merge(st)
		completed = completed && completions[i]
	}
	return merged, completed, nil
}

// seed expands root level by level with a fresh, cache-less generator
// per level until the frontier has at least target positions (or a
// level produces no positions, i.e. every frontier member is a
// terminal loss). Every position consumed during seeding is rotated
// before becoming the next level's input, so the returned frontier and
// seedDepth are both in the orientation internal/search.Driver.Run
// expects for "side to move" at that depth.
func seed(root position.Position, target int, st *stats.Stats) ([]position.Position, int) {
	level := []position.Position{root}
	depth := 0
	for len(level) < target {
		gen := movegen.New()
		var next []position.Position
		for _, p := range level {
			succ := gen.Successors(p)
			st.Consume(len(succ), depth)
			for _, s := range succ {
				next = append(next, s.Rotate())
			}
		}
		if len(next) == 0 {
			break
		}
		level = next
		depth++
	}
	return level, depth
}

// partition splits frontier into workers contiguous, nearly-equal
// chunks. Remainder elements are distributed one-per-chunk starting
// from the first chunk, so no chunk differs from another by more than
// one element.
func partition(frontier []position.Position, workers int) [][]position.Position {
	chunks := make([][]position.Position, workers)
	n := len(frontier)
	base := n / workers
	extra := n % workers
	offset := 0
	for i := 0; i < workers; i++ {
		size := base
		if i < extra {
			size++
		}
		chunks[i] = frontier[offset : offset+size]
		offset += size
	}
	return chunks
}
