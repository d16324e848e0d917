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

// Package search implements the single-threaded depth-first driver: a
// preorder walk of the full game tree below a root position, feeding
// every visited position's branching factor into a Stats aggregator.
// One Driver instance runs one search at a time, enforced by a
// semaphore the way the teacher's engine guards concurrent UCI
// searches with isRunning.
package search

import (
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/sync/semaphore"

	"github.com/frankkopp/dts/internal/board"
	"github.com/frankkopp/dts/internal/cache"
	myLogging "github.com/frankkopp/dts/internal/logging"
	"github.com/frankkopp/dts/internal/movegen"
	"github.com/frankkopp/dts/internal/position"
	"github.com/frankkopp/dts/internal/stats"
)

// Defaults matching the CLI's own defaults.
const (
	DefaultMaxDepth         = 10
	DefaultTimeout          = 10 * time.Second
	DefaultSamplingInterval = 1_000_000
	DefaultStatusPeriod     = 2 * time.Second
)

// Limits configures one Driver's traversal policy.
type Limits struct {
	MaxDepth  int
	MaxWidth  int
	Randomize bool
	Timeout   time.Duration
	Cache     cache.Cache

	Verbose        bool
	PrintWins      bool
	PrintCacheHits bool

	// SamplingInterval is how many visited boards pass between
	// cancellation polls. Zero selects DefaultSamplingInterval.
	SamplingInterval uint64
	// StatusPeriod is how often a progress line is logged. Zero
	// disables the ticker.
	StatusPeriod time.Duration
}

// Driver runs one depth-first traversal at a time below a root
// position. Create with NewDriver; safe for reuse across repeated
// Run calls, but not for concurrent ones (use one Driver per worker
// goroutine, as internal/mtsearch does).
type Driver struct {
	log       *logging.Logger
	limits    Limits
	isRunning *semaphore.Weighted
	stop      *int32

	rng   *rand.Rand
	perms map[int][]int

	mg   []*movegen.Generator
	path []position.Position

	visited    uint64
	startTime  time.Time
	runUntil   time.Time
	nextStatus time.Time
}

// NewDriver creates a Driver governed by limits, cooperatively
// cancelled through stop: any non-zero value observed via
// atomic.LoadInt32 stops the traversal at the next sampling point. The
// same stop pointer can be shared across every worker in an
// internal/mtsearch run so one signal stops them all.
func NewDriver(limits Limits, stop *int32) *Driver {
	if limits.SamplingInterval == 0 {
		limits.SamplingInterval = DefaultSamplingInterval
	}
	return &Driver{
		log:       myLogging.GetSearchLog(),
		limits:    limits,
		isRunning: semaphore.NewWeighted(1),
		stop:      stop,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run performs the depth-first traversal below root and returns the
// accumulated statistics and whether the traversal ran to completion
// (false if cancelled via the stop flag or the timeout).
func (d *Driver) Run(root position.Position) (*stats.Stats, bool) {
	return d.RunFrom(root, 0)
}

// RunFrom is Run with the root treated as already being at startDepth,
// for internal/mtsearch: a worker's chunk was produced by BFS seeding
// down to a given level, and depth-cutoff/win-parity bookkeeping must
// stay relative to the true root rather than restarting at zero.
func (d *Driver) RunFrom(root position.Position, startDepth int) (*stats.Stats, bool) {
	if !d.isRunning.TryAcquire(1) {
		d.log.Error("search already running")
		return &stats.Stats{}, false
	}
	defer d.isRunning.Release(1)

	d.visited = 0
	d.startTime = time.Now()
	if d.limits.Timeout > 0 {
		d.runUntil = d.startTime.Add(d.limits.Timeout)
	} else {
		d.runUntil = time.Time{}
	}
	if d.limits.StatusPeriod > 0 {
		d.nextStatus = d.startTime.Add(d.limits.StatusPeriod)
	}
	if d.limits.PrintWins {
		d.path = append(d.path[:0], root)
	}

	st := &stats.Stats{}
	completed := d.recurse(st, root, startDepth)
	return st, completed
}

// recurse implements the per-node procedure: poll cancellation,
// generate successors, feed stats, recurse on each kept successor in
// rotated orientation.
func (d *Driver) recurse(st *stats.Stats, p position.Position, depth int) bool {
	d.visited++

	if d.limits.Verbose {
		d.log.Info(board.Render(p))
	}
	if d.visited%d.limits.SamplingInterval == 0 && d.cancelled() {
		return false
	}
	if d.limits.StatusPeriod > 0 && !time.Now().Before(d.nextStatus) {
		d.log.Infof("elapsed: %s, boards: %d", time.Since(d.startTime), d.visited)
		d.nextStatus = time.Now().Add(d.limits.StatusPeriod)
	}

	gen := d.generatorFor(depth)
	succ := gen.Successors(p)
	st.Consume(len(succ), depth)

	if len(succ) == 0 {
		if d.limits.PrintWins {
			d.printPath()
		}
		return true
	}

	completed := true
	d.iterate(len(succ), func(i int) bool {
		next := succ[i].Rotate()

		if d.limits.Cache != nil {
			hi, lo := next.Fingerprint()
			if !d.limits.Cache.Insert(hi, lo) {
				st.CacheHit()
				if d.limits.PrintCacheHits {
					d.log.Infof("cache hit at depth %d", depth+1)
				}
				return true
			}
		}

		if depth+1 > d.limits.MaxDepth {
			st.DepthCutoff()
			return true
		}

		if d.limits.PrintWins {
			d.path = append(d.path, next)
		}
		ok := d.recurse(st, next, depth+1)
		if d.limits.PrintWins {
			d.path = d.path[:len(d.path)-1]
		}
		if !ok {
			completed = false
			return false
		}
		return true
	})

	return completed
}

func (d *Driver) cancelled() bool {
	if d.stop != nil && atomic.LoadInt32(d.stop) != 0 {
		return true
	}
	return !d.runUntil.IsZero() && time.Now().After(d.runUntil)
}

func (d *Driver) generatorFor(depth int) *movegen.Generator {
	if depth >= len(d.mg) {
		grown := make([]*movegen.Generator, depth+1)
		copy(grown, d.mg)
		d.mg = grown
	}
	if d.mg[depth] == nil {
		d.mg[depth] = movegen.New()
	}
	return d.mg[depth]
}

func (d *Driver) printPath() {
	for i, p := range d.path {
		d.log.Infof("ply %d:\n%s", i, board.Render(p))
	}
}

// iterate walks the n successor indices of the current node in the
// order selected by (MaxWidth, Randomize), invoking visit(i) for each
// and stopping early if visit returns false.
func (d *Driver) iterate(n int, visit func(i int) bool) {
	switch {
	case d.limits.MaxWidth == 0 && !d.limits.Randomize:
		for i := 0; i < n; i++ {
			if !visit(i) {
				return
			}
		}
	case d.limits.MaxWidth == 0 && d.limits.Randomize:
		for _, i := range d.permutationFor(n) {
			if !visit(i) {
				return
			}
		}
	case d.limits.MaxWidth > 0 && d.limits.Randomize:
		perm := d.permutationFor(n)
		w := d.limits.MaxWidth
		if w > n {
			w = n
		}
		for _, i := range perm[:w] {
			if !visit(i) {
				return
			}
		}
	default:
		for _, i := range fixedSample(n, d.limits.MaxWidth) {
			if !visit(i) {
				return
			}
		}
	}
}

// permutationFor returns a uniformly shuffled permutation of [0,n),
// building and caching it the first time width n is seen so repeated
// nodes of the same branching factor never pay for another shuffle.
func (d *Driver) permutationFor(n int) []int {
	if perm, ok := d.perms[n]; ok {
		return perm
	}
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	d.rng.Shuffle(n, func(i, j int) { perm[i], perm[j] = perm[j], perm[i] })
	if d.perms == nil {
		d.perms = make(map[int][]int)
	}
	d.perms[n] = perm
	return perm
}

// fixedSample returns the fixed-position sample indices for
// maxWidth in {1,2,3}: first, [first,last], or [first,middle,last],
// dropping duplicates when n is smaller than the requested width.
func fixedSample(n, maxWidth int) []int {
	if n == 0 {
		return nil
	}
	var want []int
	switch {
	case maxWidth <= 1:
		want = []int{0}
	case maxWidth == 2:
		want = []int{0, n - 1}
	default:
		want = []int{0, n / 2, n - 1}
	}
	picks := make([]int, 0, len(want))
	seen := make(map[int]bool, len(want))
	for _, w := range want {
		if w < 0 || w >= n || seen[w] {
			continue
		}
		seen[w] = true
		picks = append(picks, w)
	}
	return picks
}
