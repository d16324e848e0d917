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

// Package cache implements the transposition cache: set semantics over
// 128-bit position fingerprints, used by the DFS drivers to detect
// loops and transpositions. There is no eviction; the only operation
// is Insert, which reports whether the key was new. Three
// interchangeable backends are provided, selected by name at driver
// construction.
package cache

import "fmt"

// Cache is a set of 128-bit keys (hi, lo) with insert-only, no-eviction
// semantics.
type Cache interface {
	// Insert adds (hi, lo) to the set. It returns true if the key was
	// not already present. The all-zero key is never produced by a
	// real position (every position has at least one piece), so it is
	// safe to use as an "empty slot" sentinel internally.
	Insert(hi, lo uint64) bool

	// Len returns the number of distinct keys currently stored.
	Len() int
}

// Names of the three selectable backends, matching the CLI's
// -C/--cache-impl flag values.
const (
	ImplStd   = "std"
	ImplDense = "dense"
	ImplTrie  = "trie"
)

// New constructs the cache backend named by impl. capacityHint sizes
// the dense backend's initial table; it is ignored by the other two.
func New(impl string, capacityHint int) (Cache, error) {
	switch impl {
	case ImplStd:
		return NewStd(), nil
	case ImplDense:
		return NewDense(capacityHint), nil
	case ImplTrie:
		return NewTrie(), nil
	default:
		return nil, fmt.Errorf("cache: unknown backend %q (want one of %s, %s, %s)", impl, ImplStd, ImplDense, ImplTrie)
	}
}
