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

package cache

// Trie is the two-level backend: a top map from the key's high 64 bits
// to an inner set of low 64-bit values, modeled on the reference
// implementation's two-level Judy-array-backed set (a real sparse
// radix structure is not available in the ecosystem this module draws
// on, so a map-of-maps stands in for it here, preserving the same
// two-level locality: positions sharing a king configuration share an
// inner set).
type Trie struct {
	top   map[uint64]map[uint64]struct{}
	count int
}

// NewTrie creates an empty Trie cache.
func NewTrie() *Trie {
	return &Trie{top: make(map[uint64]map[uint64]struct{})}
}

// Insert implements Cache.
func (tr *Trie) Insert(hi, lo uint64) bool {
	inner, ok := tr.top[hi]
	if !ok {
		inner = make(map[uint64]struct{})
		tr.top[hi] = inner
	}
	if _, ok := inner[lo]; ok {
		return false
	}
	inner[lo] = struct{}{}
	tr.count++
	return true
}

// Len implements Cache.
func (tr *Trie) Len() int {
	return tr.count
}
