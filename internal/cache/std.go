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

type key128 struct {
	hi, lo uint64
}

// Std is the chained hash set backend: a plain Go map keyed by the
// full 128-bit fingerprint. Go's built-in map already hashes a
// comparable struct key the way a boost::hash pair-hasher would hash a
// pair, so no custom hashing is needed here.
type Std struct {
	set map[key128]struct{}
}

// NewStd creates an empty Std cache.
func NewStd() *Std {
	return &Std{set: make(map[key128]struct{})}
}

// Insert implements Cache.
func (s *Std) Insert(hi, lo uint64) bool {
	k := key128{hi, lo}
	if _, ok := s.set[k]; ok {
		return false
	}
	s.set[k] = struct{}{}
	return true
}

// Len implements Cache.
func (s *Std) Len() int {
	return len(s.set)
}
