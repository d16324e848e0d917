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

// Dense is the open-addressed backend: a flat, power-of-two sized
// table of 128-bit keys probed linearly on collision, modeled on the
// direct-mapped, masked-index table the reference engine's
// transposition table uses for move search, adapted here from a
// replacing cache into a correctness-preserving insert-only set. The
// all-zero key marks an empty slot, which is safe because no real
// position ever fingerprints to (0, 0) — every position has at least
// one piece.
type Dense struct {
	hi, lo []uint64
	mask   uint64
	count  int
}

const minDenseCapacity = 1 << 16

// NewDense creates a Dense cache sized to comfortably hold
// capacityHint entries at a load factor around 50%.
func NewDense(capacityHint int) *Dense {
	size := minDenseCapacity
	for size < capacityHint*2 {
		size <<= 1
	}
	return &Dense{
		hi:   make([]uint64, size),
		lo:   make([]uint64, size),
		mask: uint64(size) - 1,
	}
}

// Insert implements Cache.
func (d *Dense) Insert(hi, lo uint64) bool {
	if d.count*2 >= len(d.hi) {
		d.grow()
	}
	idx := d.probe(hi, lo)
	if d.hi[idx] == 0 && d.lo[idx] == 0 {
		d.hi[idx] = hi
		d.lo[idx] = lo
		d.count++
		return true
	}
	return false
}

// Len implements Cache.
func (d *Dense) Len() int {
	return d.count
}

// probe returns the slot index for (hi, lo): either its own slot if
// already present, or the first empty slot found by linear probing
// from its hashed home index.
func (d *Dense) probe(hi, lo uint64) uint64 {
	idx := hash128(hi, lo) & d.mask
	for {
		if d.hi[idx] == 0 && d.lo[idx] == 0 {
			return idx
		}
		if d.hi[idx] == hi && d.lo[idx] == lo {
			return idx
		}
		idx = (idx + 1) & d.mask
	}
}

func (d *Dense) grow() {
	oldHi, oldLo := d.hi, d.lo
	newSize := len(d.hi) * 2
	d.hi = make([]uint64, newSize)
	d.lo = make([]uint64, newSize)
	d.mask = uint64(newSize) - 1
	for i := range oldHi {
		if oldHi[i] == 0 && oldLo[i] == 0 {
			continue
		}
		idx := d.probe(oldHi[i], oldLo[i])
		d.hi[idx] = oldHi[i]
		d.lo[idx] = oldLo[i]
	}
}

// hash128 combines both key words into a single mixing hash, in the
// spirit of a boost::hash_combine pairing of two 64-bit hashes.
func hash128(hi, lo uint64) uint64 {
	h := hi
	h ^= lo + 0x9e3779b97f4a7c15 + (h << 6) + (h >> 2)
	h ^= h >> 33
	h *= 0xff51afd7ed558ccd
	h ^= h >> 33
	h *= 0xc4ceb9fe1a85ec53
	h ^= h >> 33
	return h
}
