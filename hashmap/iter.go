// Copyright (c) 2024 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package hashmap

import (
	"math/bits"

	"github.com/aristanetworks/gocontainer/glog"
	"github.com/aristanetworks/gocontainer/logger"
)

// defaultLogger is where Check reports when the caller passes nil.
var defaultLogger logger.Logger = &glog.Glog{}

// nextOccupied returns the index of the first occupied bucket at or after
// i, or the bucket count if there is none. It reads four metadata words
// at a time; the trailing sentinel words guarantee the scan terminates
// without a bounds branch inside the group.
func (m *Map[K, V]) nextOccupied(i int) int {
	n := len(m.tab.buckets)
	for i < n {
		g := i &^ 3
		w := uint64(m.tab.meta[g]) |
			uint64(m.tab.meta[g+1])<<16 |
			uint64(m.tab.meta[g+2])<<32 |
			uint64(m.tab.meta[g+3])<<48
		w &^= uint64(1)<<(16*uint(i-g)) - 1 // drop lanes before i
		if w != 0 {
			j := g + bits.TrailingZeros64(w)>>4
			if j >= n {
				return n
			}
			return j
		}
		i = g + 4
	}
	return n
}

// Iterator walks a Map in bucket order. The zero value is invalid; obtain
// one from Iter. Any operation that rehashes the map invalidates it.
type Iterator[K, V any] struct {
	m      *Map[K, V]
	idx    int
	rewind bool
}

// Iter returns an iterator positioned before the first entry.
func (m *Map[K, V]) Iter() *Iterator[K, V] {
	return &Iterator[K, V]{m: m, idx: -1}
}

// Next advances to the next entry, reporting whether one exists.
func (it *Iterator[K, V]) Next() bool {
	if it.rewind {
		it.rewind = false
		it.idx = it.m.nextOccupied(it.idx)
	} else {
		it.idx = it.m.nextOccupied(it.idx + 1)
	}
	return it.idx < len(it.m.tab.buckets)
}

// Key returns the current entry's key.
func (it *Iterator[K, V]) Key() K { return it.m.tab.buckets[it.idx].key }

// Elem returns a pointer to the current entry's value.
func (it *Iterator[K, V]) Elem() *V { return &it.m.tab.buckets[it.idx].val }

// EraseItr removes the current entry. Erasing compacts the entry's chain
// by moving its tail into the vacated bucket; when the moved entry came
// from a bucket the iteration has not reached yet, the iterator is
// repositioned so the next call to Next re-examines the current bucket
// instead of skipping the moved entry. The return value reports that
// re-examination case.
func (m *Map[K, V]) EraseItr(it *Iterator[K, V]) bool {
	moved := m.eraseAt(it.idx)
	it.rewind = moved
	return moved
}

// Stats is a point-in-time summary of a Map's shape.
type Stats struct {
	Count    int
	Cap      int
	Load     float64
	MaxChain int // longest in-place chain, in members
}

// Stats summarizes the table for monitoring.
func (m *Map[K, V]) Stats() Stats {
	s := Stats{Count: m.count, Cap: len(m.tab.buckets)}
	if s.Cap == 0 {
		return s
	}
	s.Load = float64(s.Count) / float64(s.Cap)
	mask := m.tab.mask()
	for hm := range m.tab.buckets {
		if m.tab.meta[hm]&homeFlag == 0 {
			continue
		}
		n, i := 1, hm
		for {
			d := int(m.tab.meta[i] & displMask)
			if d == displLimit {
				break
			}
			i = probe(hm, d, mask)
			n++
		}
		if n > s.MaxChain {
			s.MaxChain = n
		}
	}
	return s
}

// Check verifies the table's structural invariants: every occupied bucket
// belongs to exactly one chain, every chain is headed by its home bucket,
// displacements increase strictly along each chain, every member's key
// hashes home to the chain head, and the entry count is within the load
// factor. Violations are reported through l, or through glog when l is
// nil. Check returns true when the table is sound.
func (m *Map[K, V]) Check(l logger.Logger) bool {
	if l == nil {
		l = defaultLogger
	}
	if m.tab.buckets == nil {
		if m.count != 0 {
			l.Errorf("hashmap: count %d with no buckets", m.count)
			return false
		}
		return true
	}
	mask := m.tab.mask()
	ok := true
	visited := make([]bool, len(m.tab.buckets))
	seen := 0
	for hm := range m.tab.buckets {
		if m.tab.meta[hm]&homeFlag == 0 {
			continue
		}
		i, last := hm, -1
		for {
			if visited[i] {
				l.Errorf("hashmap: bucket %d reached by more than one chain", i)
				return false
			}
			visited[i] = true
			seen++
			if home := int(m.hashKey(m.tab.buckets[i].key)) & mask; home != hm {
				l.Errorf("hashmap: bucket %d in chain of %d but its key homes to %d", i, hm, home)
				ok = false
			}
			d := int(m.tab.meta[i] & displMask)
			if d == displLimit {
				break
			}
			if d <= last {
				l.Errorf("hashmap: chain of %d: displacement %d after %d", hm, d, last)
				ok = false
			}
			last = d
			i = probe(hm, d, mask)
		}
	}
	for i := range m.tab.buckets {
		if m.tab.meta[i] != metaEmpty && !visited[i] {
			l.Errorf("hashmap: occupied bucket %d unreachable from any chain", i)
			ok = false
		}
	}
	if seen != m.count {
		l.Errorf("hashmap: count %d but %d entries reachable", m.count, seen)
		ok = false
	}
	if m.overloaded(m.count) {
		l.Errorf("hashmap: count %d over load factor %v at capacity %d",
			m.count, m.maxLoad, len(m.tab.buckets))
		ok = false
	}
	return ok
}
