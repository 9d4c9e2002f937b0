// Copyright (c) 2024 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Package hashset implements an unordered set as a thin wrapper over
// hashmap with a zero-size value type, so a bucket stores the element
// bytes once and no value beside them.
package hashset

import (
	"github.com/aristanetworks/gocontainer/hashmap"
	"github.com/aristanetworks/gocontainer/logger"
)

// Set is an unordered set of K. Obtain one from New; the first insertion
// allocates. A Set must not be mutated concurrently.
type Set[K any] struct {
	m *hashmap.Map[K, struct{}]
}

// New returns an empty set using the given equality and hash functions.
func New[K any](equal func(a, b K) bool, hash func(K) uint64) *Set[K] {
	return &Set[K]{m: hashmap.New[K, struct{}](equal, hash)}
}

// NewHint is New with capacity reserved for hint elements up front.
func NewHint[K any](hint int, equal func(a, b K) bool, hash func(K) uint64) *Set[K] {
	return &Set[K]{m: hashmap.NewHint[K, struct{}](hint, equal, hash)}
}

// SetMaxLoad overrides the growth load factor. lf must be in (0, 1].
func (s *Set[K]) SetMaxLoad(lf float64) { s.m.SetMaxLoad(lf) }

// Len returns the number of elements.
func (s *Set[K]) Len() int { return s.m.Len() }

// Cap returns the number of buckets.
func (s *Set[K]) Cap() int { return s.m.Cap() }

// Initialized reports whether the set owns bucket memory.
func (s *Set[K]) Initialized() bool { return s.m.Initialized() }

// Get returns a pointer to the stored element equal to k, or nil.
func (s *Set[K]) Get(k K) *K {
	p, _ := s.m.GetKV(k)
	return p
}

// Contains reports whether k is in the set.
func (s *Set[K]) Contains(k K) bool { return s.Get(k) != nil }

// Insert adds k, replacing any stored element equal to it, and returns a
// pointer to the stored element.
func (s *Set[K]) Insert(k K) *K {
	s.m.Insert(k, struct{}{})
	p, _ := s.m.GetKV(k)
	return p
}

// GetOrInsert returns a pointer to the stored element equal to k,
// inserting k first if absent. The second result reports whether an
// insertion happened.
func (s *Set[K]) GetOrInsert(k K) (*K, bool) {
	_, inserted := s.m.GetOrInsert(k, struct{}{})
	p, _ := s.m.GetKV(k)
	return p, inserted
}

// Erase removes k. It reports whether an element was removed.
func (s *Set[K]) Erase(k K) bool { return s.m.Erase(k) }

// Reserve grows the table so that n elements fit without rehashing.
func (s *Set[K]) Reserve(n int) { s.m.Reserve(n) }

// Shrink rehashes into the smallest fitting capacity, or frees the table
// when empty.
func (s *Set[K]) Shrink() { s.m.Shrink() }

// Clear removes every element, keeping the bucket memory.
func (s *Set[K]) Clear() { s.m.Clear() }

// Cleanup removes every element and releases the bucket memory.
func (s *Set[K]) Cleanup() { s.m.Cleanup() }

// Clone returns a copy sharing no memory with s.
func (s *Set[K]) Clone() *Set[K] {
	return &Set[K]{m: s.m.Clone()}
}

// Iterator walks a Set in bucket order.
type Iterator[K any] struct {
	it *hashmap.Iterator[K, struct{}]
}

// Iter returns an iterator positioned before the first element.
func (s *Set[K]) Iter() Iterator[K] { return Iterator[K]{it: s.m.Iter()} }

// Next advances to the next element, reporting whether one exists.
func (it Iterator[K]) Next() bool { return it.it.Next() }

// Elem returns the current element.
func (it Iterator[K]) Elem() K { return it.it.Key() }

// EraseItr removes the current element, reporting whether the next call
// to Next will re-examine the current bucket. See hashmap.Map.EraseItr.
func (s *Set[K]) EraseItr(it Iterator[K]) bool { return s.m.EraseItr(it.it) }

// ForEach calls fn on each element in table order. Iteration stops if fn
// returns true. fn must not mutate the set.
func (s *Set[K]) ForEach(fn func(k K) bool) {
	s.m.ForEach(func(k K, _ *struct{}) bool { return fn(k) })
}

// Stats summarizes the table for monitoring.
func (s *Set[K]) Stats() hashmap.Stats { return s.m.Stats() }

// Check verifies the table's structural invariants, reporting violations
// through l, or through glog when l is nil.
func (s *Set[K]) Check(l logger.Logger) bool { return s.m.Check(l) }
