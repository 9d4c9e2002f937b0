// Copyright (c) 2025 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Package treeset implements an ordered set as a thin wrapper over
// treemap with a zero-size value type.
package treeset

import (
	"github.com/aristanetworks/gocontainer/logger"
	"github.com/aristanetworks/gocontainer/treemap"
)

// Set is an ordered set of K. Obtain one from New. A Set must not be
// mutated concurrently.
type Set[K any] struct {
	m *treemap.Map[K, struct{}]
}

// New returns an empty set ordered by the three-way comparison cmp.
func New[K any](cmp func(a, b K) int) *Set[K] {
	return &Set[K]{m: treemap.New[K, struct{}](cmp)}
}

// Len returns the number of elements.
func (s *Set[K]) Len() int { return s.m.Len() }

// Initialized reports whether the set holds any allocated node.
func (s *Set[K]) Initialized() bool { return s.m.Initialized() }

// Get returns a pointer to the stored element equal to k, or nil.
func (s *Set[K]) Get(k K) *K {
	p, _ := s.m.GetKV(k)
	return p
}

// Contains reports whether k is in the set.
func (s *Set[K]) Contains(k K) bool { return s.Get(k) != nil }

// Insert adds k, replacing any stored element equal to it, and returns
// an iterator to it.
func (s *Set[K]) Insert(k K) Iterator[K] {
	return Iterator[K]{it: s.m.Insert(k, struct{}{})}
}

// GetOrInsert returns an iterator to the stored element equal to k,
// inserting k first if absent. The second result reports whether an
// insertion happened.
func (s *Set[K]) GetOrInsert(k K) (Iterator[K], bool) {
	it, inserted := s.m.GetOrInsert(k, struct{}{})
	return Iterator[K]{it: it}, inserted
}

// Erase removes k. It reports whether an element was removed.
func (s *Set[K]) Erase(k K) bool { return s.m.Erase(k) }

// EraseItr removes the element it addresses and returns the iterator to
// its successor.
func (s *Set[K]) EraseItr(it Iterator[K]) Iterator[K] {
	return Iterator[K]{it: s.m.EraseItr(it.it)}
}

// Clear removes every element.
func (s *Set[K]) Clear() { s.m.Clear() }

// Cleanup is Clear.
func (s *Set[K]) Cleanup() { s.m.Cleanup() }

// Clone returns a copy sharing no nodes with s.
func (s *Set[K]) Clone() *Set[K] {
	return &Set[K]{m: s.m.Clone()}
}

// Iterator addresses an element of a Set, or an endpoint. Iterators
// compare with ==.
type Iterator[K any] struct {
	it treemap.Iterator[K, struct{}]
}

// Ok reports whether the iterator addresses an element.
func (it Iterator[K]) Ok() bool { return it.it.Ok() }

// Elem returns the element.
func (it Iterator[K]) Elem() K { return it.it.Key() }

// Next returns the iterator to the next element in order.
func (it Iterator[K]) Next() Iterator[K] { return Iterator[K]{it: it.it.Next()} }

// Prev returns the iterator to the previous element in order.
func (it Iterator[K]) Prev() Iterator[K] { return Iterator[K]{it: it.it.Prev()} }

// First returns an iterator to the smallest element, or End when empty.
func (s *Set[K]) First() Iterator[K] { return Iterator[K]{it: s.m.First()} }

// Last returns an iterator to the largest element, or REnd when empty.
func (s *Set[K]) Last() Iterator[K] { return Iterator[K]{it: s.m.Last()} }

// End returns the past-the-last endpoint.
func (s *Set[K]) End() Iterator[K] { return Iterator[K]{it: s.m.End()} }

// REnd returns the before-the-first endpoint.
func (s *Set[K]) REnd() Iterator[K] { return Iterator[K]{it: s.m.REnd()} }

// Ceiling returns an iterator to the smallest element >= k, or End.
func (s *Set[K]) Ceiling(k K) Iterator[K] { return Iterator[K]{it: s.m.Ceiling(k)} }

// Floor returns an iterator to the largest element <= k, or REnd.
func (s *Set[K]) Floor(k K) Iterator[K] { return Iterator[K]{it: s.m.Floor(k)} }

// ForEach calls fn on each element in order. Iteration stops if fn
// returns true.
func (s *Set[K]) ForEach(fn func(k K) bool) {
	s.m.ForEach(func(k K, _ *struct{}) bool { return fn(k) })
}

// RForEach calls fn on each element in reverse order. Iteration stops if
// fn returns true.
func (s *Set[K]) RForEach(fn func(k K) bool) {
	s.m.RForEach(func(k K, _ *struct{}) bool { return fn(k) })
}

// Stats summarizes the tree for monitoring.
func (s *Set[K]) Stats() treemap.Stats { return s.m.Stats() }

// Check verifies the tree's structural invariants, reporting violations
// through l, or through glog when l is nil.
func (s *Set[K]) Check(l logger.Logger) bool { return s.m.Check(l) }
