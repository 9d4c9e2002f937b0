// Copyright (c) 2025 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package treemap

import (
	"github.com/aristanetworks/gocontainer/glog"
	"github.com/aristanetworks/gocontainer/logger"
)

// defaultLogger is where Check reports when the caller passes nil.
var defaultLogger logger.Logger = &glog.Glog{}

// Iterator addresses an entry of a Map, or the sentinel. The sentinel is
// one shared node serving as both iteration endpoints: End when walking
// forward, REnd when walking backward. Iterators compare with ==.
type Iterator[K, V any] struct {
	m *Map[K, V]
	n *node[K, V]
}

// Ok reports whether the iterator addresses an entry rather than an
// endpoint.
func (it Iterator[K, V]) Ok() bool { return it.n != it.m.nilp() }

// Key returns the entry's key.
func (it Iterator[K, V]) Key() K { return it.n.key }

// Elem returns a pointer to the entry's value.
func (it Iterator[K, V]) Elem() *V { return &it.n.val }

// Next returns the iterator to the next entry in key order, or End after
// the last. Next of the endpoint sentinel is the first entry.
func (it Iterator[K, V]) Next() Iterator[K, V] {
	m := it.m
	x := it.n
	if x == m.nilp() {
		return m.First()
	}
	if x.children[1] != m.nilp() {
		return Iterator[K, V]{m: m, n: m.minNode(x.children[1])}
	}
	y := x.parent
	for y != m.nilp() && x == y.children[1] {
		x = y
		y = y.parent
	}
	return Iterator[K, V]{m: m, n: y}
}

// Prev returns the iterator to the previous entry in key order, or REnd
// before the first. Prev of the endpoint sentinel is the last entry.
func (it Iterator[K, V]) Prev() Iterator[K, V] {
	m := it.m
	x := it.n
	if x == m.nilp() {
		return m.Last()
	}
	if x.children[0] != m.nilp() {
		return Iterator[K, V]{m: m, n: m.maxNode(x.children[0])}
	}
	y := x.parent
	for y != m.nilp() && x == y.children[0] {
		x = y
		y = y.parent
	}
	return Iterator[K, V]{m: m, n: y}
}

// First returns an iterator to the smallest entry, or End when empty.
func (m *Map[K, V]) First() Iterator[K, V] {
	if m.root == m.nilp() {
		return m.End()
	}
	return Iterator[K, V]{m: m, n: m.minNode(m.root)}
}

// Last returns an iterator to the largest entry, or REnd when empty.
func (m *Map[K, V]) Last() Iterator[K, V] {
	if m.root == m.nilp() {
		return m.REnd()
	}
	return Iterator[K, V]{m: m, n: m.maxNode(m.root)}
}

// End returns the past-the-last endpoint. It is stable for the life of
// the map.
func (m *Map[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{m: m, n: &m.sentinel}
}

// REnd returns the before-the-first endpoint. It is the same sentinel as
// End.
func (m *Map[K, V]) REnd() Iterator[K, V] { return m.End() }

// EraseItr removes the entry it addresses and returns the iterator to
// its successor. Iterators to other entries, the successor included,
// stay valid.
func (m *Map[K, V]) EraseItr(it Iterator[K, V]) Iterator[K, V] {
	next := it.Next()
	m.eraseNode(it.n)
	return next
}

// ForEach calls fn on each key and value pointer in key order. Iteration
// stops if fn returns true. fn must not mutate the map.
func (m *Map[K, V]) ForEach(fn func(k K, v *V) bool) {
	for it := m.First(); it.Ok(); it = it.Next() {
		if fn(it.n.key, &it.n.val) {
			return
		}
	}
}

// RForEach calls fn on each key and value pointer in reverse key order.
// Iteration stops if fn returns true.
func (m *Map[K, V]) RForEach(fn func(k K, v *V) bool) {
	for it := m.Last(); it.Ok(); it = it.Prev() {
		if fn(it.n.key, &it.n.val) {
			return
		}
	}
}

// Stats is a point-in-time summary of a Map's shape.
type Stats struct {
	Count       int
	Height      int
	BlackHeight int
}

// Stats summarizes the tree for monitoring.
func (m *Map[K, V]) Stats() Stats {
	s := Stats{Count: m.count}
	for x := m.root; x != m.nilp(); x = x.children[0] {
		if !x.red {
			s.BlackHeight++
		}
	}
	s.Height = m.height(m.root)
	return s
}

func (m *Map[K, V]) height(x *node[K, V]) int {
	if x == m.nilp() {
		return 0
	}
	l := m.height(x.children[0])
	r := m.height(x.children[1])
	if r > l {
		l = r
	}
	return l + 1
}

// Check verifies the red-black and ordering invariants: the root is
// black, no red node has a red child, every root-to-leaf path carries
// the same number of black nodes, keys are strictly increasing in-order,
// and the entry count matches. Violations are reported through l, or
// through glog when l is nil. Check returns true when the tree is sound.
func (m *Map[K, V]) Check(l logger.Logger) bool {
	if l == nil {
		l = defaultLogger
	}
	ok := true
	if m.root.red {
		l.Errorf("treemap: root is red")
		ok = false
	}
	count := 0
	if _, good := m.check(l, m.root, &count); !good {
		ok = false
	}
	if count != m.count {
		l.Errorf("treemap: count %d but %d nodes reachable", m.count, count)
		ok = false
	}
	prev := m.REnd()
	for it := m.First(); it.Ok(); it = it.Next() {
		if prev.Ok() && m.cmp(prev.Key(), it.Key()) >= 0 {
			l.Errorf("treemap: keys out of order")
			ok = false
		}
		prev = it
	}
	return ok
}

// check returns the black height of x's subtree and whether it is sound.
func (m *Map[K, V]) check(l logger.Logger, x *node[K, V], count *int) (int, bool) {
	if x == m.nilp() {
		return 1, true
	}
	*count++
	if x.red && (x.children[0].red || x.children[1].red) {
		l.Errorf("treemap: red node with red child")
		return 0, false
	}
	lh, lok := m.check(l, x.children[0], count)
	rh, rok := m.check(l, x.children[1], count)
	if !lok || !rok {
		return 0, false
	}
	if lh != rh {
		l.Errorf("treemap: black height mismatch %d != %d", lh, rh)
		return 0, false
	}
	if !x.red {
		lh++
	}
	return lh, true
}
