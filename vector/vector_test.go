// Copyright (c) 2023 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package vector

import (
	"testing"

	"github.com/aristanetworks/gocontainer/test"
)

func TestPushInsertErase(t *testing.T) {
	var v Vector[int]
	if v.Initialized() {
		t.Fatal("zero vector should not be initialized")
	}
	for k := 0; k < 10; k++ {
		v.Push(k)
	}
	for k := 0; k < 10; k++ {
		v.Insert(2*k, k)
	}
	if d := test.Diff([]int{0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 6, 6, 7, 7, 8, 8, 9, 9},
		v.Slice()); d != "" {
		t.Fatalf("after interleaved inserts: %s", d)
	}
	for i := 0; i < v.Len(); {
		if *v.At(i)%3 == 0 {
			v.Erase(i)
		} else {
			i++
		}
	}
	if d := test.Diff([]int{1, 1, 2, 2, 4, 4, 5, 5, 7, 7, 8, 8}, v.Slice()); d != "" {
		t.Errorf("after erases: %s", d)
	}
}

func TestGrowthPolicy(t *testing.T) {
	var v Vector[byte]
	caps := []int{}
	last := -1
	for i := 0; i < 70; i++ {
		v.Push(0)
		if v.Cap() != last {
			last = v.Cap()
			caps = append(caps, last)
		}
	}
	if d := test.Diff([]int{2, 4, 8, 16, 32, 64, 128}, caps); d != "" {
		t.Errorf("capacity sequence: %s", d)
	}
}

func TestInsertNEraseNRoundTrip(t *testing.T) {
	var v Vector[int]
	v.PushN([]int{1, 2, 3, 4, 5})
	before := append([]int(nil), v.Slice()...)
	v.InsertN(2, []int{10, 11, 12})
	if d := test.Diff([]int{1, 2, 10, 11, 12, 3, 4, 5}, v.Slice()); d != "" {
		t.Fatalf("after InsertN: %s", d)
	}
	v.EraseN(2, 3)
	if d := test.Diff(before, v.Slice()); d != "" {
		t.Errorf("EraseN should undo InsertN: %s", d)
	}
}

func TestResize(t *testing.T) {
	var v Vector[int]
	v.ResizeFill(4, 7)
	if d := test.Diff([]int{7, 7, 7, 7}, v.Slice()); d != "" {
		t.Fatalf("grow: %s", d)
	}
	v.Resize(2)
	if d := test.Diff([]int{7, 7}, v.Slice()); d != "" {
		t.Fatalf("shrink: %s", d)
	}
	v.Resize(3)
	if d := test.Diff([]int{7, 7, 0}, v.Slice()); d != "" {
		t.Errorf("regrow fills with zeros: %s", d)
	}
}

func TestShrinkReserve(t *testing.T) {
	var v Vector[int]
	for i := 0; i < 5; i++ {
		v.Push(i)
	}
	capBefore := v.Cap()
	v.Shrink()
	if v.Cap() != 5 {
		t.Fatalf("cap after shrink = %d, want 5", v.Cap())
	}
	v.Reserve(capBefore)
	if v.Cap() < capBefore {
		t.Fatalf("cap after reserve = %d, want >= %d", v.Cap(), capBefore)
	}
	if d := test.Diff([]int{0, 1, 2, 3, 4}, v.Slice()); d != "" {
		t.Errorf("shrink+reserve must preserve elements: %s", d)
	}

	v.Clear()
	v.Shrink()
	if v.Initialized() {
		t.Error("shrink of an empty vector should free the buffer")
	}
}

func TestEraseReturnsSuccessor(t *testing.T) {
	var v Vector[int]
	v.PushN([]int{1, 2, 3})
	if p := v.Erase(1); p == nil || *p != 3 {
		t.Errorf("Erase(1) successor = %v, want 3", p)
	}
	if p := v.Erase(1); p != nil {
		t.Errorf("erasing the last index should return nil, got %v", *p)
	}
}

func TestCloneAndForEach(t *testing.T) {
	var v Vector[string]
	v.PushN([]string{"a", "b", "c"})
	c := v.Clone()
	v.Push("d")
	if d := test.Diff([]string{"a", "b", "c"}, c.Slice()); d != "" {
		t.Fatalf("clone changed with source: %s", d)
	}
	var got []string
	c.ForEach(func(i int, el string) bool {
		got = append(got, el)
		return false
	})
	if d := test.Diff(c.Slice(), got); d != "" {
		t.Errorf("ForEach: %s", d)
	}
	n := 0
	c.ForEach(func(i int, el string) bool {
		n++
		return true
	})
	if n != 1 {
		t.Errorf("ForEach should stop when fn returns true, made %d calls", n)
	}
}

func TestCleanup(t *testing.T) {
	var v Vector[int]
	v.PushN([]int{1, 2, 3})
	v.Cleanup()
	if v.Len() != 0 || v.Cap() != 0 || v.Initialized() {
		t.Errorf("Cleanup should restore the zero value: len=%d cap=%d", v.Len(), v.Cap())
	}
	// A cleaned-up vector is immediately reusable.
	v.Push(42)
	if v.Len() != 1 || *v.At(0) != 42 {
		t.Error("vector unusable after Cleanup")
	}
}
