// Copyright (c) 2023 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Package test provides the comparison helpers the container package
// tests share.
package test

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/kylelemons/godebug/pretty"
)

// Equaler types define their own comparison method.
type Equaler interface {
	// Equal returns true if this object is equal to the other one.
	Equal(other interface{}) bool
}

// DeepEqual compares two values, giving types the ability to define
// their own comparison by implementing Equaler.
func DeepEqual(a, b interface{}) bool {
	if a == nil || b == nil {
		return a == b
	}
	if ae, ok := a.(Equaler); ok {
		return ae.Equal(b)
	}
	return reflect.DeepEqual(a, b)
}

// Diff returns the difference of two objects in a human readable format,
// or the empty string when there is none.
func Diff(a, b interface{}) string {
	if DeepEqual(a, b) {
		return ""
	}
	if d := pretty.Compare(a, b); d != "" {
		return d
	}
	return fmt.Sprintf("%v != %v", a, b)
}

// ShouldPanic fails the test if fn does not panic.
func ShouldPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		if r := recover(); r == nil {
			t.Errorf("the function should have panicked")
		}
	}()
	fn()
}
