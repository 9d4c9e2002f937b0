// Copyright (c) 2024 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Package strbuf implements a terminated, growable character buffer
// generic over the character unit width. The element one past the last
// character is always the zero element, so Raw() can be handed to code
// expecting terminated sequences of any of the supported widths.
package strbuf

import "unsafe"

// Char is the set of character unit types a Buffer can hold: 8-bit signed
// and unsigned units, 16-bit units and runes.
type Char interface {
	~int8 | ~uint8 | ~uint16 | ~int32
}

// Buffer is a growable terminated sequence of characters. The zero value
// is an empty buffer ready for use. Buffers are not safe for concurrent
// mutation.
//
// A Buffer obtained from Borrow is a read-only view over caller-owned
// memory: lookups and iteration work, mutating operations must not be
// called on it.
type Buffer[E Char] struct {
	data     []E // data[size] is the zero terminator when owned and allocated
	size     int
	borrowed bool
}

// From builds an owned buffer holding the characters of s. For 8-bit
// element types the raw bytes are copied; for wider elements s is decoded
// as UTF-8 and each rune becomes one element.
func From[E Char](s string) Buffer[E] {
	var b Buffer[E]
	b.PushN(decode[E](s))
	return b
}

// Borrow wraps caller-owned memory in a read-only view. No copy is made
// and the view must not outlive buf. Content hashing and comparison treat
// owned and borrowed buffers identically, which is what heterogeneous
// container lookup relies on.
func Borrow[E Char](buf []E) Buffer[E] {
	return Buffer[E]{data: buf, size: len(buf), borrowed: true}
}

// BorrowString wraps the bytes of s in a read-only byte-width view
// without copying.
func BorrowString(s string) Buffer[byte] {
	if len(s) == 0 {
		return Buffer[byte]{borrowed: true}
	}
	return Buffer[byte]{
		data:     unsafe.Slice(unsafe.StringData(s), len(s)),
		size:     len(s),
		borrowed: true,
	}
}

// Borrowed reports whether b is a view over caller-owned memory.
func (b *Buffer[E]) Borrowed() bool { return b.borrowed }

// Initialized reports whether b owns an allocation.
func (b *Buffer[E]) Initialized() bool { return !b.borrowed && b.data != nil }

// Len returns the number of characters, excluding the terminator.
func (b *Buffer[E]) Len() int { return b.size }

// Cap returns the number of characters the buffer can hold before
// growing, excluding the terminator.
func (b *Buffer[E]) Cap() int {
	if b.borrowed {
		return b.size
	}
	if b.data == nil {
		return 0
	}
	return cap(b.data) - 1
}

// At returns a pointer to the character at index i. The pointer is
// invalidated by any operation that may reallocate.
func (b *Buffer[E]) At(i int) *E { return &b.data[i] }

// Slice returns the characters without the terminator. The slice aliases
// the buffer's storage.
func (b *Buffer[E]) Slice() []E { return b.data[:b.size] }

// Raw returns the characters including the terminator. It allocates a
// terminated copy for borrowed views, whose backing memory carries none.
func (b *Buffer[E]) Raw() []E {
	if b.borrowed {
		out := make([]E, b.size+1)
		copy(out, b.data)
		return out
	}
	if b.data == nil {
		return make([]E, 1)
	}
	return b.data[:b.size+1]
}

// String renders the contents: 8-bit elements are taken as raw bytes,
// wider elements as runes.
func (b *Buffer[E]) String() string {
	var z E
	if unsafe.Sizeof(z) == 1 {
		out := make([]byte, b.size)
		for i, e := range b.Slice() {
			out[i] = byte(e)
		}
		return string(out)
	}
	out := make([]rune, b.size)
	for i, e := range b.Slice() {
		out[i] = rune(e)
	}
	return string(out)
}

// grow ensures room for at least n characters plus the terminator,
// doubling capacity from a minimum of 2.
func (b *Buffer[E]) grow(n int) {
	if n <= b.Cap() {
		return
	}
	newcap := b.Cap()
	if newcap < 2 {
		newcap = 2
	}
	for newcap < n {
		newcap *= 2
	}
	data := make([]E, b.size+1, newcap+1)
	copy(data, b.data)
	b.data = data
}

// Reserve ensures capacity for at least n characters.
func (b *Buffer[E]) Reserve(n int) { b.grow(n) }

// Resize sets the length to n, appending copies of fill when growing.
// The terminator is maintained.
func (b *Buffer[E]) Resize(n int, fill E) {
	if n > b.size {
		b.grow(n)
		b.data = b.data[:n+1]
		for i := b.size; i < n; i++ {
			b.data[i] = fill
		}
	} else {
		if b.data == nil {
			return
		}
		b.data = b.data[:n+1]
	}
	b.size = n
	b.data[n] = 0
}

// Shrink reallocates to exactly the current size, or frees the buffer
// entirely when empty.
func (b *Buffer[E]) Shrink() {
	if b.size == 0 {
		b.data = nil
		return
	}
	if cap(b.data) == b.size+1 {
		return
	}
	data := make([]E, b.size+1)
	copy(data, b.data)
	b.data = data
}

// Push appends one character and returns its address.
func (b *Buffer[E]) Push(el E) *E {
	b.grow(b.size + 1)
	b.data = b.data[:b.size+2]
	b.data[b.size] = el
	b.size++
	b.data[b.size] = 0
	return &b.data[b.size-1]
}

// PushN appends src.
func (b *Buffer[E]) PushN(src []E) {
	b.InsertN(b.size, src)
}

// Insert inserts one character before index i and returns its address.
func (b *Buffer[E]) Insert(i int, el E) *E {
	b.InsertN(i, []E{el})
	return &b.data[i]
}

// InsertN inserts src before index i, shifting the suffix up.
func (b *Buffer[E]) InsertN(i int, src []E) {
	n := len(src)
	if n == 0 {
		return
	}
	b.grow(b.size + n)
	b.data = b.data[:b.size+n+1]
	copy(b.data[i+n:], b.data[i:b.size])
	copy(b.data[i:], src)
	b.size += n
	b.data[b.size] = 0
}

// Erase removes the character at index i and returns the address of its
// successor, or nil if it was the last.
func (b *Buffer[E]) Erase(i int) *E {
	b.EraseN(i, 1)
	if i == b.size {
		return nil
	}
	return &b.data[i]
}

// EraseN removes n characters starting at index i, shifting the suffix
// down.
func (b *Buffer[E]) EraseN(i, n int) {
	copy(b.data[i:], b.data[i+n:b.size])
	b.size -= n
	b.data = b.data[:b.size+1]
	b.data[b.size] = 0
}

// Clear empties the buffer, keeping its allocation.
func (b *Buffer[E]) Clear() {
	if b.data == nil {
		return
	}
	b.size = 0
	b.data = b.data[:1]
	b.data[0] = 0
}

// Cleanup empties the buffer and releases its allocation, restoring the
// zero value.
func (b *Buffer[E]) Cleanup() {
	*b = Buffer[E]{}
}

// Clone returns an owned copy. Cloning a borrowed view yields an owned
// buffer with the same contents.
func (b *Buffer[E]) Clone() Buffer[E] {
	var out Buffer[E]
	if b.size == 0 {
		return out
	}
	out.data = make([]E, b.size+1)
	copy(out.data, b.data[:b.size])
	out.size = b.size
	return out
}

// ForEach calls fn on each index and character in order. Iteration stops
// if fn returns true.
func (b *Buffer[E]) ForEach(fn func(i int, el E) bool) {
	for i, e := range b.Slice() {
		if fn(i, e) {
			return
		}
	}
}

// decode converts a Go string to a slice of elements: raw bytes for 8-bit
// element types, decoded runes otherwise.
func decode[E Char](s string) []E {
	var z E
	if unsafe.Sizeof(z) == 1 {
		out := make([]E, len(s))
		for i := 0; i < len(s); i++ {
			out[i] = E(s[i])
		}
		return out
	}
	rs := []rune(s)
	out := make([]E, len(rs))
	for i, r := range rs {
		out[i] = E(r)
	}
	return out
}
