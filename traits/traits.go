// Copyright (c) 2023 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Package traits provides the hash, comparison and equality functions the
// container packages are parameterized with, plus ready-made sets for the
// fundamental types and for strbuf buffers.
package traits

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/aristanetworks/gocontainer/strbuf"
	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

// HashFn hashes a key to a 64-bit value.
type HashFn[K any] func(K) uint64

// CmpFn is a three-way comparison: negative if a < b, zero if equal,
// positive if a > b.
type CmpFn[K any] func(a, b K) int

// EqualFn reports whether two keys are equal.
type EqualFn[K any] func(a, b K) bool

// DefaultMaxLoad is the load factor hash containers grow at unless
// overridden per container.
const DefaultMaxLoad = 0.9

// HashInteger returns a hasher for any integer type. The value is encoded
// little-endian and hashed as bytes, so two equal values always collide and
// the distribution does not depend on the host byte order.
func HashInteger[T constraints.Integer]() HashFn[T] {
	return func(v T) uint64 {
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		return xxhash.Sum64(buf[:])
	}
}

// HashFloat returns a hasher for float32 or float64. Hashing goes through
// the float64 bit pattern, matching equality after widening.
func HashFloat[T constraints.Float]() HashFn[T] {
	return func(v T) uint64 {
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(float64(v)))
		return xxhash.Sum64(buf[:])
	}
}

// HashString returns a hasher for string keys.
func HashString() HashFn[string] {
	return xxhash.Sum64String
}

// HashBytes returns a hasher for byte-slice keys.
func HashBytes() HashFn[[]byte] {
	return xxhash.Sum64
}

// HashBuffer returns a content hasher for managed strings. Owned and
// borrowed buffers with the same contents hash identically, which is what
// makes borrowed-view lookup find owned keys.
func HashBuffer[E strbuf.Char]() HashFn[strbuf.Buffer[E]] {
	return func(b strbuf.Buffer[E]) uint64 {
		var (
			d   xxhash.Digest
			buf [4]byte
		)
		d.Reset()
		for _, e := range b.Slice() {
			binary.LittleEndian.PutUint32(buf[:], uint32(e))
			d.Write(buf[:])
		}
		return d.Sum64()
	}
}

// CmpOrdered returns a three-way comparison for any ordered type.
func CmpOrdered[T constraints.Ordered]() CmpFn[T] {
	return func(a, b T) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	}
}

// CmpBytes returns a lexicographic three-way comparison for byte-slice
// keys.
func CmpBytes() CmpFn[[]byte] {
	return bytes.Compare
}

// CmpBuffer returns a lexicographic three-way comparison for managed
// strings: element-wise over the common prefix, then by length.
func CmpBuffer[E strbuf.Char]() CmpFn[strbuf.Buffer[E]] {
	return func(a, b strbuf.Buffer[E]) int {
		as, bs := a.Slice(), b.Slice()
		n := len(as)
		if len(bs) < n {
			n = len(bs)
		}
		for i := 0; i < n; i++ {
			if as[i] != bs[i] {
				if as[i] < bs[i] {
					return -1
				}
				return 1
			}
		}
		return len(as) - len(bs)
	}
}

// EqualFromCmp synthesizes an equality predicate from a three-way
// comparison.
func EqualFromCmp[T any](cmp CmpFn[T]) EqualFn[T] {
	return func(a, b T) bool { return cmp(a, b) == 0 }
}

// EqualComparable returns direct == equality. Hash containers should
// prefer this over EqualFromCmp whenever the key type supports it.
func EqualComparable[T comparable]() EqualFn[T] {
	return func(a, b T) bool { return a == b }
}

// EqualBuffer reports content equality of managed strings.
func EqualBuffer[E strbuf.Char]() EqualFn[strbuf.Buffer[E]] {
	return EqualFromCmp(CmpBuffer[E]())
}
