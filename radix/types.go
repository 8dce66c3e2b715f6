// Package radix defines the key types and projection contracts shared by the
// radix and counting sort kernels, plus the runtime dispatch that tunes them
// for the current CPU.
//
// An element type takes part in sorting by projecting itself to a radix key:
//
//	type Event struct {
//	    Port uint16
//	    Name string
//	}
//
//	func (e Event) RadixKey() uint16 { return e.Port }
//
//	sort.SortRadixable[Event, uint16](events)
//
// Plain unsigned integers are their own key and go through sort.Sort.
package radix

import "unsafe"

// Unsigned is the set of key types up to 64 bits wide.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// RadixKey is the closed set of supported key types: 8, 16, 32, 64 and 128 bits.
type RadixKey interface {
	Unsigned | Uint128
}

// Uint128 is a 128-bit unsigned key. Hi holds the most significant 64 bits.
type Uint128 struct {
	Hi, Lo uint64
}

// Compare returns -1, 0 or +1 by unsigned comparison.
func (u Uint128) Compare(v Uint128) int {
	switch {
	case u.Hi < v.Hi:
		return -1
	case u.Hi > v.Hi:
		return 1
	case u.Lo < v.Lo:
		return -1
	case u.Lo > v.Lo:
		return 1
	}
	return 0
}

// Less reports whether u < v.
func (u Uint128) Less(v Uint128) bool {
	return u.Hi < v.Hi || (u.Hi == v.Hi && u.Lo < v.Lo)
}

// Byte returns byte i of u, 0 being the least significant.
func (u Uint128) Byte(i int) uint8 {
	if i < 8 {
		return uint8(u.Lo >> (8 * i))
	}
	return uint8(u.Hi >> (8 * (i - 8)))
}

// RadixKey makes Uint128 its own projection.
func (u Uint128) RadixKey() Uint128 {
	return u
}

// KeyWidth returns the width in bits of the key type K.
func KeyWidth[K RadixKey]() int {
	var k K
	return int(unsafe.Sizeof(k)) * 8
}
