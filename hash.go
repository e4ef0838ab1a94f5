// Copyright (C) 2023 Sneller, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package vhash

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Hash returns the 64-bit hash of data under seed. It dispatches on
// length into one of five size classes (§4.4): inputs up to 64 bytes
// absorb 1-4 overlapping 16-byte blocks into a minimalState; longer
// inputs absorb full 64-byte chunks into a wideState, plus one final
// zero-padded chunk for any remainder.
//
// Hash(data, seed) is deterministic: the same bytes and seed always
// produce the same value, on any platform this package runs on.
func Hash(data []byte, seed uint64) uint64 {
	n := len(data)
	switch {
	case n <= 16:
		s := newMinimalState(seed)
		s.update(loadBlock(data, 0, 16))
		return s.finalize(uint64(n))

	case n <= 32:
		s := newMinimalState(seed)
		b0 := loadBlock(data, 0, 16)
		b1 := loadBlock(data, n-16, 16).shiftRightBytes(32 - n)
		s.update(b0)
		s.update(b1)
		return s.finalize(uint64(n))

	case n <= 48:
		s := newMinimalState(seed)
		b0 := loadBlock(data, 0, 16)
		b1 := loadBlock(data, 16, 16)
		b2 := loadBlock(data, n-16, 16).shiftRightBytes(48 - n)
		s.update(b0)
		s.update(b1)
		s.update(b2)
		return s.finalize(uint64(n))

	case n <= 64:
		s := newMinimalState(seed)
		b0 := loadBlock(data, 0, 16)
		b1 := loadBlock(data, 16, 16)
		b2 := loadBlock(data, 32, 16)
		b3 := loadBlock(data, n-16, 16).shiftRightBytes(64 - n)
		s.update(b0)
		s.update(b1)
		s.update(b2)
		s.update(b3)
		return s.finalize(uint64(n))

	default:
		s := newWideState(seed)
		for int(s.insLength)+64 <= n {
			off := int(s.insLength)
			for i := 0; i < 4; i++ {
				s.ins[i] = loadBlock(data, off+16*i, 16)
			}
			s.absorb()
			s.insLength += 64
		}
		if int(s.insLength) < n {
			for i := range s.ins {
				s.ins[i] = block128{}
			}
			rem := data[s.insLength:]
			for i, b := range rem {
				s.ins[i/16][i%16] = b
			}
			s.absorb()
			s.insLength = uint64(n)
		}
		return s.finalize()
	}
}

// Hashable is any integer type HashValue can hash by value.
type Hashable interface {
	constraints.Integer
}

// HashValue hashes the in-memory representation of v under seed. It is
// a convenience wrapper for hashing fixed-width integers (hash-table
// keys, sort keys) without the caller manually slicing v into bytes.
//
//go:nosplit
func HashValue[T Hashable](v T, seed uint64) uint64 {
	size := int(unsafe.Sizeof(v))
	p := (*byte)(unsafe.Pointer(&v))
	b := unsafe.Slice(p, size)
	return Hash(b, seed)
}
