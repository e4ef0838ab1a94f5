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

import "encoding/binary"

// block128 is a packed 16-byte value. It is interpreted as two
// little-endian 64-bit lanes for arithmetic (lanes/fromLanes) and as 16
// bytes for shuffle and AES-round operations.
type block128 [16]byte

func fromLanes(lo, hi uint64) block128 {
	var b block128
	binary.LittleEndian.PutUint64(b[0:8], lo)
	binary.LittleEndian.PutUint64(b[8:16], hi)
	return b
}

func (b block128) lanes() (lo, hi uint64) {
	return binary.LittleEndian.Uint64(b[0:8]), binary.LittleEndian.Uint64(b[8:16])
}

// addLanes returns the lane-wise 64-bit sum of b and x.
func (b block128) addLanes(x block128) block128 {
	bl, bh := b.lanes()
	xl, xh := x.lanes()
	return fromLanes(bl+xl, bh+xh)
}

// xorLanes returns the lane-wise xor of b and x.
func (b block128) xorLanes(x block128) block128 {
	var r block128
	for i := range r {
		r[i] = b[i] ^ x[i]
	}
	return r
}

// shuffle returns b permuted by perm: result[i] = b[perm[i]].
func (b block128) shuffle(perm [16]byte) block128 {
	var r block128
	for i, p := range perm {
		r[i] = b[p]
	}
	return r
}

// loadBlock reads n bytes (at most 16) from p starting at off,
// zero-padding past the end of p. Used by the one-shot hash's tail-handling paths (§4.5); the
// sequence of operations performed does not depend on the byte values,
// only on the (fixed, already-branched-on) lengths involved.
func loadBlock(p []byte, off, n int) block128 {
	var b block128
	end := off + n
	if end > len(p) {
		end = len(p)
	}
	if off < end {
		copy(b[:], p[off:end])
	}
	return b
}

// shiftRightBytes shifts b right by k bytes within the 128-bit register,
// treating b as a little-endian 128-bit integer: byte i of the result
// is byte i+k of b (bytes that would come from beyond the top of the
// register are zero). This is the tail-shift trick of §4.5: applied to
// a tail block that overlaps an earlier block, it isolates the bytes
// past the overlap and zero-fills the rest.
func (b block128) shiftRightBytes(k int) block128 {
	var r block128
	if k <= 0 {
		return b
	}
	if k >= 16 {
		return r
	}
	copy(r[:16-k], b[k:])
	return r
}
