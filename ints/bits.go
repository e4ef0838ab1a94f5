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

package ints

// TestBit reports whether bit k of in is set. Bits are indexed from
// the start of the buffer, LSB first within each byte.
func TestBit(in []byte, k int) bool {
	return in[k/8]&(1<<uint(k%8)) != 0
}

// FlipBit inverts bit k of in, used to drive a single-bit-flip
// avalanche check against a hash digest.
func FlipBit(in []byte, k int) {
	in[k/8] ^= 1 << uint(k%8)
}
