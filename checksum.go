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

// Bytesum returns the sum of the byte values of b as a 64-bit
// accumulator. It never overflows for any b that fits in memory
// (2^64 - 1 requires more than 2^56 maximum-value bytes).
//
// Bytesum(nil) and Bytesum of an empty slice are both 0, and Bytesum is
// additive over concatenation: Bytesum(append(a, b...)) == Bytesum(a) +
// Bytesum(b).
func Bytesum(b []byte) uint64 {
	var sum uint64
	for _, v := range b {
		sum += uint64(v)
	}
	return sum
}
