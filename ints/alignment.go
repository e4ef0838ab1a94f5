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

// Package ints holds the small integer helpers the hash/PRNG package
// and its command-line tools need: rounding a buffer size to the wide
// hash state's block boundary, clamping a benchmark iteration count,
// and flipping single bits of a byte buffer for avalanche testing.
package ints

// AlignDown rounds v down to the nearest multiple of alignment; with
// alignment 64, to a whole number of the wide hash state's 64-byte
// blocks.
func AlignDown(v, alignment uint) uint {
	return (v / alignment) * alignment
}

// AlignUp rounds v up to the nearest multiple of alignment.
func AlignUp(v, alignment uint) uint {
	return ((v + alignment - 1) / alignment) * alignment
}
