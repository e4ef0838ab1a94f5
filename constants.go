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

// piWords holds 1024 bits of structure-free mixing material: the
// fractional hex digits of pi, used as "nothing up our sleeve" constants
// for the aes and sum lanes of the minimal and wide states and for the
// round keys of Generate.
//
// Shared read-only state for every backend; never mutated after init.
var piWords = [16]uint64{
	0x243F6A8885A308D3,
	0x13198A2E03707344,
	0xA4093822299F31D0,
	0x082EFA98EC4E6C89,
	0x452821E638D01377,
	0xBE5466CF34E90C6C,
	0xC0AC29B7C97C50DD,
	0x3F84D5B5B5470917,
	0x9216D5D98979FB1B,
	0xD1310BA698DFB5AC,
	0x2FFD72DBD01ADFB7,
	0xB8E1AFED6A267E96,
	0xBA7C9045F12C7F99,
	0x24A19947B3916CF7,
	0x0801F2E2858EFC16,
	0x636920D871574E69,
}

// additiveShuffle is the fixed byte permutation applied to the "sum"
// accumulator before each lane-wise 64-bit add. It has no inverse
// structure an attacker can exploit in isolation; its only job is to
// keep the additive accumulator from degenerating into a simple
// byte-position-independent sum.
var additiveShuffle = [16]byte{4, 11, 9, 6, 8, 13, 15, 5, 14, 3, 1, 12, 0, 7, 10, 2}
