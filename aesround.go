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

import "golang.org/x/sys/cpu"

// hasHardwareAES records whether the running CPU advertises a
// hardware AES-round instruction (AES-NI / VAES / ARMv8 Crypto
// Extension). The package ships only the portable table-driven
// backend (aesround_generic.go): every supported machine must produce
// byte-identical output, and no untested assembly backend is checked
// in. hasHardwareAES only records which fast path the host *could*
// use; nothing in the package reads it, and every call goes through
// the generic round.
var hasHardwareAES = cpu.X86.HasAES || cpu.ARM64.HasAES

// aesRound performs one AES encryption round — SubBytes, ShiftRows,
// MixColumns, AddRoundKey — on state using roundKey, matching the
// semantics of the hardware AESENC instruction family (`_mm_aesenc_si128`
// on x86, `AESE`+`AESMC`+XOR on ARM). It is the single primitive every
// hash and PRNG operation in this package is built from.
func aesRound(state, roundKey block128) block128 {
	return aesRoundGeneric(state, roundKey)
}
