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

// Generate fills out with deterministic, non-cryptographic noise
// derived from nonce (§4.6). Block i of out (16 bytes at a time) is
// AES_round(I_i, K_i), where I_i = (nonce+i, nonce+i) and K_i mixes
// nonce with a rotating pair of π words; the final partial block is
// truncated to whatever bytes remain.
//
// Generate(out, nonce) is deterministic: the same nonce always fills
// out with the same bytes, regardless of len(out) beyond the common
// prefix. It is not suitable for cryptographic keys or nonces.
func Generate(out []byte, nonce uint64) {
	for lane := 0; len(out) > 0; lane++ {
		input := fromLanes(nonce+uint64(lane), nonce+uint64(lane))
		piLo := piWords[2*(lane%4)]
		piHi := piWords[2*(lane%4)+1]
		key := fromLanes(nonce^piLo, nonce^piHi)
		generated := aesRound(input, key)

		n := copy(out, generated[:])
		out = out[n:]
	}
}
