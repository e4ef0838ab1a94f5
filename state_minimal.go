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

// minimalState is the single-lane (128-bit) absorber used for inputs up
// to 64 bytes and for folding a short stream. It holds an AES
// accumulator, an additive accumulator, and a key block derived from
// the seed.
type minimalState struct {
	aes block128
	sum block128
	key block128
}

// newMinimalState initializes a minimal state from seed, per §4.3.
func newMinimalState(seed uint64) minimalState {
	var s minimalState
	s.key = fromLanes(seed, seed)
	s.aes = fromLanes(seed^piWords[0], seed^piWords[1])
	s.sum = fromLanes(seed^piWords[8], seed^piWords[9])
	return s
}

// update absorbs one 128-bit block into the state.
func (s *minimalState) update(block block128) {
	s.aes = aesRound(s.aes, block)
	s.sum = s.sum.shuffle(additiveShuffle).addLanes(block)
}

// finalize mixes the absorbed length into the key and returns the
// low 64 bits of the doubly-mixed AES combination of sum, aes, and key.
func (s minimalState) finalize(length uint64) uint64 {
	keyLo, keyHi := s.key.lanes()
	keyWithLength := fromLanes(keyLo+length, keyHi)
	mixedRegisters := aesRound(s.sum, s.aes)
	mixedWithinRegister := aesRound(aesRound(mixedRegisters, keyWithLength), mixedRegisters)
	lo, _ := mixedWithinRegister.lanes()
	return lo
}
