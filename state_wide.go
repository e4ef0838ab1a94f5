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

// wideState is the four-lane (512-bit) absorber used by the streaming
// API and by the one-shot hash for inputs over 64 bytes. Each lane
// carries its own AES and additive accumulator; all four lanes share
// one 128-bit key and a 64-byte input buffer, per §3.
//
// Backends with true 512-bit SIMD registers would carry aes/sum as one
// 512-bit vector each; this package has no such backend (§9), so the
// four lanes are plain independent block128 values.
type wideState struct {
	aes       [4]block128
	sum       [4]block128
	ins       [4]block128
	key       block128
	insLength uint64
}

// newWideState initializes a wide state from seed, per §3's invariants:
// the key holds (seed, seed), the four aes/sum lanes are seeded from
// distinct pi words, and the input buffer starts zeroed.
func newWideState(seed uint64) wideState {
	var s wideState
	s.key = fromLanes(seed, seed)
	for i := 0; i < 4; i++ {
		s.aes[i] = fromLanes(seed^piWords[2*i], seed^piWords[2*i+1])
		s.sum[i] = fromLanes(seed^piWords[8+2*i], seed^piWords[8+2*i+1])
	}
	return s
}

// absorb applies one AES round and one shuffled add to each of the
// four lanes against the correspondingly indexed block of ins. It does
// not touch insLength or clear ins; callers are responsible for both,
// matching the split between the reference's update and stream/fold
// wrappers.
func (s *wideState) absorb() {
	for i := 0; i < 4; i++ {
		s.aes[i] = aesRound(s.aes[i], s.ins[i])
		s.sum[i] = s.sum[i].shuffle(additiveShuffle).addLanes(s.ins[i])
	}
}

// finalize combines the four lanes pairwise, then doubly mixes in the
// key (with insLength folded into its low lane), and returns the low
// 64 bits. This is only valid once insLength bytes have genuinely been
// absorbed into aes/sum — see hash.go and state.go for the two callers
// (the one-shot >64-byte path, and State.Digest when insLength >= 64).
func (s wideState) finalize() uint64 {
	keyLo, keyHi := s.key.lanes()
	keyWithLength := fromLanes(keyLo+s.insLength, keyHi)

	var mixed [4]block128
	for i := 0; i < 4; i++ {
		mixed[i] = aesRound(s.sum[i], s.aes[i])
	}
	mixed01 := aesRound(mixed[0], mixed[1])
	mixed23 := aesRound(mixed[2], mixed[3])
	mixedRegisters := aesRound(mixed01, mixed23)
	mixedWithinRegister := aesRound(aesRound(mixedRegisters, keyWithLength), mixedRegisters)
	lo, _ := mixedWithinRegister.lanes()
	return lo
}

// toMinimal folds lane 0 of the wide accumulators into a fresh minimal
// state, for use when insLength < 64 (§9's fold rule): the reference
// only ever maintains real data in lane 0 plus however many of lanes
// 1-3 a partial 64-byte buffer has filled, so folding always starts
// from lane 0's aes/sum and replays the buffered lanes through the
// minimal update sequence.
func (s wideState) toMinimal() minimalState {
	return minimalState{aes: s.aes[0], sum: s.sum[0], key: s.key}
}
