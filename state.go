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

// State is an incremental hash accumulator: the streaming counterpart
// to Hash. The zero value is not usable; construct one with NewState.
//
// A State is owned by its caller and is not safe for concurrent use:
// two goroutines must not call Update or Digest on the same State at
// the same time. Two States are independent and may be used
// concurrently.
type State struct {
	wide wideState
}

// NewState returns a State seeded exactly as Hash would be, ready to
// absorb bytes through Update.
func NewState(seed uint64) *State {
	return &State{wide: newWideState(seed)}
}

// Update absorbs p into the state. It may be called any number of
// times with chunks of any length; digesting the concatenation of
// every chunk ever passed to Update produces the same value as calling
// Hash once on that concatenation (§6's determinism contract), except
// when the concatenation is exactly 64 bytes long (see Digest).
func (s *State) Update(p []byte) {
	w := &s.wide
	for len(p) > 0 {
		progress := int(w.insLength % 64)
		toCopy := len(p)
		if room := 64 - progress; toCopy > room {
			toCopy = room
		}
		willFillBlock := progress+toCopy == 64

		for i := 0; i < toCopy; i++ {
			pos := progress + i
			w.ins[pos/16][pos%16] = p[i]
		}
		w.insLength += uint64(toCopy)
		p = p[toCopy:]

		if willFillBlock {
			w.absorb()
			for i := range w.ins {
				w.ins[i] = block128{}
			}
		}
	}
}

// Digest returns the current hash value. It does not mutate s and may
// be called repeatedly, including between further calls to Update.
//
// When fewer than 64 bytes have been absorbed since NewState, Digest
// folds back to the single-lane minimal path (the same path Hash uses
// for inputs of that length) so short streams agree with the one-shot
// hash of the same bytes. At 64 bytes or more it absorbs any pending
// partial block (zero-padded, as Hash does for its tail) into a copy of
// the wide state and finalizes that copy. These two paths are intentionally not required to
// agree at exactly 64 bytes: Hash(data, seed) for len(data) == 64 takes
// the minimal 4-block path (§4.4's "n <= 64" class), while a State that
// has absorbed exactly 64 bytes has already completed a wide absorb
// step and finalizes from the wide accumulators — a property inherited
// from the reference this package is ported from, not a defect.
func (s *State) Digest() uint64 {
	length := s.wide.insLength
	if length >= 64 {
		// Absorb the pending, zero-padded partial block into a copy so s
		// itself is left untouched.
		w := s.wide
		if length%64 != 0 {
			w.absorb()
		}
		return w.finalize()
	}

	minimal := s.wide.toMinimal()
	blocksNeeded := 1
	switch {
	case length <= 16:
		blocksNeeded = 1
	case length <= 32:
		blocksNeeded = 2
	case length <= 48:
		blocksNeeded = 3
	default:
		blocksNeeded = 4
	}
	for i := 0; i < blocksNeeded; i++ {
		minimal.update(s.wide.ins[i])
	}
	return minimal.finalize(length)
}

// Equal reports whether a and b hold the same aes, sum, and key
// accumulators, ignoring any pending (not yet block-aligned) input and
// the absorbed-length counter. Two states that have absorbed the same
// whole 64-byte blocks compare equal regardless of what partial tail
// is currently buffered in either one (§6).
func (a *State) Equal(b *State) bool {
	return a.wide.aes == b.wide.aes && a.wide.sum == b.wide.sum && a.wide.key == b.wide.key
}
