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

// Package vhash provides a family of non-cryptographic, AES-round-based
// hash functions and a matching pseudo-random byte generator. Every
// function is built from one primitive: a single AES encryption round
// applied to a 128-bit block. Reusing that primitive for absorption,
// finalization, and random-byte generation keeps the implementation
// small while giving every variant the same diffusion behavior.
//
// There are two hash sizes of internal state: a minimal (single-lane,
// 128-bit) state used for inputs up to 64 bytes, and a wide (four-lane,
// 512-bit) state used for streaming and for inputs over 64 bytes. The
// same bytes and seed produce the same 64-bit digest whether they are
// supplied in one call to Hash or absorbed incrementally through a
// State, for every length except exactly 64 bytes, where Hash uses the
// minimal state and a State finalizes from the wide one (see
// State.Digest). No function in this package performs
// I/O or allocates; hashing and generation are pure, total computations
// over caller-owned memory.
//
// This construction makes no cryptographic claims: it uses a single AES
// round with no key schedule, and an adversary with query access can
// likely recover structure about the seed. Use it for hash tables,
// checksums, deduplication, and similar non-adversarial purposes.
package vhash
