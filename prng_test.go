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

import (
	"bytes"
	"math"
	"math/rand"
	"testing"
)

func TestGenerateDeterministic(t *testing.T) {
	buf1 := make([]byte, 5)
	buf2 := make([]byte, 5)
	Generate(buf1, 0)
	Generate(buf2, 0)
	if !bytes.Equal(buf1, buf2) {
		t.Fatalf("Generate(_, 0) not repeatable: %x != %x", buf1, buf2)
	}
}

func TestGenerateDistinctNonces(t *testing.T) {
	buf1 := make([]byte, 32)
	buf2 := make([]byte, 32)
	Generate(buf1, 1)
	Generate(buf2, 2)
	if bytes.Equal(buf1, buf2) {
		t.Fatal("Generate with different nonces produced identical output")
	}
}

func TestGeneratePrefixStable(t *testing.T) {
	// Generating a longer buffer must reproduce the same bytes as a
	// shorter buffer for the common prefix.
	long := make([]byte, 200)
	Generate(long, 99)
	short := make([]byte, 37)
	Generate(short, 99)
	if !bytes.Equal(long[:len(short)], short) {
		t.Fatal("Generate is not prefix-stable across output lengths")
	}
}

func TestGenerateLengthHandling(t *testing.T) {
	for _, n := range []int{0, 1, 15, 16, 17, 31, 32, 33, 64, 65, 100} {
		buf := make([]byte, n)
		Generate(buf, 123)
		if len(buf) != n {
			t.Fatalf("Generate mutated buffer length: got %d want %d", len(buf), n)
		}
	}
}

// TestGenerateUniformity checks that the mean byte-sum of generated
// buffers is consistent with uniformly distributed bytes (mean
// 127.5*L), within a generous tolerance for the sample size used.
func TestGenerateUniformity(t *testing.T) {
	const length = 256
	const trials = 2000
	r := rand.New(rand.NewSource(9))

	var total float64
	buf := make([]byte, length)
	for i := 0; i < trials; i++ {
		Generate(buf, r.Uint64())
		total += float64(Bytesum(buf))
	}
	mean := total / trials
	wantMean := 127.5 * length

	// Standard deviation of a single trial's bytesum is roughly
	// sqrt(length * variance-per-byte) ~= sqrt(256 * 5461) ~= 1181;
	// over `trials` samples the mean's standard error is ~26.4, so a
	// 10-sigma band is comfortably wide for a non-flaky test.
	tolerance := 300.0
	if math.Abs(mean-wantMean) > tolerance {
		t.Fatalf("mean bytesum of generated buffers = %.1f, want close to %.1f", mean, wantMean)
	}
}
