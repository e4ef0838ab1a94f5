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
	"math/rand"
	"testing"
)

func TestBytesumHi(t *testing.T) {
	if got := Bytesum([]byte("hi")); got != 209 {
		t.Fatalf("Bytesum(%q) = %d, want 209", "hi", got)
	}
}

func TestBytesumEmpty(t *testing.T) {
	if got := Bytesum(nil); got != 0 {
		t.Fatalf("Bytesum(nil) = %d, want 0", got)
	}
	if got := Bytesum([]byte{}); got != 0 {
		t.Fatalf("Bytesum([]byte{}) = %d, want 0", got)
	}
}

func TestBytesumTotality(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for trial := 0; trial < 200; trial++ {
		b := make([]byte, r.Intn(300))
		r.Read(b)
		var want uint64
		for _, v := range b {
			want += uint64(v)
		}
		if got := Bytesum(b); got != want {
			t.Fatalf("Bytesum(%d bytes) = %d, want %d", len(b), got, want)
		}
	}
}

func TestBytesumAdditive(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for trial := 0; trial < 200; trial++ {
		b1 := make([]byte, r.Intn(150))
		b2 := make([]byte, r.Intn(150))
		r.Read(b1)
		r.Read(b2)
		combined := append(append([]byte{}, b1...), b2...)
		if got, want := Bytesum(combined), Bytesum(b1)+Bytesum(b2); got != want {
			t.Fatalf("Bytesum(b1||b2) = %d, want Bytesum(b1)+Bytesum(b2) = %d", got, want)
		}
	}
}
