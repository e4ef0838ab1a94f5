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

// Command vhashbench loads a YAML-described corpus, runs bytesum/hash
// over it to report throughput, and prints an independent keyed hash
// (dchest/siphash's 128-bit digest) of each corpus and seed beside this
// package's own digest. With -fixtures
// it instead emits deterministic PRNG output formatted as UUIDs, for
// reproducible test-fixture generation.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dchest/siphash"
	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"

	"github.com/quadlane/vhash"
	"github.com/quadlane/vhash/ints"
)

// maxIterations bounds a single corpus/seed pass so a malformed config
// (e.g. a typo'd extra zero) can't turn into an accidental multi-hour run.
const maxIterations = 1_000_000

func fatalf(f string, args ...any) {
	fmt.Fprintf(os.Stderr, f+"\n", args...)
	os.Exit(1)
}

func readCorpus(c corpusConfig) ([]byte, error) {
	raw, err := os.ReadFile(c.Path)
	if err != nil {
		return nil, err
	}
	if !c.Zstd {
		return raw, nil
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return dec.DecodeAll(raw, nil)
}

func runFixtures(count int, nonce uint64) {
	buf := make([]byte, 16)
	for i := 0; i < count; i++ {
		vhash.Generate(buf, nonce+uint64(i))
		id, err := uuid.FromBytes(buf)
		if err != nil {
			fatalf("formatting fixture %d: %s", i, err)
		}
		fmt.Println(id)
	}
}

func main() {
	configPath := flag.String("config", "", "YAML benchmark configuration")
	fixtures := flag.Int("fixtures", 0, "emit N deterministic UUID fixtures instead of benchmarking")
	nonce := flag.Uint64("nonce", 0, "nonce for -fixtures")
	flag.Parse()

	if *fixtures > 0 {
		runFixtures(*fixtures, *nonce)
		return
	}

	if *configPath == "" {
		fatalf("usage: %s -config bench.yaml", os.Args[0])
	}
	cfg, err := loadConfig(*configPath)
	if err != nil {
		fatalf("loading config: %s", err)
	}

	for _, corpus := range cfg.Corpora {
		buf, err := readCorpus(corpus)
		if err != nil {
			fatalf("reading corpus %q: %s", corpus.Path, err)
		}
		iterations := ints.Clamp(corpus.Iterations, 1, maxIterations)

		for _, seed := range cfg.Seeds {
			start := time.Now()
			var checksum, digest uint64
			for i := 0; i < iterations; i++ {
				checksum = vhash.Bytesum(buf)
				digest = vhash.Hash(buf, seed)
			}
			elapsed := time.Since(start)

			refLo, refHi := siphash.Hash128(seed, seed, buf)
			throughput := float64(len(buf)*iterations) / elapsed.Seconds() / (1 << 20)

			fmt.Printf("%-40s seed=%#x bytes=%d iters=%d %.1f MiB/s bytesum=%#x hash=%#x siphash128=%#x:%#x\n",
				corpus.Path, seed, len(buf), iterations, throughput, checksum, digest, refLo, refHi)
		}
	}
}
