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

// Command vhashsum prints the byte checksum and seeded hash of one or
// more files (or stdin) in the manner of sha256sum.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/quadlane/vhash"
)

func main() {
	seed := flag.Uint64("seed", 0, "hash seed")
	flag.Parse()

	o := bufio.NewWriter(os.Stdout)
	args := flag.Args()
	if len(args) == 0 {
		args = []string{"-"}
	}

	for _, arg := range args {
		var in *os.File
		if arg == "-" {
			in = os.Stdin
		} else {
			var err error
			in, err = os.Open(arg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "can't open %q: %s\n", arg, err)
				os.Exit(1)
			}
		}
		buf, err := io.ReadAll(in)
		in.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "reading %q: %s\n", arg, err)
			os.Exit(1)
		}
		fmt.Fprintf(o, "%016x  %016x  %s\n", vhash.Bytesum(buf), vhash.Hash(buf, *seed), arg)
	}

	if err := o.Flush(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
