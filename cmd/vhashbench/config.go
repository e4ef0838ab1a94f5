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

package main

import (
	"os"

	"sigs.k8s.io/yaml"
)

// corpusConfig describes one input to benchmark: a file path, whether
// it needs zstd decompression first, and how many times to repeat the
// checksum/hash pass over it.
type corpusConfig struct {
	Path       string `json:"path"`
	Zstd       bool   `json:"zstd"`
	Iterations int    `json:"iterations"`
}

// benchConfig is the top-level YAML document read by -config.
type benchConfig struct {
	Corpora []corpusConfig `json:"corpora"`
	Seeds   []uint64       `json:"seeds"`
}

func loadConfig(path string) (*benchConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg benchConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, err
	}
	if len(cfg.Seeds) == 0 {
		cfg.Seeds = []uint64{0}
	}
	return &cfg, nil
}
