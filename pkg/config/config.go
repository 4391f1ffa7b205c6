// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/walteh/fileorg/pkg/hasher"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📚 Config represents the complete configuration
type Config struct {
	Directory string   `json:"directory" yaml:"directory" hcl:"directory,optional"`
	DryRun    bool     `json:"dry_run" yaml:"dry_run" hcl:"dry_run,optional"`
	ChunkSize int      `json:"chunk_size" yaml:"chunk_size" hcl:"chunk_size,optional"`
	Ignore    []string `json:"ignore" yaml:"ignore" hcl:"ignore,optional"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		ChunkSize: hasher.DefaultChunkSize,
	}
}

// ApplyDefaults fills fields left unset or zero
func (c *Config) ApplyDefaults() {
	if c.ChunkSize == 0 {
		c.ChunkSize = hasher.DefaultChunkSize
	}
}

// ✅ Validate checks the configuration values
func (c *Config) Validate() error {
	if c.ChunkSize <= 0 {
		return errors.Errorf("chunk_size must be positive, got %d", c.ChunkSize)
	}
	if c.ChunkSize > hasher.MaxChunkSize {
		return errors.Errorf("chunk_size must be at most %d, got %d", hasher.MaxChunkSize, c.ChunkSize)
	}
	for _, pattern := range c.Ignore {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("invalid ignore pattern %q", pattern)
		}
	}
	return nil
}
