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

// Package hasher computes content digests for files.
package hasher

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

const (
	// DefaultChunkSize is the number of bytes read per step.
	DefaultChunkSize = 4096

	// MaxChunkSize bounds the read buffer.
	MaxChunkSize = 64 << 20
)

// 🔍 Hasher produces SHA-256 content digests, reading input in fixed-size chunks
type Hasher struct {
	chunkSize int
}

// 🏭 New creates a hasher. A non-positive chunk size uses DefaultChunkSize,
// anything above MaxChunkSize is clamped to it.
func New(chunkSize int) *Hasher {
	switch {
	case chunkSize <= 0:
		chunkSize = DefaultChunkSize
	case chunkSize > MaxChunkSize:
		chunkSize = MaxChunkSize
	}
	return &Hasher{chunkSize: chunkSize}
}

// ChunkSize returns the configured read size.
func (h *Hasher) ChunkSize() int {
	return h.chunkSize
}

// 📄 Digest returns the lowercase hex SHA-256 of the file at path
func (h *Hasher) Digest(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	sum, err := h.DigestReader(f)
	if err != nil {
		return "", errors.Errorf("hashing %s: %w", path, err)
	}

	zerolog.Ctx(ctx).Trace().Str("path", path).Str("digest", sum).Msg("hashed file")
	return sum, nil
}

// DigestReader hashes everything r yields until EOF.
func (h *Hasher) DigestReader(r io.Reader) (string, error) {
	hash := sha256.New()
	buf := make([]byte, h.chunkSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			hash.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", errors.Errorf("reading chunk: %w", err)
		}
	}
	return hex.EncodeToString(hash.Sum(nil)), nil
}
