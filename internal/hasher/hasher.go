// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package hasher

import (
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Config holds the immutable hasher settings.
type Config struct {
	// Seed is mixed into every xxHash64 digest. Changing it invalidates all
	// hashes previously handed to clients, forcing a full re-download.
	Seed uint64
}

// Hasher computes SyncHash values. It is safe for concurrent use.
type Hasher struct {
	seed uint64
}

// New constructs a Hasher from cfg.
func New(cfg Config) *Hasher {
	return &Hasher{seed: cfg.Seed}
}

// Hash returns the change-detection hash of an entity identified by id,
// last modified at lastModified, with optional fodder folded in.
//
// The digest input is canon(id) + canon(lastModified) + canon(fodder[0]) + ...
// The result is 16 lowercase hex characters.
func (h *Hasher) Hash(id any, lastModified time.Time, fodder ...any) (string, error) {
	d := xxhash.NewWithSeed(h.seed)

	parts := make([]any, 0, len(fodder)+2)
	parts = append(parts, id, lastModified)
	parts = append(parts, fodder...)

	for _, part := range parts {
		canonical, err := Canonicalize(part)
		if err != nil {
			return "", err
		}
		_, _ = d.WriteString(canonical)
	}

	return fmt.Sprintf("%016x", d.Sum64()), nil
}

// Sum returns the raw 64-bit digest of the canonical form of v.
// It is used to compare ids without knowing their concrete type.
func (h *Hasher) Sum(v any) (uint64, error) {
	canonical, err := Canonicalize(v)
	if err != nil {
		return 0, err
	}

	d := xxhash.NewWithSeed(h.seed)
	_, _ = d.WriteString(canonical)
	return d.Sum64(), nil
}
