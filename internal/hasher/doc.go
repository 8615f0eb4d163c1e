// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package hasher produces change-detection hashes for synchronized entities.
//
// Every input value is first reduced to a canonical string that does not
// depend on map iteration order or struct field order, and the canonical
// form is then digested with xxHash64. The result is a change detector, not
// a security boundary: a collision only makes a client skip a download it
// would have repeated on the next sync cycle anyway.
//
// Canonical forms:
//   - bool            → "true" / "false"
//   - integer, float  → decimal string
//   - string          → the string itself
//   - time.Time       → UTC ISO-8601 with nanosecond precision
//   - slice, array    → "[" + comma-joined elements + "]" (order kept)
//   - map, struct     → "{" + comma-joined "key":value pairs sorted by key + "}"
//   - nil             → "{}"
package hasher
