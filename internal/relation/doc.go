// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package relation merges a parent entity's current child list with a batch
// of add/delete instructions into the next child list.
//
// Reconcile is pure: it performs no I/O, never mutates its input and either
// returns the complete next state or a *PatchError naming the offending
// parent and child. The result is meant to be persisted as the definitive
// association set of the parent.
package relation
