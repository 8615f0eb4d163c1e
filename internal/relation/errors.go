// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package relation

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMode is returned for an instruction that is neither Add nor Delete.
	ErrInvalidMode = errors.New("invalid relation mode")

	// ErrDuplicateRelation is returned when adding a child that is already linked.
	ErrDuplicateRelation = errors.New("relation already exists")

	// ErrConflictingInstruction is returned when a batch touches the same
	// child id more than once.
	ErrConflictingInstruction = errors.New("conflicting relation instructions")

	// ErrMissingRelation is returned when deleting a child that is not linked.
	ErrMissingRelation = errors.New("relation does not exist")
)

// PatchError describes the instruction that made a reconciliation fail.
// Err is one of the package sentinels and is matched with errors.Is.
type PatchError struct {
	Err      error
	ParentID any
	ChildID  any
	Mode     string
}

func (e *PatchError) Error() string {
	if e.Mode == "" {
		return fmt.Sprintf("%s: parent %v, child %v", e.Err, e.ParentID, e.ChildID)
	}
	return fmt.Sprintf("%s: parent %v, child %v, mode %q", e.Err, e.ParentID, e.ChildID, e.Mode)
}

func (e *PatchError) Unwrap() error {
	return e.Err
}
