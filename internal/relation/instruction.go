// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package relation

import "github.com/MKhiriev/go-sync-keeper/models"

// Instruction is a single relation-patch operation. The only
// implementations are [Add] and [Delete].
type Instruction[ID comparable] interface {
	// TargetID returns the child id the instruction refers to.
	TargetID() ID

	isInstruction()
}

// Add links the child with the given id to the parent.
type Add[ID comparable] struct {
	ID ID
}

func (a Add[ID]) TargetID() ID { return a.ID }
func (Add[ID]) isInstruction() {}

// Delete unlinks the child with the given id from the parent.
type Delete[ID comparable] struct {
	ID ID
}

func (d Delete[ID]) TargetID() ID { return d.ID }
func (Delete[ID]) isInstruction() {}

// Parse converts a wire mode and id into an Instruction.
func Parse[ID comparable](parentID, id ID, mode models.RelationMode) (Instruction[ID], error) {
	switch mode {
	case models.RelationAdd:
		return Add[ID]{ID: id}, nil
	case models.RelationDelete:
		return Delete[ID]{ID: id}, nil
	default:
		return nil, &PatchError{Err: ErrInvalidMode, ParentID: parentID, ChildID: id, Mode: string(mode)}
	}
}

// FromPatches converts wire relation patches into instructions.
// Every mode is checked before any instruction is returned.
func FromPatches(parentID int64, patches []models.RelationPatch) ([]Instruction[int64], error) {
	instructions := make([]Instruction[int64], 0, len(patches))
	for _, p := range patches {
		in, err := Parse(parentID, p.ID, p.Mode)
		if err != nil {
			return nil, err
		}
		instructions = append(instructions, in)
	}
	return instructions, nil
}
