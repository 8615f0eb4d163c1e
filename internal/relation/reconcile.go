// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package relation

// Identifiable is implemented by every child entity that can be reconciled.
type Identifiable[ID comparable] interface {
	RelationID() ID
}

// state is the transient tag of a child id during one reconciliation.
// The zero value means the id is not linked and has not been touched.
type state uint8

const (
	stateNotExists state = iota
	stateExists
	stateAdd
	stateDelete
)

// Reconcile applies instructions to current and returns the next child list.
//
// Survivors keep their relative order; added children are appended in
// instruction order and are constructed with build. current is not modified.
// With no instructions the result equals current.
//
// Transitions:
//
//	NotExists + Add    -> Add
//	Exists    + Delete -> Delete
//	Exists    + Add    -> ErrDuplicateRelation
//	NotExists + Delete -> ErrMissingRelation
//	Add|Delete + any   -> ErrConflictingInstruction
func Reconcile[ID comparable, T Identifiable[ID]](parentID ID, current []T, instructions []Instruction[ID], build func(ID) T) ([]T, error) {
	for _, in := range instructions {
		switch in.(type) {
		case Add[ID], Delete[ID]:
		default:
			var child any
			if in != nil {
				child = in.TargetID()
			}
			return nil, &PatchError{Err: ErrInvalidMode, ParentID: parentID, ChildID: child}
		}
	}

	states := make(map[ID]state, len(current)+len(instructions))
	for _, c := range current {
		states[c.RelationID()] = stateExists
	}

	added := make([]ID, 0, len(instructions))
	for _, in := range instructions {
		id := in.TargetID()
		cur := states[id]

		switch in.(type) {
		case Add[ID]:
			switch cur {
			case stateNotExists:
				states[id] = stateAdd
				added = append(added, id)
			case stateExists:
				return nil, patchError(ErrDuplicateRelation, parentID, id, "Add")
			default:
				return nil, patchError(ErrConflictingInstruction, parentID, id, "Add")
			}
		case Delete[ID]:
			switch cur {
			case stateExists:
				states[id] = stateDelete
			case stateNotExists:
				return nil, patchError(ErrMissingRelation, parentID, id, "Delete")
			default:
				return nil, patchError(ErrConflictingInstruction, parentID, id, "Delete")
			}
		}
	}

	next := make([]T, 0, len(current)+len(added))
	for _, c := range current {
		if states[c.RelationID()] == stateDelete {
			continue
		}
		next = append(next, c)
	}
	for _, id := range added {
		next = append(next, build(id))
	}

	return next, nil
}

func patchError[ID comparable](err error, parentID, childID ID, mode string) *PatchError {
	return &PatchError{Err: err, ParentID: parentID, ChildID: childID, Mode: mode}
}
