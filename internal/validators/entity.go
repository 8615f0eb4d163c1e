// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-sync-keeper/models"
)

// Field names accepted by [EntityValidator.Validate].
const (
	FieldUserID   = "user_id"
	FieldID       = "id"
	FieldName     = "name"
	FieldIDs      = "ids"
	FieldTags     = "tags"
	FieldPatch    = "patch"
	FieldSyncMode = "sync_mode"
	FieldPageSize = "page_size"
)

// MaxNameLength bounds item and tag names, in runes.
const MaxNameLength = 255

// EntityValidator validates item, tag, delete and sync requests.
type EntityValidator struct {
	maxPageSize uint64
}

// NewEntityValidator returns an [EntityValidator]. maxPageSize of zero
// leaves the page size unbounded.
func NewEntityValidator(maxPageSize uint64) *EntityValidator {
	return &EntityValidator{maxPageSize: maxPageSize}
}

// Validate implements [Validator].
func (v *EntityValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ItemCreate:
		return v.validateItemCreate(value, fields...)
	case *models.ItemCreate:
		return v.validateItemCreate(*value, fields...)

	case models.ItemPatch:
		return v.validateItemPatch(value, fields...)
	case *models.ItemPatch:
		return v.validateItemPatch(*value, fields...)

	case models.TagCreate:
		return v.validateTagCreate(value, fields...)
	case *models.TagCreate:
		return v.validateTagCreate(*value, fields...)

	case models.TagPatch:
		return v.validateTagPatch(value, fields...)
	case *models.TagPatch:
		return v.validateTagPatch(*value, fields...)

	case models.DeleteRequest:
		return v.validateDeleteRequest(value, fields...)
	case *models.DeleteRequest:
		return v.validateDeleteRequest(*value, fields...)

	case models.SyncRequest:
		return v.validateSyncRequest(value, fields...)
	case *models.SyncRequest:
		return v.validateSyncRequest(*value, fields...)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

type rule func() error

// run executes the rules selected by fields, or all of them when fields is
// empty.
func run(rules map[string]rule, order []string, fields ...string) error {
	if len(fields) == 0 {
		fields = order
	}
	for _, f := range fields {
		r, ok := rules[f]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownField, f)
		}
		if err := r(); err != nil {
			return err
		}
	}
	return nil
}

func (v *EntityValidator) validateItemCreate(c models.ItemCreate, fields ...string) error {
	rules := map[string]rule{
		FieldUserID: func() error { return validateUserID(c.UserID) },
		FieldName:   func() error { return validateName(c.Name) },
		FieldTags:   func() error { return validateRelations(c.Tags) },
	}
	return run(rules, []string{FieldUserID, FieldName, FieldTags}, fields...)
}

func (v *EntityValidator) validateItemPatch(p models.ItemPatch, fields ...string) error {
	rules := map[string]rule{
		FieldUserID: func() error { return validateUserID(p.UserID) },
		FieldID:     func() error { return validateID(p.ID) },
		FieldPatch: func() error {
			if p.Name == nil && p.Content == nil && len(p.Tags) == 0 {
				return ErrNoFieldsToUpdate
			}
			return nil
		},
		FieldName: func() error {
			if p.Name == nil {
				return nil
			}
			return validateName(*p.Name)
		},
		FieldTags: func() error { return validateRelations(p.Tags) },
	}
	return run(rules, []string{FieldUserID, FieldID, FieldPatch, FieldName, FieldTags}, fields...)
}

func (v *EntityValidator) validateTagCreate(c models.TagCreate, fields ...string) error {
	rules := map[string]rule{
		FieldUserID: func() error { return validateUserID(c.UserID) },
		FieldName:   func() error { return validateName(c.Name) },
	}
	return run(rules, []string{FieldUserID, FieldName}, fields...)
}

func (v *EntityValidator) validateTagPatch(p models.TagPatch, fields ...string) error {
	rules := map[string]rule{
		FieldUserID: func() error { return validateUserID(p.UserID) },
		FieldID:     func() error { return validateID(p.ID) },
		FieldName:   func() error { return validateName(p.Name) },
	}
	return run(rules, []string{FieldUserID, FieldID, FieldName}, fields...)
}

func (v *EntityValidator) validateDeleteRequest(d models.DeleteRequest, fields ...string) error {
	rules := map[string]rule{
		FieldUserID: func() error { return validateUserID(d.UserID) },
		FieldIDs: func() error {
			if len(d.IDs) == 0 {
				return ErrEmptyIDs
			}
			return validateIDs(d.IDs)
		},
	}
	return run(rules, []string{FieldUserID, FieldIDs}, fields...)
}

func (v *EntityValidator) validateSyncRequest(s models.SyncRequest, fields ...string) error {
	rules := map[string]rule{
		FieldSyncMode: func() error {
			switch s.Sync.Mode {
			case models.SyncModeList, models.SyncModeData:
				return nil
			default:
				return fmt.Errorf("%w: %q", ErrInvalidSyncMode, s.Sync.Mode)
			}
		},
		FieldPageSize: func() error {
			if s.Sync.Mode != models.SyncModeList {
				return nil
			}
			if s.Page > 0 && s.PageSize == 0 {
				return fmt.Errorf("%w: page %d without page_size", ErrInvalidPageSize, s.Page)
			}
			if v.maxPageSize > 0 && s.PageSize > v.maxPageSize {
				return fmt.Errorf("%w: %d exceeds %d", ErrInvalidPageSize, s.PageSize, v.maxPageSize)
			}
			if s.PageSize > 0 && s.Page > math.MaxInt64/s.PageSize {
				return fmt.Errorf("%w: page %d", ErrInvalidPage, s.Page)
			}
			return nil
		},
		FieldIDs: func() error {
			if s.Sync.Mode == models.SyncModeData {
				return validateIDs(s.Sync.IDs)
			}
			return validateIDs(s.IDs)
		},
	}
	return run(rules, []string{FieldSyncMode, FieldPageSize, FieldIDs}, fields...)
}

func validateUserID(id int64) error {
	if id <= 0 {
		return ErrInvalidUserID
	}
	return nil
}

func validateID(id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidID, id)
	}
	return nil
}

func validateIDs(ids []int64) error {
	for _, id := range ids {
		if err := validateID(id); err != nil {
			return err
		}
	}
	return nil
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}

// validateRelations checks child ids only. Modes are checked by the
// reconciler, which reports them with the parent id.
func validateRelations(patches []models.RelationPatch) error {
	for _, p := range patches {
		if err := validateID(p.ID); err != nil {
			return err
		}
	}
	return nil
}
