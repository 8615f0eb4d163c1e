// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-sync-keeper/internal/validators"
	"github.com/MKhiriev/go-sync-keeper/models"
)

// ItemValidationService rejects malformed item requests before they reach
// the wrapped service.
type ItemValidationService struct {
	inner     ItemService
	validator validators.Validator
}

func NewItemValidationService(validator validators.Validator) ItemServiceWrapper {
	return &ItemValidationService{validator: validator}
}

func (v *ItemValidationService) Wrap(inner ItemService) ItemService {
	v.inner = inner
	return v
}

func (v *ItemValidationService) Create(ctx context.Context, req models.ItemCreate) (models.Item, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Item{}, invalid(err)
	}
	return v.inner.Create(ctx, req)
}

func (v *ItemValidationService) Patch(ctx context.Context, req models.ItemPatch) (models.Item, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Item{}, invalid(err)
	}
	return v.inner.Patch(ctx, req)
}

func (v *ItemValidationService) Delete(ctx context.Context, req models.DeleteRequest) (int64, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return 0, invalid(err)
	}
	return v.inner.Delete(ctx, req)
}

func (v *ItemValidationService) Sync(ctx context.Context, userID int64, req models.SyncRequest) (models.SyncResponse[models.Item], error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.SyncResponse[models.Item]{}, invalid(err)
	}
	return v.inner.Sync(ctx, userID, req)
}

// TagValidationService is the tag counterpart of [ItemValidationService].
type TagValidationService struct {
	inner     TagService
	validator validators.Validator
}

func NewTagValidationService(validator validators.Validator) TagServiceWrapper {
	return &TagValidationService{validator: validator}
}

func (v *TagValidationService) Wrap(inner TagService) TagService {
	v.inner = inner
	return v
}

func (v *TagValidationService) Create(ctx context.Context, req models.TagCreate) (models.Tag, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Tag{}, invalid(err)
	}
	return v.inner.Create(ctx, req)
}

func (v *TagValidationService) Rename(ctx context.Context, req models.TagPatch) (models.Tag, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Tag{}, invalid(err)
	}
	return v.inner.Rename(ctx, req)
}

func (v *TagValidationService) Delete(ctx context.Context, req models.DeleteRequest) (int64, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return 0, invalid(err)
	}
	return v.inner.Delete(ctx, req)
}

func (v *TagValidationService) Sync(ctx context.Context, userID int64, req models.SyncRequest) (models.SyncResponse[models.Tag], error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.SyncResponse[models.Tag]{}, invalid(err)
	}
	return v.inner.Sync(ctx, userID, req)
}

func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
}
