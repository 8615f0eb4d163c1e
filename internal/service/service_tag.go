// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/store"
	"github.com/MKhiriev/go-sync-keeper/internal/syncer"
	"github.com/MKhiriev/go-sync-keeper/models"
)

type tagService struct {
	tagRepository store.TagRepository

	sync entitySync[models.Tag]

	logger *logger.Logger
}

// NewTagService constructs a TagService. protocol must be scoped to tags.
func NewTagService(tags store.TagRepository, protocol *syncer.Protocol[int64, models.Tag], logger *logger.Logger) TagService {
	return &tagService{
		tagRepository: tags,
		sync:          newEntitySync[models.Tag](protocol, tags),
		logger:        logger,
	}
}

// Create implements [TagService]. Names are trimmed; a duplicate name
// yields store.ErrAlreadyExists.
func (s *tagService) Create(ctx context.Context, req models.TagCreate) (models.Tag, error) {
	tag, err := s.tagRepository.CreateTag(ctx, models.Tag{
		UserID: req.UserID,
		Name:   strings.TrimSpace(req.Name),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", req.UserID).Msg("tag creation failed")
		return models.Tag{}, fmt.Errorf("tag creation failed: %w", err)
	}
	return tag, nil
}

// Rename implements [TagService].
func (s *tagService) Rename(ctx context.Context, req models.TagPatch) (models.Tag, error) {
	tag, err := s.tagRepository.RenameTag(ctx, models.Tag{
		ID:     req.ID,
		UserID: req.UserID,
		Name:   strings.TrimSpace(req.Name),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Int64("user_id", req.UserID).
			Int64("tag_id", req.ID).
			Msg("tag rename failed")
		return models.Tag{}, fmt.Errorf("tag rename failed: %w", err)
	}
	return tag, nil
}

// Delete implements [TagService].
func (s *tagService) Delete(ctx context.Context, req models.DeleteRequest) (int64, error) {
	deleted, err := s.tagRepository.DeleteTags(ctx, req.UserID, req.IDs)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", req.UserID).Msg("tag deletion failed")
		return 0, fmt.Errorf("tag deletion failed: %w", err)
	}
	return deleted, nil
}

// Sync implements [TagService].
func (s *tagService) Sync(ctx context.Context, userID int64, req models.SyncRequest) (models.SyncResponse[models.Tag], error) {
	return s.sync.run(ctx, userID, req)
}
