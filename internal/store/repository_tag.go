// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/syncer"
	"github.com/MKhiriev/go-sync-keeper/models"
)

// tagRepository is the PostgreSQL implementation of [TagRepository].
type tagRepository struct {
	*DB
	logger *logger.Logger
}

// NewTagRepository constructs a [TagRepository] backed by db.
func NewTagRepository(db *DB, logger *logger.Logger) TagRepository {
	return &tagRepository{
		DB:     db,
		logger: logger,
	}
}

// FindMatching implements [TagRepository]. Tags carry no hash fodder.
func (r *tagRepository) FindMatching(ctx context.Context, userID int64, cond syncer.Condition[int64]) ([]syncer.Match[int64], error) {
	query, args, err := buildFindMatchingTagsQuery(userID, cond)
	if err != nil {
		return nil, err
	}

	matches, err := scanMatches(ctx, r.DB.DB, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "tagRepository.FindMatching").
			Int64("user_id", userID).
			Bool("retryable", r.retryable(err)).
			Msg("failed to list tag matches")
		return nil, err
	}

	return matches, nil
}

// FindFullByIDs implements [TagRepository].
func (r *tagRepository) FindFullByIDs(ctx context.Context, userID int64, ids []int64) ([]models.Tag, error) {
	if len(ids) == 0 {
		return []models.Tag{}, nil
	}

	query, args, err := buildFindTagsByIDsQuery(userID, ids)
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "tagRepository.FindFullByIDs").
			Int64("user_id", userID).
			Msg("failed to execute query for getting tags")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tags := make([]models.Tag, 0, len(ids))
	for rows.Next() {
		var tag models.Tag
		var createdAt, updatedAt time.Time
		if err = rows.Scan(&tag.ID, &tag.UserID, &tag.Name, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		tag.CreatedAt, tag.UpdatedAt = &createdAt, &updatedAt
		tags = append(tags, tag)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return tags, nil
}

// CreateTag implements [TagRepository]. A duplicate name for the same user
// yields [ErrAlreadyExists].
func (r *tagRepository) CreateTag(ctx context.Context, tag models.Tag) (models.Tag, error) {
	query, args, err := buildInsertTagQuery(tag)
	if err != nil {
		return models.Tag{}, err
	}

	var createdAt, updatedAt time.Time
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&tag.ID, &createdAt, &updatedAt); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "tagRepository.CreateTag").
			Int64("user_id", tag.UserID).
			Msg("failed to insert tag")
		return models.Tag{}, classifyWriteError(err, ErrExecutingStatement)
	}
	tag.CreatedAt, tag.UpdatedAt = &createdAt, &updatedAt

	return tag, nil
}

// RenameTag implements [TagRepository].
func (r *tagRepository) RenameTag(ctx context.Context, tag models.Tag) (models.Tag, error) {
	query, args, err := buildRenameTagQuery(tag)
	if err != nil {
		return models.Tag{}, err
	}

	var createdAt, updatedAt time.Time
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Tag{}, ErrTagNotFound
		}
		logger.FromContext(ctx).Err(err).
			Str("func", "tagRepository.RenameTag").
			Int64("tag_id", tag.ID).
			Msg("failed to rename tag")
		return models.Tag{}, classifyWriteError(err, ErrExecutingStatement)
	}
	tag.CreatedAt, tag.UpdatedAt = &createdAt, &updatedAt

	return tag, nil
}

// DeleteTags implements [TagRepository]. Links to items are removed with
// the tags, which changes the hash of every affected item.
func (r *tagRepository) DeleteTags(ctx context.Context, userID int64, ids []int64) (int64, error) {
	return deleteOwned(ctx, r.DB, "tags", userID, ids)
}
