// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/relation"
	"github.com/MKhiriev/go-sync-keeper/internal/store"
	"github.com/MKhiriev/go-sync-keeper/internal/syncer"
	"github.com/MKhiriev/go-sync-keeper/models"
)

type itemService struct {
	itemRepository store.ItemRepository
	tagRepository  store.TagRepository

	sync entitySync[models.Item]

	logger *logger.Logger
}

// NewItemService constructs an ItemService. protocol serves the item sync
// endpoint and must be scoped to items.
func NewItemService(items store.ItemRepository, tags store.TagRepository, protocol *syncer.Protocol[int64, models.Item], logger *logger.Logger) ItemService {
	return &itemService{
		itemRepository: items,
		tagRepository:  tags,
		sync:           newEntitySync[models.Item](protocol, items),
		logger:         logger,
	}
}

// Create implements [ItemService].
func (s *itemService) Create(ctx context.Context, req models.ItemCreate) (models.Item, error) {
	log := logger.FromContext(ctx)

	tags, err := s.reconcileTags(ctx, req.UserID, 0, []models.Tag{}, req.Tags)
	if err != nil {
		log.Err(err).Int64("user_id", req.UserID).Msg("item tags rejected")
		return models.Item{}, err
	}

	saved, err := s.itemRepository.SaveItems(ctx, models.Item{
		UserID:  req.UserID,
		Name:    req.Name,
		Content: req.Content,
		Tags:    tags,
	})
	if err != nil {
		log.Err(err).Int64("user_id", req.UserID).Msg("item creation failed")
		return models.Item{}, fmt.Errorf("item creation failed: %w", err)
	}

	return saved[0], nil
}

// Patch implements [ItemService]. The new tag list is the current one with
// the instructions applied: survivors keep their order, additions follow in
// instruction order. Reconciliation runs while the repository holds the
// item locked, so concurrent patches see each other's tag changes.
func (s *itemService) Patch(ctx context.Context, req models.ItemPatch) (models.Item, error) {
	log := logger.FromContext(ctx)

	var rejected error
	saved, err := s.itemRepository.PatchItem(ctx, req.UserID, req.ID, func(item models.Item) (models.Item, error) {
		if req.Name != nil {
			item.Name = *req.Name
		}
		if req.Content != nil {
			item.Content = *req.Content
		}

		tags, err := s.reconcileTags(ctx, req.UserID, item.ID, item.Tags, req.Tags)
		if err != nil {
			rejected = err
			return models.Item{}, err
		}
		item.Tags = tags
		return item, nil
	})
	switch {
	case rejected != nil:
		log.Err(rejected).Int64("user_id", req.UserID).Int64("item_id", req.ID).Msg("item tags rejected")
		return models.Item{}, rejected
	case errors.Is(err, store.ErrItemNotFound):
		log.Err(err).Int64("user_id", req.UserID).Int64("item_id", req.ID).Msg("item lookup failed")
		return models.Item{}, err
	case err != nil:
		log.Err(err).Int64("user_id", req.UserID).Int64("item_id", req.ID).Msg("item update failed")
		return models.Item{}, fmt.Errorf("item update failed: %w", err)
	}

	return saved, nil
}

// Delete implements [ItemService].
func (s *itemService) Delete(ctx context.Context, req models.DeleteRequest) (int64, error) {
	deleted, err := s.itemRepository.DeleteItems(ctx, req.UserID, req.IDs)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", req.UserID).Msg("item deletion failed")
		return 0, fmt.Errorf("item deletion failed: %w", err)
	}
	return deleted, nil
}

// Sync implements [ItemService].
func (s *itemService) Sync(ctx context.Context, userID int64, req models.SyncRequest) (models.SyncResponse[models.Item], error) {
	return s.sync.run(ctx, userID, req)
}

// reconcileTags applies patches to current and resolves every added tag
// against the user's tags. Tags of other users count as unknown.
func (s *itemService) reconcileTags(ctx context.Context, userID, itemID int64, current []models.Tag, patches []models.RelationPatch) ([]models.Tag, error) {
	if len(patches) == 0 {
		return current, nil
	}

	instructions, err := relation.FromPatches(itemID, patches)
	if err != nil {
		return nil, err
	}

	next, err := relation.Reconcile(itemID, current, instructions, func(id int64) models.Tag {
		return models.Tag{ID: id}
	})
	if err != nil {
		return nil, err
	}

	existing := make(map[int64]struct{}, len(current))
	for _, t := range current {
		existing[t.ID] = struct{}{}
	}

	var added []int64
	for _, t := range next {
		if _, ok := existing[t.ID]; !ok {
			added = append(added, t.ID)
		}
	}
	if len(added) == 0 {
		return next, nil
	}

	found, err := s.tagRepository.FindFullByIDs(ctx, userID, added)
	if err != nil {
		return nil, fmt.Errorf("tag lookup failed: %w", err)
	}

	byID := make(map[int64]models.Tag, len(found))
	for _, t := range found {
		byID[t.ID] = t
	}

	var missing []int64
	for i, t := range next {
		if _, ok := existing[t.ID]; ok {
			continue
		}
		full, ok := byID[t.ID]
		if !ok {
			missing = append(missing, t.ID)
			continue
		}
		next[i] = full
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %v", ErrUnknownTags, missing)
	}

	return next, nil
}
