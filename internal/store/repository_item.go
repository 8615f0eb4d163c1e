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

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// itemRepository is the PostgreSQL implementation of [ItemRepository].
// Items live in "items", their ordered tag links in "item_tags".
type itemRepository struct {
	*DB
	logger *logger.Logger
}

// NewItemRepository constructs an [ItemRepository] backed by db.
func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	return &itemRepository{
		DB:     db,
		logger: logger,
	}
}

// FindMatching implements [ItemRepository]. The hash fodder of every match is
// its ordered tag id list followed by the tags' updated_at, so linking,
// unlinking or renaming a tag changes the hash of the item embedding it.
func (r *itemRepository) FindMatching(ctx context.Context, userID int64, cond syncer.Condition[int64]) ([]syncer.Match[int64], error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindMatchingItemsQuery(userID, cond)
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.FindMatching").
			Int64("user_id", userID).
			Msg("failed to create query")
		return nil, err
	}

	matches, err := scanMatches(ctx, r.DB.DB, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.FindMatching").
			Int64("user_id", userID).
			Bool("retryable", r.retryable(err)).
			Msg("failed to list item matches")
		return nil, err
	}
	if len(matches) == 0 {
		return matches, nil
	}

	ids := make([]int64, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.ID)
	}

	links, err := r.findTagLinks(ctx, ids)
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.FindMatching").
			Int64("user_id", userID).
			Msg("failed to load item tag ids")
		return nil, err
	}

	for i := range matches {
		link := links[matches[i].ID]
		if link.tagIDs == nil {
			link = tagLinks{tagIDs: []int64{}, updatedAt: []time.Time{}}
		}
		matches[i].Fodder = []any{link.tagIDs, link.updatedAt}
	}

	return matches, nil
}

// FindFullByIDs implements [ItemRepository].
func (r *itemRepository) FindFullByIDs(ctx context.Context, userID int64, ids []int64) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	if len(ids) == 0 {
		return []models.Item{}, nil
	}

	query, args, err := buildFindItemsByIDsQuery(userID, ids)
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.FindFullByIDs").
			Int64("user_id", userID).
			Int("ids_count", len(ids)).
			Msg("failed to execute query for getting items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.Item, 0, len(ids))
	for rows.Next() {
		var item models.Item
		var createdAt, updatedAt time.Time
		if err = rows.Scan(&item.ID, &item.UserID, &item.Name, &item.Content, &createdAt, &updatedAt); err != nil {
			log.Err(err).
				Str("func", "itemRepository.FindFullByIDs").
				Int64("user_id", userID).
				Msg("failed to scan item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		item.CreatedAt, item.UpdatedAt = &createdAt, &updatedAt
		item.Tags = []models.Tag{}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if len(items) == 0 {
		return items, nil
	}

	if err = loadTags(ctx, r.DB.DB, items); err != nil {
		log.Err(err).
			Str("func", "itemRepository.FindFullByIDs").
			Int64("user_id", userID).
			Msg("failed to load item tags")
		return nil, err
	}

	return items, nil
}

// PatchItem implements [ItemRepository].
func (r *itemRepository) PatchItem(ctx context.Context, userID, id int64, patch func(models.Item) (models.Item, error)) (models.Item, error) {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.PatchItem").
			Int64("item_id", id).
			Msg("failed to begin transaction")
		return models.Item{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	item, err := lockItem(ctx, tx, userID, id)
	if err != nil {
		if !errors.Is(err, ErrItemNotFound) {
			log.Err(err).
				Str("func", "itemRepository.PatchItem").
				Int64("item_id", id).
				Msg("failed to lock item row")
		}
		return models.Item{}, err
	}

	items := []models.Item{item}
	if err = loadTags(ctx, tx, items); err != nil {
		log.Err(err).
			Str("func", "itemRepository.PatchItem").
			Int64("item_id", id).
			Msg("failed to load item tags")
		return models.Item{}, err
	}

	next, err := patch(items[0])
	if err != nil {
		return models.Item{}, err
	}
	next.ID, next.UserID = item.ID, item.UserID

	if next, err = updateItem(ctx, tx, next); err != nil {
		log.Err(err).
			Str("func", "itemRepository.PatchItem").
			Int64("item_id", id).
			Msg("failed to update item row")
		return models.Item{}, err
	}
	if err = replaceItemTags(ctx, tx, next); err != nil {
		log.Err(err).
			Str("func", "itemRepository.PatchItem").
			Int64("item_id", id).
			Msg("failed to replace item tags")
		return models.Item{}, err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "itemRepository.PatchItem").
			Int64("item_id", id).
			Msg("failed to commit transaction")
		return models.Item{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return next, nil
}

// SaveItems implements [ItemRepository].
func (r *itemRepository) SaveItems(ctx context.Context, items ...models.Item) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.SaveItems").
			Int("count", len(items)).
			Msg("failed to begin transaction")
		return nil, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	saved := make([]models.Item, 0, len(items))
	for idx, item := range items {
		if item.ID == 0 {
			item, err = insertItem(ctx, tx, item)
		} else {
			item, err = updateItem(ctx, tx, item)
		}
		if err != nil {
			log.Err(err).
				Str("func", "itemRepository.SaveItems").
				Int("iteration", idx+1).
				Int64("item_id", item.ID).
				Msg("failed to save item row")
			return nil, err
		}

		if err = replaceItemTags(ctx, tx, item); err != nil {
			log.Err(err).
				Str("func", "itemRepository.SaveItems").
				Int("iteration", idx+1).
				Int64("item_id", item.ID).
				Msg("failed to replace item tags")
			return nil, err
		}

		saved = append(saved, item)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "itemRepository.SaveItems").
			Int("count", len(items)).
			Msg("failed to commit transaction")
		return nil, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return saved, nil
}

// DeleteItems implements [ItemRepository]. Tag links go with the rows.
func (r *itemRepository) DeleteItems(ctx context.Context, userID int64, ids []int64) (int64, error) {
	return deleteOwned(ctx, r.DB, "items", userID, ids)
}

// tagLinks holds the linked tags of one item in link order.
type tagLinks struct {
	tagIDs    []int64
	updatedAt []time.Time
}

func (r *itemRepository) findTagLinks(ctx context.Context, itemIDs []int64) (map[int64]tagLinks, error) {
	query, args, err := buildItemTagLinksQuery(itemIDs)
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	out := make(map[int64]tagLinks, len(itemIDs))
	for rows.Next() {
		var itemID, tagID int64
		var updatedAt time.Time
		if err = rows.Scan(&itemID, &tagID, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		link := out[itemID]
		link.tagIDs = append(link.tagIDs, tagID)
		link.updatedAt = append(link.updatedAt, updatedAt)
		out[itemID] = link
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return out, nil
}

func loadTags(ctx context.Context, q querier, items []models.Item) error {
	index := make(map[int64]int, len(items))
	ids := make([]int64, 0, len(items))
	for i, item := range items {
		index[item.ID] = i
		ids = append(ids, item.ID)
	}

	query, args, err := buildItemTagsQuery(ids)
	if err != nil {
		return err
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var itemID int64
		var tag models.Tag
		var createdAt, updatedAt time.Time
		if err = rows.Scan(&itemID, &tag.ID, &tag.UserID, &tag.Name, &createdAt, &updatedAt); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		tag.CreatedAt, tag.UpdatedAt = &createdAt, &updatedAt

		if i, ok := index[itemID]; ok {
			items[i].Tags = append(items[i].Tags, tag)
		}
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return nil
}

func lockItem(ctx context.Context, q querier, userID, id int64) (models.Item, error) {
	query, args, err := buildLockItemQuery(userID, id)
	if err != nil {
		return models.Item{}, err
	}

	var item models.Item
	var createdAt, updatedAt time.Time
	err = q.QueryRowContext(ctx, query, args...).
		Scan(&item.ID, &item.UserID, &item.Name, &item.Content, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Item{}, ErrItemNotFound
	}
	if err != nil {
		return models.Item{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	item.CreatedAt, item.UpdatedAt = &createdAt, &updatedAt
	item.Tags = []models.Tag{}

	return item, nil
}

func insertItem(ctx context.Context, q querier, item models.Item) (models.Item, error) {
	query, args, err := buildInsertItemQuery(item)
	if err != nil {
		return item, err
	}

	var createdAt, updatedAt time.Time
	if err = q.QueryRowContext(ctx, query, args...).Scan(&item.ID, &createdAt, &updatedAt); err != nil {
		return item, classifyWriteError(err, ErrExecutingStatement)
	}
	item.CreatedAt, item.UpdatedAt = &createdAt, &updatedAt

	return item, nil
}

func updateItem(ctx context.Context, q querier, item models.Item) (models.Item, error) {
	query, args, err := buildUpdateItemQuery(item)
	if err != nil {
		return item, err
	}

	var createdAt, updatedAt time.Time
	if err = q.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return item, ErrItemNotFound
		}
		return item, classifyWriteError(err, ErrExecutingStatement)
	}
	item.CreatedAt, item.UpdatedAt = &createdAt, &updatedAt

	return item, nil
}

func replaceItemTags(ctx context.Context, q querier, item models.Item) error {
	query, args, err := buildDeleteItemTagsQuery(item.ID)
	if err != nil {
		return err
	}
	if _, err = q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if len(item.Tags) == 0 {
		return nil
	}

	query, args, err = buildInsertItemTagsQuery(item.ID, item.Tags)
	if err != nil {
		return err
	}
	if _, err = q.ExecContext(ctx, query, args...); err != nil {
		return classifyWriteError(err, ErrExecutingStatement)
	}

	return nil
}

func scanMatches(ctx context.Context, q querier, query string, args ...any) ([]syncer.Match[int64], error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	matches := make([]syncer.Match[int64], 0, 50)
	for rows.Next() {
		var m syncer.Match[int64]
		if err = rows.Scan(&m.ID, &m.LastModified); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		matches = append(matches, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return matches, nil
}

func deleteOwned(ctx context.Context, db *DB, table string, userID int64, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query, args, err := buildDeleteQuery(table, userID, ids)
	if err != nil {
		return 0, err
	}

	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "deleteOwned").
			Str("table", table).
			Int64("user_id", userID).
			Msg("failed to delete rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return n, nil
}
