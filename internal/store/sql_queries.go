// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-sync-keeper/internal/syncer"
	"github.com/MKhiriev/go-sync-keeper/models"
)

const (
	createUser = `INSERT INTO users (login, password)
    VALUES ($1, $2)
    RETURNING user_id, login, password, created_at;`

	findUserByLogin = `SELECT user_id, login, password, created_at
    FROM users
    WHERE login = $1;`
)

// Search fields accepted in List-mode conditions.
const (
	SearchName  = "name"
	SearchTagID = "tag_id"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// applyCondition narrows a user-scoped select by cond. allowed lists the
// search fields the entity supports.
func applyCondition(b sq.SelectBuilder, cond syncer.Condition[int64], allowed ...string) (sq.SelectBuilder, error) {
	if len(cond.IDs) > 0 {
		b = b.Where(sq.Eq{"id": cond.IDs})
	}

	for _, field := range slices.Sorted(maps.Keys(cond.Search)) {
		value := cond.Search[field]
		if !slices.Contains(allowed, field) {
			return b, fmt.Errorf("%w: %q", ErrUnsupportedSearch, field)
		}

		switch field {
		case SearchName:
			b = b.Where(sq.ILike{"name": "%" + escapeLike(value) + "%"})
		case SearchTagID:
			tagID, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return b, fmt.Errorf("%w: tag_id %q", ErrUnsupportedSearch, value)
			}
			b = b.Where(sq.Expr("id IN (SELECT item_id FROM item_tags WHERE tag_id = ?)", tagID))
		}
	}

	b = b.OrderBy("id")
	if cond.Take > 0 {
		b = b.Limit(cond.Take).Offset(cond.Skip)
	} else if cond.Skip > 0 {
		b = b.Offset(cond.Skip)
	}

	return b, nil
}

func buildFindMatchingItemsQuery(userID int64, cond syncer.Condition[int64]) (string, []any, error) {
	b, err := applyCondition(
		psql.Select("id", "updated_at").From("items").Where(sq.Eq{"user_id": userID}),
		cond, SearchName, SearchTagID,
	)
	if err != nil {
		return "", nil, err
	}
	return toSQL(b)
}

func buildFindMatchingTagsQuery(userID int64, cond syncer.Condition[int64]) (string, []any, error) {
	b, err := applyCondition(
		psql.Select("id", "updated_at").From("tags").Where(sq.Eq{"user_id": userID}),
		cond, SearchName,
	)
	if err != nil {
		return "", nil, err
	}
	return toSQL(b)
}

func buildFindItemsByIDsQuery(userID int64, ids []int64) (string, []any, error) {
	return toSQL(psql.
		Select("id", "user_id", "name", "content", "created_at", "updated_at").
		From("items").
		Where(sq.Eq{"user_id": userID, "id": ids}).
		OrderBy("id"))
}

func buildLockItemQuery(userID, id int64) (string, []any, error) {
	return toSQL(psql.
		Select("id", "user_id", "name", "content", "created_at", "updated_at").
		From("items").
		Where(sq.Eq{"id": id, "user_id": userID}).
		Suffix("FOR UPDATE"))
}

func buildFindTagsByIDsQuery(userID int64, ids []int64) (string, []any, error) {
	return toSQL(psql.
		Select("id", "user_id", "name", "created_at", "updated_at").
		From("tags").
		Where(sq.Eq{"user_id": userID, "id": ids}).
		OrderBy("id"))
}

// buildItemTagLinksQuery lists (item_id, tag_id, tag updated_at) in link order.
func buildItemTagLinksQuery(itemIDs []int64) (string, []any, error) {
	return toSQL(psql.
		Select("it.item_id", "it.tag_id", "t.updated_at").
		From("item_tags it").
		Join("tags t ON t.id = it.tag_id").
		Where(sq.Eq{"it.item_id": itemIDs}).
		OrderBy("it.item_id", "it.position"))
}

// buildItemTagsQuery lists linked tags with their fields in link order.
func buildItemTagsQuery(itemIDs []int64) (string, []any, error) {
	return toSQL(psql.
		Select("it.item_id", "t.id", "t.user_id", "t.name", "t.created_at", "t.updated_at").
		From("item_tags it").
		Join("tags t ON t.id = it.tag_id").
		Where(sq.Eq{"it.item_id": itemIDs}).
		OrderBy("it.item_id", "it.position"))
}

func buildInsertItemQuery(item models.Item) (string, []any, error) {
	return toSQL(psql.
		Insert("items").
		Columns("user_id", "name", "content").
		Values(item.UserID, item.Name, item.Content).
		Suffix("RETURNING id, created_at, updated_at"))
}

func buildUpdateItemQuery(item models.Item) (string, []any, error) {
	return toSQL(psql.
		Update("items").
		Set("name", item.Name).
		Set("content", item.Content).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": item.ID, "user_id": item.UserID}).
		Suffix("RETURNING created_at, updated_at"))
}

func buildDeleteItemTagsQuery(itemID int64) (string, []any, error) {
	return toSQL(psql.Delete("item_tags").Where(sq.Eq{"item_id": itemID}))
}

func buildInsertItemTagsQuery(itemID int64, tags []models.Tag) (string, []any, error) {
	b := psql.Insert("item_tags").Columns("item_id", "tag_id", "position")
	for pos, t := range tags {
		b = b.Values(itemID, t.ID, pos)
	}
	return toSQL(b)
}

func buildDeleteQuery(table string, userID int64, ids []int64) (string, []any, error) {
	return toSQL(psql.Delete(table).Where(sq.Eq{"user_id": userID, "id": ids}))
}

func buildInsertTagQuery(tag models.Tag) (string, []any, error) {
	return toSQL(psql.
		Insert("tags").
		Columns("user_id", "name").
		Values(tag.UserID, tag.Name).
		Suffix("RETURNING id, created_at, updated_at"))
}

func buildRenameTagQuery(tag models.Tag) (string, []any, error) {
	return toSQL(psql.
		Update("tags").
		Set("name", tag.Name).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": tag.ID, "user_id": tag.UserID}).
		Suffix("RETURNING created_at, updated_at"))
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside a LIKE pattern. Backslash is
// the default LIKE escape character in PostgreSQL.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

type sqlizer interface {
	ToSql() (string, []any, error)
}

func toSQL(b sqlizer) (string, []any, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
