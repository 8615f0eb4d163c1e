// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sync-keeper/internal/syncer"
	"github.com/MKhiriev/go-sync-keeper/models"
)

func Test_buildFindMatchingItemsQuery(t *testing.T) {
	tests := []struct {
		name      string
		cond      syncer.Condition[int64]
		wantQuery string
		wantArgs  []any
	}{
		{
			name:      "no condition",
			cond:      syncer.Condition[int64]{},
			wantQuery: "SELECT id, updated_at FROM items WHERE user_id = $1 ORDER BY id",
			wantArgs:  []any{int64(7)},
		},
		{
			name:      "discrete ids with paging",
			cond:      syncer.Condition[int64]{IDs: []int64{1, 2}, Skip: 20, Take: 10},
			wantQuery: "SELECT id, updated_at FROM items WHERE user_id = $1 AND id IN ($2,$3) ORDER BY id LIMIT 10 OFFSET 20",
			wantArgs:  []any{int64(7), int64(1), int64(2)},
		},
		{
			name:      "name search is literal",
			cond:      syncer.Condition[int64]{Search: map[string]string{"name": `50%_off\`}},
			wantQuery: "SELECT id, updated_at FROM items WHERE user_id = $1 AND name ILIKE $2 ORDER BY id",
			wantArgs:  []any{int64(7), `%50\%\_off\\%`},
		},
		{
			name: "name and tag search",
			cond: syncer.Condition[int64]{Search: map[string]string{"tag_id": "5", "name": "foo"}},
			wantQuery: "SELECT id, updated_at FROM items WHERE user_id = $1 AND name ILIKE $2 " +
				"AND id IN (SELECT item_id FROM item_tags WHERE tag_id = $3) ORDER BY id",
			wantArgs: []any{int64(7), "%foo%", int64(5)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildFindMatchingItemsQuery(7, tt.cond)
			require.NoError(t, err)
			assert.Equal(t, tt.wantQuery, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func Test_buildFindMatchingQuery_UnsupportedSearch(t *testing.T) {
	_, _, err := buildFindMatchingTagsQuery(7, syncer.Condition[int64]{Search: map[string]string{"tag_id": "1"}})
	assert.ErrorIs(t, err, ErrUnsupportedSearch)

	_, _, err = buildFindMatchingItemsQuery(7, syncer.Condition[int64]{Search: map[string]string{"tag_id": "x"}})
	assert.ErrorIs(t, err, ErrUnsupportedSearch)

	_, _, err = buildFindMatchingItemsQuery(7, syncer.Condition[int64]{Search: map[string]string{"color": "red"}})
	assert.ErrorIs(t, err, ErrUnsupportedSearch)
}

func Test_escapeLike(t *testing.T) {
	assert.Equal(t, "plain", escapeLike("plain"))
	assert.Equal(t, `100\%`, escapeLike("100%"))
	assert.Equal(t, `a\_b`, escapeLike("a_b"))
	assert.Equal(t, `c:\\dir`, escapeLike(`c:\dir`))
}

func Test_buildLockItemQuery(t *testing.T) {
	query, args, err := buildLockItemQuery(7, 3)
	require.NoError(t, err)

	assert.Equal(t, "SELECT id, user_id, name, content, created_at, updated_at FROM items "+
		"WHERE id = $1 AND user_id = $2 FOR UPDATE", query)
	assert.Equal(t, []any{int64(3), int64(7)}, args)
}

func Test_buildInsertItemTagsQuery_KeepsPositions(t *testing.T) {
	query, args, err := buildInsertItemTagsQuery(3, []models.Tag{{ID: 9}, {ID: 4}})
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO item_tags")
	assert.Contains(t, query, "($1,$2,$3),($4,$5,$6)")
	assert.Equal(t, []any{int64(3), int64(9), 0, int64(3), int64(4), 1}, args)
}

func Test_buildUpdateItemQuery(t *testing.T) {
	query, args, err := buildUpdateItemQuery(models.Item{ID: 3, UserID: 7, Name: "n", Content: "c"})
	require.NoError(t, err)

	assert.Contains(t, query, "UPDATE items SET name = $1, content = $2, updated_at = NOW()")
	assert.Contains(t, query, "RETURNING created_at, updated_at")
	assert.Equal(t, []any{"n", "c", int64(3), int64(7)}, args)
}

func Test_buildDeleteCachedQuery(t *testing.T) {
	query, args, err := buildDeleteCachedQuery("items", []int64{1, 2})
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM synced_records WHERE entity = ? AND id IN (?,?)", query)
	assert.Equal(t, []any{"items", int64(1), int64(2)}, args)
}
