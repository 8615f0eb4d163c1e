// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import sq "github.com/Masterminds/squirrel"

const (
	selectCachedHashes = `SELECT id, hash FROM synced_records WHERE entity = ?;`

	selectCachedRecord = `SELECT id, hash, payload FROM synced_records WHERE entity = ? AND id = ?;`

	upsertCachedRecord = `INSERT INTO synced_records (entity, id, hash, payload, synced_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (entity, id) DO UPDATE SET
			hash = excluded.hash,
			payload = excluded.payload,
			synced_at = CURRENT_TIMESTAMP;`
)

func buildDeleteCachedQuery(entity string, ids []int64) (string, []any, error) {
	return toSQL(sq.Delete("synced_records").Where(sq.Eq{"entity": entity, "id": ids}))
}
