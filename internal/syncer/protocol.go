// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package syncer

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/syncauth"
	"github.com/MKhiriev/go-sync-keeper/models"
)

// Hasher computes change-detection hashes.
type Hasher interface {
	Hash(id any, lastModified time.Time, fodder ...any) (string, error)
}

// Authorizer mints and checks sync tokens.
type Authorizer[ID comparable] interface {
	Authorize(subject string, ids []ID) (string, error)
	Validate(subject string, requested []ID, token string) error
}

// Protocol runs sync calls for one entity type. It is stateless and safe
// for concurrent use.
type Protocol[ID comparable, E Entity[ID]] struct {
	hasher     Hasher
	authorizer Authorizer[ID]
}

// New returns a Protocol built on h and auth.
func New[ID comparable, E Entity[ID]](h Hasher, auth Authorizer[ID]) *Protocol[ID, E] {
	return &Protocol[ID, E]{hasher: h, authorizer: auth}
}

// Handle dispatches req to List or Data according to its mode.
func (p *Protocol[ID, E]) Handle(ctx context.Context, src DataSource[ID, E], req Request[ID]) (Response[ID, E], error) {
	switch req.Mode {
	case models.SyncModeList:
		res, err := p.List(ctx, src, req.Subject, req.Condition)
		if err != nil {
			return Response[ID, E]{}, err
		}
		return Response[ID, E]{List: &res}, nil
	case models.SyncModeData:
		data, err := p.Data(ctx, src, req.Subject, req.IDs, req.Validation)
		if err != nil {
			return Response[ID, E]{}, err
		}
		return Response[ID, E]{Data: data}, nil
	default:
		return Response[ID, E]{}, fmt.Errorf("%w: %q", ErrInvalidMode, req.Mode)
	}
}

// List hashes every record matching cond and signs a token over their ids.
func (p *Protocol[ID, E]) List(ctx context.Context, src DataSource[ID, E], subject string, cond Condition[ID]) (ListResult[ID], error) {
	if err := ctx.Err(); err != nil {
		return ListResult[ID]{}, err
	}

	matches, err := src.FindMatching(ctx, cond)
	if err != nil {
		return ListResult[ID]{}, fmt.Errorf("%w: %w", ErrDataSource, err)
	}
	if err = ctx.Err(); err != nil {
		return ListResult[ID]{}, err
	}

	hashes := make([]Hash[ID], 0, len(matches))
	ids := make([]ID, 0, len(matches))
	for _, m := range matches {
		h, err := p.hasher.Hash(m.ID, m.LastModified, m.Fodder...)
		if err != nil {
			return ListResult[ID]{}, err
		}
		hashes = append(hashes, Hash[ID]{ID: m.ID, Hash: h})
		ids = append(ids, m.ID)
	}

	token, err := p.authorizer.Authorize(subject, ids)
	if err != nil {
		return ListResult[ID]{}, err
	}

	return ListResult[ID]{Hashes: hashes, Validation: token}, nil
}

// Data returns the full records for ids once token proves they were listed.
// Either every requested record is returned or the call fails.
func (p *Protocol[ID, E]) Data(ctx context.Context, src DataSource[ID, E], subject string, ids []ID, token string) (IndexedData[ID, E], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := p.authorizer.Validate(subject, ids, token); err != nil {
		if syncauth.IsAuthError(err) {
			logger.FromContext(ctx).Warn().Err(err).Str("subject", subject).Int("requested", len(ids)).
				Msg("sync data request rejected")
		}
		return nil, err
	}

	unique := dedupe(ids)
	if len(unique) == 0 {
		return IndexedData[ID, E]{}, nil
	}

	records, err := src.FindFullByIDs(ctx, unique)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataSource, err)
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	wanted := make(map[ID]struct{}, len(unique))
	for _, id := range unique {
		wanted[id] = struct{}{}
	}

	data := make(IndexedData[ID, E], len(unique))
	for _, r := range records {
		id := r.SyncID()
		if _, ok := wanted[id]; ok {
			data[id] = r
		}
	}

	if len(data) != len(unique) {
		missing := make([]ID, 0, len(unique)-len(data))
		for _, id := range unique {
			if _, ok := data[id]; !ok {
				missing = append(missing, id)
			}
		}
		return nil, fmt.Errorf("%w: %v", ErrMissingRecords, missing)
	}

	return data, nil
}

func dedupe[ID comparable](ids []ID) []ID {
	seen := make(map[ID]struct{}, len(ids))
	out := make([]ID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
