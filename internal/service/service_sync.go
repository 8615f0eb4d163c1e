// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strconv"

	"github.com/MKhiriev/go-sync-keeper/internal/syncer"
	"github.com/MKhiriev/go-sync-keeper/models"
)

// userScopedRepository is the read side shared by the item and tag
// repositories.
type userScopedRepository[E any] interface {
	FindMatching(ctx context.Context, userID int64, cond syncer.Condition[int64]) ([]syncer.Match[int64], error)
	FindFullByIDs(ctx context.Context, userID int64, ids []int64) ([]E, error)
}

// userSource binds a repository to one user so it can serve as a
// [syncer.DataSource]. A fresh one is built per call.
type userSource[E syncer.Entity[int64]] struct {
	repo   userScopedRepository[E]
	userID int64
}

func (s userSource[E]) FindMatching(ctx context.Context, cond syncer.Condition[int64]) ([]syncer.Match[int64], error) {
	return s.repo.FindMatching(ctx, s.userID, cond)
}

func (s userSource[E]) FindFullByIDs(ctx context.Context, ids []int64) ([]E, error) {
	return s.repo.FindFullByIDs(ctx, s.userID, ids)
}

// entitySync runs the sync protocol for one entity over its repository.
type entitySync[E syncer.Entity[int64]] struct {
	protocol *syncer.Protocol[int64, E]
	repo     userScopedRepository[E]
}

func newEntitySync[E syncer.Entity[int64]](protocol *syncer.Protocol[int64, E], repo userScopedRepository[E]) entitySync[E] {
	return entitySync[E]{protocol: protocol, repo: repo}
}

func (s entitySync[E]) run(ctx context.Context, userID int64, req models.SyncRequest) (models.SyncResponse[E], error) {
	res, err := s.protocol.Handle(ctx, userSource[E]{repo: s.repo, userID: userID}, toProtocolRequest(userID, req))
	if err != nil {
		return models.SyncResponse[E]{}, err
	}

	if res.List != nil {
		hashes := make([]models.SyncHash, 0, len(res.List.Hashes))
		for _, h := range res.List.Hashes {
			hashes = append(hashes, models.SyncHash{ID: h.ID, Hash: h.Hash})
		}
		return models.SyncResponse[E]{
			List: &models.SyncListResponse{Hashes: hashes, Validation: res.List.Validation},
		}, nil
	}

	return models.SyncResponse[E]{
		Data: &models.SyncDataResponse[E]{Data: res.Data},
	}, nil
}

// toProtocolRequest maps the wire request onto the protocol request. The
// user id is the token subject; Page and PageSize become skip/take.
func toProtocolRequest(userID int64, req models.SyncRequest) syncer.Request[int64] {
	var skip uint64
	if req.PageSize > 0 {
		skip = req.Page * req.PageSize
	}

	return syncer.Request[int64]{
		Subject: strconv.FormatInt(userID, 10),
		Mode:    req.Sync.Mode,
		Condition: syncer.Condition[int64]{
			IDs:    req.IDs,
			Search: req.Search,
			Skip:   skip,
			Take:   req.PageSize,
		},
		IDs:        req.Sync.IDs,
		Validation: req.Sync.Validation,
	}
}
