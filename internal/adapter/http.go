// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-sync-keeper/internal/config"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/utils"
	"github.com/MKhiriev/go-sync-keeper/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the resty implementation of
// [ServerAdapter] for the server at cfg.HTTPAddress.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	address := strings.TrimRight(strings.TrimSpace(cfg.HTTPAddress), "/")
	if address == "" {
		return nil, ErrEmptyAddress
	}

	client := utils.NewHTTPClient(address, cfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

// SetToken implements [ServerAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter] via POST /api/user/register.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) error {
	return h.authenticate(ctx, "/api/user/register", user)
}

// Login implements [ServerAdapter] via POST /api/user/login.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) error {
	return h.authenticate(ctx, "/api/user/login", user)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, user models.User) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post(path)
	if err != nil {
		return fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return fmt.Errorf("%s parse bearer token: %w", path, err)
	}

	h.SetToken(token)
	return nil
}

// ListHashes implements [ServerAdapter] via POST /api/{entity}/sync.
func (h *httpServerAdapter) ListHashes(ctx context.Context, entity models.SyncEntity, req models.SyncRequest) (models.SyncListResponse, error) {
	req.Sync = models.SyncParams{Mode: models.SyncModeList}

	var list models.SyncListResponse
	if err := h.sync(ctx, entity, req, &list); err != nil {
		return models.SyncListResponse{}, err
	}

	h.logger.Debug().
		Str("entity", string(entity)).
		Int("hashes", len(list.Hashes)).
		Msg("listed server hashes")
	return list, nil
}

// FetchData implements [ServerAdapter] via POST /api/{entity}/sync.
func (h *httpServerAdapter) FetchData(ctx context.Context, entity models.SyncEntity, ids []int64, validation string) (map[int64]json.RawMessage, error) {
	req := models.SyncRequest{
		Sync: models.SyncParams{Mode: models.SyncModeData, IDs: ids, Validation: validation},
	}

	var data models.SyncDataResponse[json.RawMessage]
	if err := h.sync(ctx, entity, req, &data); err != nil {
		return nil, err
	}
	if data.Data == nil {
		data.Data = map[int64]json.RawMessage{}
	}
	return data.Data, nil
}

// Version implements [ServerAdapter] via GET /api/version/.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) sync(ctx context.Context, entity models.SyncEntity, body models.SyncRequest, result any) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post("/api/" + string(entity) + "/sync")
	if err != nil {
		return fmt.Errorf("sync %s %s request: %w", entity, body.Sync.Mode, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if err = json.Unmarshal(resp.Body(), result); err != nil {
		return fmt.Errorf("decode sync %s %s response: %w", entity, body.Sync.Mode, err)
	}
	return nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNoToken
	}
	return h.client.R().SetContext(ctx).SetAuthToken(token), nil
}
