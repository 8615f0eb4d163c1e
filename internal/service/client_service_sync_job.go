// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
)

const defaultSyncInterval = 5 * time.Minute

type clientSyncJob struct {
	syncService ClientSyncService
	interval    time.Duration
	logger      *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientSyncJob creates a job that calls syncService.SyncAll right away
// and then every interval. A non-positive interval means five minutes. The
// job is idle until Run is called.
func NewClientSyncJob(syncService ClientSyncService, interval time.Duration, logger *logger.Logger) ClientSyncJob {
	if interval <= 0 {
		interval = defaultSyncInterval
	}
	return &clientSyncJob{syncService: syncService, interval: interval, logger: logger}
}

// Run implements workers.Worker. A running job is stopped first.
func (j *clientSyncJob) Run(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		j.syncAll(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.syncAll(jobCtx)
			}
		}
	}()
}

// Stop implements workers.Worker.
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *clientSyncJob) syncAll(ctx context.Context) {
	if err := j.syncService.SyncAll(ctx); err != nil && ctx.Err() == nil {
		j.logger.Err(err).Msg("periodic sync failed")
	}
}
