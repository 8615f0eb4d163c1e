// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/models"
)

func TestNewAppInfoService(t *testing.T) {
	info := models.NewAppBuildInfo("1.0.0", "2026-01-01", "abc123")

	svc, err := NewAppInfoService(info, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "1.0.0", svc.GetAppVersion(context.Background()))
	assert.Equal(t, info, svc.GetBuildInfo(context.Background()))
}

func TestNewAppInfoService_EmptyVersion(t *testing.T) {
	svc, err := NewAppInfoService(models.AppBuildInfo{}, logger.Nop())

	assert.Nil(t, svc)
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

func TestNewAppInfoService_DefaultsToNA(t *testing.T) {
	svc, err := NewAppInfoService(models.NewAppBuildInfo("", "", ""), logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "N/A", svc.GetAppVersion(context.Background()))
}
