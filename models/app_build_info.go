// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppBuildInfo carries build-time metadata injected with -ldflags.
// It is printed at startup and served by GET /api/version/.
type AppBuildInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// NewAppBuildInfo returns build info, replacing empty values with "N/A".
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	orNA := func(s string) string {
		if s == "" {
			return "N/A"
		}
		return s
	}
	return AppBuildInfo{Version: orNA(version), Date: orNA(date), Commit: orNA(commit)}
}
