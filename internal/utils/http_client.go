// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client so callers get every resty method directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client rooted at baseURL.
// A bare host:port gets an http:// scheme. A zero timeout leaves resty's
// default in place.
//
//	client := utils.NewHTTPClient("localhost:8080", 30*time.Second)
//	resp, err := client.R().Get("/api/version/")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	if baseURL != "" && !strings.Contains(baseURL, "://") {
		baseURL = "http://" + baseURL
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
