// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server is the lifecycle shared by every listener in this package.
type Server interface {
	// RunServer serves requests and blocks until the server stops.
	RunServer()

	// Shutdown stops accepting requests and waits for in-flight ones.
	Shutdown()
}
