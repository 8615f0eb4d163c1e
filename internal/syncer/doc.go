// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package syncer implements the two-phase sync exchange.
//
// In List mode the protocol reads (id, last-modified, fodder) triples from a
// DataSource, turns them into hashes and signs a token over the listed ids.
// In Data mode it checks the requested ids against that token and returns
// the full records indexed by id. Nothing is kept between calls; every
// failure aborts the whole call.
package syncer
