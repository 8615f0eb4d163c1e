// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

// ItemServiceWrapper decorates an ItemService, e.g. with validation.
type ItemServiceWrapper interface {
	Wrap(ItemService) ItemService
}

// TagServiceWrapper decorates a TagService.
type TagServiceWrapper interface {
	Wrap(TagService) TagService
}
