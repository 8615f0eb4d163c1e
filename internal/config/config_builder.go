// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder collects config layers and merges them by priority,
// regardless of the order the with* steps are called in.
type configBuilder struct {
	defaults *StructuredConfig
	file     *StructuredConfig
	env      *StructuredConfig
	flags    *StructuredConfig
	err      error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{defaults: defaults()}
}

// layers returns the collected layers from lowest to highest priority.
func (b *configBuilder) layers() []*StructuredConfig {
	out := make([]*StructuredConfig, 0, 4)
	for _, l := range []*StructuredConfig{b.defaults, b.file, b.env, b.flags} {
		if l != nil {
			out = append(out, l)
		}
	}
	return out
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.layers() {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, nil
}

func (b *configBuilder) withDotEnv(args []string) *configBuilder {
	path := b.defaults.DotEnvPath
	if p := lookupDotEnvPath(args); p != "" {
		path = p
	}

	if err := loadDotEnv(path); err != nil {
		b.err = errors.Join(b.err, err)
	}
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.env = envCfg
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flagsCfg, err := parseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.flags = flagsCfg
	return b
}

// withFile loads the config file named by the flags or the environment.
func (b *configBuilder) withFile() *configBuilder {
	var path string
	for _, cfg := range []*StructuredConfig{b.env, b.flags} {
		if cfg != nil && cfg.FilePath != "" {
			path = cfg.FilePath
		}
	}

	if path == "" {
		return b
	}

	fileCfg, err := parseFile(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.file = fileCfg
	return b
}
