// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Default listener settings applied when neither the environment nor the
// configuration file provides a value.
const (
	DefaultHost = ""
	DefaultPort = 8080
)

// Config is the top-level configuration container for the bookstore server.
// It aggregates the typed listener settings with the raw hierarchical tree,
// which remains available for dotted-path lookups (e.g. "app.json-library").
type Config struct {
	// Server holds network address and timeout settings for the HTTP
	// listener.
	Server Server `envPrefix:"SERVER_"`

	node Node
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// Host is the interface the listener binds to. Empty means all
	// interfaces.
	// Env: BOOKSTORE_SERVER_HOST
	Host string `env:"HOST"`

	// Port is the TCP port the listener binds to. Zero requests an
	// ephemeral port from the kernel.
	// Env: BOOKSTORE_SERVER_PORT
	Port int `env:"PORT"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: BOOKSTORE_SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Node returns the root of the raw configuration tree.
func (c *Config) Node() Node {
	return c.node
}

// Load builds the complete configuration from all available sources in the
// following priority order (earlier source wins for non-zero fields):
//  1. Environment variables
//  2. YAML file (filePath when non-empty, otherwise ./application.yaml if
//     present)
//  3. Defaults
//
// Returns a fully populated *Config or an error if any source fails to load
// or the final config fails validation.
func Load(filePath string) (*Config, error) {
	return newConfigBuilder(filePath).
		withYAML().
		withEnv().
		withDefaults().
		build()
}

func (c *Config) validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return ErrInvalidServerConfig
	}
	return nil
}
