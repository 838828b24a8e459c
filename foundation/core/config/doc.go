// Package config loads typed configuration for numerical tools.
//
// Package: config
// Title: Configuration Loading
// Description: Decodes TOML or YAML files into caller-defined structs,
//              overlays environment variables and validates struct tags.
//              Discover searches the working directory, ./config, the user
//              configuration directory and /etc/numerical.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-16 v0.2.0: Typed decoding via toml/yaml tags, env and validate tags
//
// Usage:
//
//	type Settings struct {
//	  LogLevel string  `toml:"log_level" yaml:"log_level" env:"LOG_LEVEL" validate:"oneof=trace debug info warn error"`
//	  RelTol   float64 `toml:"rel_tol" yaml:"rel_tol" env:"REL_TOL" validate:"gt=0,lt=1"`
//	}
//
//	var s Settings
//	path, err := config.Discover(&s, config.DefaultDiscoveryOptions())
//
// Environment variables take precedence over file values. Defaults belong in
// the struct before loading; `envDefault` tags would overwrite file values.
package config
