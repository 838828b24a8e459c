// File: discovery.go
// Title: Configuration File Discovery Implementation
// Description: Searches the usual locations for a configuration file and
//              loads the first one found.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of file discovery
// - 2026-10-16 v0.2.0: Typed loading, user config directory

package config

import (
	"os"
	"path/filepath"
	"strings"

	numerror "github.com/msto63/numerical/foundation/core/error"
)

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string // Directories to search for config files
	Filenames  []string // Base filenames to look for (without extension)
	Extensions []string // File extensions to try (.toml, .yaml, .yml)
	EnvPrefix  string   // Environment variable prefix for overrides
	Required   bool     // Whether finding a config file is required
}

// DefaultDiscoveryOptions returns the search order used by the numerical CLI
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{".", "./config"}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "numerical"))
	}
	paths = append(paths, "/etc/numerical")

	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"numerical", "config"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  "NUMERICAL_",
	}
}

// Discover loads the first configuration file found into out and returns its
// path. When no file exists and none is required, out is filled from the
// environment only and the returned path is empty.
func Discover(out interface{}, options DiscoveryOptions) (string, error) {
	path, err := FindConfigFile(options)
	if err != nil {
		if options.Required {
			return "", err
		}
		return "", FromEnv(out, options.EnvPrefix)
	}

	if err := LoadWithOptions(path, out, LoadOptions{EnvPrefix: options.EnvPrefix}); err != nil {
		return path, numerror.Wrap(err, "found config file "+path+" but failed to load").
			WithOperation("config.Discover").
			WithDetail("path", path)
	}
	return path, nil
}

// FindConfigFile searches for a configuration file without loading it
func FindConfigFile(options DiscoveryOptions) (string, error) {
	candidates := ListPossibleConfigFiles(options)
	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", numerror.New("no configuration file found in paths: "+strings.Join(candidates, ", ")).
		WithCode(numerror.CodeMissingConfig).
		WithOperation("config.FindConfigFile").
		WithDetail("candidates", len(candidates))
}

// ListPossibleConfigFiles returns every path Discover would try, in order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	if len(options.Paths) == 0 {
		options.Paths = []string{"."}
	}
	if len(options.Filenames) == 0 {
		options.Filenames = []string{"config"}
	}
	if len(options.Extensions) == 0 {
		options.Extensions = []string{".toml", ".yaml", ".yml"}
	}

	paths := make([]string, 0, len(options.Paths)*len(options.Filenames)*len(options.Extensions))
	for _, path := range options.Paths {
		for _, filename := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(path, filename+ext))
			}
		}
	}
	return paths
}
