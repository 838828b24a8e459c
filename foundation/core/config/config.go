// File: config.go
// Title: Core Configuration Management Implementation
// Description: Decodes TOML and YAML configuration files into typed structs,
//              overlays environment variables and validates the result with
//              struct tags.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-16 v0.2.0: Typed decoding, env overlay and tag validation

package config

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	numerror "github.com/msto63/numerical/foundation/core/error"
	numerrors "github.com/msto63/numerical/foundation/core/errors"
	numlog "github.com/msto63/numerical/foundation/core/log"
)

// Format represents the configuration file format
type Format int

const (
	// FormatAuto detects the format from the file extension
	FormatAuto Format = iota

	// FormatTOML represents TOML format
	FormatTOML

	// FormatYAML represents YAML format
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	Format    Format // File format (default: auto-detect)
	EnvPrefix string // Prefix for environment overrides, e.g. "NUMERICAL_"
	SkipEnv   bool   // Do not overlay environment variables
	Logger    *numlog.Logger
}

// Load decodes the file at filePath into out, overlays the environment and
// validates out. out must be a pointer to a struct.
func Load(filePath string, out interface{}) error {
	return LoadWithOptions(filePath, out, LoadOptions{})
}

// LoadWithOptions is Load with explicit options
func LoadWithOptions(filePath string, out interface{}, options LoadOptions) error {
	if strings.TrimSpace(filePath) == "" {
		return numerror.New("config file path cannot be empty").
			WithCode(numerror.CodeMissingConfig).
			WithOperation("config.Load")
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return numerror.Wrap(err, fmt.Sprintf("config file not found: %s", filePath)).
				WithCode(numerror.CodeMissingConfig).
				WithOperation("config.Load").
				WithDetail("path", filePath)
		}
		return numerrors.ConfigFailed(filePath, err)
	}

	format := options.Format
	if format == FormatAuto {
		format = DetectFormat(filePath)
	}

	if err := decode(content, format, out); err != nil {
		return numerrors.ConfigFailed(filePath, err).WithDetail("format", format.String())
	}

	logger := options.Logger
	if logger == nil {
		logger = numlog.GetDefault()
	}
	logger.Debug("configuration loaded", numlog.Fields{"path": filePath, "format": format.String()})

	return finish(out, options)
}

// LoadFromString decodes content in the given format into out, then applies
// the environment overlay and validation like Load
func LoadFromString(content string, format Format, out interface{}, options LoadOptions) error {
	if format == FormatAuto {
		format = FormatTOML
	}
	if err := decode([]byte(content), format, out); err != nil {
		return numerror.Wrap(err, "failed to parse config from string").
			WithCode(numerror.CodeInvalidFormat).
			WithOperation("config.LoadFromString").
			WithDetail("format", format.String())
	}
	return finish(out, options)
}

// FromEnv fills out from environment variables only and validates it
func FromEnv(out interface{}, prefix string) error {
	return finish(out, LoadOptions{EnvPrefix: prefix})
}

func finish(out interface{}, options LoadOptions) error {
	if !options.SkipEnv {
		if err := env.ParseWithOptions(out, env.Options{Prefix: options.EnvPrefix}); err != nil {
			return numerror.Wrap(err, "failed to apply environment overrides").
				WithCode(numerror.CodeInvalidConfig).
				WithOperation("config.env").
				WithDetail("prefix", options.EnvPrefix)
		}
	}
	return Validate(out)
}

// DetectFormat determines the configuration format from the file extension.
// Unknown extensions are treated as TOML.
func DetectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

func decode(content []byte, format Format, out interface{}) error {
	switch format {
	case FormatTOML:
		if _, err := toml.NewDecoder(bytes.NewReader(content)).Decode(out); err != nil {
			return numerror.Wrap(err, "TOML parse error").
				WithCode(numerror.CodeInvalidFormat).
				WithOperation("config.decode")
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(content))
		dec.KnownFields(true)
		if err := dec.Decode(out); err != nil && !stderrors.Is(err, io.EOF) {
			return numerror.Wrap(err, "YAML parse error").
				WithCode(numerror.CodeInvalidFormat).
				WithOperation("config.decode")
		}
	default:
		return numerror.New(fmt.Sprintf("unsupported format: %s", format)).
			WithCode(numerror.CodeInvalidFormat).
			WithOperation("config.decode")
	}
	return nil
}
