// ============================================================================
// numerical - Numerische Größen und Operator-Protokolle
// ============================================================================
//
// Package:     cmd
// Description: CLI settings loaded from numerical.toml/yaml and NUMERICAL_* env
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package cmd

import (
	"github.com/msto63/numerical/foundation/quantities"
	"github.com/msto63/numerical/foundation/utils/datax"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Settings holds the CLI configuration
type Settings struct {
	LogLevel  string  `toml:"log_level" yaml:"log_level" env:"LOG_LEVEL" validate:"oneof=trace debug info warn error fatal"`
	LogFormat string  `toml:"log_format" yaml:"log_format" env:"LOG_FORMAT" validate:"oneof=json text console"`
	Locale    string  `toml:"locale" yaml:"locale" env:"LOCALE" validate:"required,bcp47_language_tag"`
	RelTol    float64 `toml:"rel_tol" yaml:"rel_tol" env:"REL_TOL" validate:"gt=0,lt=1"`
	Kind      string  `toml:"kind" yaml:"kind" env:"KIND" validate:"oneof=real value sequence decimal"`
}

// DefaultSettings returns the settings used without a config file
func DefaultSettings() Settings {
	return Settings{
		LogLevel:  "warn",
		LogFormat: "console",
		Locale:    "de-DE",
		RelTol:    datax.DefaultRelTol,
		Kind:      string(quantities.KindReal),
	}
}

// LiteralKind returns the configured wrapper for number literals
func (s Settings) LiteralKind() quantities.Kind {
	kind, err := quantities.ParseKind(s.Kind)
	if err != nil {
		return quantities.KindReal
	}
	return kind
}

// Printer returns a number printer for the configured locale
func (s Settings) Printer() *message.Printer {
	tag, err := language.Parse(s.Locale)
	if err != nil {
		tag = language.German
	}
	return message.NewPrinter(tag)
}
