// ============================================================================
// numerical - Numerische Größen und Operator-Protokolle
// ============================================================================
//
// Package:     repl
// Description: Input history persistence for the REPL
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package repl

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// MaxHistory is the number of inputs kept on disk
const MaxHistory = 100

// Settings holds persistent REPL settings
type Settings struct {
	LastKind     string   `json:"last_kind,omitempty"`
	InputHistory []string `json:"input_history,omitempty"`
}

// DefaultSettingsFile returns ~/.numerical/repl.json
func DefaultSettingsFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".numerical", "repl.json")
	}
	return filepath.Join(home, ".numerical", "repl.json")
}

// LoadSettings loads settings from path. A missing or unreadable file
// yields empty settings.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, err
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return &Settings{}, nil
	}
	return &settings, nil
}

// SaveSettings writes settings to path
func SaveSettings(path string, settings *Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	if len(settings.InputHistory) > MaxHistory {
		settings.InputHistory = settings.InputHistory[len(settings.InputHistory)-MaxHistory:]
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
