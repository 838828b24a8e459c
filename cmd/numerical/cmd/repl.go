// ============================================================================
// numerical - Numerische Größen und Operator-Protokolle
// ============================================================================
//
// Package:     cmd
// Description: CLI command for the interactive REPL
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package cmd

import (
	"github.com/msto63/numerical/foundation/quantities"
	"github.com/msto63/numerical/internal/tui/repl"
	"github.com/spf13/cobra"
)

var (
	replKind      string
	replNoHistory bool
)

var replCmd = &cobra.Command{
	Use:     "repl",
	Aliases: []string{"shell"},
	Short:   "Startet die interaktive Auswertung",
	Long: `Startet eine Terminal-UI zur interaktiven Auswertung von Ausdrücken.

Die Eingabe-Historie wird in ~/.numerical/repl.json gespeichert.

Tastenkürzel:
  Enter       Ausdruck auswerten
  ↑/↓         Historie durchblättern
  Ctrl+K      Typ für Zahlen-Literale wechseln
  Ctrl+R      Repr-Darstellung umschalten
  Ctrl+L      Verlauf leeren
  Esc/Ctrl+C  Beenden`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)

	replCmd.Flags().StringVarP(&replKind, "kind", "k", "", "Typ für Zahlen-Literale")
	replCmd.Flags().BoolVar(&replNoHistory, "no-history", false, "Historie nicht speichern")
}

func runRepl(cmd *cobra.Command, args []string) error {
	cfg := repl.DefaultConfig()
	cfg.Kind = settings.LiteralKind()
	cfg.Repr = debug
	cfg.Logger = logger

	if replKind != "" {
		kind, err := quantities.ParseKind(replKind)
		if err != nil {
			return reportError("Ungültiger Typ", err)
		}
		cfg.Kind = kind
	}
	if replNoHistory {
		cfg.SettingsFile = ""
	}

	return repl.Run(cfg)
}
