package cmd

import (
	"fmt"
	"strings"

	"github.com/msto63/numerical/foundation/core/protocols"
	"github.com/msto63/numerical/internal/calc"
	"github.com/msto63/numerical/internal/tui/repl"
	"github.com/spf13/cobra"
)

var capsKind string

var capsCmd = &cobra.Command{
	Use:   "caps <ausdruck>",
	Short: "Fähigkeiten eines Werts anzeigen",
	Long: `Wertet einen Ausdruck aus und zeigt, welche Protokolle
(orderable, comparable, additive, ..., sequence) das Ergebnis erfüllt.

Beispiele:
  numerical caps 3
  numerical caps --kind value 3
  numerical caps "[1, 2, 3]"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCaps,
}

func init() {
	rootCmd.AddCommand(capsCmd)

	capsCmd.Flags().StringVarP(&capsKind, "kind", "k", "", "Typ für Zahlen-Literale")
}

func runCaps(cmd *cobra.Command, args []string) error {
	evaluator, err := newEvaluator(capsKind)
	if err != nil {
		return reportError("Ungültiger Typ", err)
	}

	v, err := evaluator.Eval(strings.Join(args, " "))
	if err != nil {
		return reportError("Auswertung fehlgeschlagen", err)
	}

	fmt.Printf("%s  %s\n", repl.ResultStyle.Render(calc.Format(v, true)), repl.TypeBadgeStyle.Render(calc.TypeLabel(v)))
	fmt.Println()

	satisfied := 0
	for _, c := range protocols.All {
		mark := "[-]"
		if protocols.Satisfies(v, c) {
			mark = "[+]"
			satisfied++
		}
		fmt.Printf("  %s %s\n", mark, c)
	}

	fmt.Println()
	fmt.Printf("Erfüllt: %d von %d\n", satisfied, len(protocols.All))
	return nil
}
