package cmd

import (
	"fmt"
	"strings"

	"github.com/msto63/numerical/foundation/core/quantity"
	"github.com/msto63/numerical/foundation/quantities"
	"github.com/msto63/numerical/internal/calc"
	"github.com/msto63/numerical/internal/tui/repl"
	"github.com/spf13/cobra"
	"golang.org/x/text/message"
)

var (
	evalKind string
	evalRepr bool
)

var evalCmd = &cobra.Command{
	Use:   "eval <ausdruck>",
	Short: "Ausdruck auswerten",
	Long: `Wertet einen Ausdruck über verpackten Zahlen aus.

Zahlen werden mit dem gewählten Typ verpackt, 1.25d ergibt immer
eine Decimal-Größe, [..] eine Sequence. Ausdrücke, die mit einem
Minus beginnen, stehen nach --, sonst werden sie als Flag gelesen.

Beispiele:
  numerical eval "[2.1, 3.4] + [21, 34]"
  numerical eval "0.1d + 0.2d"
  numerical eval --kind value "round(2.5)"
  numerical eval "pow(2, 3, 5)"
  numerical eval -- "-2 ** 2"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)

	evalCmd.Flags().StringVarP(&evalKind, "kind", "k", "", "Typ für Zahlen-Literale (real, value, decimal, sequence)")
	evalCmd.Flags().BoolVar(&evalRepr, "repr", false, "Konstruktor-Darstellung ausgeben")
	evalCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w (Ausdrücke mit führendem Minus nach -- angeben: numerical eval -- \"-2 ** 2\")", err)
	})
}

func runEval(cmd *cobra.Command, args []string) error {
	input := strings.Join(args, " ")

	evaluator, err := newEvaluator(evalKind)
	if err != nil {
		return reportError("Ungültiger Typ", err)
	}

	result, err := evaluator.Eval(input)
	if err != nil {
		logger.LogError(err)
		return reportError("Auswertung fehlgeschlagen", err)
	}

	fmt.Println(repl.ResultStyle.Render(formatResult(settings.Printer(), result, evalRepr || debug)) +
		"  " + repl.TypeBadgeStyle.Render(calc.TypeLabel(result)))
	return nil
}

// newEvaluator builds an evaluator for kind, falling back to the configured kind
func newEvaluator(kind string) (*calc.Evaluator, error) {
	k := settings.LiteralKind()
	if kind != "" {
		parsed, err := quantities.ParseKind(kind)
		if err != nil {
			return nil, err
		}
		k = parsed
	}
	return calc.New(calc.Config{Kind: k, Logger: logger}), nil
}

// formatResult prints scalar payloads with locale-aware digits
func formatResult(p *message.Printer, v any, repr bool) string {
	if repr {
		return calc.Format(v, true)
	}
	switch x := quantity.Unwrap(calc.Collect(v)).(type) {
	case int, int64, float64:
		return p.Sprint(x)
	}
	return calc.Format(v, false)
}
