package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/msto63/numerical/foundation/core/operators"
	"github.com/msto63/numerical/internal/tui/repl"
	"github.com/spf13/cobra"
)

var opsAliases bool

var opsCmd = &cobra.Command{
	Use:   "ops",
	Short: "Operator-Katalog anzeigen",
	Long: `Zeigt alle registrierten Operatoren mit Symbol und Stelligkeit.

Beispiele:
  numerical ops              # Katalog anzeigen
  numerical ops --aliases    # Zusätzlich Aliase anzeigen`,
	RunE: runOps,
}

func init() {
	rootCmd.AddCommand(opsCmd)

	opsCmd.Flags().BoolVar(&opsAliases, "aliases", false, "Aliase anzeigen")
}

func runOps(cmd *cobra.Command, args []string) error {
	registry := operators.Default()
	ops := registry.Operators()

	fmt.Println(repl.LogoStyle.Render("Operator-Katalog"))
	fmt.Println()
	fmt.Printf("%-12s %-12s %-8s\n", "NAME", "SYMBOL", "STELLEN")
	fmt.Println(strings.Repeat("-", 34))

	for _, op := range ops {
		fmt.Printf("%-12s %-12s %-8d\n", op.Name(), op.Symbol(), op.Arity())
	}

	if opsAliases {
		aliases := registry.Aliases()
		keys := make([]string, 0, len(aliases))
		for k := range aliases {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		fmt.Println()
		fmt.Println(repl.SubHeaderStyle.Render("Aliase"))
		for _, k := range keys {
			fmt.Printf("  %-4s -> %s\n", k, aliases[k])
		}
	}

	fmt.Println()
	fmt.Printf("Gesamt: %d Operator(en)\n", len(ops))
	return nil
}
