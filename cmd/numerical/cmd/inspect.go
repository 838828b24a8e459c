package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	numerrors "github.com/msto63/numerical/foundation/core/errors"
	"github.com/msto63/numerical/foundation/utils/arrayx"
	"github.com/msto63/numerical/foundation/utils/datax"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	inspectBound  string
	inspectOrder  string
	inspectStrict bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <datei>",
	Short: "Datendatei untersuchen",
	Long: `Lädt "values" (und optional "target") aus einer YAML-, TOML- oder
JSON-Datei und prüft Monotonie, Datentyp und den nächsten Wert.

Beispiel (grid.yaml):
  values: [0.1, 0.2, 0.3]
  target: 0.21

Beispiele:
  numerical inspect grid.yaml
  numerical inspect grid.toml --bound lower
  numerical inspect grid.json --order increasing --strict`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().StringVar(&inspectBound, "bound", "none", "Schranke für den nächsten Wert (none, lower, upper)")
	inspectCmd.Flags().StringVar(&inspectOrder, "order", "either", "Richtung der Monotonie (either, increasing, decreasing)")
	inspectCmd.Flags().BoolVar(&inspectStrict, "strict", false, "Strenge Monotonie")
}

// dataFile is the document read by inspect
type dataFile struct {
	Values any `json:"values" yaml:"values" toml:"values"`
	Target any `json:"target" yaml:"target" toml:"target"`
}

func runInspect(cmd *cobra.Command, args []string) error {
	bound, err := datax.ParseBound(inspectBound)
	if err != nil {
		return reportError("Ungültige Schranke", err)
	}
	order, err := datax.ParseOrder(inspectOrder)
	if err != nil {
		return reportError("Ungültige Richtung", err)
	}

	data, err := loadDataFile(args[0])
	if err != nil {
		return reportError("Datei nicht lesbar", err)
	}

	arr, err := arrayx.From(data.Values)
	if err != nil {
		return reportError("Keine numerischen Daten", err)
	}

	monotonic, err := datax.IsMonotonic(arr, order, inspectStrict)
	if err != nil {
		return reportError("Monotonie nicht prüfbar", err)
	}

	p := settings.Printer()
	fmt.Printf("Datei:      %s\n", args[0])
	fmt.Printf("Form:       %v\n", arr.Shape())
	fmt.Printf("Datentyp:   %s\n", arr.DType())
	fmt.Printf("Ganzzahlig: %s\n", yesNo(datax.HasDType(arr, arrayx.Bool, arrayx.Int)))
	fmt.Printf("Monoton:    %s (%s, strikt: %s)\n", yesNo(monotonic), order, yesNo(inspectStrict))

	if data.Target == nil {
		return nil
	}

	near, err := datax.FindNearest(arr, data.Target, bound)
	if err != nil {
		return reportError("Nächster Wert nicht bestimmbar", err)
	}
	contained, err := datax.IsCloseWithin(arr, data.Target, settings.RelTol, 0)
	if err != nil {
		return reportError("Vergleich fehlgeschlagen", err)
	}

	fmt.Println()
	fmt.Printf("Ziel:       %s (ganzzahlig: %s)\n", p.Sprint(data.Target), yesNo(datax.IsIntegral(data.Target)))
	fmt.Printf("Enthalten:  %s (rtol %g)\n", yesNo(contained), settings.RelTol)
	fmt.Printf("Nächster:   %s bei %v (Schranke: %s)\n", p.Sprint(near.Value), near.Index, bound)
	return nil
}

// loadDataFile decodes path by extension. JSON integers stay integers.
func loadDataFile(path string) (*dataFile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var data dataFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(content, &data)
	case ".toml":
		_, err = toml.Decode(string(content), &data)
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(content))
		dec.UseNumber()
		if err = dec.Decode(&data); err == nil {
			data.Values = fromJSONNumbers(data.Values)
			data.Target = fromJSONNumbers(data.Target)
		}
	default:
		return nil, numerrors.InvalidInput("cmd", "inspect", ext, ".yaml, .yml, .toml or .json")
	}
	if err != nil {
		return nil, err
	}
	if data.Values == nil {
		return nil, numerrors.InvalidInput("cmd", "inspect", path, `a "values" entry`)
	}
	return &data, nil
}

func fromJSONNumbers(v any) any {
	switch x := v.(type) {
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return int(i)
		}
		if f, err := x.Float64(); err == nil {
			return f
		}
		return x.String()
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = fromJSONNumbers(e)
		}
		return out
	}
	return v
}

func yesNo(b bool) string {
	if b {
		return "ja"
	}
	return "nein"
}
