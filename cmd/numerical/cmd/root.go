package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/msto63/numerical/foundation/core/config"
	numerror "github.com/msto63/numerical/foundation/core/error"
	numlog "github.com/msto63/numerical/foundation/core/log"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
	debug   bool

	settings = DefaultSettings()
	logger   = numlog.GetDefault()

	errOut io.Writer = os.Stderr
)

var rootCmd = &cobra.Command{
	Use:   "numerical",
	Short: "numerical - Numerische Größen und Operator-Protokolle",
	Long: `numerical wertet Ausdrücke über numerischen Größen aus.

Zahlen werden in Quantity-Typen verpackt (real, value, decimal,
sequence). Operatoren werden über das Operator-Protokoll aufgelöst:
zuerst die Methode des linken Operanden, dann die gespiegelte Methode
des rechten, zuletzt die Operation auf den Rohwerten.

Befehle:
  ops      - Operator-Katalog anzeigen
  eval     - Ausdruck auswerten
  caps     - Fähigkeiten eines Werts anzeigen
  inspect  - Datendatei untersuchen
  repl     - Interaktive Auswertung`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command. Errors a command has not reported
// itself, such as unknown flags or missing arguments, are printed here.
func Execute() error {
	err := rootCmd.Execute()
	var reported *reportedError
	if err != nil && !errors.As(err, &reported) {
		fmt.Fprintf(errOut, "Fehler: %v\n", err)
		fmt.Fprintln(errOut, "Hilfe: numerical <befehl> --help")
	}
	return err
}

// ExitCode maps an error to the process exit status
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return numerror.GetCode(err).ExitCode()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (default: ./numerical.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Debug-Ausgabe und Repr-Darstellung")
}

// setup loads the settings and configures the default logger
func setup(cmd *cobra.Command, args []string) error {
	options := config.DefaultDiscoveryOptions()

	source := cfgFile
	var err error
	if cfgFile != "" {
		err = config.LoadWithOptions(cfgFile, &settings, config.LoadOptions{EnvPrefix: options.EnvPrefix})
	} else {
		source, err = config.Discover(&settings, options)
	}
	if err != nil {
		return reportError("Konfiguration ungültig", err)
	}

	level, err := numlog.ParseLevel(settings.LogLevel)
	if err != nil {
		return err
	}
	switch {
	case debug:
		level = numlog.LevelDebug
	case verbose && level > numlog.LevelInfo:
		level = numlog.LevelInfo
	}

	format, err := numlog.ParseFormat(settings.LogFormat)
	if err != nil {
		return err
	}

	logger = numlog.NewWithConfig(numlog.Config{
		Level:  level,
		Format: format,
		Output: os.Stderr,
		Name:   "numerical",
	}).WithCorrelationID(uuid.NewString())
	numlog.SetDefault(logger)

	logger.Debug("settings loaded", numlog.Fields{
		"source":  source,
		"command": cmd.Name(),
		"kind":    settings.Kind,
		"locale":  settings.Locale,
	})
	return nil
}

// reportedError marks an error whose message was already printed
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// reportError prints err with context and marks it as reported
func reportError(msg string, err error) error {
	fmt.Fprintf(errOut, "Fehler: %s: %v\n", msg, err)
	return &reportedError{err: err}
}
