package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/asymptotix/internal/tui"
)

var (
	cfgFile   string
	verbose   bool
	logFormat string

	// app is set up before every subcommand runs
	app *appContext
)

var rootCmd = &cobra.Command{
	Use:   "asymp",
	Short: "asymptotix - Rechnen mit asymptotischen Entwicklungen",
	Long: `asymptotix rechnet mit Zwei-Term-Entwicklungen A·ε^α + B·ε^β
und logarithmischen Entwicklungen α·log(ε) + c.

Befehle:
  eval     - Ausdruck auswerten
  run      - Arbeitsblatt (YAML/TOML) prüfen
  store    - Benannte Ausdrücke verwalten
  tui      - Interaktiver Rechner
  version  - Version anzeigen

Konfiguration: asymp.toml, asymp.yaml oder config.toml im Arbeitsverzeichnis
bzw. im Benutzerverzeichnis; Umgebungsvariablen ASYMP_* überschreiben Werte.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		a, err := newAppContext()
		if err != nil {
			return err
		}
		app = a
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (default: ./asymp.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log-Format: text, json, console, logfmt")
}

func printError(msg string, err error) {
	fmt.Fprintln(os.Stderr, tui.RenderError(fmt.Sprintf("%s: %v", msg, err)))
}
