package cmd

import (
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/asymptotix/foundation/core/log"
	"github.com/msto63/asymptotix/internal/store"
	"github.com/msto63/asymptotix/internal/tui"
)

var tuiNoStore bool

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Startet den interaktiven Rechner",
	Long: `Startet den interaktiven Rechner im Terminal.

Eingaben:
  ausdruck              - Ausdruck auswerten
  let name = ausdruck   - Namen für diese Sitzung binden
  :vars                 - Bindungen der Sitzung
  :defs                 - Gespeicherte Ausdrücke
  :save name            - Bindung im Speicher ablegen
  :history              - Gespeicherter Verlauf
  :help                 - Funktionen und Konstanten

Navigation:
  Enter     - Auswerten
  ↑/↓       - Verlauf
  Ctrl+L    - Ausgabe leeren
  Ctrl+C    - Beenden

Mit --verbose wird nach tui.log neben der Datenbank protokolliert.`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)

	tuiCmd.Flags().BoolVar(&tuiNoStore, "no-store", false, "Ohne Datenbank (kein Verlauf, keine gespeicherten Namen)")
}

func runTUI(cmd *cobra.Command, args []string) error {
	sessionID := uuid.New().String()

	logger := mdwlog.Discard()
	if verbose {
		dir := filepath.Dir(app.storePath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
		f, err := os.OpenFile(filepath.Join(dir, "tui.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		logger = app.logger.WithOutput(f)
	}

	opts := tui.Options{
		Logger:       logger,
		LogTolerance: app.logTolerance,
		SessionID:    sessionID,
		HistoryLimit: app.tuiHistory,
	}
	if !tuiNoStore {
		st, err := store.NewSQLiteStore(store.Config{Path: app.storePath, Logger: logger})
		if err != nil {
			return err
		}
		defer st.Close()
		opts.Store = st
	}

	logger.Info("Session started", mdwlog.Fields{"session": sessionID, "store": !tuiNoStore})

	p := tea.NewProgram(
		tui.NewModel(opts),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		printError("TUI Fehler", err)
		return err
	}

	return nil
}
