package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/msto63/asymptotix/foundation/core/errors"
	"github.com/msto63/asymptotix/foundation/expr"
	"github.com/msto63/asymptotix/internal/store"
	"github.com/msto63/asymptotix/internal/tui"
)

var (
	storeNote         string
	storeHistoryLimit int
)

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Benannte Ausdrücke verwalten",
	Long: `Verwaltet benannte Ausdrücke in der SQLite-Datenbank (store.path).
Gespeicherte Namen stehen in eval, run und tui zur Verfügung.

Beispiele:
  asymp store set x "pe(0, 4, 2, 3)" --note "Testwert"
  asymp store set y "sqrt(x)"
  asymp store get y
  asymp store list
  asymp store rm x`,
}

var storeSetCmd = &cobra.Command{
	Use:   "set <name> <ausdruck>",
	Short: "Ausdruck speichern oder ersetzen",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runStoreSet,
}

var storeGetCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Gespeicherten Ausdruck anzeigen und auswerten",
	Args:  cobra.ExactArgs(1),
	RunE:  runStoreGet,
}

var storeListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Alle gespeicherten Ausdrücke auflisten",
	Args:    cobra.NoArgs,
	RunE:    runStoreList,
}

var storeRmCmd = &cobra.Command{
	Use:     "rm <name>",
	Aliases: []string{"delete"},
	Short:   "Gespeicherten Ausdruck löschen",
	Args:    cobra.ExactArgs(1),
	RunE:    runStoreRm,
}

var storeHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Verlauf der TUI-Sitzungen anzeigen",
	Args:  cobra.NoArgs,
	RunE:  runStoreHistory,
}

var storeStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Statistik der Datenbank",
	Args:  cobra.NoArgs,
	RunE:  runStoreStats,
}

func init() {
	rootCmd.AddCommand(storeCmd)
	storeCmd.AddCommand(storeSetCmd, storeGetCmd, storeListCmd, storeRmCmd, storeHistoryCmd, storeStatsCmd)

	storeSetCmd.Flags().StringVarP(&storeNote, "note", "n", "", "Notiz zum Ausdruck")
	storeHistoryCmd.Flags().IntVarP(&storeHistoryLimit, "limit", "l", 20, "Anzahl Einträge (0 = alle)")
}

func withStore(fn func(ctx context.Context, st *store.SQLiteStore) error) error {
	st, err := app.openStore()
	if err != nil {
		return err
	}
	defer st.Close()
	return fn(context.Background(), st)
}

func runStoreSet(cmd *cobra.Command, args []string) error {
	return withStore(func(ctx context.Context, st *store.SQLiteStore) error {
		def, err := st.Put(ctx, args[0], strings.Join(args[1:], " "), storeNote)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Gespeichert: %s = %s\n", def.Name, def.Expression)
		return nil
	})
}

func runStoreGet(cmd *cobra.Command, args []string) error {
	return withStore(func(ctx context.Context, st *store.SQLiteStore) error {
		def, err := st.Get(ctx, args[0])
		if err != nil {
			return err
		}
		if def == nil {
			return errors.NotFound(errors.ModuleStore, "get", args[0])
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s = %s\n", def.Name, def.Expression)
		if def.Note != "" {
			fmt.Fprintf(out, "  Notiz:        %s\n", def.Note)
		}
		if deps, err := store.Dependencies(def); err == nil && len(deps) > 0 {
			fmt.Fprintf(out, "  Abhängig von: %s\n", strings.Join(deps, ", "))
		}
		fmt.Fprintf(out, "  Geändert:     %s\n", def.UpdatedAt.Format("2006-01-02 15:04:05"))

		ev := expr.NewEvaluator(expr.Options{
			Logger:       app.logger,
			Resolver:     store.NewResolver(ctx, st, store.ResolverOptions{Logger: app.logger, LogTolerance: app.logTolerance}),
			LogTolerance: app.logTolerance,
		})
		v, err := ev.EvaluateString(def.Expression)
		if err != nil {
			printError("Auswertung fehlgeschlagen", err)
			return nil
		}
		fmt.Fprintf(out, "  Wert:         %s\n", tui.RenderResult(v.Kind().String(), v.String()))
		return nil
	})
}

func runStoreList(cmd *cobra.Command, args []string) error {
	return withStore(func(ctx context.Context, st *store.SQLiteStore) error {
		defs, err := st.List(ctx)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(defs) == 0 {
			fmt.Fprintln(out, "Keine gespeicherten Ausdrücke.")
			return nil
		}

		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(tui.HelpStyle).
			Headers("NAME", "AUSDRUCK", "NOTIZ")
		for _, d := range defs {
			t.Row(d.Name, d.Expression, d.Note)
		}
		fmt.Fprintln(out, t.String())
		return nil
	})
}

func runStoreRm(cmd *cobra.Command, args []string) error {
	return withStore(func(ctx context.Context, st *store.SQLiteStore) error {
		if err := st.Delete(ctx, args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Gelöscht: %s\n", args[0])
		return nil
	})
}

func runStoreHistory(cmd *cobra.Command, args []string) error {
	return withStore(func(ctx context.Context, st *store.SQLiteStore) error {
		entries, err := st.History(ctx, storeHistoryLimit)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, e := range entries {
			fmt.Fprintf(out, "%s %s %.8s  %s\n      %s\n",
				tui.RenderCheck(!e.Failed),
				e.CreatedAt.Format("2006-01-02 15:04:05"),
				e.SessionID,
				e.Input,
				e.Result)
		}
		return nil
	})
}

func runStoreStats(cmd *cobra.Command, args []string) error {
	return withStore(func(ctx context.Context, st *store.SQLiteStore) error {
		stats, err := st.Statistics(ctx)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Datenbank:    %s\n", app.storePath)
		fmt.Fprintf(out, "Definitionen: %v\n", stats["total_definitions"])
		fmt.Fprintf(out, "Verlauf:      %v\n", stats["total_history"])
		fmt.Fprintf(out, "Sitzungen:    %v\n", stats["total_sessions"])
		return nil
	})
}
