package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/asymptotix/foundation/core/error"
	"github.com/msto63/asymptotix/foundation/core/errors"
	"github.com/msto63/asymptotix/foundation/expr"
	"github.com/msto63/asymptotix/internal/store"
	"github.com/msto63/asymptotix/internal/tui"
	"github.com/msto63/asymptotix/internal/worksheet"
)

var (
	runNoStore bool
	runQuiet   bool
)

var runCmd = &cobra.Command{
	Use:   "run <datei>",
	Short: "Arbeitsblatt prüfen",
	Long: `Lädt ein Arbeitsblatt (YAML oder TOML), wertet die Definitionen aus
und prüft alle Checks. Der Exit-Code ist 1, wenn ein Check fehlschlägt.

Beispiel (YAML):
  title: Singuläre Zweige
  definitions:
    - name: x
      expr: pe(0, 4, 2, 3)
  checks:
    - expr: sqrt(x)
      expect: pe(2, 0, 1, inf)
    - expr: log(pe(0.5, 1, 0, 1))
      error: DOMAIN_ERROR`,
	Args: cobra.ExactArgs(1),
	RunE: runWorksheet,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVar(&runNoStore, "no-store", false, "Ohne gespeicherte Definitionen")
	runCmd.Flags().BoolVarP(&runQuiet, "quiet", "q", false, "Nur fehlgeschlagene Checks ausgeben")
}

func runWorksheet(cmd *cobra.Command, args []string) error {
	w, err := worksheet.Load(args[0])
	if err != nil {
		return err
	}

	resolver, done, err := resolverFor(context.Background(), runNoStore)
	if err != nil {
		return err
	}
	defer done()

	report, err := worksheet.Run(w, worksheet.Options{
		Logger:       app.logger,
		Tolerance:    app.tolerance,
		LogTolerance: app.logTolerance,
		Resolver:     resolver,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if report.Title != "" {
		fmt.Fprintln(out, tui.RenderTitle(report.Title))
	}
	for _, r := range report.Results {
		if runQuiet && r.Passed {
			continue
		}
		fmt.Fprintf(out, "  %s %s\n", tui.RenderCheck(r.Passed), r.Name)
		if !r.Passed {
			fmt.Fprintf(out, "      Ausdruck: %s\n", r.Expr)
			fmt.Fprintf(out, "      Ergebnis: %s\n", r.Got)
			fmt.Fprintf(out, "      Erwartet: %s\n", r.Want)
		}
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, tui.BoxStyle.Render(report.Summary()))

	if !report.OK() {
		return errors.NewErrorBuilder(errors.ModuleCLI).
			Operation("run").
			Messagef("%s: %s", w.Path(), report.Summary()).
			Kind(mdwerror.CodeValidationFailed).
			Detail("failed", report.Failed).
			Build()
	}
	return nil
}

// resolverFor opens the store unless noStore is set; done closes it
func resolverFor(ctx context.Context, noStore bool) (expr.Resolver, func(), error) {
	if noStore {
		return nil, func() {}, nil
	}
	st, err := app.openStore()
	if err != nil {
		return nil, nil, err
	}
	return store.NewResolver(ctx, st, store.ResolverOptions{
		Logger:       app.logger,
		LogTolerance: app.logTolerance,
	}), func() { st.Close() }, nil
}
