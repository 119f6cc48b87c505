package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/asymptotix/foundation/expr"
	"github.com/msto63/asymptotix/internal/tui"
)

var (
	evalEpsilon float64
	evalJSON    bool
	evalNoStore bool
)

var evalCmd = &cobra.Command{
	Use:   "eval <ausdruck>",
	Short: "Ausdruck auswerten",
	Long: `Wertet einen Ausdruck aus. Namen werden aus dem Speicher aufgelöst.

Beispiele:
  asymp eval "sqrt(pe(0, 4, 2, 3))"
  asymp eval "log(pe(0, 2, 1, 2))"
  asymp eval --eps 0.01 "exp(dual(0, 1))"
  asymp eval --json "x * x"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)

	evalCmd.Flags().Float64Var(&evalEpsilon, "eps", 0, "Zusätzlich bei diesem ε auswerten (default: eval.epsilon)")
	evalCmd.Flags().BoolVar(&evalJSON, "json", false, "Ausgabe als JSON")
	evalCmd.Flags().BoolVar(&evalNoStore, "no-store", false, "Ohne gespeicherte Definitionen")
}

// evalResult is the JSON shape of an evaluated expression. Numbers are
// rendered as strings so that infinite exponents survive encoding.
type evalResult struct {
	Input string `json:"input"`
	Kind  string `json:"kind"`
	Value string `json:"value"`

	A     string `json:"a,omitempty"`
	B     string `json:"b,omitempty"`
	Alpha string `json:"alpha,omitempty"`
	Beta  string `json:"beta,omitempty"`

	Exponent string `json:"exponent,omitempty"`
	Constant string `json:"constant,omitempty"`

	Epsilon string `json:"epsilon,omitempty"`
	At      string `json:"at,omitempty"`
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func newEvalResult(input string, v expr.Value, eps float64) evalResult {
	res := evalResult{Input: input, Kind: v.Kind().String(), Value: v.String()}
	switch v.Kind() {
	case expr.KindExpansion:
		pe, _ := v.Expansion()
		res.A, res.B = expr.FormatNumber(pe.A()), expr.FormatNumber(pe.B())
		res.Alpha, res.Beta = formatFloat(pe.Alpha()), formatFloat(pe.Beta())
	case expr.KindLog:
		l, _ := v.Log()
		res.Exponent, res.Constant = formatFloat(l.Exponent()), expr.FormatNumber(l.Constant())
	}
	if eps > 0 {
		res.Epsilon = formatFloat(eps)
		res.At = expr.FormatNumber(v.EvaluateAt(complex(eps, 0)))
	}
	return res
}

func runEval(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	input := strings.Join(args, " ")

	resolver, done, err := resolverFor(ctx, evalNoStore)
	if err != nil {
		return err
	}
	defer done()

	ev := expr.NewEvaluator(expr.Options{
		Logger:       app.logger,
		Resolver:     resolver,
		LogTolerance: app.logTolerance,
	})
	v, err := ev.EvaluateString(input)
	if err != nil {
		return err
	}

	eps := app.epsilon
	if cmd.Flags().Changed("eps") {
		eps = evalEpsilon
	}
	res := newEvalResult(input, v, eps)

	out := cmd.OutOrStdout()
	if evalJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	fmt.Fprintln(out, tui.RenderResult(res.Kind, res.Value))
	if res.At != "" {
		fmt.Fprintf(out, "  bei ε = %s: %s\n", res.Epsilon, res.At)
	}
	return nil
}
