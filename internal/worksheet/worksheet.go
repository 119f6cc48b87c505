package worksheet

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/msto63/asymptotix/foundation/core/config"
	mdwerror "github.com/msto63/asymptotix/foundation/core/error"
	"github.com/msto63/asymptotix/foundation/core/errors"
	mdwlog "github.com/msto63/asymptotix/foundation/core/log"
	"github.com/msto63/asymptotix/foundation/expr"
	"github.com/msto63/asymptotix/foundation/utils/asympx"
)

const module = errors.ModuleWorksheet

// Tolerance overrides parts of the run tolerance; zero fields inherit
type Tolerance struct {
	Abs float64 `yaml:"abs" toml:"abs"`
	Rel float64 `yaml:"rel" toml:"rel"`
}

// Definition binds a name for the checks that follow
type Definition struct {
	Name string `yaml:"name" toml:"name"`
	Expr string `yaml:"expr" toml:"expr"`
}

// Check compares an expression with an expected expression, or expects it
// to fail with a given error code.
type Check struct {
	Name      string     `yaml:"name" toml:"name"`
	Expr      string     `yaml:"expr" toml:"expr"`
	Expect    string     `yaml:"expect" toml:"expect"`
	Error     string     `yaml:"error" toml:"error"`
	At        *float64   `yaml:"at" toml:"at"`
	Tolerance *Tolerance `yaml:"tolerance" toml:"tolerance"`
}

// Worksheet is a batch of definitions and checks
type Worksheet struct {
	Title       string       `yaml:"title" toml:"title"`
	Tolerance   *Tolerance   `yaml:"tolerance" toml:"tolerance"`
	Definitions []Definition `yaml:"definitions" toml:"definitions"`
	Checks      []Check      `yaml:"checks" toml:"checks"`

	path string
}

// Path returns the file the worksheet was loaded from, if any
func (w *Worksheet) Path() string { return w.path }

// Load reads a worksheet, detecting YAML or TOML from the extension
func Load(path string) (*Worksheet, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound(module, "load", path)
		}
		return nil, errors.OperationFailed(module, "load", mdwerror.CodeInternal, err)
	}
	w, err := Parse(content, config.DetectFormat(path))
	if err != nil {
		return nil, err
	}
	w.path = path
	return w, nil
}

// Parse decodes a worksheet and checks that every entry is complete
func Parse(content []byte, format config.Format) (*Worksheet, error) {
	var w Worksheet
	switch format {
	case config.FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(content))
		dec.KnownFields(true)
		if err := dec.Decode(&w); err != nil && err != io.EOF {
			return nil, formatError("yaml", err)
		}
	case config.FormatTOML:
		md, err := toml.Decode(string(content), &w)
		if err != nil {
			return nil, formatError("toml", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, formatError("toml", fmt.Errorf("unknown keys %v", undecoded))
		}
	default:
		return nil, errors.InvalidInput(module, "parse", format.String(), "yaml or toml")
	}
	if err := w.validate(); err != nil {
		return nil, err
	}
	return &w, nil
}

func formatError(format string, cause error) error {
	return errors.NewErrorBuilder(module).
		Operation("parse").
		Messagef("worksheet.parse: invalid %s: %v", format, cause).
		Cause(cause).
		Kind(mdwerror.CodeInvalidFormat).
		Build()
}

func (w *Worksheet) validate() error {
	for i, d := range w.Definitions {
		if !expr.IsValidIdentifier(d.Name) || expr.IsReserved(d.Name) {
			return errors.InvalidInput(module, "validate", fmt.Sprintf("definitions[%d].name=%q", i, d.Name), "non-reserved identifier")
		}
		if strings.TrimSpace(d.Expr) == "" {
			return errors.InvalidInput(module, "validate", fmt.Sprintf("definitions[%d].expr", i), "expression")
		}
	}
	for i, c := range w.Checks {
		if strings.TrimSpace(c.Expr) == "" {
			return errors.InvalidInput(module, "validate", fmt.Sprintf("checks[%d].expr", i), "expression")
		}
		if (c.Expect == "") == (c.Error == "") {
			return errors.InvalidInput(module, "validate", fmt.Sprintf("checks[%d]", i), "exactly one of expect or error")
		}
	}
	return nil
}

// Options configures a run
type Options struct {
	Logger    *mdwlog.Logger
	Tolerance asympx.Tolerance
	// LogTolerance overrides the threshold of log when positive
	LogTolerance float64
	// Resolver supplies names not defined by the worksheet, e.g. the store
	Resolver expr.Resolver
}

// CheckResult is the outcome of one check
type CheckResult struct {
	Name     string
	Expr     string
	Got      string
	Want     string
	Passed   bool
	Err      error
	Duration time.Duration
}

// Report summarizes a run
type Report struct {
	Title   string
	Results []CheckResult
	Passed  int
	Failed  int
}

// OK reports whether every check passed
func (r *Report) OK() bool { return r.Failed == 0 }

// Summary returns a one-line result count
func (r *Report) Summary() string {
	return fmt.Sprintf("%d/%d checks passed", r.Passed, r.Passed+r.Failed)
}

// Run evaluates the definitions in order and then every check. A failing
// definition aborts the run; failing checks are collected in the report.
func Run(w *Worksheet, opts Options) (*Report, error) {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.Tolerance == (asympx.Tolerance{}) {
		opts.Tolerance = asympx.DefaultTolerance()
	}
	logger := opts.Logger.WithComponent(module)
	timer := logger.StartTimer("worksheet.run")

	scope := expr.NewScope()
	ev := expr.NewEvaluator(expr.Options{
		Logger:       opts.Logger,
		Resolver:     expr.Chain(scope, opts.Resolver),
		LogTolerance: opts.LogTolerance,
	})

	for _, d := range w.Definitions {
		v, err := ev.EvaluateString(d.Expr)
		if err != nil {
			timer.StopWithError(err)
			return nil, errors.NewErrorBuilder(module).
				Operation("define").
				Messagef("worksheet.define: %s: %v", d.Name, err).
				Cause(err).
				Kind(mdwerror.CodeInvalidInput).
				Detail("name", d.Name).
				Build()
		}
		if err := scope.Set(d.Name, v); err != nil {
			timer.StopWithError(err)
			return nil, err
		}
		logger.Debug("Defined", mdwlog.Fields{"name": d.Name, "value": v.String()})
	}

	tol := opts.Tolerance
	if w.Tolerance != nil {
		tol = merge(tol, *w.Tolerance)
	}

	report := &Report{Title: w.Title}
	for i, c := range w.Checks {
		res := runCheck(ev, c, tol)
		if res.Name == "" {
			res.Name = fmt.Sprintf("check %d", i+1)
		}
		if res.Passed {
			report.Passed++
		} else {
			report.Failed++
			logger.Info("Check failed", mdwlog.Fields{"check": res.Name, "got": res.Got, "want": res.Want})
		}
		report.Results = append(report.Results, res)
	}

	timer.WithField("passed", report.Passed).WithField("failed", report.Failed).Stop()
	return report, nil
}

func runCheck(ev *expr.Evaluator, c Check, tol asympx.Tolerance) (res CheckResult) {
	start := time.Now()
	res = CheckResult{Name: c.Name, Expr: c.Expr}
	defer func() { res.Duration = time.Since(start) }()

	if c.Tolerance != nil {
		tol = merge(tol, *c.Tolerance)
	}

	got, err := ev.EvaluateString(c.Expr)
	if c.Error != "" {
		res.Want = "error " + c.Error
		if err == nil {
			res.Got = got.String()
			return res
		}
		code := string(mdwerror.GetCode(err))
		res.Got = "error " + code
		res.Passed = code == c.Error || errors.IsKind(err, mdwerror.Code(c.Error))
		if !res.Passed {
			res.Err = err
		}
		return res
	}

	if err != nil {
		res.Err = err
		res.Got = "error " + string(mdwerror.GetCode(err))
		res.Want = c.Expect
		return res
	}
	want, err := ev.EvaluateString(c.Expect)
	if err != nil {
		res.Err = err
		res.Got = got.String()
		res.Want = c.Expect
		return res
	}

	if c.At != nil {
		eps := complex(*c.At, 0)
		g, w := expr.Number(got.EvaluateAt(eps)), expr.Number(want.EvaluateAt(eps))
		res.Got, res.Want = g.String(), w.String()
		res.Passed = g.ApproxEqual(w, tol)
		return res
	}
	res.Got, res.Want = got.String(), want.String()
	res.Passed = got.ApproxEqual(want, tol)
	return res
}

func merge(base asympx.Tolerance, override Tolerance) asympx.Tolerance {
	if override.Abs != 0 {
		base.Abs = override.Abs
	}
	if override.Rel != 0 {
		base.Rel = override.Rel
	}
	return base
}
