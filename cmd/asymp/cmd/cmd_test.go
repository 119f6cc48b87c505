package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/msto63/asymptotix/foundation/core/config"
	mdwerror "github.com/msto63/asymptotix/foundation/core/error"
	"github.com/msto63/asymptotix/foundation/core/errors"
)

// writeConfig creates a config file pointing the store into a temp directory
func writeConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "asymp.toml")
	content := fmt.Sprintf("[store]\npath = %q\n\n[log]\nlevel = \"off\"\n", filepath.Join(dir, "asymp.db"))
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	evalJSON, evalNoStore, runNoStore, runQuiet = false, false, false, false
	storeNote = ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestConfigDefaultsAreValid(t *testing.T) {
	cfg := config.FromDefaults(envPrefix, configDefaults())
	if res := cfg.Validate(configRules()); !res.Valid {
		t.Fatalf("Defaults invalid: %v", res.Errors)
	}
}

func TestConfigRejectsBadValues(t *testing.T) {
	cfg, err := config.LoadFromString("[tolerance]\nrel = 2.0\n\n[log]\nlevel = \"loud\"\n", config.FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString() error = %v", err)
	}
	res := cfg.Validate(configRules())
	// tolerance.rel, log.level and the missing store.path
	if res.Valid || len(res.Errors) != 3 {
		t.Errorf("Validate() = %+v", res)
	}
	if !mdwerror.HasCode(res.Err(), mdwerror.CodeInvalidConfig) {
		t.Errorf("Err() = %v", res.Err())
	}
}

func TestEnvironmentOverride(t *testing.T) {
	cfgFile = writeConfig(t)
	t.Cleanup(func() { cfgFile = "" })

	t.Setenv("ASYMP_TOLERANCE_REL", "1e-6")
	a, err := newAppContext()
	if err != nil {
		t.Fatalf("newAppContext() error = %v", err)
	}
	if a.tolerance.Rel != 1e-6 {
		t.Errorf("tolerance.rel = %v, want 1e-6", a.tolerance.Rel)
	}

	t.Setenv("ASYMP_TOLERANCE_REL", "5")
	if _, err := newAppContext(); err == nil {
		t.Error("Expected validation error for tolerance.rel = 5")
	}
}

func TestConfigRejectsZeroTolerances(t *testing.T) {
	t.Cleanup(func() { cfgFile = "" })

	tests := []struct {
		name string
		env  map[string]string
	}{
		{"log tolerance", map[string]string{"ASYMP_TOLERANCE_LOG": "0"}},
		{"comparison tolerance", map[string]string{"ASYMP_TOLERANCE_ABS": "0", "ASYMP_TOLERANCE_REL": "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfgFile = writeConfig(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := newAppContext()
			if !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) && !errors.IsKind(err, mdwerror.CodeInvalidConfig) {
				t.Errorf("Expected invalid configuration, got %v", err)
			}
		})
	}

	cfgFile = writeConfig(t)
	t.Setenv("ASYMP_TOLERANCE_ABS", "0")
	t.Setenv("ASYMP_TOLERANCE_REL", "1e-6")
	if _, err := newAppContext(); err != nil {
		t.Errorf("A zero absolute tolerance alone is valid, got %v", err)
	}
}

func TestTUIHistoryLimit(t *testing.T) {
	cfgFile = writeConfig(t)
	t.Cleanup(func() { cfgFile = "" })

	a, err := newAppContext()
	if err != nil {
		t.Fatalf("newAppContext() error = %v", err)
	}
	if a.tuiHistory != 100 {
		t.Errorf("tui.history = %d, want 100", a.tuiHistory)
	}

	t.Setenv("ASYMP_TUI_HISTORY", "25")
	if a, err = newAppContext(); err != nil || a.tuiHistory != 25 {
		t.Errorf("tui.history = %v, %v; want 25", a, err)
	}
}

func TestEvalStoredLogUsesConfiguredTolerance(t *testing.T) {
	cfg := writeConfig(t)
	if _, err := execute(t, "--config", cfg, "store", "set", "x", "log(pe(1e-10, 1, 1, 2))"); err != nil {
		t.Fatalf("store set error = %v", err)
	}

	if _, err := execute(t, "--config", cfg, "eval", "x"); !errors.IsKind(err, mdwerror.CodeDomainError) {
		t.Fatalf("Expected domain error with the default tolerance, got %v", err)
	}

	t.Setenv("ASYMP_TOLERANCE_LOG", "1e-9")
	out, err := execute(t, "--config", cfg, "eval", "--json", "x")
	if err != nil {
		t.Fatalf("eval error = %v", err)
	}
	var res evalResult
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("Invalid JSON %q: %v", out, err)
	}
	if res.Kind != "log expansion" || res.Exponent != "1" || res.Constant != "0" {
		t.Errorf("Unexpected result %+v", res)
	}
}

func TestEvalJSON(t *testing.T) {
	out, err := execute(t, "--config", writeConfig(t), "eval", "--json", "sqrt(pe(0, 4, 2, 3))")
	if err != nil {
		t.Fatalf("eval error = %v", err)
	}
	var res evalResult
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("Invalid JSON %q: %v", out, err)
	}
	if res.Kind != "expansion" || res.A != "2" || res.Alpha != "1" || res.Beta != "+Inf" {
		t.Errorf("Unexpected result %+v", res)
	}
}

func TestEvalError(t *testing.T) {
	_, err := execute(t, "--config", writeConfig(t), "eval", "--no-store", "nope + 1")
	if !errors.IsKind(err, mdwerror.CodeUnknownSymbol) {
		t.Errorf("Expected unknown symbol, got %v", err)
	}
}

func TestStoreAndRun(t *testing.T) {
	cfg := writeConfig(t)

	if _, err := execute(t, "--config", cfg, "store", "set", "x", "pe(0,", "4,", "2,", "3)"); err != nil {
		t.Fatalf("store set error = %v", err)
	}
	out, err := execute(t, "--config", cfg, "store", "get", "x")
	if err != nil || !strings.Contains(out, "x = pe(0, 4, 2, 3)") {
		t.Fatalf("store get = %q, %v", out, err)
	}

	sheet := filepath.Join(t.TempDir(), "sheet.yaml")
	content := "title: Store\nchecks:\n  - expr: sqrt(x)\n    expect: pe(2, 0, 1, inf)\n"
	if err := os.WriteFile(sheet, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	out, err = execute(t, "--config", cfg, "run", sheet)
	if err != nil || !strings.Contains(out, "1/1 checks passed") {
		t.Fatalf("run = %q, %v", out, err)
	}

	_, err = execute(t, "--config", cfg, "run", "--no-store", sheet)
	if !errors.IsKind(err, mdwerror.CodeValidationFailed) {
		t.Errorf("Expected failing run without the store, got %v", err)
	}

	if _, err := execute(t, "--config", cfg, "store", "rm", "x"); err != nil {
		t.Fatalf("store rm error = %v", err)
	}
	_, err = execute(t, "--config", cfg, "store", "rm", "x")
	if !errors.IsKind(err, mdwerror.CodeNotFound) {
		t.Errorf("Expected NOT_FOUND, got %v", err)
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil || !strings.Contains(out, "asymptotix v"+Version) {
		t.Errorf("version = %q, %v", out, err)
	}
}
