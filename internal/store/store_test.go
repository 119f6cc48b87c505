package store

import (
	"context"
	"path/filepath"
	"testing"

	mdwerror "github.com/msto63/asymptotix/foundation/core/error"
	"github.com/msto63/asymptotix/foundation/core/errors"
	mdwlog "github.com/msto63/asymptotix/foundation/core/log"
	"github.com/msto63/asymptotix/foundation/expr"
	"github.com/msto63/asymptotix/foundation/utils/asympx"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(Config{
		Path:   filepath.Join(t.TempDir(), "nested", "test.db"),
		Logger: mdwlog.Discard(),
	})
	if err != nil {
		t.Fatalf("NewSQLiteStore() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPutGetListDelete(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	first, err := s.Put(ctx, "x", "pe(1, 1, 0, 1)", "pair")
	if err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if first.ID == "" {
		t.Error("Expected generated ID")
	}

	updated, err := s.Put(ctx, "x", "pe(2, 1, 0, 1)", "")
	if err != nil {
		t.Fatalf("Put() update error = %v", err)
	}
	if updated.ID != first.ID {
		t.Errorf("Expected ID %s to survive update, got %s", first.ID, updated.ID)
	}

	if _, err := s.Put(ctx, "a", "x * 2", ""); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got, err := s.Get(ctx, "x")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got == nil || got.Expression != "pe(2, 1, 0, 1)" {
		t.Fatalf("Get() = %+v", got)
	}

	missing, err := s.Get(ctx, "nope")
	if err != nil || missing != nil {
		t.Errorf("Get(missing) = %v, %v; want nil, nil", missing, err)
	}

	defs, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(defs) != 2 || defs[0].Name != "a" || defs[1].Name != "x" {
		t.Errorf("List() returned %d definitions in unexpected order", len(defs))
	}

	if err := s.Delete(ctx, "a"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	err = s.Delete(ctx, "a")
	if !errors.IsKind(err, mdwerror.CodeNotFound) {
		t.Errorf("Delete(missing) error = %v, want NOT_FOUND", err)
	}
}

func TestPutValidation(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	tests := []struct {
		name       string
		defName    string
		expression string
		code       mdwerror.Code
	}{
		{"Invalid name", "1x", "1", errors.ModuleCode(errors.ModuleStore, mdwerror.CodeInvalidInput)},
		{"Reserved name", "sqrt", "1", errors.ModuleCode(errors.ModuleStore, mdwerror.CodeInvalidInput)},
		{"Syntax error", "y", "1 +", errors.CodeExprSyntax},
		{"Self reference", "y", "y + 1", errors.CodeStoreCyclicRef},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Put(ctx, tt.defName, tt.expression, "")
			if !mdwerror.HasCode(err, tt.code) {
				t.Errorf("Put() error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestResolver(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	mustPut := func(name, expression string) {
		if _, err := s.Put(ctx, name, expression, ""); err != nil {
			t.Fatalf("Put(%s) error = %v", name, err)
		}
	}
	mustPut("x", "pe(1, 1, 0, 1)")
	mustPut("y", "x * x")
	mustPut("z", "y - 1")

	r := NewResolver(ctx, s, ResolverOptions{Logger: mdwlog.Discard()})
	v, err := expr.NewEvaluator(expr.Options{Logger: mdwlog.Discard(), Resolver: r}).EvaluateString("z")
	if err != nil {
		t.Fatalf("EvaluateString() error = %v", err)
	}
	pe, ok := v.Expansion()
	if !ok {
		t.Fatalf("Expected expansion, got %s", v)
	}
	// x*x = 1 + 2ε, so the constant cancels and 2ε is left
	want := asympx.MustNew[complex128](0, 2, 0, 1)
	if !pe.ApproxEqual(want) {
		t.Errorf("Expected %s, got %s", want, pe)
	}

	if _, ok, err := r.Resolve("unknown"); ok || err != nil {
		t.Errorf("Resolve(unknown) = %v, %v", ok, err)
	}

	deps, err := Dependencies(&Definition{Expression: "y * z + pi"})
	if err != nil || len(deps) != 2 || deps[0] != "y" || deps[1] != "z" {
		t.Errorf("Dependencies() = %v, %v", deps, err)
	}
}

func TestResolverLogTolerance(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	if _, err := s.Put(ctx, "x", "log(pe(1e-10, 1, 1, 2))", ""); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	_, err := expr.Eval("x", NewResolver(ctx, s, ResolverOptions{Logger: mdwlog.Discard()}))
	if !errors.IsKind(err, mdwerror.CodeDomainError) {
		t.Fatalf("Expected domain error with the default tolerance, got %v", err)
	}

	r := NewResolver(ctx, s, ResolverOptions{Logger: mdwlog.Discard(), LogTolerance: 1e-8})
	v, err := expr.Eval("x", r)
	if err != nil {
		t.Fatalf("Eval() error = %v", err)
	}
	if l, ok := v.Log(); !ok || l.Exponent() != 1 || l.Constant() != 0 {
		t.Errorf("Expected 1·log(ε) + 0, got %s", v)
	}
}

func TestResolverCycle(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	for name, e := range map[string]string{"a": "b + 1", "b": "c * 2", "c": "a"} {
		if _, err := s.Put(ctx, name, e, ""); err != nil {
			t.Fatalf("Put(%s) error = %v", name, err)
		}
	}

	_, err := expr.Eval("a", NewResolver(ctx, s, ResolverOptions{Logger: mdwlog.Discard()}))
	if !mdwerror.HasCode(err, errors.CodeStoreCyclicRef) {
		t.Fatalf("Expected cyclic reference error, got %v", err)
	}
	e, _ := err.(*mdwerror.Error)
	path, _ := e.Detail("path")
	if p, ok := path.([]string); !ok || len(p) != 4 || p[0] != "a" || p[3] != "a" {
		t.Errorf("Unexpected cycle path %v", path)
	}
}

func TestHistory(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	inputs := []string{"1 + 1", "sqrt(pe(0, 4, 2, 3))", "bad("}
	for i, in := range inputs {
		if err := s.AddHistory(ctx, &HistoryEntry{SessionID: "s1", Input: in, Result: "r", Failed: i == 2}); err != nil {
			t.Fatalf("AddHistory() error = %v", err)
		}
	}

	last, err := s.History(ctx, 2)
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(last) != 2 || last[0].Input != inputs[1] || last[1].Input != inputs[2] || !last[1].Failed {
		t.Errorf("History(2) returned unexpected entries")
	}

	all, err := s.History(ctx, 0)
	if err != nil || len(all) != 3 {
		t.Errorf("History(0) = %d entries, %v", len(all), err)
	}

	stats, err := s.Statistics(ctx)
	if err != nil {
		t.Fatalf("Statistics() error = %v", err)
	}
	if stats["total_history"] != int64(3) || stats["total_sessions"] != int64(1) {
		t.Errorf("Statistics() = %v", stats)
	}
}

func TestNewSQLiteStoreRequiresPath(t *testing.T) {
	if _, err := NewSQLiteStore(Config{Logger: mdwlog.Discard()}); err == nil {
		t.Error("Expected error for empty path")
	}
}
