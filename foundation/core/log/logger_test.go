// File: logger_test.go
// Title: Logger Tests
// Description: Tests for level filtering, context fields, error logging and
//              timers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive logger tests
// - 2026-10-17 v0.2.0: Component and severity mapping tests

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	mdwerror "github.com/msto63/asymptotix/foundation/core/error"
)

func newBufferLogger(level Level, format Format) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewWithConfig(Config{Level: level, Format: format, Output: &buf}), &buf
}

func TestNew(t *testing.T) {
	logger := New()
	if logger.GetLevel() != DefaultLevel() {
		t.Errorf("New() level = %v, want %v", logger.GetLevel(), DefaultLevel())
	}
	if logger.contextFields == nil {
		t.Error("New() should initialize context fields")
	}
}

func TestLevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn, FormatText)

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")
	logger.Error("shown too")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("messages below warn were written: %q", out)
	}
	if strings.Count(out, "\n") != 2 {
		t.Errorf("expected 2 lines, got %q", out)
	}
}

func TestLevelOff(t *testing.T) {
	logger, buf := newBufferLogger(LevelOff, FormatText)
	logger.Error("nothing")
	if buf.Len() != 0 {
		t.Errorf("LevelOff wrote %q", buf.String())
	}
}

func TestWithComponentAndFieldsAreImmutable(t *testing.T) {
	base, buf := newBufferLogger(LevelDebug, FormatJSON)
	child := base.WithComponent("expr").WithField("input", "pe(1,2,0,1)")

	base.Info("base")
	child.Info("child")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}

	var first, second map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal([]byte(lines[1]), &second); err != nil {
		t.Fatal(err)
	}

	if _, ok := first["component"]; ok {
		t.Error("parent logger picked up the child's component")
	}
	if second["component"] != "expr" || second["input"] != "pe(1,2,0,1)" {
		t.Errorf("child entry = %v", second)
	}
}

func TestLogErrorUsesSeverity(t *testing.T) {
	tests := []struct {
		severity mdwerror.Severity
		want     string
	}{
		{mdwerror.SeverityLow, "[INF]"},
		{mdwerror.SeverityMedium, "[WRN]"},
		{mdwerror.SeverityHigh, "[ERR]"},
		{mdwerror.SeverityCritical, "[ERR]"},
	}

	for _, tt := range tests {
		t.Run(tt.severity.String(), func(t *testing.T) {
			logger, buf := newBufferLogger(LevelTrace, FormatText)
			err := mdwerror.New("boom").
				WithCode(mdwerror.CodeDomainError).
				WithSeverity(tt.severity).
				WithDetail("value", 0.5)
			logger.LogError(err)

			out := buf.String()
			if !strings.Contains(out, tt.want) {
				t.Errorf("output %q lacks %s", out, tt.want)
			}
			if !strings.Contains(out, "error_value=0.5") {
				t.Errorf("output %q lacks detail field", out)
			}
			if !strings.Contains(out, "code=DOMAIN_ERROR") {
				t.Errorf("output %q lacks error code", out)
			}
		})
	}
}

func TestLogErrorPlain(t *testing.T) {
	logger, buf := newBufferLogger(LevelTrace, FormatText)
	logger.LogError(nil)
	if buf.Len() != 0 {
		t.Fatal("nil error must not be logged")
	}
	logger.LogError(errors.New("plain"))
	if !strings.Contains(buf.String(), "[ERR] plain") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestTimer(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatLogfmt)

	timer := logger.StartTimer("evaluate").WithField("expr", "x*y")
	if !timer.IsRunning() {
		t.Fatal("timer should be running")
	}
	timer.Stop()
	if timer.Stop() != 0 {
		t.Error("second Stop() should return 0")
	}

	out := buf.String()
	for _, want := range []string{`message="evaluate completed"`, `expr="x*y"`, "duration_ms="} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q lacks %s", out, want)
		}
	}
}

func TestTimerStopWithError(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn, FormatText)
	timer := logger.StartTimer("log")
	timer.StopWithError(errors.New("outside domain"))

	out := buf.String()
	if !strings.Contains(out, "log failed") || !strings.Contains(out, "success=false") {
		t.Errorf("output = %q", out)
	}
}

func TestTimerCancel(t *testing.T) {
	logger, buf := newBufferLogger(LevelTrace, FormatText)
	timer := logger.StartTimer("cancelled")
	timer.Cancel()
	timer.Stop()
	if buf.Len() != 0 {
		t.Errorf("cancelled timer logged %q", buf.String())
	}
}
