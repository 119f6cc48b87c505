// File: format_test.go
// Title: Unit Tests for Log Formatters
// Description: Level and format parsing and the output of the formatters.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial test implementation

package log

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"
	"time"
)

func TestParseLevelAndFormat(t *testing.T) {
	levels := map[string]Level{
		"trace": LevelTrace, "DEBUG": LevelDebug, " info ": LevelInfo,
		"warning": LevelWarn, "err": LevelError, "off": LevelOff,
	}
	for in, want := range levels {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("ParseLevel(loud) should fail")
	}

	formats := map[string]Format{
		"json": FormatJSON, "text": FormatText, "Console": FormatConsole, "logfmt": FormatLogfmt,
	}
	for in, want := range formats {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) should fail")
	}
}

func testEntry() *Entry {
	e := NewEntry(LevelInfo, "evaluated")
	e.Timestamp = time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	e.Component = "asympx"
	e.WithFields(Fields{"b": 2, "a": "one"})
	return e
}

func TestTextFormatterSortsFields(t *testing.T) {
	out, err := NewTextFormatter().Format(testEntry())
	if err != nil {
		t.Fatal(err)
	}
	want := "12:00:00 [INF] {asympx} evaluated [a=one b=2]\n"
	if string(out) != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}
}

func TestLogfmtFormatter(t *testing.T) {
	e := testEntry().WithError(errors.New("bad")).WithDuration(1500 * time.Microsecond)
	out, err := NewLogfmtFormatter().Format(e)
	if err != nil {
		t.Fatal(err)
	}
	want := `timestamp=2026-10-17T12:00:00Z level=info message="evaluated" component=asympx a="one" b=2 error="bad" duration_ms=1.500` + "\n"
	if string(out) != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}
}

func TestJSONFormatterNonFiniteValues(t *testing.T) {
	e := testEntry().WithFields(Fields{
		"beta":  math.Inf(1),
		"coeff": complex(1, 2),
	})
	out, err := NewJSONFormatter().Format(e)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var data map[string]interface{}
	if err := json.Unmarshal(out, &data); err != nil {
		t.Fatal(err)
	}
	if data["beta"] != "+Inf" {
		t.Errorf("beta = %v, want +Inf", data["beta"])
	}
	if data["coeff"] != "(1+2i)" {
		t.Errorf("coeff = %v, want (1+2i)", data["coeff"])
	}
}

func TestConsoleFormatterColors(t *testing.T) {
	f := NewConsoleFormatter()
	out, _ := f.Format(testEntry())
	if !strings.HasPrefix(string(out), LevelInfo.Color()) {
		t.Errorf("colored output missing prefix: %q", out)
	}
	f.DisableColors = true
	out, _ = f.Format(testEntry())
	if strings.Contains(string(out), "\033[") {
		t.Errorf("uncolored output contains escape codes: %q", out)
	}
}
