// File: parser_test.go
// Title: Expression Parser Unit Tests
// Description: Precedence, associativity, calls and error positions of the
//              recursive descent parser.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial parser test suite

package expr

import (
	"reflect"
	"strings"
	"testing"

	mdwerror "github.com/msto63/asymptotix/foundation/core/error"
	"github.com/msto63/asymptotix/foundation/core/errors"
	mdwlog "github.com/msto63/asymptotix/foundation/core/log"
)

func TestParser_Parse(t *testing.T) {
	parser := NewParser(ParserOptions{Logger: mdwlog.Discard()})

	tests := []struct {
		input string
		want  string
	}{
		{"1 + 2 * 3", "(1 + (2 * 3))"},
		{"(1 + 2) * 3", "((1 + 2) * 3)"},
		{"1 - 2 - 3", "((1 - 2) - 3)"},
		{"8 / 4 / 2", "((8 / 4) / 2)"},
		{"2 ^ 3 ^ 2", "(2 ^ (3 ^ 2))"},
		{"2^-1^2", "(2 ^ (-(1 ^ 2)))"},
		{"-x^2", "(-(x ^ 2))"},
		{"+x", "(+x)"},
		{"2i * x", "(2i * x)"},
		{"2 ** 3", "(2 ^ 3)"},
		{"pe(1, 2, 0, inf)", "pe(1, 2, 0, inf)"},
		{"sqrt(pe(0, 4, 2, 3)) + log(x)", "(sqrt(pe(0, 4, 2, 3)) + log(x))"},
		{"f()", "f()"},
		{"1.5e-3", "0.0015"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			node, err := parser.Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if got := node.String(); got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestParser_Errors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		line   int
		column int
		errMsg string
	}{
		{"Missing operand", "1 +", 1, 4, "unexpected end of input"},
		{"Unclosed paren", "(1 + 2", 1, 7, "expected ')'"},
		{"Trailing token", "1 2", 1, 3, "unexpected NUMBER"},
		{"Bad argument list", "pe(1 2)", 1, 6, "expected ',' or ')'"},
		{"Illegal character", "1 + #", 1, 5, "illegal character"},
		{"Second line", "1 +\n*", 2, 1, "expected operand"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatal("Expected parse error")
			}
			pe, ok := err.(*ParseError)
			if !ok {
				t.Fatalf("Expected *ParseError, got %T", err)
			}
			if pe.Line != tt.line || pe.Column != tt.column {
				t.Errorf("Expected position %d:%d, got %d:%d", tt.line, tt.column, pe.Line, pe.Column)
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("Expected error containing %q, got %q", tt.errMsg, err.Error())
			}
			if !mdwerror.HasCode(err, errors.CodeExprSyntax) {
				t.Errorf("Expected code %s, got %s", errors.CodeExprSyntax, mdwerror.GetCode(err))
			}
		})
	}
}

func TestParser_MaxInputLength(t *testing.T) {
	parser := NewParser(ParserOptions{Logger: mdwlog.Discard(), MaxInputLength: 5})
	_, err := parser.Parse("1 + 2 + 3")
	if err == nil {
		t.Fatal("Expected error for oversized input")
	}
	if !errors.IsKind(err, mdwerror.CodeValueOutOfRange) {
		t.Errorf("Expected VALUE_OUT_OF_RANGE, got %v", err)
	}
}

func TestFreeNames(t *testing.T) {
	node, err := Parse("x * pe(y, 1, 0, inf) + e^x - pi * z")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	got := FreeNames(node)
	want := []string{"x", "y", "z"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FreeNames() = %v, want %v", got, want)
	}
}
