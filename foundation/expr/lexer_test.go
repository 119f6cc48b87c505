// File: lexer_test.go
// Title: Unit Tests for the Expression Lexer
// Description: Tokenization of numbers, imaginary literals, operators and
//              positions.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial test implementation

package expr

import (
	"testing"
)

func TestLexer_NextToken(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:  "Operators",
			input: "+ - * / ^ ** = ( ) ,",
			expected: []Token{
				{Type: TokenPlus, Value: "+"},
				{Type: TokenMinus, Value: "-"},
				{Type: TokenStar, Value: "*"},
				{Type: TokenSlash, Value: "/"},
				{Type: TokenCaret, Value: "^"},
				{Type: TokenCaret, Value: "**"},
				{Type: TokenEquals, Value: "="},
				{Type: TokenLeftParen, Value: "("},
				{Type: TokenRightParen, Value: ")"},
				{Type: TokenComma, Value: ","},
				{Type: TokenEOF, Value: ""},
			},
		},
		{
			name:  "Numbers",
			input: "12 1.5 .25 2e-3 4E+2 3e",
			expected: []Token{
				{Type: TokenNumber, Value: "12"},
				{Type: TokenNumber, Value: "1.5"},
				{Type: TokenNumber, Value: ".25"},
				{Type: TokenNumber, Value: "2e-3"},
				{Type: TokenNumber, Value: "4E+2"},
				{Type: TokenNumber, Value: "3"},
				{Type: TokenIdentifier, Value: "e"},
				{Type: TokenEOF, Value: ""},
			},
		},
		{
			name:  "Imaginary literals",
			input: "2i 0.5i 3in",
			expected: []Token{
				{Type: TokenImaginary, Value: "2"},
				{Type: TokenImaginary, Value: "0.5"},
				{Type: TokenNumber, Value: "3"},
				{Type: TokenIdentifier, Value: "in"},
				{Type: TokenEOF, Value: ""},
			},
		},
		{
			name:  "Function call",
			input: "pe(1, x_2, 0, inf)",
			expected: []Token{
				{Type: TokenIdentifier, Value: "pe"},
				{Type: TokenLeftParen, Value: "("},
				{Type: TokenNumber, Value: "1"},
				{Type: TokenComma, Value: ","},
				{Type: TokenIdentifier, Value: "x_2"},
				{Type: TokenComma, Value: ","},
				{Type: TokenNumber, Value: "0"},
				{Type: TokenComma, Value: ","},
				{Type: TokenIdentifier, Value: "inf"},
				{Type: TokenRightParen, Value: ")"},
				{Type: TokenEOF, Value: ""},
			},
		},
		{
			name:  "Unicode identifier",
			input: "α*2",
			expected: []Token{
				{Type: TokenIdentifier, Value: "α"},
				{Type: TokenStar, Value: "*"},
				{Type: TokenNumber, Value: "2"},
				{Type: TokenEOF, Value: ""},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lexer := NewLexer(tt.input)
			for i, expected := range tt.expected {
				tok := lexer.NextToken()
				if tok.Type != expected.Type {
					t.Errorf("Token %d: expected type %s, got %s", i, expected.Type, tok.Type)
				}
				if tok.Value != expected.Value {
					t.Errorf("Token %d: expected value %q, got %q", i, expected.Value, tok.Value)
				}
			}
		})
	}
}

func TestLexer_Positions(t *testing.T) {
	tokens, err := TokenizeInput("1 +\n  x")
	if err != nil {
		t.Fatalf("TokenizeInput() error = %v", err)
	}
	want := []struct{ line, column int }{{1, 1}, {1, 3}, {2, 3}}
	for i, w := range want {
		if tokens[i].Line != w.line || tokens[i].Column != w.column {
			t.Errorf("Token %d (%s): expected %d:%d, got %d:%d",
				i, tokens[i], w.line, w.column, tokens[i].Line, tokens[i].Column)
		}
	}
}

func TestLexer_Illegal(t *testing.T) {
	_, err := TokenizeInput("1 $ 2")
	if err == nil {
		t.Fatal("Expected error for illegal character")
	}
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("Expected *ParseError, got %T", err)
	}
	if pe.Column != 3 {
		t.Errorf("Expected column 3, got %d", pe.Column)
	}
}

func TestIsValidIdentifier(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"x", true},
		{"x_1", true},
		{"_tmp", true},
		{"α", true},
		{"1x", false},
		{"", false},
		{"a-b", false},
		{" x", false},
	}
	for _, tt := range tests {
		if got := IsValidIdentifier(tt.input); got != tt.want {
			t.Errorf("IsValidIdentifier(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
