// File: lexer.go
// Title: Expression Lexical Analyzer (Tokenizer)
// Description: Converts expression strings into streams of tokens for the
//              parser. Handles numbers with exponents, imaginary literals,
//              identifiers and operators, and records line/column positions
//              for error reporting.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial lexer implementation

package expr

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// TokenType represents the type of a lexical token
type TokenType int

const (
	// Special tokens
	TokenEOF TokenType = iota
	TokenIllegal

	// Identifiers and literals
	TokenIdentifier // x, sqrt, pe
	TokenNumber     // 12, 1.5, 2e-3
	TokenImaginary  // 2i, 0.5i

	// Operators
	TokenPlus   // +
	TokenMinus  // -
	TokenStar   // *
	TokenSlash  // /
	TokenCaret  // ^
	TokenEquals // =

	// Delimiters
	TokenLeftParen  // (
	TokenRightParen // )
	TokenComma      // ,
)

var tokenNames = map[TokenType]string{
	TokenEOF:        "EOF",
	TokenIllegal:    "ILLEGAL",
	TokenIdentifier: "IDENTIFIER",
	TokenNumber:     "NUMBER",
	TokenImaginary:  "IMAGINARY",
	TokenPlus:       "PLUS",
	TokenMinus:      "MINUS",
	TokenStar:       "STAR",
	TokenSlash:      "SLASH",
	TokenCaret:      "CARET",
	TokenEquals:     "EQUALS",
	TokenLeftParen:  "LEFT_PAREN",
	TokenRightParen: "RIGHT_PAREN",
	TokenComma:      "COMMA",
}

// String returns a string representation of the token type
func (tt TokenType) String() string {
	if name, ok := tokenNames[tt]; ok {
		return name
	}
	return "UNKNOWN"
}

// Token represents a lexical token with position information
type Token struct {
	Type     TokenType // Token type
	Value    string    // Token text
	Position int       // Byte position in input
	Line     int       // Line number (1-based)
	Column   int       // Column number (1-based)
}

// String returns a string representation of the token
func (t Token) String() string {
	switch t.Type {
	case TokenEOF:
		return "EOF"
	case TokenIllegal:
		return fmt.Sprintf("ILLEGAL(%s)", t.Value)
	default:
		return fmt.Sprintf("%s(%s)", t.Type.String(), t.Value)
	}
}

// Lexer performs lexical analysis of expression input
type Lexer struct {
	input    string
	position int  // current position in input (points to current char)
	readPos  int  // current reading position (after current char)
	ch       byte // current char under examination
	line     int
	column   int
}

// NewLexer creates a new lexer for the given input
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input: input,
		line:  1,
	}
	l.readChar()
	return l
}

// NextToken returns the next token from the input
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	pos, line, column := l.position, l.line, l.column

	var tok Token
	switch l.ch {
	case '+':
		tok = newToken(TokenPlus, l.ch, pos, line, column)
	case '-':
		tok = newToken(TokenMinus, l.ch, pos, line, column)
	case '*':
		if l.peekChar() == '*' {
			// ** is accepted as an alias for ^
			l.readChar()
			tok = Token{Type: TokenCaret, Value: "**", Position: pos, Line: line, Column: column}
		} else {
			tok = newToken(TokenStar, l.ch, pos, line, column)
		}
	case '/':
		tok = newToken(TokenSlash, l.ch, pos, line, column)
	case '^':
		tok = newToken(TokenCaret, l.ch, pos, line, column)
	case '=':
		tok = newToken(TokenEquals, l.ch, pos, line, column)
	case '(':
		tok = newToken(TokenLeftParen, l.ch, pos, line, column)
	case ')':
		tok = newToken(TokenRightParen, l.ch, pos, line, column)
	case ',':
		tok = newToken(TokenComma, l.ch, pos, line, column)
	case 0:
		return Token{Type: TokenEOF, Position: pos, Line: line, Column: column}
	default:
		switch {
		case isLetter(l.ch):
			return Token{Type: TokenIdentifier, Value: l.readIdentifier(), Position: pos, Line: line, Column: column}
		case isDigit(l.ch) || (l.ch == '.' && isDigit(l.peekChar())):
			value := l.readNumber()
			typ := TokenNumber
			if l.ch == 'i' && !isIdentChar(l.peekChar()) {
				l.readChar()
				typ = TokenImaginary
			}
			return Token{Type: typ, Value: value, Position: pos, Line: line, Column: column}
		default:
			tok = newToken(TokenIllegal, l.ch, pos, line, column)
		}
	}

	l.readChar()
	return tok
}

// Tokenize returns all tokens from the input as a slice
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			return tokens, nil
		}
		if tok.Type == TokenIllegal {
			return tokens, syntaxError(fmt.Sprintf("illegal character '%s'", tok.Value), tok)
		}
	}
}

func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.position = l.readPos
	l.readPos++

	if l.ch == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
}

func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

func (l *Lexer) readIdentifier() string {
	start := l.position
	for isIdentChar(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readNumber reads digits, an optional fraction and an optional exponent.
// The exponent is only consumed when a digit follows the sign, so "2e" lexes
// as the number 2 followed by the identifier e.
func (l *Lexer) readNumber() string {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	if (l.ch == 'e' || l.ch == 'E') && l.exponentFollows() {
		l.readChar()
		if l.ch == '+' || l.ch == '-' {
			l.readChar()
		}
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	return l.input[start:l.position]
}

func (l *Lexer) exponentFollows() bool {
	i := l.readPos
	if i < len(l.input) && (l.input[i] == '+' || l.input[i] == '-') {
		i++
	}
	return i < len(l.input) && isDigit(l.input[i])
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

func newToken(tokenType TokenType, ch byte, pos, line, column int) Token {
	return Token{
		Type:     tokenType,
		Value:    string(ch),
		Position: pos,
		Line:     line,
		Column:   column,
	}
}

// isLetter accepts ASCII letters, underscore and any byte of a multi-byte
// UTF-8 sequence, so Greek names like α lex as identifiers.
func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_' || ch > 127
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isIdentChar(ch byte) bool {
	return isLetter(ch) || isDigit(ch)
}

// IsValidIdentifier reports whether s can be used as a name in expressions
func IsValidIdentifier(s string) bool {
	if strings.TrimSpace(s) != s || s == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s)
	if !unicode.IsLetter(r) && r != '_' {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}

// TokenizeInput is a convenience function that tokenizes input and returns tokens or error
func TokenizeInput(input string) ([]Token, error) {
	return NewLexer(input).Tokenize()
}
