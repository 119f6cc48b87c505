// File: parser.go
// Title: Expression Recursive Descent Parser
// Description: Converts token streams into expression ASTs using recursive
//              descent. Operator precedence from lowest to highest is
//              additive, multiplicative, unary minus, right-associative
//              power. Errors carry line and column of the offending token.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial parser implementation

package expr

import (
	"fmt"
	"strconv"

	mdwerror "github.com/msto63/asymptotix/foundation/core/error"
	"github.com/msto63/asymptotix/foundation/core/errors"
	mdwlog "github.com/msto63/asymptotix/foundation/core/log"
)

// DefaultMaxInputLength bounds the accepted input size
const DefaultMaxInputLength = 4096

// Parser implements recursive descent parsing for expressions
type Parser struct {
	lexer    *Lexer
	current  Token
	previous Token
	logger   *mdwlog.Logger
	options  ParserOptions
}

// ParserOptions configures parser behavior
type ParserOptions struct {
	Logger         *mdwlog.Logger
	MaxInputLength int
}

// ParseError represents a parsing error with position information
type ParseError struct {
	Message  string
	Position int
	Line     int
	Column   int
	Token    Token
}

func (pe *ParseError) Error() string {
	if pe.Token.Type == TokenEOF {
		return fmt.Sprintf("parse error at line %d, column %d: %s (at end of input)",
			pe.Line, pe.Column, pe.Message)
	}
	return fmt.Sprintf("parse error at line %d, column %d: %s (near '%s')",
		pe.Line, pe.Column, pe.Message, pe.Token.Value)
}

// Unwrap exposes the structured error so mdwerror.HasCode(err,
// errors.CodeExprSyntax) holds for every parse failure.
func (pe *ParseError) Unwrap() error {
	return errors.NewErrorBuilder(errors.ModuleExpr).
		Operation("parse").
		Message(pe.Error()).
		Kind(mdwerror.CodeSyntax).
		Detail("line", pe.Line).
		Detail("column", pe.Column).
		Detail("token", pe.Token.Value).
		Build()
}

func syntaxError(message string, tok Token) *ParseError {
	return &ParseError{
		Message:  message,
		Position: tok.Position,
		Line:     tok.Line,
		Column:   tok.Column,
		Token:    tok,
	}
}

// NewParser creates a new expression parser with the given options
func NewParser(opts ParserOptions) *Parser {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.MaxInputLength == 0 {
		opts.MaxInputLength = DefaultMaxInputLength
	}
	return &Parser{
		logger:  opts.Logger.WithComponent("expr-parser"),
		options: opts,
	}
}

// Parse parses a single expression and returns its AST
func (p *Parser) Parse(input string) (Node, error) {
	if len(input) > p.options.MaxInputLength {
		return nil, errors.OutOfRange(errors.ModuleExpr, "parse", len(input), 0, p.options.MaxInputLength)
	}

	p.lexer = NewLexer(input)
	p.advance()

	p.logger.Trace("Parsing expression", mdwlog.Fields{"input": input})

	node, err := p.parseExpr()
	if err != nil {
		p.logger.Debug("Expression parsing failed", mdwlog.Fields{
			"input": input,
			"error": err.Error(),
		})
		return nil, err
	}

	if p.current.Type != TokenEOF {
		return nil, p.parseError(fmt.Sprintf("unexpected %s after expression", p.current.Type))
	}
	return node, nil
}

// Parse parses input with a default parser
func Parse(input string) (Node, error) {
	return NewParser(ParserOptions{}).Parse(input)
}

// expr := term (('+'|'-') term)*
func (p *Parser) parseExpr() (Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.current.Type == TokenPlus || p.current.Type == TokenMinus {
		op := p.current
		p.advance()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Left: left, Op: op.Value, Right: right, Pos: position(op)}
	}
	return left, nil
}

// term := unary (('*'|'/') unary)*
func (p *Parser) parseTerm() (Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.current.Type == TokenStar || p.current.Type == TokenSlash {
		op := p.current
		p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Left: left, Op: op.Value, Right: right, Pos: position(op)}
	}
	return left, nil
}

// unary := ('-'|'+') unary | power
func (p *Parser) parseUnary() (Node, error) {
	if p.current.Type == TokenMinus || p.current.Type == TokenPlus {
		op := p.current
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Op: op.Value, Operand: operand, Pos: position(op)}, nil
	}
	return p.parsePower()
}

// power := primary ('^' unary)?
func (p *Parser) parsePower() (Node, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.current.Type != TokenCaret {
		return base, nil
	}
	op := p.current
	p.advance()
	exponent, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return &BinaryExpr{Left: base, Op: "^", Right: exponent, Pos: position(op)}, nil
}

// primary := NUMBER | IMAG | IDENT | IDENT '(' args ')' | '(' expr ')'
func (p *Parser) parsePrimary() (Node, error) {
	tok := p.current
	switch tok.Type {
	case TokenNumber, TokenImaginary:
		v, err := strconv.ParseFloat(tok.Value, 64)
		if err != nil {
			return nil, p.parseError(fmt.Sprintf("invalid number: %s", tok.Value))
		}
		p.advance()
		return &NumberLit{Raw: tok.Value, Value: v, Imaginary: tok.Type == TokenImaginary, Pos: position(tok)}, nil

	case TokenIdentifier:
		p.advance()
		if p.current.Type != TokenLeftParen {
			return &Identifier{Name: tok.Value, Pos: position(tok)}, nil
		}
		args, err := p.parseArgs()
		if err != nil {
			return nil, err
		}
		return &CallExpr{Name: tok.Value, Args: args, Pos: position(tok)}, nil

	case TokenLeftParen:
		p.advance()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.current.Type != TokenRightParen {
			return nil, p.parseError("expected ')'")
		}
		p.advance()
		return inner, nil

	case TokenIllegal:
		return nil, p.parseError(fmt.Sprintf("illegal character '%s'", tok.Value))

	case TokenEOF:
		return nil, p.parseError("unexpected end of input")

	default:
		return nil, p.parseError(fmt.Sprintf("expected operand, got %s", tok.Type))
	}
}

// parseArgs parses '(' [expr (',' expr)*] ')'
func (p *Parser) parseArgs() ([]Node, error) {
	p.advance() // consume '('
	var args []Node
	if p.current.Type == TokenRightParen {
		p.advance()
		return args, nil
	}
	for {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		switch p.current.Type {
		case TokenComma:
			p.advance()
		case TokenRightParen:
			p.advance()
			return args, nil
		default:
			return nil, p.parseError("expected ',' or ')' in argument list")
		}
	}
}

func (p *Parser) advance() {
	p.previous = p.current
	p.current = p.lexer.NextToken()
}

func (p *Parser) parseError(message string) error {
	return syntaxError(message, p.current)
}

func position(tok Token) Position {
	return Position{Line: tok.Line, Column: tok.Column, Offset: tok.Position}
}
