// File: ast.go
// Title: Expression AST Node Definitions
// Description: Node types for parsed expressions (literals, identifiers,
//              unary and binary operators, function calls) with source
//              positions, string rendering and the visitor interface used
//              by the evaluator.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial AST node definitions

package expr

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Node represents the base interface for all AST nodes
type Node interface {
	// String returns a string representation of the node
	String() string

	// Accept implements the visitor pattern
	Accept(visitor Visitor) (Value, error)

	// Position returns the source position of the node
	Position() Position
}

// Visitor is implemented by node consumers such as the evaluator
type Visitor interface {
	VisitNumber(n *NumberLit) (Value, error)
	VisitIdentifier(n *Identifier) (Value, error)
	VisitUnary(n *UnaryExpr) (Value, error)
	VisitBinary(n *BinaryExpr) (Value, error)
	VisitCall(n *CallExpr) (Value, error)
}

// Position represents a position in the source code
type Position struct {
	Line   int // Line number (1-based)
	Column int // Column number (1-based)
	Offset int // Byte offset (0-based)
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// NumberLit is a real or imaginary numeric literal
type NumberLit struct {
	Raw       string
	Value     float64
	Imaginary bool
	Pos       Position
}

// Identifier is a constant or a name resolved at evaluation time
type Identifier struct {
	Name string
	Pos  Position
}

// UnaryExpr is a prefix '+' or '-'
type UnaryExpr struct {
	Op      string
	Operand Node
	Pos     Position
}

// BinaryExpr is one of + - * / ^
type BinaryExpr struct {
	Left  Node
	Op    string
	Right Node
	Pos   Position
}

// CallExpr is a builtin function call
type CallExpr struct {
	Name string
	Args []Node
	Pos  Position
}

func (n *NumberLit) String() string {
	s := strconv.FormatFloat(n.Value, 'g', -1, 64)
	if n.Imaginary {
		return s + "i"
	}
	return s
}

func (n *NumberLit) Accept(v Visitor) (Value, error) { return v.VisitNumber(n) }
func (n *NumberLit) Position() Position              { return n.Pos }

func (n *Identifier) String() string                  { return n.Name }
func (n *Identifier) Accept(v Visitor) (Value, error) { return v.VisitIdentifier(n) }
func (n *Identifier) Position() Position              { return n.Pos }

func (n *UnaryExpr) String() string {
	return fmt.Sprintf("(%s%s)", n.Op, n.Operand.String())
}

func (n *UnaryExpr) Accept(v Visitor) (Value, error) { return v.VisitUnary(n) }
func (n *UnaryExpr) Position() Position              { return n.Pos }

func (n *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", n.Left.String(), n.Op, n.Right.String())
}

func (n *BinaryExpr) Accept(v Visitor) (Value, error) { return v.VisitBinary(n) }
func (n *BinaryExpr) Position() Position              { return n.Pos }

func (n *CallExpr) String() string {
	args := make([]string, len(n.Args))
	for i, a := range n.Args {
		args[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", n.Name, strings.Join(args, ", "))
}

func (n *CallExpr) Accept(v Visitor) (Value, error) { return v.VisitCall(n) }
func (n *CallExpr) Position() Position              { return n.Pos }

// Walk calls fn for node and every descendant in depth-first order
func Walk(node Node, fn func(Node)) {
	if node == nil {
		return
	}
	fn(node)
	switch n := node.(type) {
	case *UnaryExpr:
		Walk(n.Operand, fn)
	case *BinaryExpr:
		Walk(n.Left, fn)
		Walk(n.Right, fn)
	case *CallExpr:
		for _, a := range n.Args {
			Walk(a, fn)
		}
	}
}

// FreeNames returns the sorted, de-duplicated identifiers of node that are
// not builtin constants. These are the names a Resolver must supply.
func FreeNames(node Node) []string {
	seen := make(map[string]struct{})
	Walk(node, func(n Node) {
		if id, ok := n.(*Identifier); ok {
			if _, builtin := constants[id.Name]; !builtin {
				seen[id.Name] = struct{}{}
			}
		}
	})
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
