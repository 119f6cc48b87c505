// File: eval.go
// Title: Expression Evaluator
// Description: Walks a parsed expression with the visitor interface and
//              computes its Value. Free identifiers are looked up through a
//              Resolver; builtin constants and functions are fixed.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package expr

import (
	"math"
	"sort"
	"sync"

	mdwerror "github.com/msto63/asymptotix/foundation/core/error"
	"github.com/msto63/asymptotix/foundation/core/errors"
	mdwlog "github.com/msto63/asymptotix/foundation/core/log"
)

// Resolver supplies values for free identifiers. ok is false when the name
// is unknown to the resolver; err reports a failure while resolving it.
type Resolver interface {
	Resolve(name string) (v Value, ok bool, err error)
}

// ResolverFunc adapts a function to the Resolver interface
type ResolverFunc func(name string) (Value, bool, error)

func (f ResolverFunc) Resolve(name string) (Value, bool, error) { return f(name) }

// Scope is a concurrency-safe set of named values
type Scope struct {
	mu     sync.RWMutex
	values map[string]Value
}

// NewScope creates an empty scope
func NewScope() *Scope {
	return &Scope{values: make(map[string]Value)}
}

// Set binds name to v
func (s *Scope) Set(name string, v Value) error {
	if !IsValidIdentifier(name) {
		return errors.InvalidInput(errors.ModuleExpr, "bind", name, "identifier")
	}
	if IsReserved(name) {
		return errors.InvalidInput(errors.ModuleExpr, "bind", name, "a name that is not a builtin")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[name] = v
	return nil
}

// Resolve implements Resolver
func (s *Scope) Resolve(name string) (Value, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[name]
	return v, ok, nil
}

// Names returns the bound names in sorted order
func (s *Scope) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.values))
	for name := range s.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Chain resolves names through each resolver in turn. The first resolver
// that knows a name wins.
func Chain(resolvers ...Resolver) Resolver {
	return ResolverFunc(func(name string) (Value, bool, error) {
		for _, r := range resolvers {
			if r == nil {
				continue
			}
			v, ok, err := r.Resolve(name)
			if err != nil || ok {
				return v, ok, err
			}
		}
		return Value{}, false, nil
	})
}

var constants = map[string]Value{
	"inf": Real(math.Inf(1)),
	"pi":  Real(math.Pi),
	"e":   Real(math.E),
	"i":   Number(1i),
}

// IsReserved reports whether name is a builtin constant or function
func IsReserved(name string) bool {
	if _, ok := constants[name]; ok {
		return true
	}
	_, ok := builtins[name]
	return ok
}

// Options configures an Evaluator
type Options struct {
	Logger   *mdwlog.Logger
	Resolver Resolver
	// MaxInputLength is passed to the parser by EvaluateString
	MaxInputLength int
	// LogTolerance overrides asympx.LogTolerance for log when positive
	LogTolerance float64
}

// Evaluator computes values of parsed expressions
type Evaluator struct {
	resolver     Resolver
	logger       *mdwlog.Logger
	parser       *Parser
	logTolerance float64
}

// NewEvaluator creates an evaluator with the given options
func NewEvaluator(opts Options) *Evaluator {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	return &Evaluator{
		resolver:     opts.Resolver,
		logger:       opts.Logger.WithComponent("expr-eval"),
		parser:       NewParser(ParserOptions{Logger: opts.Logger, MaxInputLength: opts.MaxInputLength}),
		logTolerance: opts.LogTolerance,
	}
}

// Evaluate computes the value of node
func (e *Evaluator) Evaluate(node Node) (Value, error) {
	v, err := node.Accept(e)
	if err != nil {
		e.logger.Debug("Evaluation failed", mdwlog.Fields{
			"expression": node.String(),
			"error":      err.Error(),
		})
		return Value{}, err
	}
	e.logger.Trace("Evaluated expression", mdwlog.Fields{
		"expression": node.String(),
		"kind":       v.Kind().String(),
	})
	return v, nil
}

// EvaluateString parses and evaluates input
func (e *Evaluator) EvaluateString(input string) (Value, error) {
	node, err := e.parser.Parse(input)
	if err != nil {
		return Value{}, err
	}
	return e.Evaluate(node)
}

// Eval parses and evaluates input with a default evaluator
func Eval(input string, r Resolver) (Value, error) {
	return NewEvaluator(Options{Resolver: r}).EvaluateString(input)
}

func (e *Evaluator) VisitNumber(n *NumberLit) (Value, error) {
	if n.Imaginary {
		return Number(complex(0, n.Value)), nil
	}
	return Real(n.Value), nil
}

func (e *Evaluator) VisitIdentifier(n *Identifier) (Value, error) {
	if v, ok := constants[n.Name]; ok {
		return v, nil
	}
	if e.resolver != nil {
		v, ok, err := e.resolver.Resolve(n.Name)
		if err != nil {
			return Value{}, err
		}
		if ok {
			return v, nil
		}
	}
	return Value{}, errors.NewErrorBuilder(errors.ModuleExpr).
		Operation("resolve").
		Messagef("expr.resolve: unknown symbol %q at %s", n.Name, n.Pos).
		Kind(mdwerror.CodeUnknownSymbol).
		Detail("symbol", n.Name).
		Detail("line", n.Pos.Line).
		Detail("column", n.Pos.Column).
		Build()
}

func (e *Evaluator) VisitUnary(n *UnaryExpr) (Value, error) {
	v, err := n.Operand.Accept(e)
	if err != nil {
		return Value{}, err
	}
	if n.Op == "-" {
		return v.Neg(), nil
	}
	return v, nil
}

func (e *Evaluator) VisitBinary(n *BinaryExpr) (Value, error) {
	left, err := n.Left.Accept(e)
	if err != nil {
		return Value{}, err
	}
	right, err := n.Right.Accept(e)
	if err != nil {
		return Value{}, err
	}
	switch n.Op {
	case "+":
		return left.Add(right)
	case "-":
		return left.Sub(right)
	case "*":
		return left.Mul(right)
	case "/":
		return left.Div(right)
	case "^", "**":
		return left.Pow(right)
	}
	return Value{}, errors.InvalidInput(errors.ModuleExpr, "eval", n.Op, "operator")
}

func (e *Evaluator) VisitCall(n *CallExpr) (Value, error) {
	b, ok := builtins[n.Name]
	if !ok {
		return Value{}, errors.UnknownFunction(errors.ModuleExpr, "call", n.Name)
	}
	if len(n.Args) != b.arity {
		return Value{}, errors.NewErrorBuilder(errors.ModuleExpr).
			Operation("call").
			Messagef("expr.call: %s expects %d argument(s), got %d at %s", n.Name, b.arity, len(n.Args), n.Pos).
			Kind(mdwerror.CodeInvalidInput).
			Detail("function", n.Name).
			Detail("arity", b.arity).
			Build()
	}
	args := make([]Value, len(n.Args))
	for i, a := range n.Args {
		v, err := a.Accept(e)
		if err != nil {
			return Value{}, err
		}
		args[i] = v
	}
	if b.withTol != nil && e.logTolerance > 0 {
		return b.withTol(args, e.logTolerance)
	}
	return b.fn(args)
}
