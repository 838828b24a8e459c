// ============================================================================
// numerical - Numerische Größen und Operator-Protokolle
// ============================================================================
//
// Package:     calc
// Description: Evaluates expression trees on wrapped quantities
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package calc

import (
	"strconv"
	"strings"

	numerror "github.com/msto63/numerical/foundation/core/error"
	numerrors "github.com/msto63/numerical/foundation/core/errors"
	numlog "github.com/msto63/numerical/foundation/core/log"
	"github.com/msto63/numerical/foundation/core/operators"
	"github.com/msto63/numerical/foundation/core/quantity"
	"github.com/msto63/numerical/foundation/core/traits"
	"github.com/msto63/numerical/foundation/quantities"
	"github.com/msto63/numerical/foundation/utils/mathx"
)

// Config holds evaluator configuration
type Config struct {
	Kind     quantities.Kind     // wrapper for plain number literals
	Registry *operators.Registry // operator lookup, default catalog if nil
	Logger   *numlog.Logger
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{Kind: quantities.KindReal}
}

// Evaluator evaluates calculator expressions
type Evaluator struct {
	kind     quantities.Kind
	registry *operators.Registry
	logger   *numlog.Logger
}

// New creates an evaluator
func New(cfg Config) *Evaluator {
	e := &Evaluator{kind: cfg.Kind, registry: cfg.Registry, logger: cfg.Logger}
	if e.kind == "" {
		e.kind = quantities.KindReal
	}
	if e.registry == nil {
		e.registry = operators.Default()
	}
	if e.logger == nil {
		e.logger = numlog.GetDefault().WithField("component", "calc")
	}
	return e
}

// Kind returns the wrapper used for number literals
func (e *Evaluator) Kind() quantities.Kind {
	return e.kind
}

// Eval parses and evaluates input
func (e *Evaluator) Eval(input string) (any, error) {
	node, err := Parse(input)
	if err != nil {
		return nil, err
	}

	timer := e.logger.StartTimer("eval").WithLevel(numlog.LevelDebug).WithField("expression", node.String())
	result, err := e.EvalNode(node)
	timer.StopWithError(err)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("expression evaluated", numlog.Fields{
		"expression": node.String(),
		"type":       TypeLabel(result),
	})
	return result, nil
}

// EvalNode evaluates a parsed expression
func (e *Evaluator) EvalNode(n Node) (any, error) {
	switch n := n.(type) {
	case literal:
		return e.number(n.text)

	case arrayLit:
		values := make([]any, len(n.elems))
		for i, elem := range n.elems {
			v, err := e.EvalNode(elem)
			if err != nil {
				return nil, err
			}
			values[i] = quantity.Unwrap(v)
		}
		return quantities.SequenceOf(values)

	case unaryExpr:
		x, err := e.EvalNode(n.x)
		if err != nil {
			return nil, err
		}
		if n.symbol == "-" {
			return quantities.ApplyUnary(operators.Neg, x)
		}
		return quantities.ApplyUnary(operators.Pos, x)

	case binaryExpr:
		return e.binary(n)

	case callExpr:
		return e.call(n)

	case indexExpr:
		return e.index(n)
	}
	return nil, numerrors.InvalidInput(module, "eval", n, "expression node")
}

// number converts a literal: 1.25d is a Decimal, 2j an imaginary number,
// everything else an int or float wrapped in the configured kind
func (e *Evaluator) number(text string) (any, error) {
	clean := strings.ReplaceAll(text, "_", "")
	switch {
	case strings.HasSuffix(clean, "d"):
		return quantities.ParseDecimal(strings.TrimSuffix(clean, "d"))
	case strings.HasSuffix(clean, "j"):
		f, err := strconv.ParseFloat(strings.TrimSuffix(clean, "j"), 64)
		if err != nil {
			return nil, invalidNumber(text, err)
		}
		return quantities.Wrap(e.kind, complex(0, f))
	}

	if !strings.ContainsAny(clean, ".eE") {
		if i, err := strconv.Atoi(clean); err == nil {
			return quantities.Wrap(e.kind, i)
		}
	}
	f, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return nil, invalidNumber(text, err)
	}
	return quantities.Wrap(e.kind, f)
}

func (e *Evaluator) binary(n binaryExpr) (any, error) {
	op, err := e.registry.Lookup(n.symbol)
	if err != nil {
		return nil, err
	}
	left, err := e.EvalNode(n.left)
	if err != nil {
		return nil, err
	}
	right, err := e.EvalNode(n.right)
	if err != nil {
		return nil, err
	}

	// x in a asks the container a
	if op == operators.Contains {
		return quantities.Apply(op, right, left)
	}
	return quantities.Apply(op, left, right)
}

func (e *Evaluator) call(n callExpr) (any, error) {
	op, err := e.registry.Lookup(n.name)
	if err != nil {
		return nil, err
	}

	args := make([]any, len(n.args))
	for i, a := range n.args {
		if args[i], err = e.EvalNode(a); err != nil {
			return nil, err
		}
	}

	switch {
	case op.Arity() == 1 && len(args) == 1:
		return quantities.ApplyUnary(op, args[0])
	case op.Arity() == 2 && len(args) == 2:
		return quantities.Apply(op, args[0], args[1])
	case op == operators.Pow && len(args) == 3:
		// the modulus is passed through to the primitive as is
		return quantities.Apply(op, args[0], args[1], quantity.Unwrap(args[2]))
	}
	return nil, numerrors.Arity(module, op.Symbol(), op.Arity(), len(args))
}

func (e *Evaluator) index(n indexExpr) (any, error) {
	x, err := e.EvalNode(n.x)
	if err != nil {
		return nil, err
	}

	if n.slice == nil {
		i, err := e.EvalNode(n.index)
		if err != nil {
			return nil, err
		}
		return quantities.Apply(operators.GetItem, x, quantity.Unwrap(i))
	}

	var s traits.Slice
	bounds := []struct {
		node Node
		dst  **int
	}{{n.slice.start, &s.Start}, {n.slice.stop, &s.Stop}, {n.slice.step, &s.Step}}
	for _, b := range bounds {
		if b.node == nil {
			continue
		}
		v, err := e.EvalNode(b.node)
		if err != nil {
			return nil, err
		}
		raw := quantity.Unwrap(v)
		if mathx.KindOf(raw) != mathx.Int {
			return nil, numerrors.InvalidInput(module, "a[i]", raw, "integer slice bound")
		}
		i, _ := mathx.ToInt(raw)
		*b.dst = &i
	}
	return quantities.Apply(operators.GetItem, x, s)
}

func invalidNumber(text string, cause error) *numerror.Error {
	return numerrors.NewErrorBuilder(module).
		Operation("parse").
		Messagef("ungültige Zahl %q", text).
		Cause(cause).
		Code(numerror.CodeInvalidFormat).
		Build()
}
