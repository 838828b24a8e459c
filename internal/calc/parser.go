// ============================================================================
// numerical - Numerische Größen und Operator-Protokolle
// ============================================================================
//
// Package:     calc
// Description: Pratt parser producing the expression tree
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package calc

import (
	"fmt"
	"strings"

	numerror "github.com/msto63/numerical/foundation/core/error"
	numerrors "github.com/msto63/numerical/foundation/core/errors"
)

const module = "calc"

// Node is a parsed expression
type Node interface {
	String() string
}

type literal struct {
	text string
}

type arrayLit struct {
	elems []Node
}

type unaryExpr struct {
	symbol string
	x      Node
}

type binaryExpr struct {
	symbol      string
	left, right Node
}

type callExpr struct {
	name string
	args []Node
}

type indexExpr struct {
	x     Node
	index Node
	slice *sliceExpr
}

type sliceExpr struct {
	start, stop, step Node
}

func (n literal) String() string { return n.text }

func (n arrayLit) String() string {
	parts := make([]string, len(n.elems))
	for i, e := range n.elems {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (n unaryExpr) String() string { return "(" + n.symbol + n.x.String() + ")" }

func (n binaryExpr) String() string {
	return "(" + n.left.String() + " " + n.symbol + " " + n.right.String() + ")"
}

func (n callExpr) String() string {
	parts := make([]string, len(n.args))
	for i, a := range n.args {
		parts[i] = a.String()
	}
	return n.name + "(" + strings.Join(parts, ", ") + ")"
}

func (n indexExpr) String() string {
	if n.slice == nil {
		return n.x.String() + "[" + n.index.String() + "]"
	}
	part := func(b Node) string {
		if b == nil {
			return ""
		}
		return b.String()
	}
	s := part(n.slice.start) + ":" + part(n.slice.stop)
	if n.slice.step != nil {
		s += ":" + part(n.slice.step)
	}
	return n.x.String() + "[" + s + "]"
}

// Binding powers; ** is right-associative and binds tighter than a
// leading sign on its left
const (
	bpCompare = 10
	bpAdd     = 20
	bpMul     = 30
	bpPrefix  = 40
	bpPow     = 50
)

func infixPower(symbol string) (left, right int, ok bool) {
	switch symbol {
	case "==", "!=", "<", "<=", ">", ">=", "in":
		return bpCompare, bpCompare + 1, true
	case "+", "-":
		return bpAdd, bpAdd + 1, true
	case "*", "/", "//", "%":
		return bpMul, bpMul + 1, true
	case "**":
		return bpPow, bpPow - 1, true
	}
	return 0, 0, false
}

type parser struct {
	input  string
	tokens []token
	pos    int
}

// Parse parses a single expression
func Parse(input string) (Node, error) {
	tokens, err := tokenize(input)
	if err != nil {
		return nil, err
	}
	p := &parser{input: input, tokens: tokens}
	if p.peek().kind == tokEOF {
		return nil, syntaxError(input, 0, "leerer Ausdruck")
	}

	node, err := p.expr(0)
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return nil, syntaxError(input, t.pos, "unerwartetes "+t.String())
	}
	return node, nil
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) next() token {
	t := p.tokens[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) expect(kind tokenKind, what string) error {
	if t := p.next(); t.kind != kind {
		return syntaxError(p.input, t.pos, fmt.Sprintf("%s erwartet, %s gefunden", what, t))
	}
	return nil
}

func (p *parser) expr(minPower int) (Node, error) {
	left, err := p.prefix()
	if err != nil {
		return nil, err
	}

	for {
		t := p.peek()
		if t.kind != tokOperator {
			return left, nil
		}
		lp, rp, ok := infixPower(t.text)
		if !ok || lp < minPower {
			return left, nil
		}
		p.next()

		right, err := p.expr(rp)
		if err != nil {
			return nil, err
		}
		left = binaryExpr{symbol: t.text, left: left, right: right}
	}
}

func (p *parser) prefix() (Node, error) {
	if t := p.peek(); t.kind == tokOperator && (t.text == "-" || t.text == "+") {
		p.next()
		x, err := p.expr(bpPrefix)
		if err != nil {
			return nil, err
		}
		return unaryExpr{symbol: t.text, x: x}, nil
	}

	node, err := p.primary()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokLBracket {
		p.next()
		if node, err = p.index(node); err != nil {
			return nil, err
		}
	}
	return node, nil
}

func (p *parser) primary() (Node, error) {
	t := p.next()
	switch t.kind {
	case tokNumber:
		return literal{text: t.text}, nil

	case tokLParen:
		node, err := p.expr(0)
		if err != nil {
			return nil, err
		}
		return node, p.expect(tokRParen, "\")\"")

	case tokLBracket:
		elems, err := p.list(tokRBracket, "\"]\"")
		if err != nil {
			return nil, err
		}
		return arrayLit{elems: elems}, nil

	case tokIdent:
		if p.peek().kind != tokLParen {
			return nil, syntaxError(p.input, t.pos, "unbekannter Name "+t.String())
		}
		p.next()
		args, err := p.list(tokRParen, "\")\"")
		if err != nil {
			return nil, err
		}
		return callExpr{name: t.text, args: args}, nil
	}
	return nil, syntaxError(p.input, t.pos, "Operand erwartet, "+t.String()+" gefunden")
}

// list parses comma-separated expressions up to and including the closing
// token
func (p *parser) list(closing tokenKind, what string) ([]Node, error) {
	var nodes []Node
	if p.peek().kind == closing {
		p.next()
		return nodes, nil
	}
	for {
		node, err := p.expr(0)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
		if p.peek().kind != tokComma {
			return nodes, p.expect(closing, what)
		}
		p.next()
	}
}

// index parses the part after "[": an index or start:stop:step
func (p *parser) index(x Node) (Node, error) {
	bound := func() (Node, error) {
		switch p.peek().kind {
		case tokColon, tokRBracket:
			return nil, nil
		}
		return p.expr(0)
	}

	first, err := bound()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokColon {
		if first == nil {
			return nil, syntaxError(p.input, p.peek().pos, "Index erwartet")
		}
		return indexExpr{x: x, index: first}, p.expect(tokRBracket, "\"]\"")
	}

	s := &sliceExpr{start: first}
	p.next()
	if s.stop, err = bound(); err != nil {
		return nil, err
	}
	if p.peek().kind == tokColon {
		p.next()
		if s.step, err = bound(); err != nil {
			return nil, err
		}
	}
	return indexExpr{x: x, slice: s}, p.expect(tokRBracket, "\"]\"")
}

func syntaxError(input string, pos int, message string) *numerror.Error {
	return numerrors.NewErrorBuilder(module).
		Operation("parse").
		Messagef("Syntaxfehler an Position %d: %s", pos+1, message).
		Code(numerror.CodeInvalidFormat).
		Detail("input", input).
		Detail("position", pos).
		Build()
}
