// ============================================================================
// numerical - Numerische Größen und Operator-Protokolle
// ============================================================================
//
// Package:     calc
// Description: Tokenizer for calculator expressions
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package calc

import (
	"fmt"
	"strings"
	"unicode"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokOperator
	tokLParen
	tokRParen
	tokLBracket
	tokRBracket
	tokComma
	tokColon
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

func (t token) String() string {
	if t.kind == tokEOF {
		return "Ende der Eingabe"
	}
	return fmt.Sprintf("%q", t.text)
}

// Longest symbols first
var operatorSymbols = []string{"**", "//", "==", "!=", "<=", ">=", "<", ">", "+", "-", "*", "/", "%"}

func tokenize(input string) ([]token, error) {
	var tokens []token
	runes := []rune(input)

	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
			continue
		case unicode.IsDigit(r) || (r == '.' && i+1 < len(runes) && unicode.IsDigit(runes[i+1])):
			start := i
			i = scanNumber(runes, i)
			tokens = append(tokens, token{tokNumber, string(runes[start:i]), start})
			continue
		case unicode.IsLetter(r) || r == '_':
			start := i
			for i < len(runes) && (unicode.IsLetter(runes[i]) || unicode.IsDigit(runes[i]) || runes[i] == '_') {
				i++
			}
			text := string(runes[start:i])
			kind := tokIdent
			if text == "in" {
				kind = tokOperator
			}
			tokens = append(tokens, token{kind, text, start})
			continue
		}

		if kind, ok := punctuation[r]; ok {
			tokens = append(tokens, token{kind, string(r), i})
			i++
			continue
		}

		rest := string(runes[i:])
		matched := false
		for _, sym := range operatorSymbols {
			if strings.HasPrefix(rest, sym) {
				tokens = append(tokens, token{tokOperator, sym, i})
				i += len([]rune(sym))
				matched = true
				break
			}
		}
		if !matched {
			return nil, syntaxError(input, i, fmt.Sprintf("unerwartetes Zeichen %q", r))
		}
	}

	return append(tokens, token{kind: tokEOF, pos: len(runes)}), nil
}

var punctuation = map[rune]tokenKind{
	'(': tokLParen,
	')': tokRParen,
	'[': tokLBracket,
	']': tokRBracket,
	',': tokComma,
	':': tokColon,
}

// scanNumber consumes digits, an optional fraction and exponent, and an
// optional d (decimal) or j (imaginary) suffix
func scanNumber(runes []rune, i int) int {
	digits := func() {
		for i < len(runes) && (unicode.IsDigit(runes[i]) || runes[i] == '_') {
			i++
		}
	}

	digits()
	if i < len(runes) && runes[i] == '.' {
		i++
		digits()
	}
	if i < len(runes) && (runes[i] == 'e' || runes[i] == 'E') {
		j := i + 1
		if j < len(runes) && (runes[j] == '+' || runes[j] == '-') {
			j++
		}
		if j < len(runes) && unicode.IsDigit(runes[j]) {
			i = j
			digits()
		}
	}
	if i < len(runes) && (runes[i] == 'd' || runes[i] == 'j') {
		i++
	}
	return i
}
