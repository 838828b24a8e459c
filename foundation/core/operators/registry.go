// File: registry.go
// Title: Operator Handles and Registry
// Description: Defines the immutable Operator handle and the Registry that
//              memoizes handles per (symbol, primitive) pair and resolves
//              them by name or alias.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation
// - 2026-10-16 v0.2.0: Primitive handles as identity, name conflicts are errors

package operators

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	numerrors "github.com/msto63/numerical/foundation/core/errors"
	numlog "github.com/msto63/numerical/foundation/core/log"
)

// Func is a primitive implementation. It receives the operands unmodified.
type Func func(args ...any) (any, error)

// Primitive is a registered implementation. Two primitives are the same
// only if they are the same *Primitive, regardless of the Func they hold.
type Primitive struct {
	fn Func
}

// NewPrimitive wraps fn as a distinct primitive
func NewPrimitive(fn Func) *Primitive {
	return &Primitive{fn: fn}
}

// Operator is an immutable handle pairing a symbolic name with a primitive
type Operator struct {
	name      string
	symbol    string
	arity     int
	primitive *Primitive
}

// Name returns the catalog name, e.g. "add"
func (o *Operator) Name() string {
	return o.name
}

// Symbol returns the symbolic form, e.g. "a + b"
func (o *Operator) Symbol() string {
	return o.symbol
}

// Arity returns the number of required positional operands
func (o *Operator) Arity() int {
	return o.arity
}

// Call invokes the primitive with args and returns its raw result and error
func (o *Operator) Call(args ...any) (any, error) {
	return o.primitive.fn(args...)
}

// Primitive returns the implementation the handle was made from
func (o *Operator) Primitive() *Primitive {
	return o.primitive
}

// String returns the symbolic form
func (o *Operator) String() string {
	return o.symbol
}

type key struct {
	symbol    string
	primitive *Primitive
}

// Registry memoizes operator handles. It is safe for concurrent use.
type Registry struct {
	mutex   sync.RWMutex
	byKey   map[key]*Operator
	byName  map[string]*Operator
	aliases map[string]string
	logger  *numlog.Logger
}

// NewRegistry creates an empty registry. A nil logger selects the default
// logger at the time of each registration.
func NewRegistry(logger *numlog.Logger) *Registry {
	return &Registry{
		byKey:   make(map[key]*Operator),
		byName:  make(map[string]*Operator),
		aliases: make(map[string]string),
		logger:  logger,
	}
}

// Make returns the handle for (symbol, p), creating it on first use. A
// repeated call with the same symbol and primitive returns the identical
// handle. A name is bound once: registering it again with another symbol,
// primitive or arity fails and leaves the registry unchanged.
func (r *Registry) Make(name, symbol string, arity int, p *Primitive) (*Operator, error) {
	if p == nil || p.fn == nil {
		return nil, numerrors.InvalidInput(numerrors.ModuleOperators, "make", name, "a non-nil primitive")
	}
	k := key{symbol: symbol, primitive: p}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if op, exists := r.byKey[k]; exists {
		if op.name != name || op.arity != arity {
			return nil, conflict(name, op)
		}
		return op, nil
	}
	if op, exists := r.byName[strings.ToLower(name)]; exists {
		return nil, conflict(name, op)
	}

	op := &Operator{name: name, symbol: symbol, arity: arity, primitive: p}
	r.byKey[k] = op
	r.byName[strings.ToLower(name)] = op

	r.log().Debug("operator registered", numlog.Fields{
		"name":   name,
		"symbol": symbol,
		"arity":  arity,
	})
	return op, nil
}

// MustMake is Make for static catalogs. It panics on a conflict.
func (r *Registry) MustMake(name, symbol string, arity int, fn Func) *Operator {
	op, err := r.Make(name, symbol, arity, NewPrimitive(fn))
	if err != nil {
		panic(err)
	}
	return op
}

func conflict(name string, existing *Operator) error {
	return numerrors.InvalidInput(numerrors.ModuleOperators, "make", name,
		fmt.Sprintf("a name not yet bound (bound to %s %q, arity %d)", existing.name, existing.symbol, existing.arity)).
		WithDetail("existing_symbol", existing.symbol)
}

// Alias makes an operator resolvable by another name, e.g. "+" for "add"
func (r *Registry) Alias(alias, name string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.byName[strings.ToLower(name)]; !exists {
		return numerrors.NotFound(numerrors.ModuleOperators, "alias", name)
	}
	r.aliases[alias] = strings.ToLower(name)
	return nil
}

// Lookup resolves an operator by catalog name (case-insensitive) or alias
func (r *Registry) Lookup(name string) (*Operator, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	if op, exists := r.byName[strings.ToLower(name)]; exists {
		return op, nil
	}
	if target, exists := r.aliases[name]; exists {
		return r.byName[target], nil
	}
	return nil, numerrors.NotFound(numerrors.ModuleOperators, "lookup", name)
}

// Operators returns the registered handles sorted by name
func (r *Registry) Operators() []*Operator {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	ops := make([]*Operator, 0, len(r.byName))
	for _, op := range r.byName {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool {
		return ops[i].name < ops[j].name
	})
	return ops
}

// Aliases returns a copy of the alias table
func (r *Registry) Aliases() map[string]string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	result := make(map[string]string, len(r.aliases))
	for k, v := range r.aliases {
		result[k] = v
	}
	return result
}

func (r *Registry) log() *numlog.Logger {
	if r.logger != nil {
		return r.logger
	}
	return numlog.GetDefault().WithField("component", "operators")
}
