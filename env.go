package lisk

import "sort"

// Env is one scope in a chain of scopes. Lookups walk outward through outer.
// Use Define to bind in this scope, Set to update the nearest existing
// binding, and Lookup to read.
//
// An Env is not safe for concurrent use; run one evaluation per chain at a
// time.
type Env struct {
	outer *Env
	table map[string]Expr
}

// NewEnv creates an empty scope whose parent is outer (which may be nil).
func NewEnv(outer *Env) *Env {
	return &Env{outer: outer, table: make(map[string]Expr)}
}

// Outer returns the enclosing scope, or nil at the root.
func (e *Env) Outer() *Env { return e.outer }

// Lookup returns the nearest visible binding for name.
func (e *Env) Lookup(name string) (Expr, error) {
	for s := e; s != nil; s = s.outer {
		if v, ok := s.table[name]; ok {
			return v, nil
		}
	}
	return Nil, rtErr(KindUnboundSymbol, "unbound symbol: %s", name)
}

// Define binds name in this scope, replacing any binding already here and
// shadowing any outer one.
func (e *Env) Define(name string, v Expr) {
	e.table[name] = v
}

// FindOwner returns the nearest scope, starting with e, that binds name.
func (e *Env) FindOwner(name string) (*Env, bool) {
	for s := e; s != nil; s = s.outer {
		if _, ok := s.table[name]; ok {
			return s, true
		}
	}
	return nil, false
}

// Set overwrites the binding of name in the scope that owns it. It never
// creates a binding.
func (e *Env) Set(name string, v Expr) error {
	owner, ok := e.FindOwner(name)
	if !ok {
		return rtErr(KindUnboundSymbol, "cannot set! unbound symbol: %s", name)
	}
	owner.table[name] = v
	return nil
}

// Names lists the names bound directly in this scope, sorted.
func (e *Env) Names() []string {
	out := make([]string, 0, len(e.table))
	for k := range e.table {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
