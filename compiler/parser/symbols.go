package parser

import "fmt"

// Symbol is a named entry of the symbol table: an interned literal or a
// declared variable
type Symbol interface {
	Node
	SymbolIdentifier() string
}

// SymbolIdentifier implements Symbol
func (l *Literal) SymbolIdentifier() string { return l.Identifier }

// SymbolIdentifier implements Symbol
func (v *Variable) SymbolIdentifier() string { return v.Identifier }

// SymbolTable maps (scope, identifier) onto symbols. Literals are
// interned into the global scope regardless of where they appear;
// variables live in the scope that declared them.
type SymbolTable struct {
	scopes map[string]map[string]Symbol
}

// NewSymbolTable creates an empty symbol table
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		scopes: make(map[string]map[string]Symbol),
	}
}

// StoreLiteral interns a literal of the given type and value into the
// global scope and returns it. Idempotent: a literal with the same type
// and textual value yields the already-interned symbol. A collision with
// a symbol of a different type is reported, never clobbered. Integers and
// floats always derive distinct identifiers, but a char and a string with
// the same text (char 'x', string "x") both derive "_x" and collide.
func (st *SymbolTable) StoreLiteral(typ string, value interface{}) (*Literal, error) {
	literal := NewLiteral(typ, value)
	scope := st.scope(GlobalScope())
	if existing, ok := scope[literal.Identifier]; ok {
		lit, ok := existing.(*Literal)
		if !ok {
			return nil, fmt.Errorf("the identifier '%s' already names a %s", literal.Identifier, existing.NodeName())
		}
		if lit.Type != typ {
			return nil, fmt.Errorf("the identifier '%s' already names a literal of type '%s'", literal.Identifier, lit.Type)
		}
		return lit, nil
	}
	scope[literal.Identifier] = literal
	return literal, nil
}

// StoreVariable places a variable with no initial reference into the
// given scope and returns it. The caller is responsible for the
// shadowing assertion.
func (st *SymbolTable) StoreVariable(scopeID ScopeID, identifier, typ string) *Variable {
	variable := NewVariable(identifier, typ)
	st.scope(scopeID)[identifier] = variable
	return variable
}

// Retrieve looks up the identifier in the given scope, exact match only
func (st *SymbolTable) Retrieve(scopeID ScopeID, identifier string) (Symbol, bool) {
	scope, ok := st.scopes[scopeID.Key()]
	if !ok {
		return nil, false
	}
	symbol, ok := scope[identifier]
	return symbol, ok
}

// DeclaredIn reports whether the identifier is declared in any of the
// given scopes
func (st *SymbolTable) DeclaredIn(scopeIDs []ScopeID, identifier string) bool {
	for _, id := range scopeIDs {
		if _, ok := st.Retrieve(id, identifier); ok {
			return true
		}
	}
	return false
}

// scope returns the inner map of the given scope, creating it on demand
func (st *SymbolTable) scope(scopeID ScopeID) map[string]Symbol {
	key := scopeID.Key()
	inner, ok := st.scopes[key]
	if !ok {
		inner = make(map[string]Symbol)
		st.scopes[key] = inner
	}
	return inner
}
