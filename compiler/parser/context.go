package parser

// Context bundles the mutable state the grammar threads through a single
// parse: the scope handler, the symbol table and the staging buffers.
// A fresh Context is built per invocation so repeated parses do not
// bleed into each other; after a failed parse the Context is unusable
// and must be dropped.
type Context struct {
	Scopes  *ScopeHandler
	Symbols *SymbolTable
	Staging *Staging
}

// NewContext creates the state for one parse
func NewContext() *Context {
	return &Context{
		Scopes:  NewScopeHandler(),
		Symbols: NewSymbolTable(),
		Staging: NewStaging(),
	}
}

// assertNotDeclared raises the duplicate-identifier error when the
// identifier is already staged in the declaration being reduced or
// declared in the current scope or any enclosing one. Shadowing is
// forbidden.
func (c *Context) assertNotDeclared(identifier string, loc SourceLocation) error {
	if c.Staging.ContainsIdentifier(identifier) {
		return &ParseError{
			Code:     CodeDuplicateIdentifier,
			Message:  "The identifier '" + identifier + "' is already declared",
			Location: loc,
		}
	}
	if c.Symbols.DeclaredIn(c.Scopes.EnclosingScopeIDs(), identifier) {
		return &ParseError{
			Code:     CodeDuplicateIdentifier,
			Message:  "The identifier '" + identifier + "' is already declared",
			Location: loc,
		}
	}
	return nil
}
