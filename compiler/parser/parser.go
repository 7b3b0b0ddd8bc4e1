package parser

import (
	"fmt"

	"github.com/adele-lang/adele/compiler/lexer"
)

// Parser transforms a token stream into the scenario object model. It
// follows the grammar left to right with no error recovery: the first
// syntax error, duplicate identifier or domain violation aborts the
// parse, and the context is dropped with it.
type Parser struct {
	tokens  []lexer.Token
	current int
	ctx     *Context
}

// New creates a new Parser from a token stream
func New(tokens []lexer.Token) *Parser {
	return &Parser{
		tokens:  tokens,
		current: 0,
		ctx:     NewContext(),
	}
}

// Context exposes the parse state, mainly for the symbol table
func (p *Parser) Context() *Context {
	return p.ctx
}

// Parse parses the token stream. Empty source yields a nil scenario and
// no error.
func (p *Parser) Parse() (*Scenario, error) {
	if p.isAtEnd() {
		return nil, nil
	}

	scenario, err := p.parseScenarioBlock()
	if err != nil {
		return nil, err
	}

	if !p.isAtEnd() {
		return nil, p.syntaxError(p.peek())
	}

	return scenario, nil
}

// Helper methods for token manipulation

// isAtEnd checks if we're at the end of the token stream
func (p *Parser) isAtEnd() bool {
	if p.current >= len(p.tokens) {
		return true
	}
	return p.tokens[p.current].Type == lexer.TOKEN_EOF
}

// peek returns the current token without consuming it
func (p *Parser) peek() lexer.Token {
	if p.current >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.current]
}

// previous returns the previous token
func (p *Parser) previous() lexer.Token {
	if p.current > 0 {
		return p.tokens[p.current-1]
	}
	return p.tokens[0]
}

// advance consumes and returns the current token
func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

// check checks if the current token is of the given type
func (p *Parser) check(tokenType lexer.TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == tokenType
}

// match consumes the current token iff it matches any of the given types
func (p *Parser) match(types ...lexer.TokenType) bool {
	for _, tokenType := range types {
		if p.check(tokenType) {
			p.advance()
			return true
		}
	}
	return false
}

// consume consumes a token of the given type or raises a syntax error
func (p *Parser) consume(tokenType lexer.TokenType) (lexer.Token, error) {
	if p.check(tokenType) {
		return p.advance(), nil
	}
	return lexer.Token{}, p.syntaxError(p.peek())
}

// isTypeKeyword checks if the token is one of the primitive type
// keywords that start a declaration
func (p *Parser) isTypeKeyword(tokenType lexer.TokenType) bool {
	switch tokenType {
	case lexer.TOKEN_BOOLEAN,
		lexer.TOKEN_CHAR,
		lexer.TOKEN_INTEGER,
		lexer.TOKEN_FLOAT,
		lexer.TOKEN_STRING,
		lexer.TOKEN_UINT8,
		lexer.TOKEN_UINT16,
		lexer.TOKEN_UINT32,
		lexer.TOKEN_UINT64,
		lexer.TOKEN_SINT8,
		lexer.TOKEN_SINT16,
		lexer.TOKEN_SINT32,
		lexer.TOKEN_SINT64,
		lexer.TOKEN_FLOAT32,
		lexer.TOKEN_FLOAT64:
		return true
	default:
		return false
	}
}

// isConfigAction checks if the token starts a configuration action
func (p *Parser) isConfigAction(tokenType lexer.TokenType) bool {
	switch tokenType {
	case lexer.TOKEN_SET_UNIT_TIME,
		lexer.TOKEN_SET_UNIT_LENGTH,
		lexer.TOKEN_SET_UNIT_ANGLE,
		lexer.TOKEN_SET_TIME_START:
		return true
	default:
		return false
	}
}

// syntaxError builds the fatal error for an unexpected token
func (p *Parser) syntaxError(token lexer.Token) error {
	text := token.Lexeme
	if token.Type == lexer.TOKEN_EOF {
		text = "EOF"
	}
	return &ParseError{
		Code:     CodeSyntaxError,
		Message:  fmt.Sprintf("Wrong syntax for the token '%s'", text),
		Location: TokenToLocation(token),
	}
}
