package parser

import (
	"github.com/adele-lang/adele/compiler/lexer"
)

// parseScenarioBlock parses the scenario compound statement:
//
//	scenario '{' [configuration] [attack] '}'
//
// with the two inner blocks accepted in either order, each at most once.
func (p *Parser) parseScenarioBlock() (*Scenario, error) {
	if _, err := p.consume(lexer.TOKEN_SCENARIO); err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.TOKEN_CURVY_L); err != nil {
		return nil, err
	}
	p.ctx.Scopes.OpenScope()

	var configuration *Configuration
	var attack *Attack

	for !p.check(lexer.TOKEN_CURVY_R) && !p.isAtEnd() {
		switch {
		case p.check(lexer.TOKEN_CONFIGURATION):
			if configuration != nil {
				return nil, p.syntaxError(p.peek())
			}
			block, err := p.parseConfigurationBlock()
			if err != nil {
				return nil, err
			}
			configuration = block
		case p.check(lexer.TOKEN_ATTACK):
			if attack != nil {
				return nil, p.syntaxError(p.peek())
			}
			block, err := p.parseAttackBlock()
			if err != nil {
				return nil, err
			}
			attack = block
		default:
			return nil, p.syntaxError(p.peek())
		}
	}

	if _, err := p.consume(lexer.TOKEN_CURVY_R); err != nil {
		return nil, err
	}
	p.ctx.Scopes.CloseScope()

	return &Scenario{Configuration: configuration, Attack: attack}, nil
}

// parseConfigurationBlock parses the configuration compound statement:
//
//	configuration '{' action+ '}'
//
// Actions are staged in lexical order and drained when the block closes.
func (p *Parser) parseConfigurationBlock() (*Configuration, error) {
	if _, err := p.consume(lexer.TOKEN_CONFIGURATION); err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.TOKEN_CURVY_L); err != nil {
		return nil, err
	}
	p.ctx.Scopes.OpenScope()

	if !p.isConfigAction(p.peek().Type) {
		return nil, p.syntaxError(p.peek())
	}
	for p.isConfigAction(p.peek().Type) {
		action, err := p.parseConfigAction()
		if err != nil {
			return nil, err
		}
		p.ctx.Staging.AppendAction(action)
	}

	if _, err := p.consume(lexer.TOKEN_CURVY_R); err != nil {
		return nil, err
	}
	p.ctx.Scopes.CloseScope()

	actions := append([]SimpleStatement(nil), p.ctx.Staging.Actions()...)
	p.ctx.Staging.Clean(ProductionAction)

	return &Configuration{Actions: actions}, nil
}

// parseConfigAction parses one configuration action: a set* call with a
// single literal argument, terminated by one or more semicolons. The
// literal is interned and the action holds its identifier, never the
// value.
func (p *Parser) parseConfigAction() (SimpleStatement, error) {
	actionToken := p.advance()

	if _, err := p.consume(lexer.TOKEN_ROUND_L); err != nil {
		return nil, err
	}

	var action SimpleStatement
	switch actionToken.Type {
	case lexer.TOKEN_SET_UNIT_TIME:
		literal, err := p.parseStringLiteral()
		if err != nil {
			return nil, err
		}
		action = &SetUnitTime{Reference: literal.Identifier}
	case lexer.TOKEN_SET_UNIT_LENGTH:
		literal, err := p.parseStringLiteral()
		if err != nil {
			return nil, err
		}
		action = &SetUnitLength{Reference: literal.Identifier}
	case lexer.TOKEN_SET_UNIT_ANGLE:
		literal, err := p.parseStringLiteral()
		if err != nil {
			return nil, err
		}
		action = &SetUnitAngle{Reference: literal.Identifier}
	case lexer.TOKEN_SET_TIME_START:
		literal, err := p.parseNumericLiteral()
		if err != nil {
			return nil, err
		}
		// Time cannot be negative
		if numericValue(literal.Value) < 0 {
			return nil, &ParseError{
				Code:     CodeInvalidArgument,
				Message:  "Time cannot be negative",
				Location: TokenToLocation(actionToken),
			}
		}
		action = &SetTimeStart{Reference: literal.Identifier}
	default:
		return nil, p.syntaxError(actionToken)
	}

	if _, err := p.consume(lexer.TOKEN_ROUND_R); err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.TOKEN_SEMICOLON); err != nil {
		return nil, err
	}
	for p.match(lexer.TOKEN_SEMICOLON) {
	}

	return action, nil
}

// parseStringLiteral parses a string literal and interns it
func (p *Parser) parseStringLiteral() (*Literal, error) {
	token, err := p.consume(lexer.TOKEN_LITERAL_STRING)
	if err != nil {
		return nil, err
	}
	return p.internLiteral("string", token)
}

// parseNumericLiteral parses an integer or float literal and interns it
func (p *Parser) parseNumericLiteral() (*Literal, error) {
	if p.check(lexer.TOKEN_LITERAL_INTEGER) {
		return p.internLiteral("integer", p.advance())
	}
	if p.check(lexer.TOKEN_LITERAL_FLOAT) {
		return p.internLiteral("float", p.advance())
	}
	return nil, p.syntaxError(p.peek())
}

// internLiteral stores the literal token's value, surfacing an interning
// conflict at the token's line
func (p *Parser) internLiteral(typ string, token lexer.Token) (*Literal, error) {
	literal, err := p.ctx.Symbols.StoreLiteral(typ, token.Literal)
	if err != nil {
		return nil, &ParseError{
			Code:     CodeInvalidArgument,
			Message:  err.Error(),
			Location: TokenToLocation(token),
		}
	}
	return literal, nil
}

// numericValue widens an interned numeric literal value for comparisons
func numericValue(v interface{}) float64 {
	switch value := v.(type) {
	case int64:
		return float64(value)
	case float64:
		return value
	default:
		return 0
	}
}

// parseAttackBlock parses the attack compound statement:
//
//	attack '{' (declaration | attack-block)* '}'
//
// Only variable declarations and nested blocks are parsed; the action
// grammar is not implemented yet, so the returned node is a placeholder
// and declarations live in the symbol table.
func (p *Parser) parseAttackBlock() (*Attack, error) {
	if _, err := p.consume(lexer.TOKEN_ATTACK); err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.TOKEN_CURVY_L); err != nil {
		return nil, err
	}
	p.ctx.Scopes.OpenScope()

	for {
		if p.isTypeKeyword(p.peek().Type) {
			if err := p.parseDeclaration(); err != nil {
				return nil, err
			}
			continue
		}
		if p.check(lexer.TOKEN_ATTACK) {
			if _, err := p.parseAttackBlock(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}

	if _, err := p.consume(lexer.TOKEN_CURVY_R); err != nil {
		return nil, err
	}
	p.ctx.Scopes.CloseScope()

	return &Attack{}, nil
}

// parseDeclaration parses a variable declaration: a type keyword, a
// comma-separated identifier list and a semicolon. Every identifier
// passes the shadowing assertion before being staged; the staged list is
// stored into the current scope when the declaration reduces.
func (p *Parser) parseDeclaration() error {
	typeToken := p.advance()

	for {
		identToken, err := p.consume(lexer.TOKEN_LITERAL_IDENTIFIER)
		if err != nil {
			return err
		}
		identifier := identToken.Lexeme
		if err := p.ctx.assertNotDeclared(identifier, TokenToLocation(identToken)); err != nil {
			return err
		}
		p.ctx.Staging.AppendIdentifier(identifier)

		if !p.match(lexer.TOKEN_COMMA) {
			break
		}
	}

	if _, err := p.consume(lexer.TOKEN_SEMICOLON); err != nil {
		return err
	}

	scope := p.ctx.Scopes.CurrentScopeID()
	for _, identifier := range p.ctx.Staging.Identifiers() {
		p.ctx.Symbols.StoreVariable(scope, identifier, typeToken.Lexeme)
	}
	p.ctx.Staging.Clean(ProductionIdentifier)

	return nil
}
