package lexer

// Set identifies one of the three disjoint lexeme registries.
type Set int

const (
	SetKeyword Set = iota
	SetPunctuation
	SetLiteral
)

// String returns the registry name
func (s Set) String() string {
	switch s {
	case SetKeyword:
		return "keyword"
	case SetPunctuation:
		return "punctuation"
	case SetLiteral:
		return "literal"
	default:
		return "unknown"
	}
}

// Entry binds a token type to its lexeme: the literal spelling for
// keywords and punctuation, the recognizer pattern for literal kinds.
type Entry struct {
	Token  TokenType
	Lexeme string
}

// keywordEntries lists the reserved words of ADeLe
var keywordEntries = []Entry{
	// Unscoped types
	{TOKEN_BOOLEAN, "boolean"},
	{TOKEN_CHAR, "char"},
	{TOKEN_INTEGER, "integer"},
	{TOKEN_FLOAT, "float"},
	{TOKEN_STRING, "string"},
	// Scoped types, when the size does really matter
	{TOKEN_UINT8, "uint8"},
	{TOKEN_UINT16, "uint16"},
	{TOKEN_UINT32, "uint32"},
	{TOKEN_UINT64, "uint64"},
	{TOKEN_SINT8, "sint8"},
	{TOKEN_SINT16, "sint16"},
	{TOKEN_SINT32, "sint32"},
	{TOKEN_SINT64, "sint64"},
	{TOKEN_FLOAT32, "float32"},
	{TOKEN_FLOAT64, "float64"},
	// Generic message
	{TOKEN_MESSAGE, "message"},
	// Boolean values
	{TOKEN_FALSE, "false"},
	{TOKEN_TRUE, "true"},
	// Configuration actions
	{TOKEN_SET_UNIT_TIME, "setUnitTime"},
	{TOKEN_SET_UNIT_LENGTH, "setUnitLength"},
	{TOKEN_SET_UNIT_ANGLE, "setUnitAngle"},
	{TOKEN_SET_TIME_START, "setTimeStart"},
	// Attack actions
	{TOKEN_ELEMENT_MISPLACE, "elementMisplace"},
	{TOKEN_ELEMENT_ROTATE, "elementRotate"},
	{TOKEN_ELEMENT_DECEIVE, "elementDeceive"},
	{TOKEN_ELEMENT_DISABLE, "elementDisable"},
	{TOKEN_ELEMENT_ENABLE, "elementEnable"},
	{TOKEN_ELEMENT_DESTROY, "elementDestroy"},
	{TOKEN_MESSAGE_WRITE, "messageWrite"},
	{TOKEN_MESSAGE_READ, "messageRead"},
	{TOKEN_MESSAGE_FORWARD, "messageForward"},
	{TOKEN_MESSAGE_INJECT, "messageInject"},
	{TOKEN_MESSAGE_CREATE, "messageCreate"},
	{TOKEN_MESSAGE_CLONE, "messageClone"},
	{TOKEN_MESSAGE_DROP, "messageDrop"},
	// Compound statements
	{TOKEN_SCENARIO, "scenario"},
	{TOKEN_CONFIGURATION, "configuration"},
	{TOKEN_ATTACK, "attack"},
	// Statements
	{TOKEN_AT, "at"},
	{TOKEN_FOREACH, "foreach"},
	{TOKEN_FROM, "from"},
	{TOKEN_FOR, "for"},
	{TOKEN_IF, "if"},
	{TOKEN_ELSE, "else"},
	// Containers
	{TOKEN_LIST, "list"},
	{TOKEN_RANGE, "range"},
	// Accessors
	{TOKEN_IN, "in"},
	// Well-known values
	{TOKEN_CAPTURED, "CAPTURED"},
	{TOKEN_SELF, "SELF"},
	{TOKEN_START, "START"},
	{TOKEN_END, "END"},
	{TOKEN_TX, "TX"},
	{TOKEN_RX, "RX"},
	// Time units
	{TOKEN_HOUR, "h"},
	{TOKEN_MINUTE, "min"},
	{TOKEN_SECOND, "s"},
	{TOKEN_SECOND_MILLI, "ms"},
	{TOKEN_SECOND_MICRO, "us"},
}

// punctuationEntries lists operators and delimiters, longest spelling
// first where one is a prefix of another is not required here: the
// scanner applies longest-match itself.
var punctuationEntries = []Entry{
	// Basic assignment operator
	{TOKEN_ASSIGN, "="},
	// Compound assignment operators
	{TOKEN_ASSIGN_ADD, "+="},
	{TOKEN_ASSIGN_SUB, "-="},
	{TOKEN_ASSIGN_MUL, "*="},
	{TOKEN_ASSIGN_DIV, "/="},
	{TOKEN_ASSIGN_MOD, "%="},
	// Comparison operators
	{TOKEN_NOT_EQUAL_TO, "!="},
	{TOKEN_EQUAL_TO, "=="},
	{TOKEN_GR_EQ_THAN, ">="},
	{TOKEN_LS_EQ_THAN, "<="},
	{TOKEN_GR_THAN, ">"},
	{TOKEN_LS_THAN, "<"},
	// Basic operators
	{TOKEN_ADD, "+"},
	{TOKEN_SUB, "-"},
	{TOKEN_MUL, "*"},
	{TOKEN_DIV, "/"},
	{TOKEN_MOD, "%"},
	{TOKEN_EXP, "^"},
	{TOKEN_NEG, "!"},
	// Logical operators
	{TOKEN_LOGIC_AND, "&&"},
	{TOKEN_LOGIC_OR, "||"},
	// Parenthesis
	{TOKEN_ROUND_L, "("},
	{TOKEN_ROUND_R, ")"},
	{TOKEN_BRACK_L, "["},
	{TOKEN_BRACK_R, "]"},
	{TOKEN_CURVY_L, "{"},
	{TOKEN_CURVY_R, "}"},
	// Other punctuation
	{TOKEN_SEMICOLON, ";"},
	{TOKEN_COMMA, ","},
	{TOKEN_COLON, ":"},
}

// literalEntries lists the literal kinds with their recognizer patterns
var literalEntries = []Entry{
	{TOKEN_LITERAL_IDENTIFIER, `[a-zA-Z][a-zA-Z_0-9]*`},
	{TOKEN_LITERAL_INTEGER, `-?\d+`},
	{TOKEN_LITERAL_FLOAT, `-?\d+\.\d+`},
	{TOKEN_LITERAL_STRING, `"([^\\"]|(\\.))*"`},
	{TOKEN_LITERAL_CHAR, `'.'`},
}

// entries returns the registry table for the given set
func entries(s Set) []Entry {
	switch s {
	case SetKeyword:
		return keywordEntries
	case SetPunctuation:
		return punctuationEntries
	case SetLiteral:
		return literalEntries
	default:
		return nil
	}
}

// Tokens returns the token types of the given registry, in declaration order
func Tokens(s Set) []TokenType {
	table := entries(s)
	tokens := make([]TokenType, len(table))
	for i, e := range table {
		tokens[i] = e.Token
	}
	return tokens
}

// Lexemes returns the lexemes of the given registry, in declaration order
func Lexemes(s Set) []string {
	table := entries(s)
	lexemes := make([]string, len(table))
	for i, e := range table {
		lexemes[i] = e.Lexeme
	}
	return lexemes
}

// ReverseMap returns the lexeme-to-token map of the given registry
func ReverseMap(s Set) map[string]TokenType {
	table := entries(s)
	m := make(map[string]TokenType, len(table))
	for _, e := range table {
		m[e.Lexeme] = e.Token
	}
	return m
}

// keywords maps keyword spellings to their token types for O(1) lookup
// during identifier promotion
var keywords = ReverseMap(SetKeyword)

// lookupKeyword checks if an identifier is a reserved word.
// Returns the keyword token type and true, or TOKEN_LITERAL_IDENTIFIER
// and false when the identifier is not reserved.
func lookupKeyword(identifier string) (TokenType, bool) {
	if tokenType, ok := keywords[identifier]; ok {
		return tokenType, true
	}
	return TOKEN_LITERAL_IDENTIFIER, false
}

func init() {
	verifyRegistries()
}

// verifyRegistries asserts that token names and lexemes are unique within
// each registry and pairwise disjoint across the three registries. A
// violation is a programming error in the tables above, not a runtime
// condition, so it panics.
func verifyRegistries() {
	seenTokens := make(map[string]Set)
	seenLexemes := make(map[string]Set)
	for _, s := range []Set{SetKeyword, SetPunctuation, SetLiteral} {
		for _, e := range entries(s) {
			name := e.Token.String()
			if owner, ok := seenTokens[name]; ok {
				panic("lexer: token " + name + " declared by both " + owner.String() + " and " + s.String() + " registries")
			}
			seenTokens[name] = s
			if owner, ok := seenLexemes[e.Lexeme]; ok {
				panic("lexer: lexeme " + e.Lexeme + " declared by both " + owner.String() + " and " + s.String() + " registries")
			}
			seenLexemes[e.Lexeme] = s
		}
	}
}
