package lexer

import (
	"strings"
	"testing"
)

// scan is a helper that scans the source and fails the test on error
func scan(t *testing.T, source string) []Token {
	t.Helper()
	tokens, err := New(source, "test.adele").ScanTokens()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	return tokens
}

// TestKeywords tests tokenization of every registered keyword
func TestKeywords(t *testing.T) {
	for _, entry := range keywordEntries {
		t.Run(entry.Lexeme, func(t *testing.T) {
			tokens := scan(t, entry.Lexeme)

			if len(tokens) != 2 { // keyword + EOF
				t.Fatalf("Expected 2 tokens, got %d", len(tokens))
			}
			if tokens[0].Type != entry.Token {
				t.Errorf("Expected token type %v, got %v", entry.Token, tokens[0].Type)
			}
		})
	}
}

// TestPunctuation tests tokenization of every operator and delimiter,
// including longest-match behavior
func TestPunctuation(t *testing.T) {
	for _, entry := range punctuationEntries {
		t.Run(entry.Lexeme, func(t *testing.T) {
			tokens := scan(t, entry.Lexeme)

			if len(tokens) != 2 {
				t.Fatalf("Expected 2 tokens, got %d: %v", len(tokens), tokens)
			}
			if tokens[0].Type != entry.Token {
				t.Errorf("Expected token type %v, got %v", entry.Token, tokens[0].Type)
			}
		})
	}
}

// TestLongestMatch tests that compound operators win over their prefixes
func TestLongestMatch(t *testing.T) {
	tests := []struct {
		input    string
		expected []TokenType
	}{
		{"+=", []TokenType{TOKEN_ASSIGN_ADD}},
		{"+ =", []TokenType{TOKEN_ADD, TOKEN_ASSIGN}},
		{"===", []TokenType{TOKEN_EQUAL_TO, TOKEN_ASSIGN}},
		{"<=>", []TokenType{TOKEN_LS_EQ_THAN, TOKEN_GR_THAN}},
		{"!=!", []TokenType{TOKEN_NOT_EQUAL_TO, TOKEN_NEG}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := scan(t, tt.input)
			if len(tokens) != len(tt.expected)+1 {
				t.Fatalf("Expected %d tokens, got %d", len(tt.expected)+1, len(tokens))
			}
			for i, expected := range tt.expected {
				if tokens[i].Type != expected {
					t.Errorf("Token %d: expected %v, got %v", i, expected, tokens[i].Type)
				}
			}
		})
	}
}

// TestIdentifiers tests identifier tokenization and keyword promotion
func TestIdentifiers(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected TokenType
		lexeme   string
	}{
		{"simple", "node", TOKEN_LITERAL_IDENTIFIER, "node"},
		{"underscore", "node_id", TOKEN_LITERAL_IDENTIFIER, "node_id"},
		{"digits", "node42", TOKEN_LITERAL_IDENTIFIER, "node42"},
		{"camelCase", "nodeId", TOKEN_LITERAL_IDENTIFIER, "nodeId"},
		{"keyword", "scenario", TOKEN_SCENARIO, "scenario"},
		{"case_sensitive", "Scenario", TOKEN_LITERAL_IDENTIFIER, "Scenario"},
		{"keyword_prefix", "scenarios", TOKEN_LITERAL_IDENTIFIER, "scenarios"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := scan(t, tt.input)
			if len(tokens) != 2 {
				t.Fatalf("Expected 2 tokens, got %d", len(tokens))
			}
			if tokens[0].Type != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, tokens[0].Type)
			}
			if tokens[0].Lexeme != tt.lexeme {
				t.Errorf("Expected lexeme %q, got %q", tt.lexeme, tokens[0].Lexeme)
			}
		})
	}
}

// TestIntegerLiterals tests integer literal scanning and conversion
func TestIntegerLiterals(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"0", 0},
		{"42", 42},
		{"-7", -7},
		{"1000000", 1000000},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := scan(t, tt.input)
			if tokens[0].Type != TOKEN_LITERAL_INTEGER {
				t.Fatalf("Expected integer literal, got %v", tokens[0].Type)
			}
			if tokens[0].Literal.(int64) != tt.expected {
				t.Errorf("Expected %d, got %v", tt.expected, tokens[0].Literal)
			}
		})
	}
}

// TestFloatLiterals tests float literal scanning and conversion
func TestFloatLiterals(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"0.0", 0.0},
		{"3.14", 3.14},
		{"-0.5", -0.5},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := scan(t, tt.input)
			if tokens[0].Type != TOKEN_LITERAL_FLOAT {
				t.Fatalf("Expected float literal, got %v", tokens[0].Type)
			}
			if tokens[0].Literal.(float64) != tt.expected {
				t.Errorf("Expected %f, got %v", tt.expected, tokens[0].Literal)
			}
		})
	}
}

// TestStringLiterals tests string literal scanning, quotes stripped
func TestStringLiterals(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", `"s"`, "s"},
		{"empty", `""`, ""},
		{"spaces", `"a b c"`, "a b c"},
		{"escape", `"a\"b"`, `a\"b`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := scan(t, tt.input)
			if tokens[0].Type != TOKEN_LITERAL_STRING {
				t.Fatalf("Expected string literal, got %v", tokens[0].Type)
			}
			if tokens[0].Literal.(string) != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, tokens[0].Literal)
			}
		})
	}
}

// TestCharLiterals tests character literal scanning, quotes stripped
func TestCharLiterals(t *testing.T) {
	tokens := scan(t, "'x'")
	if tokens[0].Type != TOKEN_LITERAL_CHAR {
		t.Fatalf("Expected char literal, got %v", tokens[0].Type)
	}
	if tokens[0].Literal.(string) != "x" {
		t.Errorf("Expected 'x', got %v", tokens[0].Literal)
	}
}

// TestComments tests that # comments are ignored to end of line
func TestComments(t *testing.T) {
	tokens := scan(t, "scenario # a comment { } ;\n{")
	expected := []TokenType{TOKEN_SCENARIO, TOKEN_CURVY_L, TOKEN_EOF}
	if len(tokens) != len(expected) {
		t.Fatalf("Expected %d tokens, got %d: %v", len(expected), len(tokens), tokens)
	}
	for i, e := range expected {
		if tokens[i].Type != e {
			t.Errorf("Token %d: expected %v, got %v", i, e, tokens[i].Type)
		}
	}
}

// TestLineTracking tests that every token carries its source line
func TestLineTracking(t *testing.T) {
	source := "scenario\n{\n\n}\n"
	tokens := scan(t, source)

	expected := []struct {
		tokenType TokenType
		line      int
	}{
		{TOKEN_SCENARIO, 1},
		{TOKEN_CURVY_L, 2},
		{TOKEN_CURVY_R, 4},
	}

	for i, e := range expected {
		if tokens[i].Type != e.tokenType {
			t.Errorf("Token %d: expected %v, got %v", i, e.tokenType, tokens[i].Type)
		}
		if tokens[i].Line != e.line {
			t.Errorf("Token %d: expected line %d, got %d", i, e.line, tokens[i].Line)
		}
	}
}

// TestIllegalCharacter tests the illegal-character error contract
func TestIllegalCharacter(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  int
	}{
		{"at_sign", "@", 1},
		{"lone_ampersand", "&", 1},
		{"lone_pipe", "scenario |", 1},
		{"on_later_line", "scenario\n{\n$\n}", 3},
		{"unterminated_string", `"abc`, 1},
		{"unterminated_char", "'a", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.input, "test.adele").ScanTokens()
			if err == nil {
				t.Fatal("Expected an error, got none")
			}
			lexErr, ok := err.(LexError)
			if !ok {
				t.Fatalf("Expected LexError, got %T", err)
			}
			if lexErr.Code != "L001" {
				t.Errorf("Expected code L001, got %s", lexErr.Code)
			}
			if lexErr.Line != tt.line {
				t.Errorf("Expected line %d, got %d", tt.line, lexErr.Line)
			}
		})
	}
}

// TestMalformedNumber tests the malformed-number error contract
func TestMalformedNumber(t *testing.T) {
	// Exceeds int64, so the conversion fails
	huge := strings.Repeat("9", 40)
	_, err := New(huge, "test.adele").ScanTokens()
	if err == nil {
		t.Fatal("Expected an error, got none")
	}
	lexErr, ok := err.(LexError)
	if !ok {
		t.Fatalf("Expected LexError, got %T", err)
	}
	if lexErr.Code != "L002" {
		t.Errorf("Expected code L002, got %s", lexErr.Code)
	}
}

// TestEmptySource tests that empty input yields only EOF
func TestEmptySource(t *testing.T) {
	tokens := scan(t, "")
	if len(tokens) != 1 || tokens[0].Type != TOKEN_EOF {
		t.Fatalf("Expected a lone EOF token, got %v", tokens)
	}
}

// TestConfigurationSnippet tests a realistic source fragment
func TestConfigurationSnippet(t *testing.T) {
	source := `scenario {
  configuration { setUnitTime("s"); setTimeStart(0); }
}`
	tokens := scan(t, source)

	expected := []TokenType{
		TOKEN_SCENARIO, TOKEN_CURVY_L,
		TOKEN_CONFIGURATION, TOKEN_CURVY_L,
		TOKEN_SET_UNIT_TIME, TOKEN_ROUND_L, TOKEN_LITERAL_STRING, TOKEN_ROUND_R, TOKEN_SEMICOLON,
		TOKEN_SET_TIME_START, TOKEN_ROUND_L, TOKEN_LITERAL_INTEGER, TOKEN_ROUND_R, TOKEN_SEMICOLON,
		TOKEN_CURVY_R,
		TOKEN_CURVY_R,
		TOKEN_EOF,
	}

	if len(tokens) != len(expected) {
		t.Fatalf("Expected %d tokens, got %d", len(expected), len(tokens))
	}
	for i, e := range expected {
		if tokens[i].Type != e {
			t.Errorf("Token %d: expected %v, got %v", i, e, tokens[i].Type)
		}
	}
}
