package errors

// Pipeline phases
const (
	PhaseLexer       = "lexer"
	PhaseParser      = "parser"
	PhaseInterpreter = "interpreter"
	PhaseDriver      = "driver"
)

// Error codes, grouped by phase
const (
	// Lexer
	CodeIllegalCharacter = "L001"
	CodeMalformedNumber  = "L002"

	// Parser
	CodeSyntaxError         = "P001"
	CodeDuplicateIdentifier = "P002"
	CodeInvalidArgument     = "P003"

	// Interpreter
	CodeUnknownInterpreter = "I001"
	CodeInterpretation     = "I002"

	// Driver validation
	CodeSourceNotFound    = "D001"
	CodeNotAFile          = "D002"
	CodeUnknownOutputKind = "D003"
	CodeOutputNotAFile    = "D004"
)

// descriptions maps each code onto a short description of the failure
var descriptions = map[string]string{
	CodeIllegalCharacter:    "invalid input character",
	CodeMalformedNumber:     "numeric conversion failure",
	CodeSyntaxError:         "unexpected token",
	CodeDuplicateIdentifier: "identifier shadowing or re-declaration",
	CodeInvalidArgument:     "domain rule violated",
	CodeUnknownInterpreter:  "unsupported output kind",
	CodeInterpretation:      "structural failure during interpretation",
	CodeSourceNotFound:      "source file does not exist",
	CodeNotAFile:            "source path does not refer to a file",
	CodeUnknownOutputKind:   "interpreter not supported",
	CodeOutputNotAFile:      "output path does not refer to a file",
}

// Describe returns the short description of the given error code
func Describe(code string) string {
	if d, ok := descriptions[code]; ok {
		return d
	}
	return "unknown error"
}

// PhaseOf returns the pipeline phase that raises the given code
func PhaseOf(code string) string {
	if len(code) == 0 {
		return ""
	}
	switch code[0] {
	case 'L':
		return PhaseLexer
	case 'P':
		return PhaseParser
	case 'I':
		return PhaseInterpreter
	case 'D':
		return PhaseDriver
	default:
		return ""
	}
}
