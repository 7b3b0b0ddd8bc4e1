package parser

import "fmt"

// Error codes raised by the grammar
const (
	CodeSyntaxError         = "P001"
	CodeDuplicateIdentifier = "P002"
	CodeInvalidArgument     = "P003"
)

// ParseError represents a parsing error. The parser aborts on the first
// one; there is no recovery.
type ParseError struct {
	Code     string
	Message  string
	Location SourceLocation
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %s: %s", e.Location.File, e.Location.Line, e.Code, e.Message)
}
