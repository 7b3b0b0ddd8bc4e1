// Package interpreter turns a parsed scenario model into its output
// representation. Interpreters are registered by name; the XML
// interpreter is the only one implemented so far, the registry exists so
// JSON and YAML renditions can plug in without touching the walk.
package interpreter

import (
	"fmt"
	"strings"

	"github.com/adele-lang/adele/compiler/parser"
)

// XML is the name of the XML interpreter
const XML = "xml"

// interpretFunc renders a model tree to its output text
type interpretFunc func(parser.Node) (string, error)

// interpreters is the registry of the known interpreters, keyed by
// lower-case name
var interpreters = map[string]interpretFunc{
	XML: interpretXML,
}

// UnknownInterpreterError is raised when an unknown interpreter is
// requested
type UnknownInterpreterError struct {
	Name string
}

// Error implements the error interface
func (e UnknownInterpreterError) Error() string {
	return fmt.Sprintf("The interpreter '%s' is unknown", e.Name)
}

// InterpretationError is raised on a structural failure during the walk
type InterpretationError struct {
	Message string
}

// Error implements the error interface
func (e InterpretationError) Error() string {
	return e.Message
}

// Exists checks if the given interpreter exists, case-insensitively
func Exists(name string) bool {
	_, ok := interpreters[strings.ToLower(name)]
	return ok
}

// Names returns the names of the registered interpreters
func Names() []string {
	names := make([]string, 0, len(interpreters))
	for name := range interpreters {
		names = append(names, name)
	}
	return names
}

// Interpret renders the given scenario with the requested interpreter
func Interpret(scenario parser.Node, name string) (string, error) {
	fn, ok := interpreters[strings.ToLower(name)]
	if !ok {
		return "", UnknownInterpreterError{Name: name}
	}
	return fn(scenario)
}
