package errors

import (
	"encoding/json"
	"fmt"
)

// Severity represents the severity level of an error
type Severity int

const (
	Info Severity = iota
	Warning
	Error
	Fatal
)

// String returns the string representation of the severity
func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	case Fatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// MarshalJSON implements json.Marshaler for Severity
func (s Severity) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// SourceLocation represents a location in source code. Only the line is
// authoritative for diagnostics; the lexer tracks it.
type SourceLocation struct {
	File string `json:"file"`
	Line int    `json:"line"`
}

// TranslatorError represents an error raised anywhere in the pipeline
type TranslatorError struct {
	Phase    string         // "lexer", "parser", "interpreter", "driver"
	Code     string         // "L001", "P002", ...
	Message  string         // Human-readable message
	Location SourceLocation // File and line, zero Line when not applicable
	Severity Severity
}

// Error implements the error interface
func (e TranslatorError) Error() string {
	if e.Location.Line > 0 {
		return fmt.Sprintf("%s:%d: %s: %s", e.Location.File, e.Location.Line, e.Code, e.Message)
	}
	if e.Location.File != "" {
		return fmt.Sprintf("%s: %s: %s", e.Location.File, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// New creates a new TranslatorError
func New(phase, code, message string, location SourceLocation, severity Severity) TranslatorError {
	return TranslatorError{
		Phase:    phase,
		Code:     code,
		Message:  message,
		Location: location,
		Severity: severity,
	}
}

// MarshalJSON implements json.Marshaler
func (e TranslatorError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Phase    string         `json:"phase"`
		Code     string         `json:"code"`
		Message  string         `json:"message"`
		Severity Severity       `json:"severity"`
		Location SourceLocation `json:"location"`
	}{
		Phase:    e.Phase,
		Code:     e.Code,
		Message:  e.Message,
		Severity: e.Severity,
		Location: e.Location,
	})
}

// IsError returns true if the error is at Error or Fatal severity
func (e TranslatorError) IsError() bool {
	return e.Severity == Error || e.Severity == Fatal
}

// IsFatal returns true if the error is at Fatal severity
func (e TranslatorError) IsFatal() bool {
	return e.Severity == Fatal
}
