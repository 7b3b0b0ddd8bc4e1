package errors

import (
	"encoding/json"
	"io"
)

// JSONReport is the machine-readable shape of a failed run
type JSONReport struct {
	Status string            `json:"status"`
	Errors []TranslatorError `json:"errors"`
}

// WriteJSON renders the errors as an indented JSON report
func WriteJSON(w io.Writer, errs ...TranslatorError) error {
	report := JSONReport{
		Status: "error",
		Errors: errs,
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}
