package errors

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// TerminalFormatter renders translator errors for a terminal
type TerminalFormatter struct {
	NoColor bool
}

// Format renders a single error as a human-readable block
func (f *TerminalFormatter) Format(err TranslatorError) string {
	var b strings.Builder

	headerColor := color.New(color.FgRed, color.Bold)
	detailColor := color.New(color.FgWhite)
	if f.NoColor {
		headerColor.DisableColor()
		detailColor.DisableColor()
	}

	header := fmt.Sprintf("[%s] %s: %s", err.Phase, err.Code, Describe(err.Code))
	b.WriteString(headerColor.Sprint(header))
	b.WriteString("\n")

	if err.Location.Line > 0 {
		b.WriteString(detailColor.Sprintf("  %s:%d", err.Location.File, err.Location.Line))
		b.WriteString("\n")
	} else if err.Location.File != "" {
		b.WriteString(detailColor.Sprintf("  %s", err.Location.File))
		b.WriteString("\n")
	}

	b.WriteString(detailColor.Sprintf("  %s", err.Message))
	b.WriteString("\n")

	return b.String()
}

// Write renders the error to the given writer
func (f *TerminalFormatter) Write(w io.Writer, err TranslatorError) {
	fmt.Fprint(w, f.Format(err))
}
