// Package translate glues the translation pipeline together: it
// validates the driver options, reads the ADeLe source, runs the lexer,
// the parser and the requested interpreter, and writes the output file.
package translate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"go.uber.org/zap"

	"github.com/adele-lang/adele/compiler/errors"
	"github.com/adele-lang/adele/compiler/interpreter"
	"github.com/adele-lang/adele/compiler/lexer"
	"github.com/adele-lang/adele/compiler/parser"
)

// Options configures one translation run
type Options struct {
	Source      string // path to the ADeLe source file, mandatory
	Interpreter string // output interpreter name, mandatory
	Output      string // destination path, defaulted when empty
	Force       bool   // overwrite the output without prompting

	Logger *zap.Logger
	// Prompt asks the user whether an existing output file may be
	// overwritten. Defaults to an interactive [yes/no] question on
	// standard input.
	Prompt func(path string) (bool, error)
}

// Result reports what a translation run did
type Result struct {
	OutputPath string
	Written    bool
	Declined   bool // the user declined the overwrite prompt
}

// ValidationError represents a driver validation failure
type ValidationError struct {
	Code    string
	Message string
}

// Error implements the error interface
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Run executes the pipeline for the given options
func Run(opts *Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	prompt := opts.Prompt
	if prompt == nil {
		prompt = askOverwrite
	}

	output, err := validate(opts, logger)
	if err != nil {
		return nil, err
	}

	// Checks if the output file already exists and if it can be overwritten
	if info, statErr := os.Stat(output); statErr == nil {
		if info.IsDir() {
			return nil, ValidationError{
				Code:    errors.CodeOutputNotAFile,
				Message: fmt.Sprintf("The (output) path '%s' does not refer a file", output),
			}
		}
		if opts.Force {
			logger.Info("the output file will be overwritten", zap.String("output", output))
		} else {
			logger.Info("the output file already exists", zap.String("output", output))
			overwrite, promptErr := prompt(output)
			if promptErr != nil {
				return nil, promptErr
			}
			if !overwrite {
				logger.Info("it was chosen not to overwrite, will not proceed")
				return &Result{OutputPath: output, Declined: true}, nil
			}
		}
	}

	source, err := os.ReadFile(opts.Source)
	if err != nil {
		return nil, err
	}

	logger.Info("parsing the source file", zap.String("source", opts.Source))
	scenario, err := parse(string(source), opts.Source)
	if err != nil {
		return nil, err
	}
	if scenario == nil {
		logger.Info("the source file is empty, nothing to write")
		return &Result{OutputPath: output}, nil
	}

	logger.Info("interpreting the scenario", zap.String("interpreter", opts.Interpreter))
	text, err := interpreter.Interpret(scenario, opts.Interpreter)
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(output, []byte(text), 0o644); err != nil {
		return nil, err
	}
	logger.Info("the output file has been written", zap.String("output", output))

	return &Result{OutputPath: output, Written: true}, nil
}

// parse runs the lexer and the grammar over the source text
func parse(source, file string) (*parser.Scenario, error) {
	tokens, err := lexer.New(source, file).ScanTokens()
	if err != nil {
		return nil, err
	}
	return parser.New(tokens).Parse()
}

// validate checks the options and resolves the output path
func validate(opts *Options, logger *zap.Logger) (string, error) {
	// Checks if the source file exists
	info, err := os.Stat(opts.Source)
	if os.IsNotExist(err) {
		return "", ValidationError{
			Code:    errors.CodeSourceNotFound,
			Message: fmt.Sprintf("The source file '%s' does not exist", opts.Source),
		}
	}
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", ValidationError{
			Code:    errors.CodeNotAFile,
			Message: fmt.Sprintf("The (source) path '%s' does not refer a file", opts.Source),
		}
	}

	// Checks if the parser supports the requested interpreter
	if !interpreter.Exists(opts.Interpreter) {
		return "", ValidationError{
			Code:    errors.CodeUnknownOutputKind,
			Message: fmt.Sprintf("The interpreter '%s' is not supported", opts.Interpreter),
		}
	}

	// Defaults the output path to the source path with the interpreter
	// name as extension
	output := opts.Output
	if output == "" {
		output = strings.TrimSuffix(opts.Source, filepath.Ext(opts.Source)) +
			"." + strings.ToLower(opts.Interpreter)
		logger.Info("the output file is missing, using default", zap.String("output", output))
	}

	return output, nil
}

// askOverwrite asks the interactive [yes/no] overwrite question
func askOverwrite(path string) (bool, error) {
	overwrite := false
	question := &survey.Confirm{
		Message: fmt.Sprintf("The output file '%s' already exists, overwrite?", path),
		Default: false,
	}
	if err := survey.AskOne(question, &overwrite); err != nil {
		return false, err
	}
	return overwrite, nil
}

// Classify maps a pipeline error onto the shared error model for
// reporting at the driver boundary
func Classify(err error) errors.TranslatorError {
	switch e := err.(type) {
	case lexer.LexError:
		return errors.New(errors.PhaseLexer, e.Code, e.Message,
			errors.SourceLocation{File: e.File, Line: e.Line}, errors.Fatal)
	case *parser.ParseError:
		return errors.New(errors.PhaseParser, e.Code, e.Message,
			errors.SourceLocation{File: e.Location.File, Line: e.Location.Line}, errors.Fatal)
	case interpreter.UnknownInterpreterError:
		return errors.New(errors.PhaseInterpreter, errors.CodeUnknownInterpreter, e.Error(),
			errors.SourceLocation{}, errors.Fatal)
	case interpreter.InterpretationError:
		return errors.New(errors.PhaseInterpreter, errors.CodeInterpretation, e.Message,
			errors.SourceLocation{}, errors.Fatal)
	case ValidationError:
		return errors.New(errors.PhaseDriver, e.Code, e.Message,
			errors.SourceLocation{}, errors.Fatal)
	default:
		return errors.New(errors.PhaseDriver, "D000", err.Error(),
			errors.SourceLocation{}, errors.Fatal)
	}
}
