package main

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/adele-lang/adele/compiler/errors"
	"github.com/adele-lang/adele/internal/config"
	"github.com/adele-lang/adele/internal/tooling/translate"
)

var (
	// Version information - will be set at build time
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// errReported marks failures already rendered on standard error
var errReported = stderrors.New("error already reported")

// usageError marks command line argument errors, which exit with code 2
type usageError struct {
	err error
}

// Error implements the error interface
func (e *usageError) Error() string { return e.err.Error() }

// Unwrap exposes the wrapped error
func (e *usageError) Unwrap() error { return e.err }

var (
	flagSource      string
	flagInterpreter string
	flagOutput      string
	flagForce       bool
	flagVerbose     bool
	flagJSON        bool
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "adele",
		Short: "Translator for ADeLe, the Attack Description Language",
		Long: `adele translates cyber-physical attack scenarios written in ADeLe
into a machine-readable representation for downstream tools.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runTranslate,
	}

	rootCmd.Flags().StringVarP(&flagSource, "source", "s", "", "The path to the source file to be processed. It is mandatory.")
	rootCmd.Flags().StringVarP(&flagInterpreter, "interpreter", "i", "", "The interpreter of the parsing engine. It is mandatory.")
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "The path to the output file.")
	rootCmd.Flags().BoolVarP(&flagForce, "force", "f", false, "Forces the overwrite of the output file.")
	rootCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Show detailed log output")
	rootCmd.Flags().BoolVar(&flagJSON, "json", false, "Output errors in JSON format")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	rootCmd.AddCommand(versionCmd)

	return rootCmd
}

func runTranslate(cmd *cobra.Command, args []string) error {
	if flagSource == "" {
		return &usageError{err: fmt.Errorf("the (path to the) source file is missing")}
	}
	if flagInterpreter == "" {
		return &usageError{err: fmt.Errorf("the interpreter is missing")}
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := newLogger(flagVerbose, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	result, err := translate.Run(&translate.Options{
		Source:      flagSource,
		Interpreter: flagInterpreter,
		Output:      flagOutput,
		Force:       flagForce,
		Logger:      logger,
	})
	if err != nil {
		reportError(translate.Classify(err), cfg)
		return errReported
	}

	if result.Declined {
		return nil
	}
	if result.Written {
		fmt.Printf("✓ %s\n", result.OutputPath)
	}
	return nil
}

// reportError renders a pipeline error on standard error
func reportError(terr errors.TranslatorError, cfg *config.Config) {
	if flagJSON {
		errors.WriteJSON(os.Stderr, terr) //nolint:errcheck
		return
	}
	formatter := &errors.TerminalFormatter{NoColor: !cfg.Color}
	formatter.Write(os.Stderr, terr)
}

// newLogger builds the zap logger for one run
func newLogger(verbose bool, level string) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(parsed)
	return cfg.Build()
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		var uerr *usageError
		if stderrors.As(err, &uerr) {
			fmt.Fprintln(os.Stderr, "Error:", uerr.Error())
			fmt.Fprintln(os.Stderr, "Run 'adele --help' for usage.")
			os.Exit(2)
		}
		if !stderrors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
