package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tstools/tsvc/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "tsvc",
	Short: "Cached program facade over a TypeScript language engine",
	Long: `tsvc maintains one cached compiler program per project root, expands each
project to the transitive closure of its referenced and imported files, and
drives an engine's emit, formatting, and diagnostics for single files.

Engine adapters register themselves at build time; without one, only
commands that need no analysis (such as "files") are functional.`,

	SilenceUsage: true,
}

var (
	flagEngine  string
	flagLogFile string
	flagVerbose bool
	flagNoColor bool
)

func main() {
	rootCmd.Version = "0.1.0"

	rootCmd.PersistentFlags().StringVar(&flagEngine, "engine", "", "registered engine to analyze with")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "write logs to this file (rotated) instead of stderr")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "verbose logging")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(filesCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(emitCmd)
	rootCmd.AddCommand(fmtCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(quiet bool) logging.Logger {
	var logger logging.Logger
	switch {
	case flagLogFile != "":
		logger = logging.NewFileLogger(flagLogFile)
	case quiet:
		logger = logging.NewLogger(io.Discard)
	default:
		logger = logging.NewLogger(os.Stderr)
	}
	logger.SetVerbose(flagVerbose)
	return logger
}
