package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app holds global flags and the logger shared by every subcommand.
type app struct {
	verbose         bool
	compiler        string
	compilerVerbose bool
	concurrency     int

	logger *zap.Logger
}

// newRootCmd builds a fresh command tree (one per Execute, so tests stay isolated).
func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "seqcheck",
		Short: "Validate pattern compiler output against known sequence families",
		Long: `seqcheck checks the numeric sequences produced by a pattern compiler.

It generates exact reference sequences (arithmetic, geometric, modulo,
fibonacci, squares, factorial) and classifies output tokens into families
(arithmetic, geometric, modulo, fibonacci, monotonic/factorial, squares).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if a.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().StringVar(&a.compiler, "compiler", os.Getenv(compilerEnv),
		"compiler command line, source is passed on stdin (env "+compilerEnv+")")
	root.PersistentFlags().BoolVar(&a.compilerVerbose, "compiler-verbose", false, "pass --verbose to the compiler")
	root.PersistentFlags().IntVar(&a.concurrency, "concurrency", 4, "parallel compiles")

	root.AddCommand(
		newGenerateCmd(),
		newClassifyCmd(),
		newRunCmd(a),
		newDemoCmd(a),
	)

	return root
}
