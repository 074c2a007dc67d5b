package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/seqcheck/classify"
	"github.com/katalvlaran/seqcheck/compiler"
	"github.com/katalvlaran/seqcheck/harness"
	"github.com/katalvlaran/seqcheck/sequence"
	"github.com/spf13/cobra"
)

// errCasesFailed makes the process exit non-zero when a run has failures.
var errCasesFailed = errors.New("one or more cases failed")

func newGenerateCmd() *cobra.Command {
	var p sequence.Params

	cmd := &cobra.Command{
		Use:   "generate <kind>",
		Short: "Print a reference sequence",
		Long: `Print a reference sequence as comma-separated values.

Kinds: arithmetic, geometric, modulo, fibonacci, squares, factorial.
--step is the difference (arithmetic), ratio (geometric) or second seed (fibonacci).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p.Kind = sequence.Kind(args[0])
			values, err := sequence.Generate(p)
			if err != nil {
				return err
			}
			parts := make([]string, len(values))
			for i, v := range values {
				parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(parts, ", "))
			return err
		},
	}
	cmd.Flags().Float64Var(&p.Start, "start", 1, "first value")
	cmd.Flags().Float64Var(&p.Step, "step", 1, "difference, ratio or second seed")
	cmd.Flags().IntVar(&p.Count, "count", 10, "number of values")

	return cmd
}

func newClassifyCmd() *cobra.Command {
	var family string

	cmd := &cobra.Command{
		Use:   "classify [tokens...]",
		Short: "Report which families a token sequence belongs to",
		Long: `Classify numeric tokens. Tokens may be separate arguments or a single
comma-separated argument ("1, 1, 2, 3, 5").

With --family, print only that verdict and exit non-zero when it is false.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens := compiler.SplitTokens(strings.Join(args, " "))
			out := cmd.OutOrStdout()

			if family != "" {
				f, err := classify.ParseFamily(family)
				if err != nil {
					return err
				}
				ok := classify.Matches(f, tokens)
				if _, err = fmt.Fprintf(out, "%s: %t\n", f, ok); err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("tokens are not %s", f)
				}
				return nil
			}

			for _, f := range classify.Families() {
				if _, err := fmt.Fprintf(out, "%-10s %t\n", f, classify.Matches(f, tokens)); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&family, "family", "f", "", "check a single family (e.g. fibonacci, factorial, squares)")

	return cmd
}

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run <manifest.yaml>",
		Short: "Compile and check every case of a YAML manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := harness.LoadManifestFile(args[0])
			if err != nil {
				return err
			}
			return a.runCases(cmd, m.Cases)
		},
	}
}

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Compile the built-in doubling, even-numbers and tripling patterns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCases(cmd, harness.DemoCases())
		},
	}
}

// runCases wires the configured compiler into a Runner and prints the report.
func (a *app) runCases(cmd *cobra.Command, cases []harness.Case) error {
	if a.compiler == "" {
		return fmt.Errorf("no compiler configured: use --compiler or %s", compilerEnv)
	}
	if a.concurrency < 1 {
		return fmt.Errorf("--concurrency must be ≥ 1, got %d", a.concurrency)
	}

	c := compiler.ParseCommandLine(a.compiler, compiler.WithVerbose(a.compilerVerbose))
	r := harness.NewRunner(c,
		harness.WithLogger(a.logger.Named("harness")),
		harness.WithConcurrency(a.concurrency),
	)
	rep, err := r.Run(cmd.Context(), cases)
	if err != nil {
		return err
	}
	if err := rep.Write(cmd.OutOrStdout()); err != nil {
		return err
	}
	if !rep.OK() {
		return errCasesFailed
	}
	return nil
}
