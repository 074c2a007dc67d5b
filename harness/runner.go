// SPDX-License-Identifier: MIT
// Package: seqcheck/harness
//
// runner.go — compile every case and evaluate its output.
//
// Contract:
//   • Cases are compiled concurrently (bounded by WithConcurrency) and the
//     report keeps input order.
//   • A compiler that cannot be invoked or rejects the source fails that case
//     only; Run returns an error only for invalid cases or a cancelled context.
//   • Evaluation is pure: classify + sequence, no I/O.

package harness

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/seqcheck/classify"
	"github.com/katalvlaran/seqcheck/compiler"
	"github.com/katalvlaran/seqcheck/sequence"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds parallel compiles when WithConcurrency is not set.
const DefaultConcurrency = 4

// relTolerance is the relative error accepted between output and float references.
const relTolerance = 1e-9

// RunnerOption customizes a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *zap.Logger) RunnerOption {
	if l == nil {
		panic("harness: WithLogger(nil)")
	}
	return func(r *Runner) {
		r.logger = l
	}
}

// WithConcurrency bounds the number of simultaneous compiles. Panics if n < 1.
func WithConcurrency(n int) RunnerOption {
	if n < 1 {
		panic("harness: WithConcurrency(n<1)")
	}
	return func(r *Runner) {
		r.concurrency = n
	}
}

// Runner compiles and checks cases.
type Runner struct {
	compiler    compiler.Compiler
	logger      *zap.Logger
	concurrency int
}

// NewRunner builds a Runner around c. Panics on a nil compiler.
func NewRunner(c compiler.Compiler, opts ...RunnerOption) *Runner {
	if c == nil {
		panic("harness: NewRunner(nil compiler)")
	}
	r := &Runner{
		compiler:    c,
		logger:      zap.NewNop(),
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run compiles and evaluates every case.
func (r *Runner) Run(ctx context.Context, cases []Case) (Report, error) {
	for _, c := range cases {
		if err := c.Validate(); err != nil {
			return Report{}, err
		}
	}

	results := make([]CaseResult, len(cases))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for i := range cases {
		i := i
		g.Go(func() error {
			res, err := r.RunCase(gctx, cases[i])
			if err != nil {
				return err
			}
			results[i] = res

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	var rep Report
	for _, res := range results {
		rep.add(res)
	}
	r.logger.Info("run finished",
		zap.Int("passed", rep.Passed),
		zap.Int("failed", rep.Failed),
	)

	return rep, nil
}

// RunCase compiles one case and evaluates its output.
// The error is non-nil only when ctx is done.
func (r *Runner) RunCase(ctx context.Context, c Case) (CaseResult, error) {
	log := r.logger.With(zap.String("case", c.Name))
	log.Debug("compiling", zap.Int("source_bytes", len(c.Source)))

	out, err := r.compiler.Compile(ctx, c.Source)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return CaseResult{}, fmt.Errorf("case %q: %w", c.Name, ctxErr)
		}
		res := failed(c, fmt.Sprintf("compiler unavailable: %v", err))
		log.Warn("case failed", zap.String("reason", res.Reason))

		return res, nil
	}

	res := Evaluate(c, out)
	if res.Status == StatusPassed {
		log.Info("case passed", zap.Strings("output", res.Output))
	} else {
		log.Warn("case failed",
			zap.String("reason", res.Reason),
			zap.Strings("output", res.Output),
			zap.Float64("distance", res.Distance),
		)
	}

	return res, nil
}

// Evaluate checks a compile result against the case expectations.
func Evaluate(c Case, out compiler.Result) CaseResult {
	if !out.Success {
		return failed(c, "compile failed: "+out.Failure())
	}

	tokens := out.Tokens()
	res := CaseResult{
		Name:     c.Name,
		Title:    c.Title,
		Status:   StatusPassed,
		Output:   tokens,
		Detected: classify.Detect(tokens),
	}

	if c.Family != nil {
		if got := classify.Matches(*c.Family, tokens); got != c.Expected() {
			res.Status = StatusFailed
			res.Reason = fmt.Sprintf("family %s: got %t, want %t", c.Family, got, c.Expected())

			return res
		}
	}

	if c.Reference != nil {
		if reason, dist := compareReference(*c.Reference, tokens); reason != "" {
			res.Status = StatusFailed
			res.Reason = reason
			res.Distance = dist
		}
	}

	return res
}

// compareReference returns a non-empty reason when tokens differ from the
// generated reference, plus the DTW distance when both are non-empty.
func compareReference(p sequence.Params, tokens []string) (string, float64) {
	want, err := sequence.Generate(p)
	if err != nil {
		return fmt.Sprintf("bad reference: %v", err), 0
	}
	parsed, err := classify.Parse(tokens)
	if err != nil {
		return fmt.Sprintf("output not numeric: %v", err), 0
	}
	got := parsed.Floats()

	idx := firstMismatch(want, got)
	if idx < 0 {
		return "", 0
	}
	dist, err := sequence.Distance(want, got)
	if err != nil {
		dist = math.Inf(1) // one side empty
	}
	if len(want) != len(got) {
		return fmt.Sprintf("reference %s: got %d values, want %d", p.Kind, len(got), len(want)), dist
	}

	return fmt.Sprintf("reference %s: value %d is %g, want %g", p.Kind, idx, got[idx], want[idx]), dist
}

// firstMismatch returns the first differing index, or -1 when equal.
// A length difference mismatches at the shorter length.
func firstMismatch(want, got []float64) int {
	n := len(want)
	if len(got) < n {
		n = len(got)
	}
	for i := 0; i < n; i++ {
		if !approxEqual(want[i], got[i]) {
			return i
		}
	}
	if len(want) != len(got) {
		return n
	}

	return -1
}

// approxEqual compares with a relative tolerance (absolute near zero).
func approxEqual(a, b float64) bool {
	diff := math.Abs(a - b)
	scale := math.Max(math.Abs(a), math.Abs(b))
	if scale < 1 {
		return diff <= relTolerance
	}

	return diff <= relTolerance*scale
}

// failed builds a failed result carrying only a reason.
func failed(c Case, reason string) CaseResult {
	return CaseResult{Name: c.Name, Title: c.Title, Status: StatusFailed, Reason: reason}
}
