package compiler

import (
	"context"
	"errors"
	"strings"
)

// ErrNoCommand indicates Exec was built without a program to run.
var ErrNoCommand = errors.New("compiler: no command configured")

// Compiler turns pattern source text into output tokens.
//
// A non-nil error means the compiler could not be invoked at all (missing
// binary, cancelled context). A compiler that ran but rejected the source
// returns Result{Success: false} and a nil error.
type Compiler interface {
	Compile(ctx context.Context, source string) (Result, error)
}

// Result is the outcome of one compile.
type Result struct {
	Success bool     // source compiled and ran
	Output  []string // generated tokens, in generation order
	Errors  []string // diagnostics when Success is false
}

// Tokens returns Output when the compile succeeded, nil otherwise.
func (r Result) Tokens() []string {
	if !r.Success {
		return nil
	}

	return r.Output
}

// Failure returns the diagnostics joined into one line.
func (r Result) Failure() string {
	return strings.Join(r.Errors, "; ")
}

// Func adapts an ordinary function to Compiler.
type Func func(ctx context.Context, source string) (Result, error)

// Compile calls f.
func (f Func) Compile(ctx context.Context, source string) (Result, error) {
	return f(ctx, source)
}

// SplitTokens splits raw compiler output on whitespace and commas,
// dropping empty fields ("1, 2,4\n8" → [1 2 4 8]).
func SplitTokens(raw string) []string {
	return strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}
