// SPDX-License-Identifier: MIT
// Package: seqcheck/compiler
//
// exec.go — Compiler backed by an external process.
//
// Contract:
//   • The source text is written to the process stdin.
//   • Exit status 0 → Result{Success: true, Output: SplitTokens(stdout)}.
//   • Non-zero exit → Result{Success: false, Errors: [stderr or exit message]},
//     nil error: the compiler ran and rejected the source.
//   • Start failures and context cancellation → non-nil error.
//
// Options follow the functional style: constructors validate and panic on
// meaningless values; Compile itself never panics.

package compiler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// verboseFlag is appended to the argument list by WithVerbose(true).
const verboseFlag = "--verbose"

// ExecOption customizes an Exec compiler.
type ExecOption func(*Exec)

// WithArgs appends fixed arguments after the program name.
func WithArgs(args ...string) ExecOption {
	return func(e *Exec) {
		e.args = append(e.args, args...)
	}
}

// WithVerbose toggles the compiler's verbose flag.
func WithVerbose(on bool) ExecOption {
	return func(e *Exec) {
		e.verbose = on
	}
}

// WithEnv adds KEY=VALUE entries on top of the current environment.
// Panics on an entry without '='.
func WithEnv(kv ...string) ExecOption {
	for _, entry := range kv {
		if !strings.Contains(entry, "=") {
			panic(fmt.Sprintf("compiler: WithEnv(%q) missing '='", entry))
		}
	}
	return func(e *Exec) {
		e.env = append(e.env, kv...)
	}
}

// WithDir sets the working directory of the compiler process.
func WithDir(dir string) ExecOption {
	return func(e *Exec) {
		e.dir = dir
	}
}

// Exec runs an external compiler program once per Compile call.
type Exec struct {
	program string
	args    []string
	env     []string
	dir     string
	verbose bool
}

// NewExec builds an Exec for program with the given options.
// An empty program is accepted here and reported as ErrNoCommand by Compile.
func NewExec(program string, opts ...ExecOption) *Exec {
	e := &Exec{program: program}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// ParseCommandLine splits a command line such as "python3 main.py" into an Exec.
func ParseCommandLine(line string, opts ...ExecOption) *Exec {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return NewExec("", opts...)
	}

	return NewExec(fields[0], append([]ExecOption{WithArgs(fields[1:]...)}, opts...)...)
}

// String renders the command line, for logs.
func (e *Exec) String() string {
	return strings.TrimSpace(e.program + " " + strings.Join(e.commandArgs(), " "))
}

// Compile runs the program with source on stdin.
func (e *Exec) Compile(ctx context.Context, source string) (Result, error) {
	if e.program == "" {
		return Result{}, ErrNoCommand
	}

	cmd := exec.CommandContext(ctx, e.program, e.commandArgs()...)
	cmd.Stdin = strings.NewReader(source)
	cmd.Dir = e.dir
	if len(e.env) > 0 {
		cmd.Env = append(os.Environ(), e.env...)
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return Result{}, fmt.Errorf("Compile %s: %w", e, ctxErr)
	}
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return Result{Success: true, Output: SplitTokens(stdout.String())}, nil
	case errors.As(err, &exitErr):
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = exitErr.Error()
		}

		return Result{Success: false, Errors: []string{msg}}, nil
	default:
		return Result{}, fmt.Errorf("Compile %s: %w", e, err)
	}
}

// commandArgs returns the fixed args plus the verbose flag when enabled.
func (e *Exec) commandArgs() []string {
	args := append([]string(nil), e.args...)
	if e.verbose {
		args = append(args, verboseFlag)
	}

	return args
}
