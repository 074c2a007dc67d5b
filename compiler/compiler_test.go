package compiler_test

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/katalvlaran/seqcheck/compiler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestResult_Tokens exposes output only on success.
func TestResult_Tokens(t *testing.T) {
	t.Parallel()

	ok := compiler.Result{Success: true, Output: []string{"1", "2"}}
	assert.Equal(t, []string{"1", "2"}, ok.Tokens())

	failed := compiler.Result{Success: false, Output: []string{"1"}, Errors: []string{"syntax error", "line 3"}}
	assert.Nil(t, failed.Tokens(), "failed compiles yield no tokens")
	assert.Equal(t, "syntax error; line 3", failed.Failure())
}

// TestFunc_Compile adapts a plain function.
func TestFunc_Compile(t *testing.T) {
	t.Parallel()

	var c compiler.Compiler = compiler.Func(func(_ context.Context, src string) (compiler.Result, error) {
		return compiler.Result{Success: true, Output: compiler.SplitTokens(src)}, nil
	})
	res, err := c.Compile(context.Background(), "1 1 2")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "1", "2"}, res.Tokens())

	boom := errors.New("boom")
	c = compiler.Func(func(context.Context, string) (compiler.Result, error) { return compiler.Result{}, boom })
	_, err = c.Compile(context.Background(), "")
	assert.ErrorIs(t, err, boom)
}

// TestSplitTokens handles commas, newlines and repeated separators.
func TestSplitTokens(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"1", "2", "4", "8"}, compiler.SplitTokens("1, 2,4\n8\r\n"))
	assert.Empty(t, compiler.SplitTokens(" ,\n "))
}

// requireShell skips tests that need a POSIX shell.
func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

// TestExec_Success echoes the source back as compiler output.
func TestExec_Success(t *testing.T) {
	requireShell(t)

	c := compiler.NewExec("sh", compiler.WithArgs("-c", "cat"))
	res, err := c.Compile(context.Background(), "1, 2, 4, 8\n")
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, []string{"1", "2", "4", "8"}, res.Tokens())
}

// TestExec_Rejected maps a non-zero exit to an unsuccessful Result.
func TestExec_Rejected(t *testing.T) {
	requireShell(t)

	c := compiler.NewExec("sh", compiler.WithArgs("-c", "echo 'unexpected token' >&2; exit 3"))
	res, err := c.Compile(context.Background(), "pattern broken(")
	require.NoError(t, err, "a rejecting compiler is not an invocation error")
	assert.False(t, res.Success)
	assert.Equal(t, []string{"unexpected token"}, res.Errors)
	assert.Nil(t, res.Tokens())
}

// TestExec_VerboseAndEnv checks the flag and environment plumbing.
func TestExec_VerboseAndEnv(t *testing.T) {
	requireShell(t)

	c := compiler.NewExec("sh",
		compiler.WithArgs("-c", `echo "$1" "$SEQ_EXTRA"`, "sh"),
		compiler.WithVerbose(true),
		compiler.WithEnv("SEQ_EXTRA=42"),
	)
	assert.Contains(t, c.String(), "--verbose")

	res, err := c.Compile(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"--verbose", "42"}, res.Tokens())
}

// TestExec_Errors covers missing program, missing binary and cancellation.
func TestExec_Errors(t *testing.T) {
	t.Parallel()

	_, err := compiler.NewExec("").Compile(context.Background(), "x")
	assert.ErrorIs(t, err, compiler.ErrNoCommand)

	_, err = compiler.ParseCommandLine("   ").Compile(context.Background(), "x")
	assert.ErrorIs(t, err, compiler.ErrNoCommand)

	_, err = compiler.NewExec("seqcheck-no-such-compiler-binary").Compile(context.Background(), "x")
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = compiler.NewExec("sh", compiler.WithArgs("-c", "cat")).Compile(ctx, "1")
	assert.ErrorIs(t, err, context.Canceled)
}

// TestParseCommandLine splits program and arguments.
func TestParseCommandLine(t *testing.T) {
	t.Parallel()

	c := compiler.ParseCommandLine("python3 main.py --no-color", compiler.WithVerbose(true))
	assert.Equal(t, "python3 main.py --no-color --verbose", c.String())
}

// TestWithEnv_Panics on entries without '='.
func TestWithEnv_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { compiler.WithEnv("NOEQUALS") })
}
