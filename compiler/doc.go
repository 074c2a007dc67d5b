// Package compiler defines the narrow capability seqcheck needs from a pattern
// compiler: turn DSL source text into an ordered list of output tokens.
//
// seqcheck never parses or executes the pattern DSL itself. Anything that
// satisfies Compiler can be plugged in:
//
//   - Func wraps an in-process function (tests, demos, embedded compilers).
//   - Exec runs an external compiler process, feeding the source on stdin and
//     splitting stdout into tokens.
//
// Only Result.Tokens() is consumed downstream; it is empty unless the compile
// succeeded. Compiler failures are reported, never retried.
package compiler
