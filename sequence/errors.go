// SPDX-License-Identifier: MIT
// Package: seqcheck/sequence
//
// errors.go — sentinel errors for the sequence package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Context is attached with %w through sequenceErrorf (method prefix).
//   • Generators themselves are total and never return errors; only the
//     data-driven entry points (Generate, Distance) validate input.

package sequence

import (
	"errors"
	"fmt"
)

// ErrUnknownKind indicates Params.Kind does not name a supported generator.
var ErrUnknownKind = errors.New("sequence: unknown kind")

// ErrBadCount indicates a negative element count in Params.
var ErrBadCount = errors.New("sequence: count must be non-negative")

// ErrEmptySequence indicates Distance received an empty input.
var ErrEmptySequence = errors.New("sequence: input sequences must be non-empty")

// sequenceErrorf prefixes a sentinel with the method name, keeping errors.Is intact.
func sequenceErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
