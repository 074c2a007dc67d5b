// SPDX-License-Identifier: MIT
// Package: seqcheck/classify
//
// errors.go — sentinel errors for the classify package.
//
// Classifiers never return these; they are reported by Parse and ParseFamily
// for callers that need the reason a sequence or a label was rejected.

package classify

import "errors"

var (
	// ErrBadToken indicates a token that is not a base-10 integer.
	ErrBadToken = errors.New("classify: token is not an integer")

	// ErrUnknownFamily indicates a family label outside the fixed enumeration.
	ErrUnknownFamily = errors.New("classify: unknown family")
)
