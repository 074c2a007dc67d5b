// SPDX-License-Identifier: MIT
// Package: seqcheck/classify
//
// family.go — the fixed enumeration of pattern families.
//
// Contract:
//   • Families are independent; a sequence may satisfy zero, one or several.
//   • String/ParseFamily round-trip; "factorial" is accepted as the historical
//     label of MonotonicIncreasing.
//   • Family implements encoding.TextMarshaler/TextUnmarshaler so it can be
//     used directly in YAML/JSON manifests.

package classify

import (
	"fmt"
	"strings"
)

// Family identifies a pattern family.
type Family int

const (
	// Arithmetic: constant difference between neighbors.
	Arithmetic Family = iota
	// Geometric: constant ratio between neighbors.
	Geometric
	// ModuloAlternating: 0/1 values that alternate.
	ModuloAlternating
	// Fibonacci: every term from the third on is the sum of the previous two.
	Fibonacci
	// MonotonicIncreasing: strictly increasing; labelled "factorial" historically.
	MonotonicIncreasing
	// PerfectSquares: every value is an integer square.
	PerfectSquares
)

// familyNames holds canonical labels, indexed by Family.
var familyNames = [...]string{
	Arithmetic:          "arithmetic",
	Geometric:           "geometric",
	ModuloAlternating:   "modulo",
	Fibonacci:           "fibonacci",
	MonotonicIncreasing: "monotonic",
	PerfectSquares:      "squares",
}

// familyAliases maps extra accepted labels to their family.
var familyAliases = map[string]Family{
	"factorial":            MonotonicIncreasing,
	"monotonic-increasing": MonotonicIncreasing,
	"modulo-alternating":   ModuloAlternating,
	"perfect-squares":      PerfectSquares,
}

// Families lists the enumeration in declaration order.
func Families() []Family {
	return []Family{Arithmetic, Geometric, ModuloAlternating, Fibonacci, MonotonicIncreasing, PerfectSquares}
}

// String returns the canonical label.
func (f Family) String() string {
	if f < 0 || int(f) >= len(familyNames) {
		return fmt.Sprintf("Family(%d)", int(f))
	}

	return familyNames[f]
}

// ParseFamily resolves a label (case-insensitive, canonical or alias).
func ParseFamily(label string) (Family, error) {
	key := strings.ToLower(strings.TrimSpace(label))
	for i, name := range familyNames {
		if name == key {
			return Family(i), nil
		}
	}
	if f, ok := familyAliases[key]; ok {
		return f, nil
	}

	return 0, fmt.Errorf("ParseFamily: %q: %w", label, ErrUnknownFamily)
}

// MarshalText implements encoding.TextMarshaler.
func (f Family) MarshalText() ([]byte, error) {
	if f < 0 || int(f) >= len(familyNames) {
		return nil, fmt.Errorf("MarshalText: %d: %w", int(f), ErrUnknownFamily)
	}

	return []byte(familyNames[f]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Family) UnmarshalText(text []byte) error {
	parsed, err := ParseFamily(string(text))
	if err != nil {
		return err
	}
	*f = parsed

	return nil
}
