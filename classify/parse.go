package classify

import (
	"fmt"
	"math/big"
	"strings"
)

// Parsed is a token sequence converted to integers, same length and order.
// Values are arbitrary precision: 21! or F(93) parse like any small integer.
type Parsed []*big.Int

// Parse converts every token to an integer. Surrounding whitespace is ignored;
// an optional sign is accepted; magnitude is unbounded. Parsing is
// total-or-fails: the first token that is not a base-10 integer aborts with
// ErrBadToken wrapped with its index, and no partial result is returned.
//
// Complexity: O(Σ len(token)) time, O(n) values.
func Parse(tokens []string) (Parsed, error) {
	out := make(Parsed, len(tokens))
	for i, tok := range tokens {
		v, ok := new(big.Int).SetString(strings.TrimSpace(tok), 10)
		if !ok {
			return nil, fmt.Errorf("Parse: token %d (%q): %w", i, tok, ErrBadToken)
		}
		out[i] = v
	}

	return out, nil
}

// Floats converts the parsed values to the nearest float64, e.g. for
// comparison with float references. Values beyond float64 range become ±Inf.
func (p Parsed) Floats() []float64 {
	out := make([]float64, len(p))
	for i, v := range p {
		out[i], _ = new(big.Float).SetInt(v).Float64()
	}

	return out
}

// Strings renders the parsed values in canonical base-10 form.
func (p Parsed) Strings() []string {
	out := make([]string, len(p))
	for i, v := range p {
		out[i] = v.String()
	}

	return out
}
