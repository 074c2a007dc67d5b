package classify

// Matches reports whether tokens belong to family f.
// An unknown family never matches.
func Matches(f Family, tokens []string) bool {
	if f < 0 || int(f) >= len(rules) {
		return false
	}

	return classifyAs(f, tokens)
}

// For returns the Classifier of family f, or nil for an unknown family.
func For(f Family) Classifier {
	if f < 0 || int(f) >= len(rules) {
		return nil
	}

	return func(tokens []string) bool { return classifyAs(f, tokens) }
}

// Detect returns every family the tokens satisfy, in Families() order.
// Tokens are parsed once; an unparsable sequence matches nothing.
func Detect(tokens []string) []Family {
	nums, err := Parse(tokens)
	if err != nil {
		return nil
	}

	var out []Family
	for _, f := range Families() {
		r := rules[f]
		if len(nums) >= r.minLen && r.check(nums) {
			out = append(out, f)
		}
	}

	return out
}
