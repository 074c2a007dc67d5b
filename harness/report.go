package harness

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/seqcheck/classify"
)

// Status is the verdict of one case.
type Status int

const (
	// StatusFailed: compile failed or a check did not hold.
	StatusFailed Status = iota
	// StatusPassed: compiled and every configured check held.
	StatusPassed
)

// String returns "PASS" or "FAIL".
func (s Status) String() string {
	if s == StatusPassed {
		return "PASS"
	}

	return "FAIL"
}

// CaseResult records what happened to one case.
type CaseResult struct {
	Name     string
	Title    string
	Status   Status
	Reason   string            // empty when passed
	Output   []string          // compiler tokens (nil when the compile failed)
	Detected []classify.Family // every family the output satisfies
	Distance float64           // DTW distance to the reference; 0 when equal or unchecked
}

// Report aggregates case results in input order.
type Report struct {
	Results []CaseResult
	Passed  int
	Failed  int
}

// add appends a result and updates the counters.
func (r *Report) add(res CaseResult) {
	r.Results = append(r.Results, res)
	if res.Status == StatusPassed {
		r.Passed++
	} else {
		r.Failed++
	}
}

// OK reports whether every case passed.
func (r Report) OK() bool { return r.Failed == 0 }

// Summary is a one-line "passed/total" string.
func (r Report) Summary() string {
	return fmt.Sprintf("%d passed, %d failed, %d total", r.Passed, r.Failed, r.Passed+r.Failed)
}

// Write prints a human-readable report.
func (r Report) Write(w io.Writer) error {
	rule := strings.Repeat("=", 70)
	if _, err := fmt.Fprintln(w, rule); err != nil {
		return err
	}
	for _, res := range r.Results {
		mark := "✓"
		if res.Status != StatusPassed {
			mark = "✗"
		}
		header := res.Name
		if res.Title != "" {
			header = fmt.Sprintf("%s (%s)", res.Title, res.Name)
		}
		if _, err := fmt.Fprintf(w, "%s %s %s\n", mark, res.Status, header); err != nil {
			return err
		}
		if len(res.Output) > 0 {
			if _, err := fmt.Fprintf(w, "   Output: %s\n", strings.Join(res.Output, ", ")); err != nil {
				return err
			}
		}
		if len(res.Detected) > 0 {
			if _, err := fmt.Fprintf(w, "   Families: %v\n", res.Detected); err != nil {
				return err
			}
		}
		if res.Reason != "" {
			if _, err := fmt.Fprintf(w, "   Reason: %s\n", res.Reason); err != nil {
				return err
			}
		}
	}
	if _, err := fmt.Fprintln(w, rule); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, r.Summary())

	return err
}
