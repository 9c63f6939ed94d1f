package cutest

import (
	"fmt"
	"io"
	"strings"

	"github.com/Canary-Developer/canary/framework"
)

// Report is the outcome of one Suite.Run. It is never modified after it is returned.
type Report struct {
	results framework.Results
}

// Failure describes one failed case.
type Failure struct {
	Name    string
	Message string
}

// Results returns the underlying results. Cases excluded by a filter do not appear in them.
func (r Report) Results() framework.Results {
	return framework.Results{
		Tests:    append([]framework.TestResult(nil), r.results.Tests...),
		Failures: append([]framework.TestResult(nil), r.results.Failures...),
	}
}

// Count returns the number of cases that ran. Cases excluded by a filter are not counted.
func (r Report) Count() int {
	return r.results.Count()
}

func (r Report) FailureCount() int {
	return r.results.FailureCount()
}

func (r Report) PassCount() int {
	return r.Count() - r.FailureCount()
}

func (r Report) OK() bool {
	return r.results.OK()
}

// Failures returns the failed cases in the order they ran. Each Message is a single line.
func (r Report) Failures() []Failure {
	ret := make([]Failure, 0, len(r.results.Failures))
	for _, f := range r.results.Failures {
		ret = append(ret, Failure{Name: f.TestID.String(), Message: firstLine(f.Failure.Error())})
	}
	return ret
}

// Progress returns one character per case that ran: "." if it passed, "F" if it failed.
func (r Report) Progress() string {
	var b strings.Builder
	for _, t := range r.results.Tests {
		if t.Skipped {
			continue
		}
		if t.Failed() {
			b.WriteByte('F')
		} else {
			b.WriteByte('.')
		}
	}
	return b.String()
}

// Summary returns the one-line count summary, for instance "Runs: 7 Passes: 2 Fails: 5".
func (r Report) Summary() string {
	return fmt.Sprintf("Runs: %d Passes: %d Fails: %d", r.Count(), r.PassCount(), r.FailureCount())
}

// Details returns "OK (n tests)" if nothing failed. Otherwise it lists every failure in the
// order the cases ran, followed by the summary line.
func (r Report) Details() string {
	var b strings.Builder
	failures := r.Failures()
	if len(failures) == 0 {
		testWord := "tests"
		if r.Count() == 1 {
			testWord = "test"
		}
		fmt.Fprintf(&b, "OK (%d %s)\n", r.Count(), testWord)
		return b.String()
	}
	if len(failures) == 1 {
		b.WriteString("There was 1 failure:\n")
	} else {
		fmt.Fprintf(&b, "There were %d failures:\n", len(failures))
	}
	for i, f := range failures {
		fmt.Fprintf(&b, "%d) %s: %s\n", i+1, f.Name, f.Message)
	}
	b.WriteString("\n!!!FAILURES!!!\n")
	b.WriteString(r.Summary())
	b.WriteString("\n")
	return b.String()
}

// String returns the complete text report: the progress line, a blank line, and the details.
func (r Report) String() string {
	return r.Progress() + "\n\n" + r.Details()
}

func (r Report) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, r.String())
	return int64(n), err
}
