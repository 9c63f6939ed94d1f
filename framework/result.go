package framework

import (
	"strings"
)

// Results is everything that happened during one call to Run. Tests is in the order the tests
// finished, which for sequential tests is the order they were started.
type Results struct {
	Tests    []TestResult
	Failures []TestResult
}

type TestResult struct {
	TestID  TestID
	Failure error
	Skipped bool
}

func (r TestResult) Failed() bool {
	return r.Failure != nil
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// Count returns the number of tests that ran to completion or failed, excluding skipped ones.
func (r Results) Count() int {
	n := 0
	for _, t := range r.Tests {
		if !t.Skipped {
			n++
		}
	}
	return n
}

func (r Results) FailureCount() int {
	return len(r.Failures)
}

type TestID struct {
	Path []string
}

// Plus returns a new TestID for a child test. The receiver's Path is never modified.
func (t TestID) Plus(name string) TestID {
	path := make([]string, 0, len(t.Path)+1)
	path = append(path, t.Path...)
	return TestID{Path: append(path, name)}
}

// Name returns the last element of the path.
func (t TestID) Name() string {
	if len(t.Path) == 0 {
		return ""
	}
	return t.Path[len(t.Path)-1]
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}
