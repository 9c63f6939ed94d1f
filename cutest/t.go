package cutest

import (
	"fmt"

	"github.com/Canary-Developer/canary/framework"

	"github.com/stretchr/testify/require"
)

var _ require.TestingT = (*T)(nil)

// T represents one running test case.
//
// Its Assert methods follow CuTest: the first failing assertion marks the case as failed,
// records where it happened, and abandons the rest of the case. Execution continues with the
// next case of the suite.
//
// T also implements require.TestingT, so the assert and require packages can be used with it
// as if it were a *testing.T. Like with *testing.T, assert only records a failure, while
// require also stops the case.
type T struct {
	context *framework.Context
}

func newT(c *framework.Context) *T {
	return &T{context: c}
}

// Name returns the name the case was registered with.
func (t *T) Name() string {
	return t.context.ID().Name()
}

// Errorf is called by assertions to log a test failure. It does not cause an immediate exit.
//
// The failure is recorded as a single "file:line: message" line for the report. When the message
// spans several lines, as testify's do, the full text goes to the case's debug output.
func (t *T) Errorf(format string, args ...interface{}) {
	t.fail(fmt.Sprintf(format, args...))
}

// FailNow abandons the rest of the case. The methods in the require package call FailNow.
func (t *T) FailNow() {
	t.context.FailNow()
}

// Failed reports whether the case has failed so far.
func (t *T) Failed() bool {
	return t.context.Failed()
}

// Debug logs some debug output for the case. The output is passed to the test logger when the
// case finishes.
func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}

// Fail fails the case unconditionally with the given message.
func (t *T) Fail(msgAndArgs ...interface{}) {
	message := messageFromMsgAndArgs(msgAndArgs)
	if message == "" {
		message = "test failed"
	}
	t.require(Outcome{Message: message})
}

func (t *T) AssertTrue(condition bool, msgAndArgs ...interface{}) {
	t.require(CheckTrue(condition, msgAndArgs...))
}

func (t *T) AssertIntEquals(expected, actual int, msgAndArgs ...interface{}) {
	t.require(CheckIntEquals(expected, actual, msgAndArgs...))
}

func (t *T) AssertDblEquals(expected, actual, tolerance float64, msgAndArgs ...interface{}) {
	t.require(CheckDblEquals(expected, actual, tolerance, msgAndArgs...))
}

func (t *T) AssertPtrEquals(expected, actual interface{}, msgAndArgs ...interface{}) {
	t.require(CheckPtrEquals(expected, actual, msgAndArgs...))
}

func (t *T) AssertStrEquals(expected, actual string, msgAndArgs ...interface{}) {
	t.require(CheckStrEquals(expected, actual, msgAndArgs...))
}

func (t *T) require(o Outcome) {
	if o.Passed {
		return
	}
	t.fail(o.Message)
	t.context.FailNow()
}

func (t *T) fail(message string) {
	summary := failureSummary(message)
	if summary != message {
		t.context.Debug("%s", message)
	}
	t.context.Errorf("%s: %s", callerLocation(), summary)
}
