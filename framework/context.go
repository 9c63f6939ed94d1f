package framework

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
)

type environment struct {
	results    Results
	testLogger TestLogger
	filter     Filter
}

// Context records the outcome of a single test. A Context is used by one goroutine at a time;
// tests run strictly one after another.
type Context struct {
	env         *environment
	id          TestID
	debugLogger debugCapture
	failed      bool
	skipped     bool
	skipReason  string
	failure     error
}

// Run creates a root context and calls action with it. The root context is only a grouping
// for the tests started with Context.Run, and does not itself appear in the Results.
//
// A failure that happens outside of any test, such as a panic in the filter or the test logger,
// means the run stopped early. Run panics in that case instead of returning partial Results.
func Run(
	filter Filter,
	testLogger TestLogger,
	action func(*Context),
) Results {
	if testLogger == nil {
		testLogger = nullTestLogger{}
	}
	env := &environment{
		filter:     filter,
		testLogger: testLogger,
	}
	c := &Context{env: env}
	c.run(action)
	return env.results
}

func (c *Context) run(action func(*Context)) {
	defer func() {
		if r := recover(); r != nil && !c.skipped {
			if _, ok := r.(*Context); ok {
				if c.failure == nil {
					c.recordFailure(errors.New("test failed with no failure message"))
				}
			} else {
				c.debugLogger.Printf("panic value: %+v\n%s", r, debug.Stack())
				c.recordFailure(fmt.Errorf("%s: unexpected panic in test: %s", panicLocation(), firstLine(fmt.Sprint(r))))
			}
		}
		if c.isRoot() {
			if c.failed {
				panic(fmt.Errorf("test run aborted outside of any test: %w", c.failure))
			}
			return
		}
		// a test that failed before skipping itself still counts as failed
		result := TestResult{TestID: c.id, Failure: c.failure, Skipped: c.skipped && !c.failed}
		c.env.results.Tests = append(c.env.results.Tests, result)
		if c.failed {
			c.env.results.Failures = append(c.env.results.Failures, result)
		}
	}()

	action(c)
}

func (c *Context) isRoot() bool {
	return len(c.id.Path) == 0
}

// ID returns the identifier of the current test.
func (c *Context) ID() TestID {
	return c.id
}

// Run runs a child test. It returns only after the child has finished, whether it passed,
// failed, or was skipped.
func (c *Context) Run(name string, action func(*Context)) {
	id := c.id.Plus(name)

	c.env.testLogger.TestStarted(id)
	if c.env.filter != nil && !c.env.filter(id) {
		c.env.testLogger.TestSkipped(id, "excluded by filter parameters")
		return
	}
	c1 := &Context{
		id:  id,
		env: c.env,
	}
	c1.run(action)
	if c1.skipped {
		c.env.testLogger.TestSkipped(id, c1.skipReason)
	} else {
		c.env.testLogger.TestFinished(id, c1.failed, c1.debugLogger.Output())
	}
}

// Errorf records a failure without stopping the test. Only the first failure of a test is
// kept as its result; any later one goes to the debug output.
func (c *Context) Errorf(format string, args ...interface{}) {
	c.recordFailure(fmt.Errorf(format, args...))
}

func (c *Context) recordFailure(err error) {
	if c.failed {
		c.debugLogger.Printf("additional failure: %s", err)
		return
	}
	c.failed = true
	c.failure = err
	c.env.testLogger.TestError(c.id, err)
}

// FailNow stops the current test immediately. The test is marked as failed if it was not
// already.
func (c *Context) FailNow() {
	panic(c)
}

func (c *Context) Skip() {
	c.skipped = true
	panic(c)
}

func (c *Context) SkipWithReason(reason string) {
	c.skipReason = reason
	c.Skip()
}

// Failed reports whether a failure has been recorded for this test.
func (c *Context) Failed() bool {
	return c.failed
}

// Failure returns the first failure recorded for this test, or nil.
func (c *Context) Failure() error {
	return c.failure
}

func (c *Context) Debug(message string, args ...interface{}) {
	c.debugLogger.Printf(message, args...)
}

func (c *Context) DebugLogger() Logger {
	return &c.debugLogger
}

// panicLocation returns "file:line" of the code that panicked. It only works when called from
// a deferred function during a panic.
func panicLocation() string {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	panicking := false
	for {
		f, more := frames.Next()
		if strings.HasPrefix(f.Function, "runtime.") {
			panicking = panicking || f.Function == "runtime.gopanic"
		} else if panicking {
			return fmt.Sprintf("%s:%d", filepath.Base(f.File), f.Line)
		}
		if !more {
			return "???:0"
		}
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
