package framework

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loggedEvent struct {
	kind string
	id   string
	info string
}

type recordingTestLogger struct {
	events []loggedEvent
}

func (l *recordingTestLogger) TestStarted(id TestID) {
	l.events = append(l.events, loggedEvent{"started", id.String(), ""})
}

func (l *recordingTestLogger) TestError(id TestID, err error) {
	l.events = append(l.events, loggedEvent{"error", id.String(), err.Error()})
}

func (l *recordingTestLogger) TestFinished(id TestID, failed bool, debugOutput CapturedOutput) {
	l.events = append(l.events, loggedEvent{"finished", id.String(), fmt.Sprint(failed)})
}

func (l *recordingTestLogger) TestSkipped(id TestID, reason string) {
	l.events = append(l.events, loggedEvent{"skipped", id.String(), reason})
}

func resultNames(results []TestResult) []string {
	var ret []string
	for _, r := range results {
		ret = append(ret, r.TestID.String())
	}
	return ret
}

func TestRunDoesNotCountRootContext(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {})
	assert.Len(t, results.Tests, 0)
	assert.True(t, results.OK())
}

func TestTestsRunInOrderAndFailuresDoNotStopLaterTests(t *testing.T) {
	var ran []string
	results := Run(nil, nil, func(c *Context) {
		c.Run("a", func(c *Context) { ran = append(ran, "a") })
		c.Run("b", func(c *Context) {
			ran = append(ran, "b")
			c.Errorf("b is wrong")
			c.FailNow()
		})
		c.Run("c", func(c *Context) { ran = append(ran, "c") })
		c.Run("d", func(c *Context) {
			ran = append(ran, "d")
			c.Errorf("d is wrong")
		})
	})

	assert.Equal(t, []string{"a", "b", "c", "d"}, ran)
	assert.Equal(t, []string{"a", "b", "c", "d"}, resultNames(results.Tests))
	assert.Equal(t, []string{"b", "d"}, resultNames(results.Failures))
	assert.Equal(t, 4, results.Count())
	assert.Equal(t, 2, results.FailureCount())
	assert.False(t, results.OK())
}

func TestFailNowAbandonsRestOfTest(t *testing.T) {
	reached := false
	results := Run(nil, nil, func(c *Context) {
		c.Run("x", func(c *Context) {
			c.Errorf("first")
			c.FailNow()
			reached = true
		})
	})
	assert.False(t, reached)
	require.Len(t, results.Failures, 1)
	assert.EqualError(t, results.Failures[0].Failure, "first")
}

func TestFirstFailureWins(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("x", func(c *Context) {
			c.Errorf("first")
			c.Errorf("second")
			assert.Equal(t, "first", c.Failure().Error())
		})
	})
	require.Len(t, results.Failures, 1)
	assert.EqualError(t, results.Failures[0].Failure, "first")
}

func TestFailNowWithoutMessage(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("x", func(c *Context) { c.FailNow() })
	})
	require.Len(t, results.Failures, 1)
	assert.EqualError(t, results.Failures[0].Failure, "test failed with no failure message")
}

func TestUnexpectedPanicIsRecordedAsFailure(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("x", func(c *Context) { panic("boom") })
		c.Run("y", func(c *Context) {})
	})
	assert.Equal(t, []string{"x", "y"}, resultNames(results.Tests))
	require.Len(t, results.Failures, 1)
	assert.Regexp(t, `^context_test\.go:\d+: unexpected panic in test: boom$`, results.Failures[0].Failure.Error())
}

func TestPanicDetailsGoToDebugOutput(t *testing.T) {
	var output CapturedOutput
	logger := &capturingTestLogger{onFinished: func(o CapturedOutput) { output = o }}
	results := Run(nil, logger, func(c *Context) {
		c.Run("x", func(c *Context) { panic("first line\nsecond line") })
	})
	require.Len(t, results.Failures, 1)
	assert.True(t, strings.HasSuffix(results.Failures[0].Failure.Error(), "unexpected panic in test: first line"))
	require.Len(t, output, 1)
	assert.Contains(t, output[0].Message, "panic value: first line\nsecond line")
	assert.Contains(t, output[0].Message, "goroutine")
}

func TestPanicOutsideOfAnyTestIsNotSwallowed(t *testing.T) {
	filter := func(id TestID) bool { panic("bad filter") }
	var recovered interface{}
	func() {
		defer func() { recovered = recover() }()
		Run(filter, nil, func(c *Context) {
			c.Run("x", func(c *Context) {})
		})
	}()
	err, ok := recovered.(error)
	require.True(t, ok, "expected Run to panic with an error, got %v", recovered)
	assert.Regexp(t, `^test run aborted outside of any test: .*unexpected panic in test: bad filter$`, err.Error())
}

func TestPassingTestHasNoFailure(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("x", func(c *Context) {})
	})
	require.Len(t, results.Tests, 1)
	assert.False(t, results.Tests[0].Failed())
	assert.Nil(t, results.Tests[0].Failure)
}

func TestSkippedTestIsNotCountedAsRun(t *testing.T) {
	logger := &recordingTestLogger{}
	results := Run(nil, logger, func(c *Context) {
		c.Run("x", func(c *Context) { c.SkipWithReason("not today") })
	})
	require.Len(t, results.Tests, 1)
	assert.True(t, results.Tests[0].Skipped)
	assert.Equal(t, 0, results.Count())
	assert.True(t, results.OK())
	assert.Equal(t, []loggedEvent{
		{"started", "x", ""},
		{"skipped", "x", "not today"},
	}, logger.events)
}

func TestFilterExcludesTests(t *testing.T) {
	var ran []string
	logger := &recordingTestLogger{}
	filter := func(id TestID) bool { return id.Name() != "b" }
	results := Run(filter, logger, func(c *Context) {
		for _, name := range []string{"a", "b", "c"} {
			name := name
			c.Run(name, func(c *Context) { ran = append(ran, name) })
		}
	})
	assert.Equal(t, []string{"a", "c"}, ran)
	assert.Equal(t, []string{"a", "c"}, resultNames(results.Tests))
	assert.Contains(t, logger.events, loggedEvent{"skipped", "b", "excluded by filter parameters"})
}

func TestLoggerEvents(t *testing.T) {
	logger := &recordingTestLogger{}
	Run(nil, logger, func(c *Context) {
		c.Run("ok", func(c *Context) {})
		c.Run("bad", func(c *Context) { c.Errorf("nope") })
	})
	assert.Equal(t, []loggedEvent{
		{"started", "ok", ""},
		{"finished", "ok", "false"},
		{"started", "bad", ""},
		{"error", "bad", "nope"},
		{"finished", "bad", "true"},
	}, logger.events)
}

func TestNestedTestIDs(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("outer", func(c *Context) {
			c.Run("inner", func(c *Context) {
				assert.Equal(t, "outer/inner", c.ID().String())
			})
		})
	})
	assert.Equal(t, []string{"outer/inner", "outer"}, resultNames(results.Tests))
}

func TestDebugOutputIsCaptured(t *testing.T) {
	var output CapturedOutput
	logger := &capturingTestLogger{onFinished: func(o CapturedOutput) { output = o }}
	Run(nil, logger, func(c *Context) {
		c.Run("x", func(c *Context) {
			c.Debug("value is %d", 3)
			c.DebugLogger().Printf("done")
		})
	})
	require.Len(t, output, 2)
	assert.Equal(t, "value is 3", output[0].Message)
	assert.Equal(t, "done", output[1].Message)
}

type capturingTestLogger struct {
	recordingTestLogger
	onFinished func(CapturedOutput)
}

func (l *capturingTestLogger) TestFinished(id TestID, failed bool, debugOutput CapturedOutput) {
	l.onFinished(debugOutput)
}
