package framework

import (
	"fmt"
	"io"
	"strings"
	"time"
)

const timestampFormat = "2006-01-02 15:04:05.000"

// Logger is the minimal logging interface used for debug output. *log.Logger implements it.
type Logger interface {
	Printf(format string, args ...interface{})
}

type nullLogger struct{}

func (nullLogger) Printf(string, ...interface{}) {}

func NullLogger() Logger { return nullLogger{} }

// TestLogger receives notifications as tests progress. Calls are made synchronously from the
// goroutine running the tests, in the order the events happen. TestError is called once per
// failed test, with its first failure.
type TestLogger interface {
	TestStarted(id TestID)
	TestError(id TestID, err error)
	TestFinished(id TestID, failed bool, debugOutput CapturedOutput)
	TestSkipped(id TestID, reason string)
}

type nullTestLogger struct{}

func (nullTestLogger) TestStarted(TestID)                        {}
func (nullTestLogger) TestError(TestID, error)                   {}
func (nullTestLogger) TestFinished(TestID, bool, CapturedOutput) {}
func (nullTestLogger) TestSkipped(TestID, string)                {}

// CapturedMessage is one entry of a test's debug output. Message may span several lines.
type CapturedMessage struct {
	Time    time.Time
	Message string
}

// CapturedOutput is the debug output of one test, oldest first.
type CapturedOutput []CapturedMessage

// Dump writes each message as "prefix[timestamp] message". Continuation lines of a multi-line
// message, such as a stack trace, are indented to line up under the first line.
func (output CapturedOutput) Dump(dest io.Writer, prefix string) {
	for _, m := range output {
		stamp := "[" + m.Time.Format(timestampFormat) + "] "
		lines := strings.Split(strings.TrimRight(m.Message, "\n"), "\n")
		fmt.Fprintf(dest, "%s%s%s\n", prefix, stamp, lines[0])
		indent := prefix + strings.Repeat(" ", len(stamp))
		for _, line := range lines[1:] {
			fmt.Fprintf(dest, "%s%s\n", indent, line)
		}
	}
}

// debugCapture collects the debug output of one test. It is only written by the goroutine
// running that test, so it needs no locking.
type debugCapture struct {
	output CapturedOutput
}

func (d *debugCapture) Printf(format string, args ...interface{}) {
	d.output = append(d.output, CapturedMessage{Time: time.Now(), Message: fmt.Sprintf(format, args...)})
}

// Output returns a copy of everything captured so far.
func (d *debugCapture) Output() CapturedOutput {
	return append(CapturedOutput(nil), d.output...)
}
