package resultparser

import (
	"fmt"
	"strings"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Summary holds the counts a test program reported. A count is undefined when the output
// format does not provide it.
type Summary struct {
	TestCount    ldvalue.OptionalInt
	FailureCount ldvalue.OptionalInt
	SuccessCount ldvalue.OptionalInt
}

func newSummary(tests, failures, successes int) Summary {
	return Summary{
		TestCount:    ldvalue.NewOptionalInt(tests),
		FailureCount: ldvalue.NewOptionalInt(failures),
		SuccessCount: ldvalue.NewOptionalInt(successes),
	}
}

// Failed reports whether at least one failure was reported.
func (s Summary) Failed() bool {
	return s.FailureCount.OrElse(0) > 0
}

// Results is everything extracted from the output of one test program run.
type Results struct {
	Summary Summary
	Trace   Trace
}

// Parser reads the output of a test program, one line per element without line terminators.
// The boolean result is false if the output did not contain a complete report.
type Parser interface {
	Parse(lines []string) (Results, bool)
}

const (
	CuTestFormat    = "cutest"
	GNUAssertFormat = "gnu-assert"
)

// New returns the parser for the named output format.
func New(format string) (Parser, error) {
	switch format {
	case CuTestFormat:
		return CuTestParser{}, nil
	case GNUAssertFormat:
		return GNUAssertParser{}, nil
	}
	return nil, fmt.Errorf("unknown test output format %q", format)
}

// Lines splits captured program output into the form expected by Parser.
func Lines(output string) []string {
	lines := strings.Split(output, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
