package resultparser

import (
	"strings"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// GNUAssertParser reads the output of a test program that uses the C library's assert macro.
// Such programs stop at the first failed assertion and print no counts, so only the failure
// count is known: 1 if an assertion message was seen, otherwise 0.
type GNUAssertParser struct{}

func (GNUAssertParser) Parse(lines []string) (Results, bool) {
	var trace traceBuilder
	foundAssertion := false
	for _, line := range lines {
		switch {
		case strings.Contains(line, "Found: ["):
			foundAssertion = true
		case strings.Contains(line, "Assertion") && strings.HasSuffix(line, "failed."):
			foundAssertion = true
		default:
			trace.accept(line)
		}
	}
	failures := 0
	if foundAssertion {
		failures = 1
	}
	var summary Summary
	summary.FailureCount = ldvalue.NewOptionalInt(failures)
	return Results{Summary: summary, Trace: trace.build()}, true
}
