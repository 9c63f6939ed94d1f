package resultparser

import (
	"regexp"
	"strings"
)

var (
	cuTestOKPattern            = regexp.MustCompile(`^OK \([0-9]+ tests?\)$`)
	cuTestFailureHeaderPattern = regexp.MustCompile(`^There (was 1 failure|were [0-9]+ failures):$`)
)

// CuTestParser reads the text report printed by CuTest, or by the cutest package. The counts
// are taken from the progress line, which is followed by a blank line and then either
// "OK (n tests)" or a "There were n failures:" header. Trace directives anywhere before the
// report are collected; unrelated lines before or after it are ignored.
type CuTestParser struct{}

func (CuTestParser) Parse(lines []string) (Results, bool) {
	var trace traceBuilder
	for i, line := range lines {
		if trace.accept(line) {
			continue
		}
		if line == "OK (0 tests)" {
			return Results{Summary: newSummary(0, 0, 0), Trace: trace.build()}, true
		}
		if i+2 >= len(lines) || lines[i+1] != "" || !isProgressLine(line) {
			continue
		}
		passes := strings.Count(line, ".")
		failures := strings.Count(line, "F")
		ending := lines[i+2]
		switch {
		case failures == 0 && cuTestOKPattern.MatchString(ending):
			return Results{Summary: newSummary(passes, 0, passes), Trace: trace.build()}, true
		case cuTestFailureHeaderPattern.MatchString(ending):
			return Results{Summary: newSummary(passes+failures, failures, passes), Trace: trace.build()}, true
		}
	}
	return Results{}, false
}

func isProgressLine(line string) bool {
	if line == "" {
		return false
	}
	for _, ch := range line {
		if ch != '.' && ch != 'F' {
			return false
		}
	}
	return true
}
