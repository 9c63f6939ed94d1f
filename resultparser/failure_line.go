package resultparser

import (
	"fmt"
	"strconv"
	"strings"
)

// FailedTest is one line of the failure list in a CuTest report, such as
//
//	1) addTest_1_1: AllTests.c:25: expected <12> but was <-6>
//
// Expected and Actual are only set for messages that compare two values. For a failed truth
// assertion they are "true" and "false".
type FailedTest struct {
	Index    int
	Name     string
	Source   string
	Message  string
	Expected string
	Actual   string
}

const (
	expectedPrefix        = "expected <"
	expectedPointerPrefix = "expected pointer <"
	butWasSeparator       = "> but was <"
)

// ParseFailureLine splits a failure line into its parts. It returns an error if the line does
// not have the "n) name: source: message" shape. The name may contain spaces, and values in
// the message may themselves contain ": ".
func ParseFailureLine(line string) (FailedTest, error) {
	line = strings.TrimRight(line, "\r\n")
	header := strings.Index(line, ") ")
	if header < 0 {
		return FailedTest{}, fmt.Errorf("failure line has no numbered test name: %q", line)
	}
	index, err := strconv.Atoi(line[:header])
	if err != nil {
		return FailedTest{}, fmt.Errorf("failure line has invalid index: %w", err)
	}
	parts := strings.SplitN(line[header+2:], ": ", 3)
	if len(parts) < 3 || parts[0] == "" {
		return FailedTest{}, fmt.Errorf("not a failure line: %q", line)
	}

	f := FailedTest{
		Index:   index,
		Name:    parts[0],
		Source:  parts[1],
		Message: parts[2],
	}
	f.Expected, f.Actual = splitExpectedActual(f.Message)
	return f, nil
}

func splitExpectedActual(message string) (string, string) {
	if strings.Contains(message, "assert failed") || strings.Contains(message, "assertion failed") {
		return "true", "false"
	}
	start := strings.Index(message, expectedPointerPrefix)
	if start >= 0 {
		start += len(expectedPointerPrefix)
	} else if start = strings.Index(message, expectedPrefix); start >= 0 {
		start += len(expectedPrefix)
	} else {
		return "", ""
	}
	rest := message[start:]
	sep := strings.Index(rest, butWasSeparator)
	if sep < 0 || !strings.HasSuffix(rest, ">") {
		return "", ""
	}
	return rest[:sep], rest[sep+len(butWasSeparator) : len(rest)-1]
}

// ParseFailures returns every failure line found in lines, in order. Other lines are ignored.
func ParseFailures(lines []string) []FailedTest {
	var ret []FailedTest
	for _, line := range lines {
		if line == "" || line[0] < '0' || line[0] > '9' {
			continue
		}
		if f, err := ParseFailureLine(line); err == nil {
			ret = append(ret, f)
		}
	}
	return ret
}
