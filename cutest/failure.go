package cutest

import (
	"fmt"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"
)

const testifyPackagePrefix = "github.com/stretchr/testify/"

var tMethodPrefix = reflect.TypeOf(T{}).PkgPath() + ".(*T)."

// callerLocation returns "file:line" of the innermost caller that is neither a method of T nor
// part of testify, which is the line of the assertion in the case body.
func callerLocation() string {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		f, more := frames.Next()
		if !strings.HasPrefix(f.Function, tMethodPrefix) && !strings.HasPrefix(f.Function, testifyPackagePrefix) {
			return fmt.Sprintf("%s:%d", filepath.Base(f.File), f.Line)
		}
		if !more {
			return "???:0"
		}
	}
}

var testifyLabels = []string{"Error Trace", "Error", "Test", "Messages"}

// testifyLabel recognizes the first line of one section of testify's labeled failure output,
// "\tLabel:   \tcontent".
func testifyLabel(line string) (string, string, bool) {
	if !strings.HasPrefix(line, "\t") {
		return "", "", false
	}
	rest := line[1:]
	for _, label := range testifyLabels {
		if strings.HasPrefix(rest, label+":") {
			return label, strings.TrimSpace(rest[len(label)+1:]), true
		}
	}
	return "", "", false
}

// failureSummary reduces a failure message to one line. Single-line messages are returned
// unchanged. For testify output the "Error" section is used, in the form "expected <E> but was
// <A>" when it compares two values, prefixed by the "Messages" section if there is one.
// Anything else is reduced to its first non-blank line.
func failureSummary(message string) string {
	if !strings.Contains(message, "\n") {
		return message
	}
	sections := make(map[string][]string)
	current := ""
	for _, line := range strings.Split(message, "\n") {
		if label, content, ok := testifyLabel(line); ok {
			current = label
			sections[label] = append(sections[label], content)
			continue
		}
		if current != "" {
			sections[current] = append(sections[current], strings.TrimSpace(line))
		}
	}

	errorLines := sections["Error"]
	if len(errorLines) == 0 {
		return firstLine(message)
	}
	summary := strings.TrimSuffix(strings.TrimSpace(errorLines[0]), ":")
	var expected, actual string
	var haveExpected, haveActual bool
	for _, line := range errorLines[1:] {
		switch {
		case strings.HasPrefix(line, "expected") && !haveExpected:
			expected, haveExpected = labelValue(line), true
		case strings.HasPrefix(line, "actual") && !haveActual:
			actual, haveActual = labelValue(line), true
		}
	}
	if haveExpected && haveActual {
		summary = fmt.Sprintf("expected <%s> but was <%s>", expected, actual)
	}
	if msgs := strings.Join(sections["Messages"], " "); msgs != "" {
		summary = msgs + ": " + summary
	}
	return summary
}

func labelValue(line string) string {
	if i := strings.Index(line, ":"); i >= 0 {
		return strings.TrimSpace(line[i+1:])
	}
	return ""
}

func firstLine(message string) string {
	for _, line := range strings.Split(message, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}
