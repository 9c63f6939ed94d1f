package cutest

import (
	"fmt"
	"math"
	"reflect"
)

// Outcome is the result of a single comparison. Message is only set if the comparison failed.
type Outcome struct {
	Passed  bool
	Message string
}

func passed() Outcome {
	return Outcome{Passed: true}
}

func failed(msgAndArgs []interface{}, format string, args ...interface{}) Outcome {
	message := fmt.Sprintf(format, args...)
	if prefix := messageFromMsgAndArgs(msgAndArgs); prefix != "" {
		message = prefix + ": " + message
	}
	return Outcome{Message: message}
}

// messageFromMsgAndArgs follows the testify convention: either a single value, or a format
// string followed by its arguments.
func messageFromMsgAndArgs(msgAndArgs []interface{}) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	if len(msgAndArgs) == 1 {
		if s, ok := msgAndArgs[0].(string); ok {
			return s
		}
		return fmt.Sprintf("%+v", msgAndArgs[0])
	}
	if format, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(format, msgAndArgs[1:]...)
	}
	return fmt.Sprint(msgAndArgs...)
}

// CheckTrue fails if condition is false.
func CheckTrue(condition bool, msgAndArgs ...interface{}) Outcome {
	if condition {
		return passed()
	}
	return failed(msgAndArgs, "assertion failed")
}

// CheckIntEquals fails if the two integers differ.
func CheckIntEquals(expected, actual int, msgAndArgs ...interface{}) Outcome {
	if expected == actual {
		return passed()
	}
	return failed(msgAndArgs, "expected <%d> but was <%d>", expected, actual)
}

// CheckDblEquals fails if actual differs from expected by more than tolerance. A negative
// tolerance is invalid and always fails, as does a NaN difference.
func CheckDblEquals(expected, actual, tolerance float64, msgAndArgs ...interface{}) Outcome {
	if tolerance < 0 || math.IsNaN(tolerance) {
		return failed(msgAndArgs, "invalid tolerance <%f>: must not be negative", tolerance)
	}
	if expected == actual {
		return passed()
	}
	diff := math.Abs(expected - actual)
	if math.IsNaN(diff) || diff > tolerance {
		return failed(msgAndArgs, "expected <%f> but was <%f>", expected, actual)
	}
	return passed()
}

// CheckPtrEquals fails unless expected and actual refer to the same storage. Values of
// different pointer types never match, even at the same address. Any two nils match, whether
// or not they are typed, so CheckPtrEquals(nil, p) passes for a nil *Foo.
func CheckPtrEquals(expected, actual interface{}, msgAndArgs ...interface{}) Outcome {
	if samePointers(expected, actual) {
		return passed()
	}
	return failed(msgAndArgs, "expected pointer <%s> but was <%s>", pointerString(expected), pointerString(actual))
}

// CheckStrEquals fails if the two strings differ in length or in any byte.
func CheckStrEquals(expected, actual string, msgAndArgs ...interface{}) Outcome {
	if expected == actual {
		return passed()
	}
	return failed(msgAndArgs, "expected <%s> but was <%s>", expected, actual)
}

func isReference(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Ptr, reflect.UnsafePointer, reflect.Map, reflect.Chan:
		return true
	}
	return false
}

func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return isReference(rv) && rv.Pointer() == 0
}

func samePointers(expected, actual interface{}) bool {
	if isNil(expected) || isNil(actual) {
		return isNil(expected) && isNil(actual)
	}
	ev, av := reflect.ValueOf(expected), reflect.ValueOf(actual)
	if !isReference(ev) || !isReference(av) {
		return false
	}
	return ev.Type() == av.Type() && ev.Pointer() == av.Pointer()
}

func pointerString(v interface{}) string {
	if isNil(v) {
		return "nil"
	}
	rv := reflect.ValueOf(v)
	if !isReference(rv) {
		return fmt.Sprintf("%T(%v)", v, v)
	}
	return fmt.Sprintf("0x%x", rv.Pointer())
}
