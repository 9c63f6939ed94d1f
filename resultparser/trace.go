package resultparser

import "strings"

// Location is one "Location=<id>" line emitted by instrumented code, together with the test
// and unit that were open when it was printed. Test and Unit are empty if none was open.
type Location struct {
	Test string
	Unit string
	ID   string
}

// Trace is the ordered sequence of locations seen in a test program's output.
type Trace []Location

// Contains reports whether the location id was visited at all.
func (t Trace) Contains(id string) bool {
	for _, l := range t {
		if l.ID == id {
			return true
		}
	}
	return false
}

// Visitations counts how many times each location id was visited.
func (t Trace) Visitations() map[string]int {
	ret := make(map[string]int)
	for _, l := range t {
		ret[l.ID]++
	}
	return ret
}

// InUnit returns the locations visited while the named unit was open.
func (t Trace) InUnit(unit string) Trace {
	var ret Trace
	for _, l := range t {
		if l.Unit == unit {
			ret = append(ret, l)
		}
	}
	return ret
}

// SplitOn cuts the trace before every visit of id. Any locations before the first visit form
// a trace of their own.
func (t Trace) SplitOn(id string) []Trace {
	var ret []Trace
	var current Trace
	for _, l := range t {
		if l.ID == id && len(current) > 0 {
			ret = append(ret, current)
			current = nil
		}
		current = append(current, l)
	}
	if len(current) > 0 {
		ret = append(ret, current)
	}
	return ret
}

type traceBuilder struct {
	test     string
	unit     string
	sequence Trace
}

// accept consumes one line if it is a trace directive, and reports whether it was one.
func (b *traceBuilder) accept(line string) bool {
	action, info := line, ""
	if i := strings.IndexByte(line, '='); i >= 0 {
		action, info = line[:i], line[i+1:]
	}
	switch action {
	case "BeginTest":
		b.test = info
	case "EndTest":
		b.test = ""
	case "BeginUnit":
		b.unit = info
	case "EndUnit":
		b.unit = ""
	case "Location":
		b.sequence = append(b.sequence, Location{Test: b.test, Unit: b.unit, ID: info})
	default:
		return false
	}
	return true
}

func (b *traceBuilder) build() Trace {
	return append(Trace{}, b.sequence...)
}
