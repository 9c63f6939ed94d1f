// Package resultparser reads the text output of test programs back into counts, failures,
// and instrumentation traces.
//
// The CuTest format is the one produced by cutest.Report, so a report can be checked or
// consumed by a separate process that only sees the program's standard output. Instrumented
// programs may interleave trace directives ("BeginTest=<name>", "EndTest", "BeginUnit=<name>",
// "EndUnit", "Location=<id>") with that output; they are collected into a Trace.
package resultparser
