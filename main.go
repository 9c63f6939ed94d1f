package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/Canary-Developer/canary/alltests"
	"github.com/Canary-Developer/canary/framework"

	"github.com/fatih/color"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// run returns the process exit status. Failed tests only affect it with -strict: without it
// the status is 0 whenever the tests could be run at all.
func run(args []string, stdout, stderr io.Writer) int {
	var params commandParams
	if !params.Read(args, stderr) {
		return 1
	}

	mainDebugLogger := framework.NullLogger()
	if params.debugAll {
		mainDebugLogger = log.New(stderr, "", log.LstdFlags)
	}

	framework.PrintFilterDescription(stderr, params.filters)

	var testLogger framework.TestLogger
	if !params.quiet {
		testLogger = &ConsoleTestLogger{
			Out:                  stderr,
			DebugOutputOnFailure: params.debug || params.debugAll,
			DebugOutputOnSuccess: params.debugAll,
		}
	}

	mainDebugLogger.Printf("Running test suite (self tests included: %t)", params.selfTest)
	report := alltests.RunAllTests(params.selfTest, params.filters.AsFilter, testLogger)
	mainDebugLogger.Printf("Test suite finished: %s", report.Summary())

	if _, err := report.WriteTo(stdout); err != nil {
		fmt.Fprintf(stderr, "Could not write report: %s\n", err)
		return 1
	}

	if !report.OK() {
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, color.YellowString("To run only the failed tests again:"))
		fmt.Fprintf(stderr, "  %s\n", params.rerunCommand(filepath.Base(args[0]), report.Failures()))
		if params.strict {
			return 1
		}
	}
	return 0
}
