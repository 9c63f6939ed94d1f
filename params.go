package main

import (
	"flag"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/Canary-Developer/canary/cutest"
	"github.com/Canary-Developer/canary/framework"

	"github.com/alessio/shellescape"
)

type commandParams struct {
	filters  framework.RegexFilters
	selfTest bool
	strict   bool
	quiet    bool
	debug    bool
	debugAll bool
}

func (c *commandParams) Read(args []string, errOut io.Writer) bool {
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.BoolVar(&c.selfTest, "self-test", false, "also run the canary tests of the assertions themselves, which always fail")
	fs.BoolVar(&c.strict, "strict", false, "exit with status 1 if any test failed")
	fs.BoolVar(&c.quiet, "quiet", false, "do not log each test as it runs")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")

	if err := fs.Parse(args[1:]); err != nil {
		// the flag package has already reported the error along with the usage text
		return false
	}
	if fs.NArg() != 0 {
		fmt.Fprintf(errOut, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		fs.Usage()
		return false
	}
	return true
}

// rerunCommand returns a shell command line that runs only the failed tests again.
func (c *commandParams) rerunCommand(program string, failures []cutest.Failure) string {
	var b commandBuilder
	b.add(program)
	if c.selfTest {
		b.add("-self-test")
	}
	for _, f := range failures {
		b.add("-run", "^"+regexp.QuoteMeta(f.Name)+"$")
	}
	return b.String()
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}
