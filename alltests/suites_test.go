package alltests

import (
	"strings"
	"testing"

	"github.com/Canary-Developer/canary/cutest"
	"github.com/Canary-Developer/canary/resultparser"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

func TestAddSuitePasses(t *testing.T) {
	report := AddSuite().Run(nil, nil)
	assert.Equal(t, 2, report.Count())
	assert.True(t, report.OK())
	assert.Equal(t, "..\n\nOK (2 tests)\n", report.String())
}

func TestEveryCanaryFails(t *testing.T) {
	report := CuTestSuite().Run(nil, nil)
	assert.Equal(t, 5, report.Count())
	assert.Equal(t, 5, report.FailureCount())
	assert.Equal(t, "FFFFF", report.Progress())

	var names []string
	for _, f := range report.Failures() {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{
		"Test_CuAssertIntEquals",
		"Test_CuAssertDblEquals",
		"Test_CuAssertTrue",
		"Test_CuAssertPtrEquals",
		"Test_CuAssertStrEquals",
	}, names)
}

func TestAllTestsOrder(t *testing.T) {
	assert.Equal(t, 2, AllTests(false).Len())

	cases := AllTests(true).Cases()
	require.Len(t, cases, 7)
	assert.Equal(t, "addTest", cases[0].Name)
	assert.Equal(t, "addTest_1_1", cases[1].Name)
	assert.Equal(t, "Test_CuAssertIntEquals", cases[2].Name)
	assert.Equal(t, "Test_CuAssertStrEquals", cases[6].Name)
}

func TestReportCanBeParsedBack(t *testing.T) {
	report := RunAllTests(true, nil, nil)
	lines := resultparser.Lines(report.String())

	results, ok := resultparser.CuTestParser{}.Parse(lines)
	require.True(t, ok)
	assert.Equal(t, ldvalue.NewOptionalInt(7), results.Summary.TestCount)
	assert.Equal(t, ldvalue.NewOptionalInt(5), results.Summary.FailureCount)
	assert.Equal(t, ldvalue.NewOptionalInt(2), results.Summary.SuccessCount)

	failures := resultparser.ParseFailures(lines)
	require.Len(t, failures, 5)
	assert.Equal(t, "Test_CuAssertIntEquals", failures[0].Name)
	assert.Equal(t, "0", failures[0].Expected)
	assert.Equal(t, "2", failures[0].Actual)
	assert.Equal(t, "0.000000", failures[1].Expected)
	assert.Equal(t, "0.200000", failures[1].Actual)
	assert.Equal(t, "true", failures[2].Expected)
	assert.Equal(t, "false", failures[2].Actual)
	assert.NotEqual(t, failures[3].Expected, failures[3].Actual)
	assert.Equal(t, "123", failures[4].Expected)
	assert.Equal(t, "32", failures[4].Actual)
	assert.Regexp(t, `^suites\.go:\d+$`, failures[4].Source)
}

func TestReportWithTestifyAndPanicFailuresCanBeParsedBack(t *testing.T) {
	suite := cutest.NewSuite()
	suite.AddTest("viaRequire", func(t *cutest.T) {
		require.Equal(t, 1, 2)
	})
	suite.AddTest("panics", func(t *cutest.T) {
		panic("boom")
	})
	suite.AddTest("viaAssert", func(t *cutest.T) {
		t.AssertIntEquals(1, 2)
	})
	report := suite.Run(nil, nil)
	out := report.String()
	assert.NotContains(t, out, "goroutine")
	assert.NotContains(t, out, "Error Trace")

	lines := resultparser.Lines(out)
	results, ok := resultparser.CuTestParser{}.Parse(lines)
	require.True(t, ok)
	assert.Equal(t, ldvalue.NewOptionalInt(3), results.Summary.FailureCount)

	failures := resultparser.ParseFailures(lines)
	require.Len(t, failures, 3)
	assert.Equal(t, "viaRequire", failures[0].Name)
	assert.Regexp(t, `^suites_test\.go:\d+$`, failures[0].Source)
	assert.Equal(t, "1", failures[0].Expected)
	assert.Equal(t, "2", failures[0].Actual)

	assert.Equal(t, "panics", failures[1].Name)
	assert.Regexp(t, `^suites_test\.go:\d+$`, failures[1].Source)
	assert.Equal(t, "unexpected panic in test: boom", failures[1].Message)

	assert.Equal(t, "viaAssert", failures[2].Name)
	assert.Regexp(t, `^suites_test\.go:\d+$`, failures[2].Source)

	assert.Len(t, strings.Split(strings.TrimSuffix(out, "\n"), "\n"), 9)
}
