// Package alltests registers the test suites run by the canary command.
package alltests

import (
	"github.com/Canary-Developer/canary/cutest"
	"github.com/Canary-Developer/canary/framework"
	"github.com/Canary-Developer/canary/sample"
)

func addZeroes(t *cutest.T) {
	a, b := 0, 0
	actual := sample.Add(a, b)
	expected := 0
	t.AssertIntEquals(expected, actual)
}

func addPositives(t *cutest.T) {
	a, b := 3, 9
	actual := sample.Add(a, b)
	expected := 12
	t.AssertIntEquals(expected, actual)
}

// AddSuite tests sample.Add.
func AddSuite() *cutest.Suite {
	suite := cutest.NewSuite()
	suite.AddTest("addTest", addZeroes)
	suite.AddTest("addTest_1_1", addPositives)
	return suite
}

// CuTestSuite checks that each kind of assertion is able to fail. Every case in it is
// expected to fail; a passing case means the assertion is broken.
func CuTestSuite() *cutest.Suite {
	suite := cutest.NewSuite()
	suite.AddTest("Test_CuAssertIntEquals", func(t *cutest.T) {
		t.AssertIntEquals(0, 2)
	})
	suite.AddTest("Test_CuAssertDblEquals", func(t *cutest.T) {
		t.AssertDblEquals(0.0, 0.2, 0.1)
	})
	suite.AddTest("Test_CuAssertTrue", func(t *cutest.T) {
		t.AssertTrue(false)
	})
	suite.AddTest("Test_CuAssertPtrEquals", func(t *cutest.T) {
		expected, actual := new(byte), new(byte)
		t.AssertPtrEquals(expected, actual)
	})
	suite.AddTest("Test_CuAssertStrEquals", func(t *cutest.T) {
		t.AssertStrEquals("123", "32")
	})
	return suite
}

// AllTests returns AddSuite, followed by CuTestSuite if includeSelfTests is true.
func AllTests(includeSelfTests bool) *cutest.Suite {
	suite := cutest.NewSuite()
	suite.AddSuite(AddSuite())
	if includeSelfTests {
		suite.AddSuite(CuTestSuite())
	}
	return suite
}

func RunAllTests(
	includeSelfTests bool,
	filter framework.Filter,
	testLogger framework.TestLogger,
) cutest.Report {
	return AllTests(includeSelfTests).Run(filter, testLogger)
}
