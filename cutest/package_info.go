// Package cutest is a small unit test harness in the style of CuTest.
//
// Cases are registered explicitly on a Suite, suites can be concatenated with AddSuite, and
// Suite.Run executes every case in registration order. The Report it returns renders the same
// text that CuTest prints, so tools that read CuTest output can read ours:
//
//	..F
//
//	There was 1 failure:
//	1) addTest_1_1: suites.go:25: expected <12> but was <-6>
//
//	!!!FAILURES!!!
//	Runs: 3 Passes: 2 Fails: 1
//
// Test execution itself is provided by the lower-level framework package.
package cutest
