// Package framework contains the low-level implementation of test execution that does not
// depend on any particular assertion style.
//
// The general model is similar to Go's *testing.T: a Context is associated with a test
// identifier, test logic runs against it and accumulates a success/failure result, and child
// tests are started with Context.Run. Tests always run sequentially, in the order they are
// started, and a failure or panic in one test never prevents the next one from running.
//
// The domain-specific code, such as the CuTest-style assertions in the cutest package, is
// responsible for providing a test API on top of the Context.
package framework
