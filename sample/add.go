// Package sample holds the code exercised by the registered test suites.
package sample

// Add returns a + b. Overflow wraps around like any other int addition.
func Add(a, b int) int {
	return a + b
}
