//go:build abortonassert

package except

import "os"

// defaultAssertionTerminator logs and then terminates the process
// immediately, matching the original's abortonassert disposition for a
// FailedAssertion that reaches the outermost frame uncaught.
func defaultAssertionTerminator(msg string) {
	diagnosticf("Assertion failed: %s\n", msg)
	os.Exit(1)
}
