//go:build windows

package signaltrap

import "os"

// Reraise has no raise(3)-equivalent on Windows; it terminates the
// process directly with the signal number folded into the exit code,
// which is the closest observable equivalent a caller can check for.
func Reraise(signum int) {
	os.Exit(128 + signum)
}
