//go:build !windows

package class

import "syscall"

// BusError exists only on platforms with SIGBUS. Resolves spec.md's
// open question about SIGBUS availability by never defining the class
// (and never populating BySignal for it) on platforms that lack the
// signal, instead of registering it with an unset signal number.
var BusError = defineTrap("BusError", RuntimeException, int(syscall.SIGBUS))

func init() {
	BySignal[int(syscall.SIGBUS)] = BusError
}
