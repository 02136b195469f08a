//go:build !windows

package signaltrap

import (
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
)

// Reraise resets signum's disposition to the OS default and re-sends it
// to this process, so a trap nothing caught still terminates the
// process the way it would have without this module installed. Go's
// signal model has no "previous handler" slot the way POSIX sigaction
// does; signal.Reset is the closest equivalent, since it tells the Go
// runtime to stop intercepting signum at all.
func Reraise(signum int) {
	sig := syscall.Signal(signum)

	signal.Reset(sig)

	if err := unix.Kill(unix.Getpid(), unix.Signal(signum)); err != nil {
		os.Exit(128 + signum)
	}

	// The re-raised signal's default disposition (terminate, usually
	// with a core dump) takes effect asynchronously; block so this
	// goroutine doesn't race ahead of it.
	select {}
}
