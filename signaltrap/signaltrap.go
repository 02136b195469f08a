// Package signaltrap re-raises a trapped exception class's original OS
// signal once it has reached the outermost frame on a goroutine with
// nothing left to catch it, so the process terminates the way it would
// have without this module installed (spec.md §4.E, §7).
//
// It does not deliver a fault into a Try block. Go's os/signal model is
// process-wide and asynchronous: a signal handled via signal.Notify runs
// on a dedicated runtime-managed goroutine that has no Try frame of its
// own, so a panic raised there can never unwind into the goroutine whose
// code actually faulted. except/fault.go solves the delivery problem
// the idiomatic Go way instead, with runtime/debug.SetPanicOnFault: an
// invalid memory access becomes an ordinary, recoverable panic on the
// very goroutine that touched the bad address, caught by the same
// recover that already catches a nil pointer dereference. Reraise, in
// contrast, runs synchronously on the goroutine that just lost the
// exception, so it needs no cross-goroutine routing at all.
package signaltrap
