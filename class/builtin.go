package class

import "syscall"

// The builtin exception forest, rooted at Throwable:
//
//	Throwable
//	├── Exception
//	│    └── OutOfMemoryError
//	├── RuntimeException
//	│    ├── AbnormalTermination   (SIGABRT)
//	│    ├── ArithmeticException  (SIGFPE)
//	│    ├── IllegalInstruction   (SIGILL)
//	│    ├── SegmentationFault    (SIGSEGV)
//	│    └── BusError             (SIGBUS, unix-only)
//	└── FailedAssertion
var (
	Throwable = Define("Throwable", nil)

	Exception        = Define("Exception", Throwable)
	OutOfMemoryError = Define("OutOfMemoryError", Exception)

	RuntimeException    = Define("RuntimeException", Throwable)
	AbnormalTermination = defineTrap("AbnormalTermination", RuntimeException, int(syscall.SIGABRT))
	ArithmeticException = defineTrap("ArithmeticException", RuntimeException, int(syscall.SIGFPE))
	IllegalInstruction  = defineTrap("IllegalInstruction", RuntimeException, int(syscall.SIGILL))
	SegmentationFault   = defineTrap("SegmentationFault", RuntimeException, int(syscall.SIGSEGV))

	FailedAssertion = Define("FailedAssertion", Throwable)

	// NativePanic wraps a Go panic value that did not originate from
	// Throw/Rethrow and is not a recognized hardware fault (an index out
	// of range, a plain `panic(...)` in user code reached through a try;
	// a nil or invalid memory dereference is classified as
	// SegmentationFault instead). Normalizing
	// these instead of letting them escape uncaught lets catch clauses
	// written against RuntimeException observe them too, the same way
	// the liu-dc/exception reference folds an arbitrary recovered value
	// into its own error type.
	NativePanic = Define("NativePanic", RuntimeException)
)

// BySignal maps an OS signal number to the builtin class it represents.
// Populated here with the platform-independent signals; builtin_unix.go
// adds BusError under //go:build !windows since SIGBUS doesn't exist on
// Windows and the redesign flag in spec.md §9 calls for refusing to
// install a handler for a signal the engine cannot translate, rather
// than leaving it mapped to an unset class.
var BySignal = map[int]*Class{
	int(syscall.SIGABRT): AbnormalTermination,
	int(syscall.SIGFPE):  ArithmeticException,
	int(syscall.SIGILL):  IllegalInstruction,
	int(syscall.SIGSEGV): SegmentationFault,
}

// ReturnEvent is an internal marker class, never registered in the
// public name registry, used to smuggle a deferred `return` through
// the panic/recover protocol (spec.md §4.D, §9). It is exported only so
// the except package can use it; Lookup and Names never return it.
var ReturnEvent = &Class{name: "ReturnEvent", parent: nil}
