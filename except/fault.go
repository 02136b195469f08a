package except

import (
	"runtime/debug"
	"strings"

	"github.com/orizon-lang/exceptrt/class"
)

// acquireFaultTrapping arranges for an invalid memory access on the
// calling goroutine to surface as an ordinary, recoverable panic instead
// of crashing the process outright, for the duration of its outermost
// Try. It returns the goroutine's previous setting so releaseFaultTrapping
// can restore it once that Try's frame stack empties back out.
//
// This is the actual delivery mechanism for spec.md §4.E's hardware
// traps: SetPanicOnFault is goroutine-local, so once it is set, a fault
// on this goroutine unwinds through this goroutine's own call stack
// exactly like a nil pointer dereference already does without any
// special setting — runTry's existing recover picks it up with no
// separate signal-delivery path at all. An earlier attempt routed these
// through os/signal.Notify onto a dedicated listener goroutine instead;
// that goroutine has no Try frame of its own, so a panic raised there
// could never unwind into the goroutine that actually faulted. See
// signaltrap's package doc.
func acquireFaultTrapping() bool {
	return debug.SetPanicOnFault(true)
}

func releaseFaultTrapping(prev bool) {
	debug.SetPanicOnFault(prev)
}

// classifyFault maps a recovered runtime panic's message onto the
// matching builtin trap class, when it clearly names one of the
// hardware faults spec.md §4.E translates. It returns nil for anything
// it doesn't recognize, leaving normalize to fall back to NativePanic.
// Go gives no typed distinction finer than runtime.Error for these, so
// this matches on the runtime's own (stable, documented) panic message
// text, the same way the liu-dc/exception reference's normalizeError
// inspects an arbitrary recovered value to decide what it is.
func classifyFault(r interface{}) *class.Class {
	err, ok := r.(error)
	if !ok {
		return nil
	}

	msg := err.Error()

	switch {
	case strings.Contains(msg, "invalid memory address"),
		strings.Contains(msg, "nil pointer dereference"):
		return class.SegmentationFault
	case strings.Contains(msg, "integer divide by zero"):
		return class.ArithmeticException
	case strings.Contains(msg, "illegal instruction"):
		return class.IllegalInstruction
	default:
		return classifyPlatformFault(msg)
	}
}
