package except

import (
	"runtime"

	"github.com/orizon-lang/exceptrt/class"
)

// Throw raises a fresh exception of class c, carrying data. It must be
// called from inside a Try/Catch/Finally callback running on the
// calling goroutine; calling it with no active frame still panics (the
// panic simply propagates as an ordinary, uncaught Go panic, since
// there is no frame to record it against).
//
// Throw and Rethrow are kept as separate entry points rather than a
// single Throw with an "is this a rethrow" flag: spec.md §4.D's class
// vs. instance marker distinguishing a fresh throw from a rethrow is
// naturally expressed by Go's own type/call-site distinction instead of
// a runtime flag on the exception value.
func Throw(c *class.Class, data interface{}) {
	_, file, line, _ := runtime.Caller(1)
	panic(&thrown{class: c, data: data, file: file, line: line})
}

// Rethrow re-raises the exception currently held by a Catch clause's
// Exception value, preserving its original class, data, and source
// location rather than attributing it to the rethrow site.
func Rethrow(e *Exception) {
	panic(&thrown{class: e.class, data: e.data, file: e.file, line: e.line})
}

// normalize turns any recovered panic value into a *thrown: values
// already in that shape pass through unchanged; a recognized hardware
// fault (a nil/invalid memory dereference, integer divide by zero, an
// illegal instruction, an unaligned access) is classified to the
// matching builtin trap class via classifyFault (fault.go), carrying
// spec.md §4.E's trap semantics without any signal ever being involved;
// anything else (a plain Go panic, an unrecognized runtime error) is
// wrapped as class.NativePanic so that catch clauses written against
// RuntimeException still see it.
func normalize(r interface{}) *thrown {
	if th, ok := r.(*thrown); ok {
		return th
	}

	if c := classifyFault(r); c != nil {
		return &thrown{class: c, data: r, file: "?", line: 0}
	}

	return &thrown{class: class.NativePanic, data: r, file: "?", line: 0}
}
