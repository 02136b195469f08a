package except

import "github.com/orizon-lang/exceptrt/class"

// Return smuggles a deferred `return value` through the panic/recover
// protocol: it panics a class.ReturnEvent-classed thrown carrying value
// as its data. The nearest enclosing Try/Catch/Finally's Finally call
// always terminates propagation of a ReturnEvent at its own level
// (Block.Finally's second return value, didReturn, reports this) —
// unlike an ordinary exception, which keeps propagating outward through
// every enclosing Finally call in the same Go function until something
// catches it.
//
// This asymmetry is the literal Go rendering of spec.md §4.D's
// firstInFunction: the original's macro-expanded try knows, at compile
// time, whether it is the outermost try textually inside its enclosing
// C function, and only that one converts a pending return event back
// into a real `return`. Go has no such macro, so a function whose body
// is built from nested Try calls must re-propagate an inner Return
// itself:
//
//	v, did := except.Try(func() {
//	    inner, innerDid := except.Try(...).Finally(...)
//	    if innerDid {
//	        except.Return(inner)
//	    }
//	}).Finally(...)
//	if did {
//	    return v.(int)
//	}
//
// A plain Throw/Catch exception needs no such glue: it propagates
// automatically via panic unwinding across as many nested Try calls as
// exist in one function, exactly like the original.
func Return(value interface{}) {
	panic(&thrown{class: class.ReturnEvent, data: value, file: "?", line: 0})
}
