//go:build debug

package except

import "github.com/orizon-lang/exceptrt/class"

// Assert throws FailedAssertion with msg as its data if cond is false.
// This debug build additionally writes msg to the diagnostic stream
// before throwing (validate.go); assert_off.go makes
// this a no-op outside debug builds, per spec.md §6.
func Assert(cond bool, msg string) {
	if cond {
		return
	}

	assertFailed(msg)
	Throw(class.FailedAssertion, msg)
}

// Validate reports whether cond holds. When it does, it returns
// (retval, true) unchanged; when it doesn't, this debug build throws
// FailedAssertion exactly like Assert does and therefore never returns
// to its caller in that case — the boolean result exists only so
// callers can write `v, _ := except.Validate(...)` against the same
// call shape assert_off.go's non-debug Validate uses.
func Validate(cond bool, retval interface{}) (interface{}, bool) {
	if cond {
		return retval, true
	}

	Assert(false, "validation failed")

	return nil, false
}
