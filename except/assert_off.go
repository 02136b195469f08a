//go:build !debug

package except

// Assert is a no-op outside debug builds, per spec.md §6.
func Assert(cond bool, msg string) {}

// Validate returns (retval, false) on failure outside debug builds,
// instead of throwing, so a caller's own `v, ok := except.Validate(...);
// if !ok { return v }` provides spec.md §6's non-debug fallback-return
// behavior.
func Validate(cond bool, retval interface{}) (interface{}, bool) {
	if cond {
		return retval, true
	}

	return retval, false
}
