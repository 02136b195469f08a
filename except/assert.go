package except

import "github.com/orizon-lang/exceptrt/class"

// Check throws c with msg as data if cond is false, in every build —
// unlike Assert, c need not be FailedAssertion, and unlike Assert this
// check is not debug-gated: Check is for a caller that wants
// assertion-style shorthand but a specific exception class it always
// wants enforced.
func Check(cond bool, c *class.Class, msg string) {
	if !cond {
		Throw(c, msg)
	}
}
