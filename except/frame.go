package except

import "github.com/orizon-lang/exceptrt/class"

// state is the lifecycle of a frame's pending exception.
type state int

const (
	stateEmpty state = iota
	statePending
	stateCaught
)

// scope is which part of a try/catch/finally construct currently
// holds control.
type scope int

const (
	scopeOutside scope = iota
	scopeInternal
	scopeTry
	scopeCatch
	scopeFinally
)

func (s scope) String() string {
	switch s {
	case scopeOutside:
		return "OUTSIDE"
	case scopeInternal:
		return "INTERNAL"
	case scopeTry:
		return "TRY"
	case scopeCatch:
		return "CATCH"
	case scopeFinally:
		return "FINALLY"
	default:
		return "UNKNOWN"
	}
}

// Frame is one activation of a Try construct. Unlike the original C
// implementation, a Frame carries no jump-target fields: Go's own call
// stack plus the defer/recover pair installed by Finally play the role
// of throwBuf/finalBuf (see SPEC_FULL.md §4.D). readyFlag likewise has
// no analogue — Go's defer installs in a single step.
type Frame struct {
	st    state
	sc    scope
	class *class.Class
	data  interface{}

	// file/line identify where the current pending exception (if any)
	// was thrown; tryFile/tryLine identify where this frame's Try call
	// itself appears, for PrintTryTrace.
	file string
	line int

	tryFile string
	tryLine int

	firstInFunction bool

	// catchCheckList and validated exist only to back the debug-mode
	// catch-list validator (validate.go); they are always present but
	// unused in //go:build !debug builds, which keep validateCatchList
	// a no-op.
	catchCheckList []catchCheck
	validated      bool
}

// catchCheck is one (class, source line) pair accumulated while
// validating a frame's catch clauses (spec.md §4.F).
type catchCheck struct {
	class *class.Class
	line  int
}
