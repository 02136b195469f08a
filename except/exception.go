package except

import (
	"fmt"
	"io"

	"github.com/orizon-lang/exceptrt/class"
)

// thrown is the payload carried by a panic while it unwinds toward the
// nearest Frame's scaffolding. It plays the role of the original's
// throwBuf/finalBuf jump target: Go's panic/recover already performs
// the non-local jump across arbitrary call depth, so thrown only needs
// to carry the exception's identity and origin.
type thrown struct {
	class *class.Class
	data  interface{}
	file  string
	line  int
}

// Exception is the value handed to a Catch clause's handler: the
// user-facing read-only view of a frame's pending exception.
type Exception struct {
	class *class.Class
	data  interface{}
	file  string
	line  int
}

// Class returns the exception's class.
func (e *Exception) Class() *class.Class {
	return e.class
}

// Message renders "<name>: file \"<f>\", line <n>." exactly as
// spec.md §6 specifies.
func (e *Exception) Message() string {
	return fmt.Sprintf("%s: file \"%s\", line %d.", e.class.Name(), e.file, e.line)
}

// Data returns the exception's associated payload, or nil.
func (e *Exception) Data() interface{} {
	return e.data
}

// File and Line return where the exception was thrown ("?"/0 for
// traps, which carry no source location).
func (e *Exception) File() string { return e.file }
func (e *Exception) Line() int    { return e.line }

func (e *Exception) String() string {
	return e.Message()
}

func fromThrown(th *thrown) *Exception {
	return &Exception{class: th.class, data: th.data, file: th.file, line: th.line}
}

// PrintTryTrace walks the calling goroutine's current frame stack from
// innermost to outermost, writing spec.md §6's trace format. className
// is the exception class whose occurrence is being traced (empty for a
// generic stack dump).
func PrintTryTrace(w io.Writer, className string) {
	ctx, ok := currentContext()
	if !ok {
		return
	}

	if className != "" {
		if singleThreaded {
			fmt.Fprintf(w, "%s occurred:\n", className)
		} else {
			fmt.Fprintf(w, "%s occurred in thread %d:\n", className, threadIdentity())
		}
	}

	for i := 0; i < ctx.depth(); i++ {
		f := ctx.peek(i)
		fmt.Fprintf(w, "        in 'try' at %s:%d\n", f.tryFile, f.tryLine)
	}
}
