package except

import (
	"fmt"
	"runtime"

	"github.com/orizon-lang/exceptrt/class"
	"github.com/orizon-lang/exceptrt/signaltrap"
)

// catchClause pairs a class with the handler that runs when a pending
// exception derives from it, plus the source line of the Catch call
// for the debug-mode validator.
type catchClause struct {
	class   *class.Class
	handler func(*Exception)
	line    int
}

// Block is a fluent Try/Catch/Finally builder, grounded on the
// liu-dc/exception reference's chained Try().Catch().Finally() shape.
// A Block is built once per Try call and consumed by its Run or
// Finally call; it is not meant to be reused.
type Block struct {
	tryFn   func()
	catches []catchClause

	tryFile string
	tryLine int
}

// Try begins a try/catch/finally construct. fn runs immediately inside
// Run or Finally, not at Try's own call time.
func Try(fn func()) *Block {
	_, file, line, _ := runtime.Caller(1)

	return &Block{tryFn: fn, tryFile: file, tryLine: line}
}

// Catch appends a handler that runs if the pending exception derives
// from c. Clauses are tried in the order they were added; the first
// match wins, exactly like a chain of C++ or Java catch clauses.
func (b *Block) Catch(c *class.Class, handler func(*Exception)) *Block {
	_, _, line, _ := runtime.Caller(1)
	b.catches = append(b.catches, catchClause{class: c, handler: handler, line: line})

	return b
}

// Run executes the construct with no finally block and discards any
// Return value — it is a convenience for the common case where the
// try's own body never needs to propagate a `return` outward.
func (b *Block) Run() {
	b.Finally(nil)
}

// Finally executes the construct: tryFn runs under Phase TRY; if it
// panics with an exception, the catch clauses run under Phase CATCH in
// order; finallyFn (which may be nil) always runs last, under Phase
// FINALLY, regardless of what happened before it. If the exception
// still pending when finallyFn returns is a class.ReturnEvent, Finally
// terminates it here: value is the boxed argument passed to Return and
// didReturn is true, for the caller's own `return` statement to
// consume (see return_event.go). Any other still-pending exception
// propagates by panicking once more, to be caught by the next
// enclosing Try/Finally call still active on the goroutine's call
// stack; if there is none, terminal handles it and Finally returns.
func (b *Block) Finally(finallyFn func()) (value interface{}, didReturn bool) {
	ctx := ensureContext()
	fr := ctx.push()
	fr.tryFile, fr.tryLine = b.tryFile, b.tryLine
	fr.firstInFunction = true

	wasEmpty := ctx.depth() == 1
	if wasEmpty {
		ctx.faultTrappingPrev = acquireFaultTrapping()
	}

	validateCatchList(b, fr)

	defer func() {
		popped := ctx.pop()
		outermost := ctx.depth() == 0

		if outermost {
			releaseFaultTrapping(ctx.faultTrappingPrev)
			defer destroyContext()
		}

		if popped.st != statePending {
			return
		}

		if popped.class == class.ReturnEvent {
			value, didReturn = popped.data, true
			return
		}

		if outermost {
			// Lost at outermost scope: the terminal action runs and
			// the Try call simply returns (spec.md §7) — except for a
			// trapped signal, whose Reraise never returns at all.
			terminal(popped)
			return
		}

		panic(&thrown{class: popped.class, data: popped.data, file: popped.file, line: popped.line})
	}()

	runTry(b, fr)
	runCatch(b, fr)
	runFinallyBody(finallyFn, fr)

	return
}

// runTry executes b.tryFn under Phase TRY, recovering any panic and
// recording it as fr's pending exception.
func runTry(b *Block, fr *Frame) {
	defer func() {
		if r := recover(); r != nil {
			record(fr, normalize(r))
		}
	}()

	fr.sc = scopeTry
	b.tryFn()
}

// runCatch executes the matching catch clause (if any) under Phase
// CATCH, when fr holds a pending exception. A throw from inside the
// handler overrides fr's pending exception rather than escaping past
// the still-pending Phase FINALLY below it (spec.md §4.D: from CATCH a
// throw jumps straight to finally, it does not re-run catch clauses).
func runCatch(b *Block, fr *Frame) {
	if fr.st != statePending {
		return
	}

	fr.sc = scopeCatch

	defer func() {
		if r := recover(); r != nil {
			record(fr, normalize(r))
		}
	}()

	for _, cc := range b.catches {
		if fr.st == statePending && class.IsDerived(fr.class, cc.class) {
			fr.st = stateCaught
			cc.handler(fromThrown(&thrown{class: fr.class, data: fr.data, file: fr.file, line: fr.line}))

			return
		}
	}
}

// runFinallyBody executes finallyFn (if non-nil) under Phase FINALLY.
// It always runs, whatever fr's state is; a throw from inside it
// overrides fr's pending exception the same way a throw from catch
// does.
func runFinallyBody(finallyFn func(), fr *Frame) {
	fr.sc = scopeFinally

	if finallyFn == nil {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			record(fr, normalize(r))
		}
	}()

	finallyFn()
}

func record(fr *Frame, th *thrown) {
	fr.st = statePending
	fr.class = th.class
	fr.data = th.data
	fr.file = th.file
	fr.line = th.line
}

// terminal runs the side effects for a pending exception reaching the
// outermost frame on its goroutine with no catch clause anywhere left
// to claim it, per spec.md §7. A trapped signal is re-raised so the
// process dies the way it would have without this module installed,
// which never returns. A failed assertion runs assertionTerminator.
// Everything else — an ordinary uncaught user exception or
// OutOfMemoryError — is logged, and the Try call that lost it simply
// returns: there is no enclosing try left on this goroutine to resume
// into, so the goroutine just continues past the Try call.
func terminal(fr *Frame) {
	if sig := fr.class.SignalNumber(); sig != 0 {
		diagnosticf("%s occurred in thread %d: lost (no enclosing try)\n", fr.class.Name(), threadIdentity())
		signaltrap.Reraise(sig)

		return
	}

	if fr.class == class.FailedAssertion {
		assertionTerminator(fmt.Sprintf("%v", fr.data))
		return
	}

	diagnosticf("%s lost: %s:%d\n", fr.class.Name(), fr.file, fr.line)
}

// assertionTerminator runs when a FailedAssertion reaches the
// outermost frame uncaught. SetAssertionTerminator lets a host replace
// it; the build-tag-selected default (abortonassert.go /
// abortonassert_off.go) just logs, or additionally exits the process.
var assertionTerminator = defaultAssertionTerminator

// SetAssertionTerminator replaces the terminal action for an uncaught
// FailedAssertion.
func SetAssertionTerminator(f func(msg string)) {
	assertionTerminator = f
}
