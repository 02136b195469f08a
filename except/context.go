package except

import (
	"bytes"
	"runtime"
	"strconv"
	"sync"
)

// Context is the per-goroutine exception context: its handler stack,
// scratch message buffer, and saved fault-trapping setting. One
// Context exists per goroutine that has ever entered a Try; it is
// created lazily and destroyed when its frame stack returns to empty,
// or when the host calls CeaseThread for a goroutine it knows has
// exited without unwinding.
type Context struct {
	frameStack    []*Frame
	messageBuffer bytes.Buffer

	// faultTrappingPrev holds this goroutine's runtime/debug.SetPanicOnFault
	// setting from just before its outermost Try acquired fault trapping
	// (fault.go), so it can be restored once the frame stack empties
	// back out.
	faultTrappingPrev bool
}

// currentFrame returns the top of this context's handler stack, or nil
// if it's empty. Invariant (1) of spec.md §3: currentFrame ==
// top(frameStack) whenever frameStack is non-empty.
func (ctx *Context) currentFrame() *Frame {
	if len(ctx.frameStack) == 0 {
		return nil
	}

	return ctx.frameStack[len(ctx.frameStack)-1]
}

// push allocates a new frame and places it on top of the stack.
func (ctx *Context) push() *Frame {
	f := &Frame{}
	ctx.frameStack = append(ctx.frameStack, f)

	return f
}

// pop removes and returns the top frame. Panics if the stack is
// already empty — callers always pair pop with a prior push in the
// same Try call, so an empty stack here is an engine bug, not a user
// error.
func (ctx *Context) pop() *Frame {
	n := len(ctx.frameStack)
	if n == 0 {
		panic("except: pop on empty frame stack")
	}

	f := ctx.frameStack[n-1]
	ctx.frameStack = ctx.frameStack[:n-1]

	return f
}

// peek returns the frame k levels from the top (0 = current), or nil
// if out of range. Used only by trace printing.
func (ctx *Context) peek(k int) *Frame {
	n := len(ctx.frameStack)
	idx := n - 1 - k

	if idx < 0 || idx >= n {
		return nil
	}

	return ctx.frameStack[idx]
}

// depth reports how many frames are active in this context.
func (ctx *Context) depth() int {
	return len(ctx.frameStack)
}

var (
	hostMutex    sync.Mutex
	contextStore = map[int64]*Context{}
)

// mutualExclusion is the Go stand-in for spec.md §5's
// host-supplied mutualExclusion(mode) primitive.
func mutualExclusion(lock bool) {
	if lock {
		hostMutex.Lock()
	} else {
		hostMutex.Unlock()
	}
}

// threadIdentity returns the calling goroutine's numeric id, parsed
// from runtime.Stack's "goroutine N [running]:" header. This is the
// one place this module falls back to a pure-stdlib technique: Go has
// no goroutine-local-storage primitive, and no third-party
// goroutine-local-storage library appears anywhere in the example
// corpus this module was grounded on (see DESIGN.md).
func threadIdentity() int64 {
	var buf [64]byte

	n := runtime.Stack(buf[:], false)
	b := buf[:n]

	const prefix = "goroutine "
	if bytes.HasPrefix(b, []byte(prefix)) {
		b = b[len(prefix):]
	}

	if sp := bytes.IndexByte(b, ' '); sp >= 0 {
		b = b[:sp]
	}

	id, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return -1
	}

	return id
}

// ensureContext returns the context for the calling goroutine, creating
// one on first use. Context creation is serialized by mutualExclusion,
// matching spec.md §4.B.
func ensureContext() *Context {
	if singleThreaded {
		return staticContext
	}

	id := threadIdentity()

	mutualExclusion(true)
	defer mutualExclusion(false)

	ctx, ok := contextStore[id]
	if !ok {
		ctx = &Context{}
		contextStore[id] = ctx
	}

	return ctx
}

// currentContext returns the calling goroutine's context without
// creating one; ok is false if this goroutine has never entered a Try.
func currentContext() (ctx *Context, ok bool) {
	if singleThreaded {
		return staticContext, true
	}

	id := threadIdentity()

	mutualExclusion(true)
	defer mutualExclusion(false)

	ctx, ok = contextStore[id]

	return ctx, ok
}

// destroyContext removes the calling goroutine's context, called once
// its frame stack returns to empty at Phase F2's outermost exit.
func destroyContext() {
	if singleThreaded {
		staticContext = &Context{}
		return
	}

	id := threadIdentity()

	mutualExclusion(true)
	defer mutualExclusion(false)

	delete(contextStore, id)
}

// CeaseThread removes and frees the context for a thread id that a
// surviving goroutine has observed to have exited without itself
// unwinding its try frames (spec.md §4.B, §5). id must not be the
// calling goroutine's own id.
func CeaseThread(id int64) {
	mutualExclusion(true)
	defer mutualExclusion(false)

	delete(contextStore, id)
}

// ThreadIdentity exposes threadIdentity for hosts that need to learn
// their own id in order to later pass it to CeaseThread from another
// goroutine.
func ThreadIdentity() int64 {
	return threadIdentity()
}
