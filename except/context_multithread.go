//go:build !singlethreaded

package except

// singleThreaded selects, at build time, whether ensureContext keyes
// off goroutine identity (the default) or always returns one static
// Context (see context_singlethread.go). staticContext is unused in
// this build.
const singleThreaded = false

var staticContext *Context
