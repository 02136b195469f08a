//go:build singlethreaded

package except

// singleThreaded builds skip the contextStore map entirely: one
// statically-allocated Context serves every Try call, matching spec.md
// §4.B's "In single-threaded mode, ensureContext() returns a
// statically-allocated context directly — no store is used."
const singleThreaded = true

var staticContext = &Context{}
