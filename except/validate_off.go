//go:build !debug

package except

// validateCatchList is a no-op in release builds; the teacher's own
// block_manager_debug_off.go omits a matching build tag entirely
// (harmless there only because nothing else defines the symbol under
// -tags debug), which would double-define this function if copied
// verbatim. This file carries the correct //go:build !debug.
func validateCatchList(b *Block, fr *Frame) {}

func assertFailed(msg string) {}
