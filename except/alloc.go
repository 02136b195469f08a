package except

import "github.com/orizon-lang/exceptrt/class"

// MaxAllocation bounds AllocOrThrow; it exists only as a deliberately
// reachable ceiling for triggering OutOfMemoryError in tests and demos
// without actually exhausting process memory. The zero value (set by
// default) means no ceiling.
var MaxAllocation int

// AllocOrThrow returns a freshly zeroed byte slice of length n, or
// throws OutOfMemoryError if n exceeds MaxAllocation (when one is
// configured) or if the runtime allocator itself fails (recovered from
// the allocation panic Go's runtime raises on an impossibly large make,
// rather than left to crash the process — spec.md §7 classes
// OutOfMemoryError as a user exception, not a terminal trap).
func AllocOrThrow(n int) (buf []byte) {
	if MaxAllocation > 0 && n > MaxAllocation {
		Throw(class.OutOfMemoryError, n)
	}

	defer func() {
		if r := recover(); r != nil {
			Throw(class.OutOfMemoryError, n)
		}
	}()

	return make([]byte, n)
}
