//go:build !windows

package except

import (
	"strings"

	"github.com/orizon-lang/exceptrt/class"
)

// classifyPlatformFault recognizes the unaligned-access wording Go's
// runtime uses for a SIGBUS-class fault, a class that only exists on
// platforms where class.BusError is defined (class/builtin_unix.go).
func classifyPlatformFault(msg string) *class.Class {
	if strings.Contains(msg, "unaligned") {
		return class.BusError
	}

	return nil
}
