//go:build windows

package except

import "github.com/orizon-lang/exceptrt/class"

// classifyPlatformFault has nothing extra to recognize on Windows:
// class.BusError does not exist on this platform (class/builtin.go).
func classifyPlatformFault(msg string) *class.Class {
	return nil
}
