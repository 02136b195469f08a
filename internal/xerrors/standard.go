// Package xerrors provides a standardized, ordinary Go error type for
// setup/configuration failures. class.RegisterModule is its only user:
// invalid semver constraints, incompatible engine versions, duplicate
// classes and unresolved parents. watch and remote do not return it.
// It is deliberately distinct from except.Exception:
// the latter is the typed, caught object of the try/catch/finally
// protocol; this is a plain `error` for things that fail before (or
// entirely outside) a try block.
package xerrors

import (
	"fmt"
	"runtime"
)

// Category classifies a StandardError.
type Category string

const (
	CategoryConfig    Category = "CONFIG"
	CategoryTransport Category = "TRANSPORT"
	CategoryRegistry  Category = "REGISTRY"
	CategoryFormat    Category = "FORMAT"
)

// StandardError is a consistent error shape: a category, a
// machine-readable code, a message, and the caller that raised it.
type StandardError struct {
	Category Category
	Code     string
	Message  string
	Caller   string
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("[%s:%s] %s (caller: %s)", e.Category, e.Code, e.Message, e.Caller)
}

// New creates a StandardError, capturing the immediate caller for
// diagnostics.
func New(category Category, code, message string) *StandardError {
	pc, _, _, ok := runtime.Caller(1)
	caller := "unknown"

	if ok {
		if fn := runtime.FuncForPC(pc); fn != nil {
			caller = fn.Name()
		}
	}

	return &StandardError{Category: category, Code: code, Message: message, Caller: caller}
}

// Newf is New with a formatted message.
func Newf(category Category, code, format string, args ...interface{}) *StandardError {
	pc, _, _, ok := runtime.Caller(1)
	caller := "unknown"

	if ok {
		if fn := runtime.FuncForPC(pc); fn != nil {
			caller = fn.Name()
		}
	}

	return &StandardError{Category: category, Code: code, Message: fmt.Sprintf(format, args...), Caller: caller}
}
