// Package class implements the static, user-extensible exception-class
// hierarchy: a single-parent DAG rooted at Throwable, plus the ancestry
// test that the rest of the engine uses to decide whether a catch
// clause matches a thrown exception.
package class

import (
	"fmt"
	"sync"
)

// Class is a node in the exception-class hierarchy. Classes are
// compared by pointer identity; there is no multiple inheritance and
// no diamond resolution.
type Class struct {
	parent       *Class
	name         string
	signalNumber int
}

// Name returns the class's declared name.
func (c *Class) Name() string {
	if c == nil {
		return "<nil>"
	}

	return c.name
}

// Parent returns the class's single parent, or nil for Throwable.
func (c *Class) Parent() *Class {
	return c.parent
}

// SignalNumber returns the OS signal this class was mapped from, or 0
// if the class was never associated with a trap.
func (c *Class) SignalNumber() int {
	return c.signalNumber
}

func (c *Class) String() string {
	return c.Name()
}

// IsDerived reports whether c is base, or descends from base by
// walking c.parent, c.parent.parent, ... until it encounters base or
// reaches the root. A nil c or base never matches.
func IsDerived(c, base *Class) bool {
	if c == nil || base == nil {
		return false
	}

	for cur := c; cur != nil; cur = cur.parent {
		if cur == base {
			return true
		}
	}

	return false
}

var (
	registryMu sync.Mutex
	registry   = map[string]*Class{}
)

// Define registers a new class exactly once. A second Define of the
// same name panics, mirroring the original's "exactly one definition
// per class per program" — a duplicate definition is a programming
// error discovered at init time, not a recoverable runtime condition.
func Define(name string, parent *Class) *Class {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("class: %s already defined", name))
	}

	c := &Class{name: name, parent: parent}
	registry[name] = c

	return c
}

// Lookup resolves a class by name without requiring the caller to
// import the package that defined it — the "declaration / extern
// reference" form of spec.md §6, used by cross-module extension and by
// the watch package to attach dynamically-loaded leaf classes under a
// parent declared elsewhere.
func Lookup(name string) (*Class, bool) {
	registryMu.Lock()
	defer registryMu.Unlock()

	c, ok := registry[name]

	return c, ok
}

// defineTrap registers a builtin class that maps to a synchronous
// signal, recording the signal number on the class descriptor so the
// teardown path (signaltrap) can find its way back to the original
// trap. Unexported: only the builtin forest may mint trap-mapped
// classes.
func defineTrap(name string, parent *Class, signalNumber int) *Class {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("class: %s already defined", name))
	}

	c := &Class{name: name, parent: parent, signalNumber: signalNumber}
	registry[name] = c

	return c
}

// Names returns every class name currently registered, for diagnostics
// and tests. The returned slice is a snapshot, not a live view.
func Names() []string {
	registryMu.Lock()
	defer registryMu.Unlock()

	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}

	return out
}
