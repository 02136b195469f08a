//go:build debug

package except

import (
	"sync"

	"github.com/orizon-lang/exceptrt/class"
)

// callSite identifies a Try call by where it appears in source, not by
// how many stack frames separate it from validateCatchList: a Try
// driven through Run (which itself calls Finally from one fixed line
// inside engine.go) would collide with every other Run-driven Try in
// the program if the site were instead inferred by walking a fixed
// number of frames up the stack from here.
type callSite struct {
	file string
	line int
}

// validatedSites remembers which Try call sites have already been
// checked, so a Try inside a loop or a frequently called function is
// only validated once — mirroring the teacher's block_manager_debug.go,
// which keys its own one-shot checks off a call site rather than
// re-running them on every invocation.
var (
	validatedSitesMu sync.Mutex
	validatedSites   = map[callSite]bool{}
)

// validateCatchList checks b's catch clauses for the conditions spec.md
// §4.F requires diagnosed under the debug build: a class caught twice,
// a catch clause whose class can never be reached because an earlier
// clause already catches every instance of it, and a catch list that is
// empty outright.
func validateCatchList(b *Block, fr *Frame) {
	site := callSite{file: b.tryFile, line: b.tryLine}

	validatedSitesMu.Lock()
	already := validatedSites[site]
	validatedSites[site] = true
	validatedSitesMu.Unlock()

	if already {
		return
	}

	fr.validated = true

	if len(b.catches) == 0 {
		diagnosticf("Warning: No catch clause(s): %s:%d\n", b.tryFile, b.tryLine)
		return
	}

	seen := make([]catchCheck, 0, len(b.catches))

	for _, cc := range b.catches {
		for _, prior := range seen {
			if prior.class == cc.class {
				diagnosticf("Duplicate catch(%s): %s:%d; already caught at line %d\n",
					cc.class.Name(), b.tryFile, cc.line, prior.line)
			} else if class.IsDerived(cc.class, prior.class) {
				diagnosticf("Superfluous catch(%s): %s:%d; already caught by %s at line %d\n",
					cc.class.Name(), b.tryFile, cc.line, prior.class.Name(), prior.line)
			}
		}

		seen = append(seen, catchCheck{class: cc.class, line: cc.line})
	}

	fr.catchCheckList = seen
}

// assertFailed writes a failed Assert's message to the diagnostic
// stream before the FailedAssertion is thrown.
func assertFailed(msg string) {
	diagnosticf("Assertion failed: %s\n", msg)
}
