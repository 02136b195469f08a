package except

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// diagnosticMu guards diagnosticWriters, which receive lost-exception
// messages, validator warnings, and anything else the engine reports
// without a catch clause to hand it to.
var (
	diagnosticMu      sync.Mutex
	diagnosticWriters = []io.Writer{os.Stderr}
)

// SetDiagnosticWriter replaces the entire destination list for engine
// diagnostics with the single writer w. Pass io.Discard to silence
// diagnostics entirely.
func SetDiagnosticWriter(w io.Writer) {
	diagnosticMu.Lock()
	defer diagnosticMu.Unlock()

	diagnosticWriters = []io.Writer{w}
}

// AddDiagnosticWriter appends w to the destination list without
// disturbing whatever is already receiving diagnostics — for example,
// wiring a remote.Exporter in alongside the default os.Stderr so both
// keep receiving lost-exception reports.
func AddDiagnosticWriter(w io.Writer) {
	diagnosticMu.Lock()
	defer diagnosticMu.Unlock()

	diagnosticWriters = append(diagnosticWriters, w)
}

func diagnosticf(format string, args ...interface{}) {
	diagnosticMu.Lock()
	writers := append([]io.Writer(nil), diagnosticWriters...)
	diagnosticMu.Unlock()

	msg := fmt.Sprintf(format, args...)

	for _, w := range writers {
		if w != nil {
			_, _ = io.WriteString(w, msg)
		}
	}
}
