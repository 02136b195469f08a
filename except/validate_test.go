//go:build debug

package except

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/orizon-lang/exceptrt/class"
)

func TestValidateCatchListDetectsDuplicate(t *testing.T) {
	var buf bytes.Buffer
	SetDiagnosticWriter(&buf)
	defer SetDiagnosticWriter(os.Stderr)

	Try(func() {
		Throw(testClass, nil)
	}).Catch(testClass, func(e *Exception) {}).Catch(testClass, func(e *Exception) {}).Run()

	if !strings.Contains(buf.String(), "Duplicate catch("+testClass.Name()+")") {
		t.Fatalf("expected a duplicate-catch warning, got %q", buf.String())
	}
}

func TestValidateCatchListDetectsSuperfluous(t *testing.T) {
	var buf bytes.Buffer
	SetDiagnosticWriter(&buf)
	defer SetDiagnosticWriter(os.Stderr)

	Try(func() {
		Throw(testClass, nil)
	}).Catch(class.Throwable, func(e *Exception) {}).Catch(testClass, func(e *Exception) {}).Run()

	if !strings.Contains(buf.String(), "Superfluous catch("+testClass.Name()+")") {
		t.Fatalf("expected a superfluous-catch warning, got %q", buf.String())
	}
}

func TestValidateCatchListWarnsOnEmptyList(t *testing.T) {
	var buf bytes.Buffer
	SetDiagnosticWriter(&buf)
	defer SetDiagnosticWriter(os.Stderr)

	Try(func() {}).Run()

	if !strings.Contains(buf.String(), "Warning: No catch clause(s):") {
		t.Fatalf("expected the empty-catch-list warning, got %q", buf.String())
	}
}

func TestValidateCatchListDoesNotWarnWhenNonEmpty(t *testing.T) {
	var buf bytes.Buffer
	SetDiagnosticWriter(&buf)
	defer SetDiagnosticWriter(os.Stderr)

	Try(func() {}).Catch(testClass, func(e *Exception) {}).Run()

	if strings.Contains(buf.String(), "No catch clause(s)") {
		t.Fatalf("expected no empty-catch-list warning with a non-empty catch list, got %q", buf.String())
	}
}

// TestValidateCatchListRunsOncePerCallSite exercises spec.md §4.F's
// "runs once per source site" rule: the same Try call line, executed
// twice, must only emit its diagnostics on the first execution.
func TestValidateCatchListRunsOncePerCallSite(t *testing.T) {
	var buf bytes.Buffer
	SetDiagnosticWriter(&buf)
	defer SetDiagnosticWriter(os.Stderr)

	runOnce := func() {
		Try(func() {}).Run()
	}

	runOnce()
	runOnce()

	if got := strings.Count(buf.String(), "No catch clause(s)"); got != 1 {
		t.Fatalf("expected the warning exactly once across two executions of the same site, got %d (output: %q)", got, buf.String())
	}
}
