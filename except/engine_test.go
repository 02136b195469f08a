package except

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/orizon-lang/exceptrt/class"
)

var testClass = class.Define("TestEngineException", class.Exception)

func TestTryNoThrowRunsFinallyOnce(t *testing.T) {
	finallyRuns := 0

	Try(func() {
		// nothing thrown
	}).Finally(func() {
		finallyRuns++
	})

	if finallyRuns != 1 {
		t.Fatalf("expected finally to run once, ran %d times", finallyRuns)
	}
}

func TestCatchMatchesDerivedClass(t *testing.T) {
	caught := false

	Try(func() {
		Throw(testClass, "boom")
	}).Catch(class.Exception, func(e *Exception) {
		caught = true

		if e.Class() != testClass {
			t.Fatalf("expected testClass, got %v", e.Class())
		}
	}).Run()

	if !caught {
		t.Fatal("expected catch to run")
	}
}

func TestCatchSkipsUnrelatedClass(t *testing.T) {
	var buf bytes.Buffer
	SetDiagnosticWriter(&buf)
	defer SetDiagnosticWriter(os.Stderr)

	Try(func() {
		Throw(testClass, nil)
	}).Catch(class.OutOfMemoryError, func(e *Exception) {
		t.Fatal("should not match OutOfMemoryError")
	}).Run()

	if !strings.Contains(buf.String(), testClass.Name()) {
		t.Fatalf("expected the lost exception to be logged, got %q", buf.String())
	}
}

func TestUncaughtAtOutermostIsLoggedAndSwallowed(t *testing.T) {
	var buf bytes.Buffer
	SetDiagnosticWriter(&buf)
	defer SetDiagnosticWriter(os.Stderr)

	ranAfter := false

	Try(func() {
		Throw(testClass, nil)
	}).Run()

	ranAfter = true

	if !ranAfter {
		t.Fatal("expected the Try call to return normally after logging the lost exception")
	}

	if !strings.Contains(buf.String(), "lost") {
		t.Fatalf("expected a lost-exception message, got %q", buf.String())
	}
}

func TestFinallyRunsEvenWhenCaught(t *testing.T) {
	order := []string{}

	Try(func() {
		order = append(order, "try")
		Throw(testClass, nil)
	}).Catch(testClass, func(e *Exception) {
		order = append(order, "catch")
	}).Finally(func() {
		order = append(order, "finally")
	})

	want := []string{"try", "catch", "finally"}
	for i, w := range want {
		if order[i] != w {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestFinallyRunsWhenUncaught(t *testing.T) {
	ranFinally := false

	func() {
		defer func() { recover() }()

		Try(func() {
			Throw(testClass, nil)
		}).Finally(func() {
			ranFinally = true
		})
	}()

	if !ranFinally {
		t.Fatal("expected finally to run even though nothing caught")
	}
}

// TestThrowFromCatchOverridesPending nests the overriding Try inside an
// outer one so the override propagates out of a non-outermost frame,
// where it is still a Go panic rather than logged-and-swallowed.
func TestThrowFromCatchOverridesPending(t *testing.T) {
	overrideClass := class.Define("TestOverrideException", class.Exception)

	caught := false

	Try(func() {
		Try(func() {
			Throw(testClass, nil)
		}).Catch(testClass, func(e *Exception) {
			Throw(overrideClass, nil)
		}).Run()
	}).Catch(overrideClass, func(e *Exception) {
		caught = true
	}).Run()

	if !caught {
		t.Fatal("expected the override thrown from catch to propagate to the enclosing Try")
	}
}

func TestReturnEventTerminatesAtOwnFinally(t *testing.T) {
	value, did := Try(func() {
		Return(42)
	}).Finally(func() {})

	if !did {
		t.Fatal("expected didReturn true")
	}

	if value.(int) != 42 {
		t.Fatalf("expected 42, got %v", value)
	}
}

func TestNativePanicIsNormalized(t *testing.T) {
	caught := false

	Try(func() {
		var s []int
		_ = s[3] // index out of range
	}).Catch(class.RuntimeException, func(e *Exception) {
		caught = true

		if e.Class() != class.NativePanic {
			t.Fatalf("expected NativePanic, got %v", e.Class())
		}
	}).Run()

	if !caught {
		t.Fatal("expected index out of range to be caught as NativePanic")
	}
}

func TestNestedTryPropagatesThroughFinally(t *testing.T) {
	order := []string{}

	func() {
		defer func() { recover() }()

		Try(func() {
			Try(func() {
				Throw(testClass, nil)
			}).Finally(func() {
				order = append(order, "inner-finally")
			})
		}).Finally(func() {
			order = append(order, "outer-finally")
		})
	}()

	want := []string{"inner-finally", "outer-finally"}
	for i, w := range want {
		if order[i] != w {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}
