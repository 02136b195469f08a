//go:build !debug

package except

import "testing"

func TestAssertIsNoOpOutsideDebugBuild(t *testing.T) {
	ranAfter := false

	Try(func() {
		Assert(false, "never enforced here")
		ranAfter = true
	}).Run()

	if !ranAfter {
		t.Fatal("expected Assert(false, ...) to be a no-op outside a debug build")
	}
}

func TestValidateReturnsRetvalOnFailureOutsideDebugBuild(t *testing.T) {
	v, ok := Validate(false, 5)

	if ok {
		t.Fatal("expected ok to be false on a failed Validate")
	}

	if v.(int) != 5 {
		t.Fatalf("expected retval 5 to be returned on failure, got %v", v)
	}
}

func TestValidateReturnsRetvalOnSuccessOutsideDebugBuild(t *testing.T) {
	v, ok := Validate(true, 9)

	if !ok || v.(int) != 9 {
		t.Fatalf("expected (9, true), got (%v, %v)", v, ok)
	}
}
