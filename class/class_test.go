package class

import "testing"

func TestIsDerivedDirect(t *testing.T) {
	if !IsDerived(Exception, Throwable) {
		t.Errorf("expected Exception to derive from Throwable")
	}

	if !IsDerived(Exception, Exception) {
		t.Errorf("a class must be derived from itself")
	}
}

func TestIsDerivedSubclass(t *testing.T) {
	l1 := Define("testL1", Exception)
	l2 := Define("testL2", l1)

	if !IsDerived(l2, l1) {
		t.Errorf("expected L2 to derive from L1")
	}

	if !IsDerived(l2, Exception) {
		t.Errorf("expected L2 to derive from Exception transitively")
	}

	if IsDerived(l1, l2) {
		t.Errorf("parent must not be derived from child")
	}
}

func TestIsDerivedUnrelated(t *testing.T) {
	a := Define("testUnrelatedA", Exception)
	b := Define("testUnrelatedB", RuntimeException)

	if IsDerived(a, b) || IsDerived(b, a) {
		t.Errorf("siblings under different parents must not match")
	}
}

func TestDefineDuplicatePanics(t *testing.T) {
	Define("testDuplicate", Exception)

	defer func() {
		if recover() == nil {
			t.Errorf("expected panic on duplicate Define")
		}
	}()

	Define("testDuplicate", Exception)
}

func TestLookupFindsDefined(t *testing.T) {
	Define("testLookupMe", Exception)

	got, ok := Lookup("testLookupMe")
	if !ok {
		t.Fatalf("expected Lookup to find testLookupMe")
	}

	if got.Name() != "testLookupMe" {
		t.Errorf("got name %q, want testLookupMe", got.Name())
	}
}

func TestBuiltinForest(t *testing.T) {
	cases := []struct {
		class, base *Class
	}{
		{OutOfMemoryError, Exception},
		{OutOfMemoryError, Throwable},
		{AbnormalTermination, RuntimeException},
		{ArithmeticException, RuntimeException},
		{IllegalInstruction, RuntimeException},
		{SegmentationFault, RuntimeException},
		{FailedAssertion, Throwable},
	}

	for _, c := range cases {
		if !IsDerived(c.class, c.base) {
			t.Errorf("expected %s to derive from %s", c.class.Name(), c.base.Name())
		}
	}

	if IsDerived(FailedAssertion, RuntimeException) {
		t.Errorf("FailedAssertion must not be a RuntimeException")
	}

	if IsDerived(OutOfMemoryError, RuntimeException) {
		t.Errorf("OutOfMemoryError must not be a RuntimeException")
	}
}

func TestRegisterModuleCompatible(t *testing.T) {
	defined, err := RegisterModule("testmod", ">=1.0.0, <2.0.0", Descriptor{Name: "testModA", ParentName: "Exception"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(defined) != 1 || defined[0].Name() != "testModA" {
		t.Fatalf("unexpected result: %+v", defined)
	}

	if !IsDerived(defined[0], Exception) {
		t.Errorf("expected testModA to derive from Exception")
	}
}

func TestRegisterModuleIncompatibleIsAllOrNothing(t *testing.T) {
	_, err := RegisterModule("testmod2", ">=99.0.0", Descriptor{Name: "testModB", ParentName: "Exception"})
	if err == nil {
		t.Fatalf("expected incompatible constraint to fail")
	}

	if _, ok := Lookup("testModB"); ok {
		t.Errorf("testModB must not be registered after a failed RegisterModule call")
	}
}

func TestRegisterModuleUnresolvedParentRollsBack(t *testing.T) {
	_, err := RegisterModule("testmod3", ">=1.0.0", Descriptor{Name: "testModC", ParentName: "Exception"},
		Descriptor{Name: "testModD", ParentName: "NoSuchParent"})
	if err == nil {
		t.Fatalf("expected unresolved parent to fail")
	}

	if _, ok := Lookup("testModC"); ok {
		t.Errorf("testModC must roll back when a later descriptor in the same call fails")
	}
}
