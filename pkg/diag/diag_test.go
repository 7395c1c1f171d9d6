package diag

import "testing"

func TestSemanticErrorFormat(t *testing.T) {
	err := NewSemanticError(12, "undeclared identifier %q", "x")
	want := `Line 12: undeclared identifier "x"`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestTypeErrorFormat(t *testing.T) {
	err := NewTypeError(3, "cannot compare pointer with %s", "int")
	want := "Line 3: cannot compare pointer with int"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestInternalErrorFormat(t *testing.T) {
	err := NewInternalError("value %s has no stack slot", "%t3")
	want := "internal error: value %t3 has no stack slot"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestAssertPassing(t *testing.T) {
	if err := Assert(true, "unreachable"); err != nil {
		t.Errorf("Assert(true, ...) = %v, want nil", err)
	}
}

func TestAssertFailingNonStrict(t *testing.T) {
	old := Strict
	Strict = false
	defer func() { Strict = old }()

	err := Assert(false, "invariant broken: %d", 5)
	if err == nil {
		t.Fatal("Assert(false, ...) = nil, want error")
	}
	if _, ok := err.(*InternalError); !ok {
		t.Errorf("Assert error type = %T, want *InternalError", err)
	}
}

func TestAssertFailingStrictPanics(t *testing.T) {
	old := Strict
	Strict = true
	defer func() { Strict = old }()

	defer func() {
		if r := recover(); r == nil {
			t.Error("Assert(false, ...) with Strict=true did not panic")
		}
	}()
	Assert(false, "should panic")
}

func TestListAccumulation(t *testing.T) {
	var l List
	if !l.Empty() {
		t.Error("new List should be Empty")
	}

	l.Add(nil)
	if !l.Empty() {
		t.Error("adding nil should not make List non-empty")
	}

	l.Add(NewSemanticError(1, "first"))
	l.Add(NewTypeError(2, "second"))
	if l.Empty() {
		t.Error("List should be non-empty after adding errors")
	}
	if len(l.Errors()) != 2 {
		t.Errorf("len(Errors()) = %d, want 2", len(l.Errors()))
	}

	want := "Line 1: first\nLine 2: second"
	if got := l.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestEmptyListError(t *testing.T) {
	var l List
	if got := l.Error(); got != "" {
		t.Errorf("empty List Error() = %q, want empty string", got)
	}
}
