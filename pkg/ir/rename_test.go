package ir

import (
	"testing"

	"github.com/minicc-lang/minicc/pkg/types"
)

func TestRenameAllAssignsSequentialNames(t *testing.T) {
	fn := newFunction("f", types.Function{Return: types.Int32{}})
	fn.addFormal(types.Int32{}, "a", nil)
	local := fn.NewLocalVar(types.Int32{}, "x", 1)
	mem := fn.NewMemVariable(types.Int32{})

	RenameAll(fn)

	if fn.namedValues[0].Name() != "%t0" {
		t.Errorf("formal name = %q, want %%t0", fn.namedValues[0].Name())
	}
	if local.Name() != "%l1" {
		t.Errorf("local name = %q, want %%l1", local.Name())
	}
	if mem.Name() != "%t2" {
		t.Errorf("mem name = %q, want %%t2", mem.Name())
	}
}

func TestRenameAllIsIdempotent(t *testing.T) {
	fn := newFunction("f", types.Function{Return: types.Int32{}})
	fn.NewLocalVar(types.Int32{}, "x", 1)
	l1 := fn.NewLabel()
	l2 := fn.NewLabel()

	RenameAll(fn)
	firstNames := []string{fn.namedValues[0].Name(), l1.Name(), l2.Name()}

	RenameAll(fn)
	secondNames := []string{fn.namedValues[0].Name(), l1.Name(), l2.Name()}

	for i := range firstNames {
		if firstNames[i] != secondNames[i] {
			t.Errorf("name %d changed between renamings: %q vs %q", i, firstNames[i], secondNames[i])
		}
	}
}

func TestLabelsShareCreationOrderWithValues(t *testing.T) {
	fn := newFunction("f", types.Function{Return: types.Void{}})
	fn.NewLocalVar(types.Int32{}, "x", 1)
	fn.NewLocalVar(types.Int32{}, "y", 1)
	l1 := fn.NewLabel()

	RenameAll(fn)

	if l1.Name() != ".L2" {
		t.Errorf("label name = %q, want .L2 (labels draw from the same creation-order counter as %%t/%%l values, here the third value created)", l1.Name())
	}
}

func TestLabelTextFixedNames(t *testing.T) {
	fn := newFunction("f", types.Function{Return: types.Int32{}})
	fn.SetupReturnSlotAndExit()
	RenameAll(fn)

	if got := LabelText(fn.exitLabel); got != "exit" {
		t.Errorf("LabelText(exitLabel) = %q, want %q", got, "exit")
	}

	ordinary := fn.NewLabel()
	RenameAll(fn)
	if got := LabelText(ordinary); got != ordinary.Name() {
		t.Errorf("LabelText(ordinary label) = %q, want %q", got, ordinary.Name())
	}
}
