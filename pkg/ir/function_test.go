package ir

import (
	"testing"

	"github.com/minicc-lang/minicc/pkg/types"
)

func TestNewFunctionStartsWithEntry(t *testing.T) {
	fn := newFunction("f", types.Function{Return: types.Void{}})
	if len(fn.Code()) != 1 {
		t.Fatalf("len(Code()) = %d, want 1", len(fn.Code()))
	}
	if _, ok := fn.Code()[0].(*Entry); !ok {
		t.Errorf("first instruction = %T, want *Entry", fn.Code()[0])
	}
}

func TestReturnSlotVoidVsNonVoid(t *testing.T) {
	voidFn := newFunction("v", types.Function{Return: types.Void{}})
	voidFn.SetupReturnSlotAndExit()
	if voidFn.ReturnSlot() != nil {
		t.Error("void function should have a nil ReturnSlot")
	}

	intFn := newFunction("i", types.Function{Return: types.Int32{}})
	intFn.SetupReturnSlotAndExit()
	if intFn.ReturnSlot() == nil {
		t.Error("non-void function should have a non-nil ReturnSlot")
	}
}

func TestAppendExitOnce(t *testing.T) {
	fn := newFunction("f", types.Function{Return: types.Int32{}})
	fn.SetupReturnSlotAndExit()
	fn.AppendExit()

	code := fn.Code()
	last := code[len(code)-1]
	if _, ok := last.(*Exit); !ok {
		t.Errorf("last instruction = %T, want *Exit", last)
	}
	secondToLast := code[len(code)-2]
	if _, ok := secondToLast.(*LabelInstruction); !ok {
		t.Errorf("second-to-last instruction = %T, want *LabelInstruction", secondToLast)
	}
}

func TestLoopTargetStack(t *testing.T) {
	fn := newFunction("f", types.Function{Return: types.Void{}})
	if fn.BreakTarget() != nil || fn.ContinueTarget() != nil {
		t.Error("loop targets should be nil outside any loop")
	}

	outerBreak := fn.NewLabel()
	outerContinue := fn.NewLabel()
	fn.PushLoop(outerContinue, outerBreak)

	innerBreak := fn.NewLabel()
	innerContinue := fn.NewLabel()
	fn.PushLoop(innerContinue, innerBreak)

	if fn.BreakTarget() != innerBreak || fn.ContinueTarget() != innerContinue {
		t.Error("innermost loop's targets should win while nested")
	}

	fn.PopLoop()
	if fn.BreakTarget() != outerBreak || fn.ContinueTarget() != outerContinue {
		t.Error("popping the inner loop should expose the outer loop's targets")
	}
}

func TestAppendInstructionTracksCallStats(t *testing.T) {
	fn := newFunction("f", types.Function{Return: types.Void{}})
	callee := newFunction("g", types.Function{Return: types.Int32{}})

	fn.AppendInstruction(NewCall(callee, []Value{}))
	if !fn.HasCall {
		t.Error("HasCall should be true after appending any Call")
	}
	if fn.MaxCallArgCount != 0 {
		t.Errorf("MaxCallArgCount = %d, want 0", fn.MaxCallArgCount)
	}

	fn.AppendInstruction(NewCall(callee, []Value{fn.NewMemVariable(types.Int32{}), fn.NewMemVariable(types.Int32{})}))
	if fn.MaxCallArgCount != 2 {
		t.Errorf("MaxCallArgCount = %d, want 2", fn.MaxCallArgCount)
	}
}

func TestNamedValuesRecordedInCreationOrder(t *testing.T) {
	fn := newFunction("f", types.Function{Return: types.Void{}})
	l1 := fn.NewLocalVar(types.Int32{}, "x", 1)
	m1 := fn.NewMemVariable(types.Int32{})
	add := NewAdd(l1, m1)
	fn.AppendInstruction(add)

	if len(fn.namedValues) != 3 {
		t.Fatalf("len(namedValues) = %d, want 3", len(fn.namedValues))
	}
	if fn.namedValues[0] != Value(l1) || fn.namedValues[1] != Value(m1) || fn.namedValues[2] != Value(add) {
		t.Error("namedValues out of creation order")
	}
}
