package ir

import (
	"strings"
	"testing"

	"github.com/minicc-lang/minicc/pkg/types"
)

func TestPrintModuleGlobalsAndFunction(t *testing.T) {
	m := NewModule()
	init := int32(5)
	m.NewGlobal(types.Int32{}, "g", &init)
	m.NewGlobal(types.Array{Elem: types.Int32{}, Dims: []int{4}}, "arr", nil)

	fn, err := m.DefineFunction("add", types.Int32{}, []ParamSpec{
		{Type: types.Int32{}, Name: "a"},
		{Type: types.Int32{}, Name: "b"},
	})
	if err != nil {
		t.Fatalf("DefineFunction: %v", err)
	}
	m.SetCurrentFunction(fn)
	fn.SetupReturnSlotAndExit()
	add := NewAdd(fn.Params()[0], fn.Params()[1])
	fn.AppendInstruction(add)
	fn.AppendInstruction(NewMove(fn.ReturnSlot(), add))
	fn.AppendExit()
	m.ClearCurrentFunction()
	RenameAll(fn)

	var buf strings.Builder
	NewPrinter(&buf).PrintModule(m)
	out := buf.String()

	for _, want := range []string{
		"declare i32 @g = 5",
		"declare i32 @arr[4]",
		"define i32 @add(i32 %t0, i32 %t1) {",
		"exit:",
		"}",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("printed module missing %q, got:\n%s", want, out)
		}
	}
}

func TestPrintModuleSkipsEmptyBuiltins(t *testing.T) {
	m := NewModule()
	m.DeclareBuiltins()

	var buf strings.Builder
	NewPrinter(&buf).PrintModule(m)
	if buf.Len() != 0 {
		t.Errorf("printing a module with only builtins produced output: %q", buf.String())
	}
}

func TestPrintInstructionMoveKinds(t *testing.T) {
	fn := newFunction("f", types.Function{Return: types.Void{}})
	scalar := fn.NewLocalVar(types.Int32{}, "x", 1)
	ptr := fn.NewLocalVar(types.Pointer{Elem: types.Int32{}}, "p", 1)
	RenameAll(fn)

	var buf strings.Builder
	p := NewPrinter(&buf)
	p.printInstruction(NewMove(ptr, scalar))
	p.printInstruction(NewMove(scalar, ptr))

	out := buf.String()
	if !strings.Contains(out, "*"+ptr.Name()+" = "+scalar.Name()) {
		t.Errorf("store form missing from output: %s", out)
	}
	if !strings.Contains(out, scalar.Name()+" = *"+ptr.Name()) {
		t.Errorf("load form missing from output: %s", out)
	}
}
