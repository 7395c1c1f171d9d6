package ir

import "github.com/minicc-lang/minicc/pkg/types"

// loopTargets is one entry of a Function's continue/break target stack,
// pushed on `while` entry and popped on exit.
type loopTargets struct {
	continueTarget Label
	breakTarget    Label
}

// Function is a single MiniC function's translation unit: its signature,
// the Values it owns (formals, locals, mem slots), its linear
// instruction stream, and the bookkeeping the instruction selector
// needs later (max outgoing argument count, whether it contains a call,
// and a callee-saved register list that no pass fills in).
type Function struct {
	Name string
	Sig  types.Function

	formals []*FormalParam
	locals  []*LocalVariable
	mems    []*MemVariable
	code    []Instruction

	entry      *Entry
	exitLabel  *LabelInstruction
	exitInst   *Exit
	returnSlot *MemVariable

	loopStack []loopTargets

	// namedValues holds every non-label Value in the order it was
	// created, and labels holds every LabelInstruction in the order it
	// was created. order interleaves the two into the single creation
	// sequence RenameAll assigns %t/%l/.L indices from - a label created
	// between two values (the common case: labels are allocated up front
	// for a branch, then the values that feed it) does not reset or
	// share the value counter, it just takes the next slot in the same
	// timeline.
	namedValues []Value
	labels      []*LabelInstruction
	order       []Value

	// MaxCallArgCount is the largest outgoing argument count of any call
	// this function makes, used by the selector to size the outgoing
	// stack-argument area.
	MaxCallArgCount int
	// HasCall reports whether this function contains any Call.
	HasCall bool
	// CalleeSavedRegs is never written by this core: the instruction
	// selector saves only fp and lr and leaves this list empty.
	CalleeSavedRegs []string
}

func newFunction(name string, sig types.Function) *Function {
	f := &Function{Name: name, Sig: sig}
	f.entry = &Entry{valueBase{typ: types.Void{}}}
	f.code = append(f.code, f.entry)
	return f
}

// Params returns the function's formal parameters in source order.
func (f *Function) Params() []*FormalParam { return f.formals }

// Locals returns every LocalVariable declared anywhere in the function.
func (f *Function) Locals() []*LocalVariable { return f.locals }

// Mems returns every anonymous MemVariable slot the function allocated.
func (f *Function) Mems() []*MemVariable { return f.mems }

// Code returns the function's linear instruction list.
func (f *Function) Code() []Instruction { return f.code }

// ReturnSlot returns the function's return-value slot, or nil for a
// void-returning function (invariant).
func (f *Function) ReturnSlot() Value {
	if f.returnSlot == nil {
		return nil
	}
	return f.returnSlot
}

// ExitLabel returns the function's fixed exit label, the sole valid
// target of a lowered `return` statement's goto.
func (f *Function) ExitLabel() Label { return f.exitLabel }

// addFormal materializes a FormalParam and records it in source order.
// Called only by Module.DefineFunction while building a new function.
func (f *Function) addFormal(t types.Type, name string, orig *types.Array) *FormalParam {
	p := &FormalParam{valueBase: valueBase{typ: t}, SourceName: name, OriginalArrayType: orig}
	f.formals = append(f.formals, p)
	f.namedValues = append(f.namedValues, p)
	f.order = append(f.order, p)
	return p
}

// setupReturnSlot creates the return-value slot for a non-void function.
// Called only by Module.DefineFunction/translation entry setup.
func (f *Function) setupReturnSlot() {
	if _, void := f.Sig.Return.(types.Void); void {
		return
	}
	f.returnSlot = f.NewMemVariable(f.Sig.Return)
}

// NewLocalVar creates a user-declared LocalVariable at the given scope
// level and records it as owned by this function.
func (f *Function) NewLocalVar(t types.Type, name string, scopeLevel int) *LocalVariable {
	v := &LocalVariable{valueBase: valueBase{typ: t}, SourceName: name, ScopeLevel: scopeLevel}
	f.locals = append(f.locals, v)
	f.namedValues = append(f.namedValues, v)
	f.order = append(f.order, v)
	return v
}

// NewMemVariable creates an anonymous stack-resident slot, used for
// rvalue array loads and other values with no source-level name.
func (f *Function) NewMemVariable(t types.Type) *MemVariable {
	v := &MemVariable{valueBase: valueBase{typ: t}}
	f.mems = append(f.mems, v)
	f.namedValues = append(f.namedValues, v)
	f.order = append(f.order, v)
	return v
}

// NewLabel creates a fresh ordinary label, not yet appended to the code
// stream. Callers append it later at the desired program point.
func (f *Function) NewLabel() *LabelInstruction {
	l := &LabelInstruction{valueBase: valueBase{typ: types.Void{}}}
	f.labels = append(f.labels, l)
	f.order = append(f.order, l)
	return l
}

// setupEntryExit creates (but does not yet append) the function's fixed
// exit label and Exit instruction. The caller appends exitLabel and
// exitInst once body translation completes.
func (f *Function) setupEntryExit() {
	f.exitLabel = &LabelInstruction{valueBase: valueBase{typ: types.Void{}}, FixedName: "exit"}
	var slot Value
	if f.returnSlot != nil {
		slot = f.returnSlot
	}
	f.exitInst = &Exit{valueBase: valueBase{typ: types.Void{}}, Slot: slot}
}

// SetupReturnSlotAndExit creates the return-value slot (if the function
// is non-void) and the fixed exit label/instruction pair, ready for
// AppendExit once the body has been translated. Called once by the
// translator right after SetCurrentFunction.
func (f *Function) SetupReturnSlotAndExit() {
	f.setupReturnSlot()
	f.setupEntryExit()
}

// AppendExit appends the function's fixed exit label followed by its
// Exit instruction. It must be called exactly once, after the function
// body has been fully translated.
func (f *Function) AppendExit() {
	f.code = append(f.code, f.exitLabel, f.exitInst)
}

// AppendInstruction appends inst to the function's linear instruction
// list and, if it produces a result, records it for renaming.
func (f *Function) AppendInstruction(inst Instruction) {
	f.code = append(f.code, inst)
	if lbl, ok := inst.(*LabelInstruction); ok {
		if lbl.FixedName == "" {
			// Already recorded in f.labels at creation time by NewLabel.
			_ = lbl
		}
		return
	}
	if hasResult(inst) {
		f.namedValues = append(f.namedValues, inst)
		f.order = append(f.order, inst)
	}
	if call, ok := inst.(*Call); ok {
		f.HasCall = true
		if len(call.Args) > f.MaxCallArgCount {
			f.MaxCallArgCount = len(call.Args)
		}
	}
}

func hasResult(inst Instruction) bool {
	switch v := inst.(type) {
	case *Add, *Sub, *Mul, *Div, *Mod, *Cmp:
		return true
	case *Call:
		return v.HasResult()
	default:
		return false
	}
}

// PushLoop pushes a new (continue, break) target pair, used while
// translating a `while` body so nested `break`/`continue` resolve to the
// innermost enclosing loop.
func (f *Function) PushLoop(continueTarget, breakTarget Label) {
	f.loopStack = append(f.loopStack, loopTargets{continueTarget, breakTarget})
}

// PopLoop pops the innermost loop's target pair.
func (f *Function) PopLoop() {
	f.loopStack = f.loopStack[:len(f.loopStack)-1]
}

// ContinueTarget returns the innermost enclosing loop's continue target,
// or nil if there is no enclosing loop.
func (f *Function) ContinueTarget() Label {
	if len(f.loopStack) == 0 {
		return nil
	}
	return f.loopStack[len(f.loopStack)-1].continueTarget
}

// BreakTarget returns the innermost enclosing loop's break target, or nil
// if there is no enclosing loop.
func (f *Function) BreakTarget() Label {
	if len(f.loopStack) == 0 {
		return nil
	}
	return f.loopStack[len(f.loopStack)-1].breakTarget
}
