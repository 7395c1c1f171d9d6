package ir

import "github.com/minicc-lang/minicc/pkg/types"

// The New* constructors below are how pkg/translate builds instructions:
// arithBinary and valueBase are unexported, so a Value's result type is
// fixed here rather than left for the caller to get wrong.

func NewAdd(l, r Value) *Add { return &Add{arithBinary{valueBase{typ: types.Int32{}}, l, r}} }
func NewSub(l, r Value) *Sub { return &Sub{arithBinary{valueBase{typ: types.Int32{}}, l, r}} }
func NewMul(l, r Value) *Mul { return &Mul{arithBinary{valueBase{typ: types.Int32{}}, l, r}} }
func NewDiv(l, r Value) *Div { return &Div{arithBinary{valueBase{typ: types.Int32{}}, l, r}} }
func NewMod(l, r Value) *Mod { return &Mod{arithBinary{valueBase{typ: types.Int32{}}, l, r}} }

// NewAddrAdd builds an Add used for array address arithmetic: unlike
// NewAdd, its result carries resultType (a types.Pointer to the
// array's element type) rather than Int32, so a later Move's Kind()
// correctly classifies a load or store through it.
func NewAddrAdd(base, byteOffset Value, resultType types.Type) *Add {
	return &Add{arithBinary{valueBase{typ: resultType}, base, byteOffset}}
}

// NewCmp builds a Cmp instruction, whose result is Int1.
func NewCmp(op CmpOp, l, r Value) *Cmp {
	return &Cmp{valueBase: valueBase{typ: types.Int1{}}, Op: op, L: l, R: r}
}

// NewMove builds a Move instruction. Move never introduces a new named
// Value, so it carries types.Void{} itself.
func NewMove(dst, src Value) *Move {
	return &Move{valueBase: valueBase{typ: types.Void{}}, Dst: dst, Src: src}
}

// NewGoto builds an unconditional jump to target.
func NewGoto(target Label) *Goto {
	return &Goto{valueBase: valueBase{typ: types.Void{}}, Target: target}
}

// NewBranch builds a conditional jump on cond's Int1 value.
func NewBranch(cond Value, t, f Label) *Branch {
	return &Branch{valueBase: valueBase{typ: types.Void{}}, Cond: cond, True: t, False: f}
}

// NewCall builds a call to callee. Its result type is callee's return
// type, Void for a void callee.
func NewCall(callee *Function, args []Value) *Call {
	return &Call{valueBase: valueBase{typ: callee.Sig.Return}, Callee: callee, Args: args}
}
