package arm

import (
	"github.com/minicc-lang/minicc/pkg/diag"
	"github.com/minicc-lang/minicc/pkg/ir"
	"github.com/minicc-lang/minicc/pkg/types"
)

// Tmp0 and Tmp1 are the selector's two general scratch registers for
// binary data-processing instructions, which ARM32 requires to have
// both operands already in registers. Tmp0 is the same register as
// Scratch (r12/ip), which also backs single-operand address
// computations; the Mod sequence and a global store of a value already
// in Scratch borrow r1 as a third register. A pair suffices otherwise
// because this selector never keeps a value register-resident across
// instructions.
const (
	Tmp0 = R12
	Tmp1 = R0
)

// SelectModule lowers every defined function in m to ARM32 assembly.
// Builtins (empty Code) contribute no Function - they are resolved as
// external symbols at link time.
func SelectModule(m *ir.Module) *Program {
	prog := &Program{}
	for _, g := range m.Globals() {
		prog.Globals = append(prog.Globals, GlobVar{
			Name: g.GlobalName,
			Size: int64(g.Type().Size()),
			Init: g.Init,
		})
	}
	for _, fn := range m.Functions() {
		if len(fn.Code()) == 0 {
			continue
		}
		prog.Functions = append(prog.Functions, selectFunction(fn))
	}
	return prog
}

type codegen struct {
	out *Function
	fr  *frame
	fn  *ir.Function
}

func (g *codegen) emit(i Instruction) { g.out.Append(i) }

// selectFunction lowers one IR function: prologue (frame allocation,
// formal-parameter materialization), then a straight line-by-line
// translation of its instruction stream, then implicitly the epilogue
// each Exit instruction emits.
func selectFunction(fn *ir.Function) *Function {
	g := &codegen{out: NewFunction(fn.Name), fr: buildFrame(fn), fn: fn}
	g.emitPrologue()
	for _, inst := range fn.Code() {
		g.selectInstruction(inst)
	}
	return g.out
}

func (g *codegen) emitPrologue() {
	g.emit(PUSH{Regs: []Reg{FP, LR}})
	g.emit(MOV{Rd: FP, Rm: SP})
	if g.fr.size > 0 {
		g.emit(SUBi{Rd: SP, Rn: SP, Imm: g.fr.size})
	}
	for i, p := range g.fn.Params() {
		off := g.fr.offsetOf(p)
		if i < 4 {
			g.emit(STR{Rt: ArgRegs[i], Rn: FP, Ofs: off})
			continue
		}
		g.emit(LDR{Rt: Scratch, Rn: FP, Ofs: g.fr.incomingArgs[p]})
		g.emit(STR{Rt: Scratch, Rn: FP, Ofs: off})
	}
}

func (g *codegen) emitEpilogue() {
	g.emit(MOV{Rd: SP, Rm: FP})
	g.emit(POP{Regs: []Reg{FP, LR}})
	g.emit(BX{Rn: LR})
}

// loadOperand materializes v's value into dst. A scalar reads straight
// from v's stack slot; an array-typed Value's "value" is the address of
// its storage, since an array is always used as its own base address; a
// non-array global additionally dereferences through its symbol
// address, since a global's slot in this selector's uniform model holds
// the symbol, not the value.
func (g *codegen) loadOperand(v ir.Value, dst Reg) {
	switch val := v.(type) {
	case *ir.ConstInt:
		g.loadImmediate(dst, val.V)
	case *ir.GlobalVariable:
		g.emit(LDRLabel{Rt: dst, Target: Label(val.GlobalName)})
		if _, isArray := val.Type().(types.Array); !isArray {
			g.emit(LDR{Rt: dst, Rn: dst, Ofs: 0})
		}
	default:
		if _, isArray := v.Type().(types.Array); isArray {
			g.emit(ADDi{Rd: dst, Rn: FP, Imm: g.fr.offsetOf(v)})
			return
		}
		g.emit(LDR{Rt: dst, Rn: FP, Ofs: g.fr.offsetOf(v)})
	}
}

// storeResult writes src into dst's slot, or through dst's symbol
// address if dst is a global. The symbol address goes through Scratch,
// or through r1 when src is Scratch itself.
func (g *codegen) storeResult(dst ir.Value, src Reg) {
	if gv, isGlobal := dst.(*ir.GlobalVariable); isGlobal {
		addr := Scratch
		if src == Scratch {
			addr = R1
		}
		g.emit(LDRLabel{Rt: addr, Target: Label(gv.GlobalName)})
		g.emit(STR{Rt: src, Rn: addr, Ofs: 0})
		return
	}
	g.emit(STR{Rt: src, Rn: FP, Ofs: g.fr.offsetOf(dst)})
}

// loadImmediate loads a 32-bit constant via MOVW/MOVT, safe for any
// value regardless of whether it fits an 8-bit rotated immediate.
func (g *codegen) loadImmediate(dst Reg, v int32) {
	u := uint32(v)
	g.emit(MOVW{Rd: dst, Imm: uint16(u & 0xffff)})
	if hi := uint16(u >> 16); hi != 0 {
		g.emit(MOVT{Rd: dst, Imm: hi})
	}
}

// labelName produces a program-unique assembly label for an IR label,
// qualified by the owning function's name since exit labels otherwise
// collide across functions (the IR printer, by contrast, prints a bare
// "exit:" per function since it never merges functions into one
// namespace).
func labelName(fn *ir.Function, l ir.Label) Label {
	if li, ok := l.(*ir.LabelInstruction); ok && li.FixedName != "" {
		return Label(".L" + fn.Name + "_" + li.FixedName)
	}
	return Label(".L" + fn.Name + "_" + l.Name()[1:])
}

func cmpOpToCond(op ir.CmpOp) Cond {
	switch op {
	case ir.CmpEQ:
		return CondEQ
	case ir.CmpNE:
		return CondNE
	case ir.CmpLT:
		return CondLT
	case ir.CmpLE:
		return CondLE
	case ir.CmpGT:
		return CondGT
	default:
		return CondGE
	}
}

func (g *codegen) selectInstruction(inst ir.Instruction) {
	switch i := inst.(type) {
	case *ir.Entry:
		// handled by emitPrologue

	case *ir.LabelInstruction:
		g.out.AppendLabel(labelName(g.fn, i))

	case *ir.Exit:
		if i.Slot != nil {
			g.loadOperand(i.Slot, R0)
		}
		g.emitEpilogue()

	case *ir.Goto:
		g.emit(B{Target: labelName(g.fn, i.Target)})

	case *ir.Branch:
		g.selectBranch(i)

	case *ir.Add:
		g.selectArith(i, i.L, i.R, func() { g.emit(ADD{Rd: Tmp0, Rn: Tmp0, Rm: Tmp1}) })
	case *ir.Sub:
		g.selectArith(i, i.L, i.R, func() { g.emit(SUB{Rd: Tmp0, Rn: Tmp0, Rm: Tmp1}) })
	case *ir.Mul:
		g.selectArith(i, i.L, i.R, func() { g.emit(MUL{Rd: Tmp0, Rn: Tmp0, Rm: Tmp1}) })
	case *ir.Div:
		g.selectArith(i, i.L, i.R, func() { g.emit(SDIV{Rd: Tmp0, Rn: Tmp0, Rm: Tmp1}) })
	case *ir.Mod:
		// r = numerator - (numerator/divisor)*divisor, mul+sub fused as mls.
		g.selectArith(i, i.L, i.R, func() {
			g.emit(SDIV{Rd: R1, Rn: Tmp0, Rm: Tmp1})
			g.emit(MLS{Rd: Tmp0, Rn: R1, Rm: Tmp1, Ra: Tmp0})
		})

	case *ir.Cmp:
		g.selectCmp(i)

	case *ir.Move:
		g.selectMove(i)

	case *ir.Call:
		g.selectCall(i)

	default:
		diag.Assert(false, "no instruction selector for %T", inst)
	}
}

func (g *codegen) selectArith(result ir.Value, l, r ir.Value, op func()) {
	g.loadOperand(l, Tmp0)
	g.loadOperand(r, Tmp1)
	op()
	g.storeResult(result, Tmp0)
}

func (g *codegen) selectBranch(b *ir.Branch) {
	cmp, isCmp := b.Cond.(*ir.Cmp)
	if !isCmp {
		g.loadOperand(b.Cond, Tmp0)
		g.emit(MOVi{Rd: Tmp1, Imm: 0})
		g.emit(CMP{Rn: Tmp0, Rm: Tmp1})
		g.emit(Bcond{Cond: CondNE, Target: labelName(g.fn, b.True)})
		g.emit(B{Target: labelName(g.fn, b.False)})
		return
	}
	g.loadOperand(cmp.L, Tmp0)
	g.loadOperand(cmp.R, Tmp1)
	g.emit(CMP{Rn: Tmp0, Rm: Tmp1})
	g.emit(Bcond{Cond: cmpOpToCond(cmp.Op), Target: labelName(g.fn, b.True)})
	g.emit(B{Target: labelName(g.fn, b.False)})
}

func (g *codegen) selectCmp(c *ir.Cmp) {
	g.loadOperand(c.L, Tmp0)
	g.loadOperand(c.R, Tmp1)
	g.emit(CMP{Rn: Tmp0, Rm: Tmp1})
	g.emit(MOVcond{Cond: cmpOpToCond(c.Op), Rd: Tmp0, Imm: 1})
	g.emit(MOVcond{Cond: cmpOpToCond(c.Op.Negate()), Rd: Tmp0, Imm: 0})
	g.storeResult(c, Tmp0)
}

func (g *codegen) selectMove(m *ir.Move) {
	switch m.Kind() {
	case ir.MoveStore:
		g.loadOperand(m.Dst, Tmp0)
		g.loadOperand(m.Src, Tmp1)
		g.emit(STR{Rt: Tmp1, Rn: Tmp0, Ofs: 0})
	case ir.MoveLoad:
		g.loadOperand(m.Src, Tmp0)
		g.emit(LDR{Rt: Tmp1, Rn: Tmp0, Ofs: 0})
		g.storeResult(m.Dst, Tmp1)
	default:
		g.loadOperand(m.Src, Tmp0)
		g.storeResult(m.Dst, Tmp0)
	}
}

func (g *codegen) selectCall(c *ir.Call) {
	for i, arg := range c.Args {
		if i < 4 {
			g.loadOperand(arg, ArgRegs[i])
			continue
		}
		g.loadOperand(arg, Scratch)
		g.emit(STR{Rt: Scratch, Rn: FP, Ofs: g.fr.outgoingBase + int32(4*(i-4))})
	}
	g.emit(BL{Target: Label(c.Callee.Name)})
	if c.HasResult() {
		g.storeResult(c, R0)
	}
}
