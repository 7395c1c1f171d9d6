package arm

import (
	"github.com/minicc-lang/minicc/pkg/diag"
	"github.com/minicc-lang/minicc/pkg/ir"
	"github.com/minicc-lang/minicc/pkg/types"
)

// stackAlignment is the ARM32 AAPCS public-interface stack alignment
// requirement.
const stackAlignment = 8

// frame is one function's activation record: every named ir.Value gets
// its own fixed stack slot, offset from FP. This selector never keeps a
// value resident in a register across instruction boundaries; frame
// layout and instruction selection happen together in one pass instead
// of the register-allocation-then-stacking pipeline a more elaborate
// backend would use.
type frame struct {
	slot         map[ir.Value]int32 // offset from FP, negative
	incomingArgs map[ir.Value]int32 // offset from FP, positive (5th+ formal)
	size         int32              // total `sub sp, sp, #size`
	outgoingBase int32              // offset from FP where the outgoing-argument area begins
}

// buildFrame lays out fn's activation record: formal parameters first
// (mirroring their register/stack arrival order under AAPCS32), then
// user locals, then anonymous mem slots, then every value-producing
// instruction's result, and finally an outgoing-argument area sized for
// the largest call fn makes.
func buildFrame(fn *ir.Function) *frame {
	f := &frame{slot: make(map[ir.Value]int32), incomingArgs: make(map[ir.Value]int32)}
	n := int32(0)
	assign := func(v ir.Value) {
		size := int32(WordSize)
		if arr, isArray := v.Type().(types.Array); isArray {
			size = int32(arr.Size())
		}
		n += size
		f.slot[v] = -n
	}

	for i, p := range fn.Params() {
		if i >= 4 {
			f.incomingArgs[p] = int32(8+4*(i-4))
		}
		assign(p)
	}
	for _, l := range fn.Locals() {
		assign(l)
	}
	for _, m := range fn.Mems() {
		assign(m)
	}
	for _, inst := range fn.Code() {
		if _, isLabel := inst.(*ir.LabelInstruction); isLabel {
			continue
		}
		if inst.Name() == "" {
			continue // no result, e.g. Move, Goto, Branch, void Call
		}
		if _, already := f.slot[inst]; already {
			continue
		}
		assign(inst)
	}

	localsSize := n
	outgoingSize := int32(0)
	if fn.MaxCallArgCount > 4 {
		outgoingSize = int32(fn.MaxCallArgCount-4) * WordSize
	}
	total := localsSize + outgoingSize
	if rem := total % stackAlignment; rem != 0 {
		total += stackAlignment - rem
	}
	f.size = total
	f.outgoingBase = -total
	return f
}

// offsetOf returns v's slot offset from FP, for a Value that always has
// a memory slot (everything except ConstInt and GlobalVariable).
func (f *frame) offsetOf(v ir.Value) int32 {
	off, ok := f.slot[v]
	diag.Assert(ok, "value %q has no stack slot", v.Name())
	return off
}
