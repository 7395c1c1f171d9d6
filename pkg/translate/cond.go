package translate

import (
	"github.com/minicc-lang/minicc/pkg/ast"
	"github.com/minicc-lang/minicc/pkg/ir"
)

// emitBranchForCondition lowers a boolean expression by inherited
// true/false continuation labels rather than by first materializing an
// Int1 value and always branching on it. This inherited-attribute style
// is what gives && and || their short-circuit evaluation: each operand
// is translated directly against the labels its position in the
// expression tree implies, so an operand that decides the outcome never
// causes the other operand's side effects to run. Every case eventually
// emits exactly one Branch or Goto per leaf.
func (t *Translator) emitBranchForCondition(fn *ir.Function, e ast.Expr, trueLabel, falseLabel ir.Label) {
	switch cond := e.(type) {
	case *ast.Compare:
		l := t.translateExpr(fn, cond.Left)
		r := t.translateExpr(fn, cond.Right)
		if isPointerLike(l.Type()) || isPointerLike(r.Type()) {
			t.typeError(cond.Line(), "cannot compare pointer-typed operands with %q", cond.Op)
			fn.AppendInstruction(ir.NewBranch(t.Module.InternConstInt(0), trueLabel, falseLabel))
			return
		}
		cmp := ir.NewCmp(astCmpOpToIR(cond.Op), l, r)
		fn.AppendInstruction(cmp)
		fn.AppendInstruction(ir.NewBranch(cmp, trueLabel, falseLabel))

	case *ast.LogicalNot:
		t.emitBranchForCondition(fn, cond.Operand, falseLabel, trueLabel)

	case *ast.LogicalAnd:
		mid := fn.NewLabel()
		t.emitBranchForCondition(fn, cond.Left, mid, falseLabel)
		fn.AppendInstruction(mid)
		t.emitBranchForCondition(fn, cond.Right, trueLabel, falseLabel)

	case *ast.LogicalOr:
		mid := fn.NewLabel()
		t.emitBranchForCondition(fn, cond.Left, trueLabel, mid)
		fn.AppendInstruction(mid)
		t.emitBranchForCondition(fn, cond.Right, trueLabel, falseLabel)

	default:
		// Any other expression is used as a condition by comparing it
		// against zero: a bare scalar, a function call result, or a
		// parenthesized arithmetic expression are all valid conditions.
		v := t.translateExpr(fn, e)
		zero := t.Module.InternConstInt(0)
		cmp := ir.NewCmp(ir.CmpNE, v, zero)
		fn.AppendInstruction(cmp)
		fn.AppendInstruction(ir.NewBranch(cmp, trueLabel, falseLabel))
	}
}

func astCmpOpToIR(op ast.CmpOp) ir.CmpOp {
	switch op {
	case ast.OpLT:
		return ir.CmpLT
	case ast.OpLE:
		return ir.CmpLE
	case ast.OpGT:
		return ir.CmpGT
	case ast.OpGE:
		return ir.CmpGE
	case ast.OpEQ:
		return ir.CmpEQ
	default:
		return ir.CmpNE
	}
}
