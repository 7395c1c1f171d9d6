package translate

import (
	"github.com/minicc-lang/minicc/pkg/ast"
	"github.com/minicc-lang/minicc/pkg/ir"
	"github.com/minicc-lang/minicc/pkg/types"
)

// translateExpr translates e for its value. A plain scalar identifier
// resolves directly to its underlying Value with no load instruction;
// only an ArrayRef goes through a computed pointer and an explicit Move.
func (t *Translator) translateExpr(fn *ir.Function, e ast.Expr) ir.Value {
	switch expr := e.(type) {
	case *ast.LeafLiteralUInt:
		return t.Module.InternConstInt(int32(expr.Value))

	case *ast.LeafVarId:
		v, ok := t.Module.FindVar(expr.Name)
		if !ok {
			t.semanticError(expr.Line(), "undeclared identifier %q", expr.Name)
			return t.Module.InternConstInt(0)
		}
		return v

	case *ast.Binary:
		l := t.translateExpr(fn, expr.Left)
		r := t.translateExpr(fn, expr.Right)
		if isPointerLike(l.Type()) || isPointerLike(r.Type()) {
			t.typeError(expr.Line(), "operator %q is not valid on a pointer-typed operand", expr.Op)
			return t.Module.InternConstInt(0)
		}
		var inst ir.Instruction
		switch expr.Op {
		case ast.OpAdd:
			inst = ir.NewAdd(l, r)
		case ast.OpSub:
			inst = ir.NewSub(l, r)
		case ast.OpMul:
			inst = ir.NewMul(l, r)
		case ast.OpDiv:
			inst = ir.NewDiv(l, r)
		case ast.OpMod:
			inst = ir.NewMod(l, r)
		}
		fn.AppendInstruction(inst)
		return inst

	case *ast.Neg:
		v := t.translateExpr(fn, expr.Operand)
		zero := t.Module.InternConstInt(0)
		sub := ir.NewSub(zero, v)
		fn.AppendInstruction(sub)
		return sub

	case *ast.Compare:
		l := t.translateExpr(fn, expr.Left)
		r := t.translateExpr(fn, expr.Right)
		if isPointerLike(l.Type()) || isPointerLike(r.Type()) {
			t.typeError(expr.Line(), "cannot compare pointer-typed operands with %q", expr.Op)
			return t.Module.InternConstInt(0)
		}
		cmp := ir.NewCmp(astCmpOpToIR(expr.Op), l, r)
		fn.AppendInstruction(cmp)
		return cmp

	case *ast.LogicalAnd, *ast.LogicalOr, *ast.LogicalNot:
		return t.materializeBool(fn, e)

	case *ast.FuncCall:
		return t.translateCall(fn, expr)

	case *ast.ArrayRef:
		addr, elemType, ok := t.elementAddress(fn, expr)
		if !ok {
			return t.Module.InternConstInt(0)
		}
		dst := fn.NewMemVariable(elemType)
		fn.AppendInstruction(ir.NewMove(dst, addr))
		return dst
	}
	return t.Module.InternConstInt(0)
}

// materializeBool lowers a short-circuiting boolean expression (&&, ||,
// !) used in value context (e.g. as an initializer or assigned to a
// scalar) into an Int32 0/1 result via emitBranchForCondition's
// inherited-label protocol. A bare Compare skips this machinery - it
// has no short-circuit behavior to preserve, so translateExpr lowers it
// straight to a single Cmp instead.
func (t *Translator) materializeBool(fn *ir.Function, e ast.Expr) ir.Value {
	trueL := fn.NewLabel()
	falseL := fn.NewLabel()
	doneL := fn.NewLabel()
	result := fn.NewMemVariable(types.Int32{})

	t.emitBranchForCondition(fn, e, trueL, falseL)

	fn.AppendInstruction(trueL)
	fn.AppendInstruction(ir.NewMove(result, t.Module.InternConstInt(1)))
	fn.AppendInstruction(ir.NewGoto(doneL))

	fn.AppendInstruction(falseL)
	fn.AppendInstruction(ir.NewMove(result, t.Module.InternConstInt(0)))

	fn.AppendInstruction(doneL)
	return result
}

// translateCall evaluates a call's arguments left to right and emits the
// Call instruction. An array-typed or pointer-typed argument passes its
// Value directly, since an array value already is its own base address.
func (t *Translator) translateCall(fn *ir.Function, call *ast.FuncCall) ir.Value {
	callee, ok := t.Module.FindFunction(call.Name)
	if !ok {
		t.semanticError(call.Line(), "call to undeclared function %q", call.Name)
		return t.Module.InternConstInt(0)
	}
	var args []ir.Value
	if call.Params != nil {
		args = make([]ir.Value, 0, len(call.Params.Args))
		for _, a := range call.Params.Args {
			args = append(args, t.translateExpr(fn, a))
		}
	}
	if len(args) != len(callee.Sig.Params) {
		t.semanticError(call.Line(), "call to %q expects %d arguments, got %d", call.Name, len(callee.Sig.Params), len(args))
		return t.Module.InternConstInt(0)
	}
	inst := ir.NewCall(callee, args)
	fn.AppendInstruction(inst)
	return inst
}
