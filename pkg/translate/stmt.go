package translate

import (
	"github.com/minicc-lang/minicc/pkg/ast"
	"github.com/minicc-lang/minicc/pkg/ir"
	"github.com/minicc-lang/minicc/pkg/types"
)

// translateBlock translates a compound statement, pushing a fresh scope
// on entry and popping it on exit.
func (t *Translator) translateBlock(fn *ir.Function, block *ast.Block) {
	t.Module.EnterScope()
	for _, s := range block.Items {
		t.translateStmt(fn, s)
	}
	t.Module.LeaveScope()
}

func (t *Translator) translateStmt(fn *ir.Function, s ast.Stmt) {
	switch stmt := s.(type) {
	case *ast.Block:
		t.translateBlock(fn, stmt)

	case *ast.DeclStmt:
		t.translateLocalDecl(fn, stmt)

	case *ast.Assign:
		t.translateAssign(fn, stmt)

	case *ast.Return:
		t.translateReturn(fn, stmt)

	case *ast.FuncCall:
		t.translateCall(fn, stmt)

	case *ast.If:
		t.translateIf(fn, stmt)

	case *ast.While:
		t.translateWhile(fn, stmt)

	case *ast.Break:
		target := fn.BreakTarget()
		if target == nil {
			t.semanticError(stmt.Line(), "break outside a loop")
			return
		}
		fn.AppendInstruction(ir.NewGoto(target))

	case *ast.Continue:
		target := fn.ContinueTarget()
		if target == nil {
			t.semanticError(stmt.Line(), "continue outside a loop")
			return
		}
		fn.AppendInstruction(ir.NewGoto(target))
	}
}

func (t *Translator) translateLocalDecl(fn *ir.Function, decl *ast.DeclStmt) {
	for _, d := range decl.Decls {
		switch v := d.(type) {
		case *ast.VarDecl:
			if _, err := t.Module.DefineVar(convertLeafType(v.Type), v.Name); err != nil {
				t.semanticError(v.Line(), "%q redeclared in this scope", v.Name)
			}

		case *ast.VarInit:
			local, err := t.Module.DefineVar(convertLeafType(v.Type), v.Name)
			if err != nil {
				t.semanticError(v.Line(), "%q redeclared in this scope", v.Name)
				continue
			}
			value := t.translateExpr(fn, v.Init)
			fn.AppendInstruction(ir.NewMove(local, value))

		case *ast.ArrayDecl:
			dims, ok := t.resolveDims(v.Dims)
			if !ok {
				continue
			}
			arrType := types.Array{Elem: convertLeafType(v.Type), Dims: dims}
			if _, err := t.Module.DefineArrayVar(arrType, v.Name); err != nil {
				t.semanticError(v.Line(), "%q redeclared in this scope", v.Name)
			}
		}
	}
}

func (t *Translator) translateReturn(fn *ir.Function, ret *ast.Return) {
	_, isVoid := fn.Sig.Return.(types.Void)
	switch {
	case ret.Value != nil && isVoid:
		t.semanticError(ret.Line(), "void function %q must not return a value", fn.Name)
	case ret.Value == nil && !isVoid:
		t.semanticError(ret.Line(), "non-void function %q must return a value", fn.Name)
	}

	if ret.Value != nil {
		value := t.translateExpr(fn, ret.Value)
		if slot := fn.ReturnSlot(); slot != nil {
			fn.AppendInstruction(ir.NewMove(slot, value))
		}
	}
	fn.AppendInstruction(ir.NewGoto(fn.ExitLabel()))
}

func (t *Translator) translateIf(fn *ir.Function, ifStmt *ast.If) {
	thenL := fn.NewLabel()
	endL := fn.NewLabel()

	if ifStmt.Else == nil {
		t.emitBranchForCondition(fn, ifStmt.Cond, thenL, endL)
		fn.AppendInstruction(thenL)
		t.translateStmt(fn, ifStmt.Then)
		fn.AppendInstruction(ir.NewGoto(endL))
		fn.AppendInstruction(endL)
		return
	}

	elseL := fn.NewLabel()
	t.emitBranchForCondition(fn, ifStmt.Cond, thenL, elseL)
	fn.AppendInstruction(thenL)
	t.translateStmt(fn, ifStmt.Then)
	fn.AppendInstruction(ir.NewGoto(endL))
	fn.AppendInstruction(elseL)
	t.translateStmt(fn, ifStmt.Else)
	fn.AppendInstruction(ir.NewGoto(endL))
	fn.AppendInstruction(endL)
}

func (t *Translator) translateWhile(fn *ir.Function, w *ast.While) {
	startL := fn.NewLabel()
	bodyL := fn.NewLabel()
	endL := fn.NewLabel()

	fn.AppendInstruction(startL)
	t.emitBranchForCondition(fn, w.Cond, bodyL, endL)
	fn.AppendInstruction(bodyL)
	fn.PushLoop(startL, endL)
	t.translateStmt(fn, w.Body)
	fn.PopLoop()
	fn.AppendInstruction(ir.NewGoto(startL))
	fn.AppendInstruction(endL)
}
