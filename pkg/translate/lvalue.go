package translate

import (
	"github.com/minicc-lang/minicc/pkg/ast"
	"github.com/minicc-lang/minicc/pkg/ir"
)

// translateAssign lowers `target = value`. A LeafVarId target is a
// plain scalar Move; an ArrayRef target computes the element address
// and stores through it.
func (t *Translator) translateAssign(fn *ir.Function, a *ast.Assign) {
	value := t.translateExpr(fn, a.Value)

	switch target := a.Target.(type) {
	case *ast.LeafVarId:
		dst, ok := t.Module.FindVar(target.Name)
		if !ok {
			t.semanticError(target.Line(), "undeclared identifier %q", target.Name)
			return
		}
		fn.AppendInstruction(ir.NewMove(dst, value))

	case *ast.ArrayRef:
		addr, _, ok := t.elementAddress(fn, target)
		if !ok {
			return
		}
		fn.AppendInstruction(ir.NewMove(addr, value))

	default:
		t.semanticError(a.Line(), "invalid assignment target")
	}
}
