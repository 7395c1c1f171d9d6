package translate

import (
	"github.com/minicc-lang/minicc/pkg/ast"
	"github.com/minicc-lang/minicc/pkg/ir"
	"github.com/minicc-lang/minicc/pkg/types"
)

// TranslateProgram walks a compile unit's top-level items, defining every
// global variable and function in the Module. It returns the accumulated
// diagnostics; a non-empty Diags means the Module must not be handed to
// the selector. arm.SelectModule does not check for this itself: it
// lowers whatever Module it is given.
func TranslateProgram(m *ir.Module, unit *ast.CompileUnit) *Translator {
	t := New(m, nil)
	for _, item := range unit.Items {
		switch node := item.(type) {
		case *ast.DeclStmt:
			t.translateGlobalDecl(node)
		case *ast.FuncDef:
			t.translateFunction(node)
		}
	}
	return t
}

func (t *Translator) translateGlobalDecl(decl *ast.DeclStmt) {
	for _, d := range decl.Decls {
		switch v := d.(type) {
		case *ast.VarDecl:
			t.Module.NewGlobal(convertLeafType(v.Type), v.Name, nil)
		case *ast.VarInit:
			val, ok := evalConstInt(v.Init)
			if !ok {
				t.semanticError(v.Line(), "global initializer for %q must be a compile-time constant", v.Name)
				continue
			}
			t.Module.NewGlobal(convertLeafType(v.Type), v.Name, &val)
		case *ast.ArrayDecl:
			dims, ok := t.resolveDims(v.Dims)
			if !ok {
				continue
			}
			arrType := types.Array{Elem: convertLeafType(v.Type), Dims: dims}
			t.Module.NewGlobal(arrType, v.Name, nil)
		}
	}
}
