package translate

import (
	"testing"

	"github.com/minicc-lang/minicc/pkg/ast"
	"github.com/minicc-lang/minicc/pkg/ir"
)

func TestTranslateProgramGlobalScalarAndArray(t *testing.T) {
	m := ir.NewModule()
	m.DeclareBuiltins()
	unit := &ast.CompileUnit{Items: []ast.TopLevel{
		&ast.DeclStmt{Decls: []ast.Declarator{
			&ast.VarDecl{Type: intType(), Name: "x"},
			&ast.VarInit{Type: intType(), Name: "y", Init: &ast.LeafLiteralUInt{Value: 7}},
			&ast.ArrayDecl{Type: intType(), Name: "buf", Dims: []*ast.ArrayDim{
				{Size: &ast.LeafLiteralUInt{Value: 10}},
			}},
		}},
	}}

	tr := TranslateProgram(m, unit)
	if !tr.Ok() {
		t.Fatalf("TranslateProgram produced diagnostics: %v", tr.Diags)
	}
	if len(m.Globals()) != 3 {
		t.Fatalf("len(Globals()) = %d, want 3", len(m.Globals()))
	}
	byName := map[string]*ir.GlobalVariable{}
	for _, g := range m.Globals() {
		byName[g.GlobalName] = g
	}
	if byName["x"].Init != nil {
		t.Error("x has no initializer, Init should be nil")
	}
	if byName["y"].Init == nil || *byName["y"].Init != 7 {
		t.Errorf("y.Init = %v, want 7", byName["y"].Init)
	}
	if byName["buf"] == nil {
		t.Fatal("buf global was not defined")
	}
}

func TestTranslateProgramGlobalInitializerMustBeConstant(t *testing.T) {
	m := ir.NewModule()
	m.DeclareBuiltins()
	unit := &ast.CompileUnit{Items: []ast.TopLevel{
		&ast.DeclStmt{Decls: []ast.Declarator{
			&ast.VarInit{Type: intType(), Name: "y", Init: &ast.LeafVarId{Name: "undefined"}},
		}},
	}}
	tr := TranslateProgram(m, unit)
	if tr.Ok() {
		t.Error("a non-constant global initializer should record a diagnostic")
	}
}

func TestTranslateProgramDefinesFunctions(t *testing.T) {
	m := ir.NewModule()
	m.DeclareBuiltins()
	unit := &ast.CompileUnit{Items: []ast.TopLevel{
		&ast.FuncDef{Name: "main", ReturnType: intType(), Params: &ast.FuncFormalParams{}, Body: emptyBody()},
	}}
	tr := TranslateProgram(m, unit)
	if !tr.Ok() {
		t.Fatalf("TranslateProgram produced diagnostics: %v", tr.Diags)
	}
	if _, ok := m.FindFunction("main"); !ok {
		t.Error("main was not defined")
	}
}
