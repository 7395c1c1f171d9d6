// Package examples provides hand-built ast.CompileUnit trees, standing
// in for the external syntactic frontend this core does not implement.
// A translation core's own pass-level tests often build IR literals
// directly rather than parsing source text; this package applies the
// same convention one level higher, at the CLI boundary, so
// `minicc -example NAME` has something to compile without a
// lexer/parser in this repository.
package examples

import "github.com/minicc-lang/minicc/pkg/ast"

var intType = &ast.LeafType{Name: "int"}
var voidType = &ast.LeafType{Name: "void"}

func id(name string) *ast.LeafVarId       { return &ast.LeafVarId{Name: name} }
func lit(v int64) *ast.LeafLiteralUInt    { return &ast.LeafLiteralUInt{Value: v} }
func ret(e ast.Expr) *ast.Return          { return &ast.Return{Value: e} }
func block(stmts ...ast.Stmt) *ast.Block  { return &ast.Block{Items: stmts} }
func assign(t, v ast.Expr) *ast.Assign    { return &ast.Assign{Target: t, Value: v} }

func params(entries ...*ast.FuncFormalParam) *ast.FuncFormalParams {
	return &ast.FuncFormalParams{Params: entries}
}

func param(name string) *ast.FuncFormalParam {
	return &ast.FuncFormalParam{Type: intType, Name: name}
}

func arrayParam(name string, dims ...int) *ast.FuncFormalParam {
	ds := []ast.Dim{&ast.EmptyDim{}}
	for _, d := range dims {
		ds = append(ds, &ast.ArrayDim{Size: lit(int64(d))})
	}
	return &ast.FuncFormalParam{Type: intType, Name: name, Dims: ds}
}

func call(name string, args ...ast.Expr) *ast.FuncCall {
	return &ast.FuncCall{Name: name, Params: &ast.FuncRealParams{Args: args}}
}

func funcDef(ret *ast.LeafType, name string, ps *ast.FuncFormalParams, body *ast.Block) *ast.FuncDef {
	return &ast.FuncDef{ReturnType: ret, Name: name, Params: ps, Body: body}
}

// Registry maps an example's CLI name to its compile unit.
var Registry = map[string]*ast.CompileUnit{
	"empty":   emptyProgram(),
	"arith":   arithProgram(),
	"control": controlProgram(),
	"array":   arrayProgram(),
}

// emptyProgram: `int main() { return 0; }`
func emptyProgram() *ast.CompileUnit {
	main := funcDef(intType, "main", params(), block(ret(lit(0))))
	return &ast.CompileUnit{Items: []ast.TopLevel{main}}
}

// arithProgram: a handful of local declarations combined with
// arithmetic and a nested call, exercising the +, -, * and % Binary
// operators plus Neg.
//
//	int add(int a, int b) { return a + b; }
//	int main() {
//	  int x = 3;
//	  int y = 4;
//	  int z = add(x * y, -x) - y % 3;
//	  return z;
//	}
func arithProgram() *ast.CompileUnit {
	add := funcDef(intType, "add", params(param("a"), param("b")),
		block(ret(&ast.Binary{Op: ast.OpAdd, Left: id("a"), Right: id("b")})))

	main := funcDef(intType, "main", params(), block(
		&ast.DeclStmt{Decls: []ast.Declarator{&ast.VarInit{Type: intType, Name: "x", Init: lit(3)}}},
		&ast.DeclStmt{Decls: []ast.Declarator{&ast.VarInit{Type: intType, Name: "y", Init: lit(4)}}},
		&ast.DeclStmt{Decls: []ast.Declarator{&ast.VarInit{Type: intType, Name: "z", Init: &ast.Binary{
			Op: ast.OpSub,
			Left: call("add",
				&ast.Binary{Op: ast.OpMul, Left: id("x"), Right: id("y")},
				&ast.Neg{Operand: id("x")},
			),
			Right: &ast.Binary{Op: ast.OpMod, Left: id("y"), Right: lit(3)},
		}}}},
		ret(id("z")),
	))
	return &ast.CompileUnit{Items: []ast.TopLevel{add, main}}
}

// controlProgram: an if/else and a while loop driven by
// short-circuit && / || conditions.
//
//	int main() {
//	  int i = 0;
//	  int total = 0;
//	  while (i < 10 && total < 100) {
//	    if (i == 5 || i == 7) {
//	      total = total + 2;
//	    } else {
//	      total = total + 1;
//	    }
//	    i = i + 1;
//	  }
//	  return total;
//	}
func controlProgram() *ast.CompileUnit {
	loopBody := block(
		&ast.If{
			Cond: &ast.LogicalOr{
				Left:  &ast.Compare{Op: ast.OpEQ, Left: id("i"), Right: lit(5)},
				Right: &ast.Compare{Op: ast.OpEQ, Left: id("i"), Right: lit(7)},
			},
			Then: block(assign(id("total"), &ast.Binary{Op: ast.OpAdd, Left: id("total"), Right: lit(2)})),
			Else: block(assign(id("total"), &ast.Binary{Op: ast.OpAdd, Left: id("total"), Right: lit(1)})),
		},
		assign(id("i"), &ast.Binary{Op: ast.OpAdd, Left: id("i"), Right: lit(1)}),
	)

	main := funcDef(intType, "main", params(), block(
		&ast.DeclStmt{Decls: []ast.Declarator{&ast.VarInit{Type: intType, Name: "i", Init: lit(0)}}},
		&ast.DeclStmt{Decls: []ast.Declarator{&ast.VarInit{Type: intType, Name: "total", Init: lit(0)}}},
		&ast.While{
			Cond: &ast.LogicalAnd{
				Left:  &ast.Compare{Op: ast.OpLT, Left: id("i"), Right: lit(10)},
				Right: &ast.Compare{Op: ast.OpLT, Left: id("total"), Right: lit(100)},
			},
			Body: loopBody,
		},
		ret(id("total")),
	))
	return &ast.CompileUnit{Items: []ast.TopLevel{main}}
}

// arrayProgram: a global 2D array, a local array, and an array
// parameter (decayed pointer), exercising the address-arithmetic path
// and the builtin I/O signatures.
//
//	int g[4][4];
//	int sum(int a[][4], int n) {
//	  int total = 0;
//	  int i = 0;
//	  while (i < n) {
//	    total = total + a[i][0];
//	    i = i + 1;
//	  }
//	  return total;
//	}
//	int main() {
//	  int local[4];
//	  local[0] = 10;
//	  g[0][0] = local[0];
//	  putint(sum(g, 4));
//	  return 0;
//	}
func arrayProgram() *ast.CompileUnit {
	global := &ast.DeclStmt{Decls: []ast.Declarator{
		&ast.ArrayDecl{Type: intType, Name: "g", Dims: []*ast.ArrayDim{{Size: lit(4)}, {Size: lit(4)}}},
	}}

	sum := funcDef(intType, "sum", params(arrayParam("a", 4), param("n")), block(
		&ast.DeclStmt{Decls: []ast.Declarator{&ast.VarInit{Type: intType, Name: "total", Init: lit(0)}}},
		&ast.DeclStmt{Decls: []ast.Declarator{&ast.VarInit{Type: intType, Name: "i", Init: lit(0)}}},
		&ast.While{
			Cond: &ast.Compare{Op: ast.OpLT, Left: id("i"), Right: id("n")},
			Body: block(
				assign(id("total"), &ast.Binary{
					Op:   ast.OpAdd,
					Left: id("total"),
					Right: &ast.ArrayRef{Array: id("a"), Indices: []ast.Expr{id("i"), lit(0)}},
				}),
				assign(id("i"), &ast.Binary{Op: ast.OpAdd, Left: id("i"), Right: lit(1)}),
			),
		},
		ret(id("total")),
	))

	main := funcDef(intType, "main", params(), block(
		&ast.DeclStmt{Decls: []ast.Declarator{
			&ast.ArrayDecl{Type: intType, Name: "local", Dims: []*ast.ArrayDim{{Size: lit(4)}}},
		}},
		assign(&ast.ArrayRef{Array: id("local"), Indices: []ast.Expr{lit(0)}}, lit(10)),
		assign(&ast.ArrayRef{Array: id("g"), Indices: []ast.Expr{lit(0), lit(0)}},
			&ast.ArrayRef{Array: id("local"), Indices: []ast.Expr{lit(0)}}),
		call("putint", call("sum", id("g"), lit(4))),
		ret(lit(0)),
	))

	return &ast.CompileUnit{Items: []ast.TopLevel{global, sum, main}}
}
