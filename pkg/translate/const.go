package translate

import "github.com/minicc-lang/minicc/pkg/ast"

// evalConstInt evaluates e as a compile-time integer constant: global
// initializers and array dimensions must be compile-time integer
// constants. The second return value is false if e is not a constant
// expression this core can fold.
func evalConstInt(e ast.Expr) (int32, bool) {
	switch n := e.(type) {
	case *ast.LeafLiteralUInt:
		return int32(n.Value), true
	case *ast.Neg:
		v, ok := evalConstInt(n.Operand)
		return -v, ok
	case *ast.Binary:
		l, ok1 := evalConstInt(n.Left)
		r, ok2 := evalConstInt(n.Right)
		if !ok1 || !ok2 {
			return 0, false
		}
		switch n.Op {
		case ast.OpAdd:
			return l + r, true
		case ast.OpSub:
			return l - r, true
		case ast.OpMul:
			return l * r, true
		case ast.OpDiv:
			if r == 0 {
				return 0, false
			}
			return l / r, true
		case ast.OpMod:
			if r == 0 {
				return 0, false
			}
			return l % r, true
		}
	}
	return 0, false
}
