package translate

import (
	"github.com/minicc-lang/minicc/pkg/ast"
	"github.com/minicc-lang/minicc/pkg/types"
)

func convertLeafType(lt *ast.LeafType) types.Type {
	if lt.Name == "void" {
		return types.Void{}
	}
	return types.Int32{}
}

// isPointerLike reports whether t is a Pointer or an undecayed Array -
// the two type-lattice members that hold an address rather than a
// scalar value, and so cannot feed a relational or arithmetic operator.
func isPointerLike(t types.Type) bool {
	switch t.(type) {
	case types.Pointer, types.Array:
		return true
	default:
		return false
	}
}

// resolveDims constant-folds a declarator's dimension expressions,
// recording a SemanticError for any dimension that is not a positive
// compile-time constant: all dimension expressions must be constant
// positive integers.
func (t *Translator) resolveDims(dims []*ast.ArrayDim) ([]int, bool) {
	out := make([]int, 0, len(dims))
	ok := true
	for _, d := range dims {
		v, isConst := evalConstInt(d.Size)
		if !isConst || v <= 0 {
			t.semanticError(d.Line(), "array dimension must be a positive compile-time constant")
			ok = false
			continue
		}
		out = append(out, int(v))
	}
	return out, ok
}
