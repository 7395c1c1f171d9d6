package translate

import (
	"github.com/minicc-lang/minicc/pkg/ast"
	"github.com/minicc-lang/minicc/pkg/ir"
	"github.com/minicc-lang/minicc/pkg/types"
)

// elementAddress computes the byte address of one element of a
// (possibly array-decayed) array reference using row-major addressing:
// offset = i1, then for each further index offset = offset*dim + index,
// then the byte address is base + offset*elemSize. It requires a full
// index list.
func (t *Translator) elementAddress(fn *ir.Function, ref *ast.ArrayRef) (ir.Value, types.Type, bool) {
	name, isID := ref.Array.(*ast.LeafVarId)
	if !isID {
		t.semanticError(ref.Line(), "array reference base must be a variable")
		return nil, nil, false
	}
	base, ok := t.Module.FindVar(name.Name)
	if !ok {
		t.semanticError(ref.Line(), "undeclared identifier %q", name.Name)
		return nil, nil, false
	}

	dims, elemType := t.arrayShape(base)
	if dims == nil {
		t.typeError(ref.Line(), "%q is not an array", name.Name)
		return nil, nil, false
	}
	if len(ref.Indices) != len(dims) {
		t.semanticError(ref.Line(), "array %q expects %d indices, got %d", name.Name, len(dims), len(ref.Indices))
		return nil, nil, false
	}

	offset := t.translateExpr(fn, ref.Indices[0])
	for i := 1; i < len(ref.Indices); i++ {
		dimConst := t.Module.InternConstInt(int32(dims[i]))
		mul := ir.NewMul(offset, dimConst)
		fn.AppendInstruction(mul)
		idx := t.translateExpr(fn, ref.Indices[i])
		add := ir.NewAdd(mul, idx)
		fn.AppendInstruction(add)
		offset = add
	}

	elemSize := t.Module.InternConstInt(int32(elemType.Size()))
	byteOffset := ir.NewMul(offset, elemSize)
	fn.AppendInstruction(byteOffset)
	addr := ir.NewAddrAdd(base, byteOffset, types.Pointer{Elem: elemType})
	fn.AppendInstruction(addr)
	return addr, elemType, true
}

// arrayShape reports v's dimension vector and element type, resolving a
// decayed array parameter through the Translator's side channel. Returns
// a nil dims slice if v is not array-shaped.
func (t *Translator) arrayShape(v ir.Value) ([]int, types.Type) {
	if arr, ok := v.Type().(types.Array); ok {
		return arr.Dims, arr.Elem
	}
	if local, ok := v.(*ir.LocalVariable); ok {
		if orig, tracked := t.arrayOrigins[local]; tracked {
			return orig.Dims, orig.Elem
		}
	}
	return nil, nil
}
