package translate

import (
	"github.com/minicc-lang/minicc/pkg/ast"
	"github.com/minicc-lang/minicc/pkg/ir"
	"github.com/minicc-lang/minicc/pkg/types"
)

// translateFunction implements six-step function translation: define,
// push scope + entry/return-slot setup, materialize formals, translate
// the body, close out with the exit label/instruction, pop scope.
func (t *Translator) translateFunction(fd *ast.FuncDef) {
	params, ok := t.buildParamSpecs(fd)
	if !ok {
		return
	}
	retType := convertLeafType(fd.ReturnType)

	fn, err := t.Module.DefineFunction(fd.Name, retType, params)
	if err != nil {
		t.semanticError(fd.Line(), "function %q already defined", fd.Name)
		return
	}

	t.Module.SetCurrentFunction(fn)
	fn.SetupReturnSlotAndExit()

	if fd.Name == "main" {
		if slot := fn.ReturnSlot(); slot != nil {
			fn.AppendInstruction(ir.NewMove(slot, t.Module.InternConstInt(0)))
		}
	}

	for i, p := range fd.Params.Params {
		formal := fn.Params()[i]
		local, defErr := t.Module.DefineVar(formal.Type(), p.Name)
		if defErr != nil {
			t.semanticError(p.Line(), "parameter %q redeclared", p.Name)
			continue
		}
		if formal.OriginalArrayType != nil {
			t.arrayOrigins[local.(*ir.LocalVariable)] = formal.OriginalArrayType
		}
		fn.AppendInstruction(ir.NewMove(local, formal))
	}

	t.translateBlock(fn, fd.Body)

	fn.AppendExit()
	t.Module.ClearCurrentFunction()
	ir.RenameAll(fn)
}

// buildParamSpecs resolves each formal parameter's storage type,
// applying the array-decay rule: a parameter declared with array syntax
// gets formal type Pointer(T) and an OriginalArrayType side channel
// recording Array(T, [0, dim2, ...]).
func (t *Translator) buildParamSpecs(fd *ast.FuncDef) ([]ir.ParamSpec, bool) {
	specs := make([]ir.ParamSpec, 0, len(fd.Params.Params))
	ok := true
	for _, p := range fd.Params.Params {
		elemType := convertLeafType(p.Type)
		if len(p.Dims) == 0 {
			specs = append(specs, ir.ParamSpec{Type: elemType, Name: p.Name})
			continue
		}
		dims := make([]int, len(p.Dims))
		for i, d := range p.Dims {
			if i == 0 {
				if _, isEmpty := d.(*ast.EmptyDim); !isEmpty {
					t.semanticError(p.Line(), "array parameter %q must leave its first dimension empty", p.Name)
					ok = false
				}
				dims[0] = 0
				continue
			}
			ad, isArrayDim := d.(*ast.ArrayDim)
			if !isArrayDim {
				t.semanticError(p.Line(), "array parameter %q dimension %d must be a constant size", p.Name, i)
				ok = false
				continue
			}
			v, isConst := evalConstInt(ad.Size)
			if !isConst || v <= 0 {
				t.semanticError(p.Line(), "array parameter %q dimension %d must be a positive compile-time constant", p.Name, i)
				ok = false
				continue
			}
			dims[i] = int(v)
		}
		orig := &types.Array{Elem: elemType, Dims: dims}
		specs = append(specs, ir.ParamSpec{
			Type:              types.Pointer{Elem: elemType},
			Name:              p.Name,
			OriginalArrayType: orig,
		})
	}
	return specs, ok
}
