// Package ir implements a linear, label-based three-address IR: a
// closed set of typed Values plus the Module/Function container that
// owns them and threads per-function scope. Each Value variant is its
// own struct implementing a shared marker-method interface, a tagged
// variant in place of open inheritance.
//
// Every Value used by an instruction is owned by the Module or the
// enclosing Function: each Value is heap-allocated once by its owner's
// constructor and referenced thereafter only via that stable pointer,
// so no Value ever needs to be copied or re-looked-up by name.
package ir

import "github.com/minicc-lang/minicc/pkg/types"

// Value is the universe of IR operands: constants, variables, temporaries
// and instructions that produce a result.
type Value interface {
	Type() types.Type
	// Name returns the Value's externally stable IR name ("%t3", "%l2",
	// ".L1", ...), assigned by RenameAll. Empty before renaming.
	Name() string
	setName(string)
	implValue()
}

// valueBase is embedded by every Value variant to supply the common
// type+name bookkeeping without open inheritance.
type valueBase struct {
	typ  types.Type
	name string
}

func (v *valueBase) Type() types.Type { return v.typ }
func (v *valueBase) Name() string     { return v.name }
func (v *valueBase) setName(n string) { v.name = n }
func (*valueBase) implValue()         {}

// ConstInt is an interned integer constant; two ConstInt Values with the
// same numeric value are always the same pointer, enforced by
// Module.InternConstInt.
type ConstInt struct {
	valueBase
	V int32
}

// GlobalVariable is a Module-owned global. Init is nil for a BSS
// (uninitialized) global; non-nil marks it initialized.
type GlobalVariable struct {
	valueBase
	GlobalName string
	Init       *int32
}

// LocalVariable is a Function-owned, user-declared variable, scoped by
// ScopeLevel (0 is global, 1 is the function's top scope, n+1 a nested
// block).
type LocalVariable struct {
	valueBase
	SourceName string
	ScopeLevel int
}

// MemVariable is an anonymous, Function-owned stack-resident slot created
// by Function.NewMemVariable, used for rvalue array loads, the
// return-value slot and materialized &&/||/! results.
type MemVariable struct {
	valueBase
}

// FormalParam is the incoming-argument Value materialized at function
// entry, distinct from its user-accessible LocalVariable copy.
// OriginalArrayType is non-nil only for a parameter declared with array
// syntax, recording the pre-decay Array type; FormalParam.Type() itself
// is the decayed Pointer or scalar storage type.
type FormalParam struct {
	valueBase
	SourceName        string
	OriginalArrayType *types.Array
}

