package ir

import (
	"fmt"

	"github.com/minicc-lang/minicc/pkg/types"
)

// ParamSpec describes one formal parameter when defining a function:
// its storage type (already decayed to Pointer for an array parameter),
// its source name, and - for a decayed array parameter only - the
// original, pre-decay Array type.
type ParamSpec struct {
	Type              types.Type
	Name              string
	OriginalArrayType *types.Array
}

// Module is the process-wide container of a single compilation run: its
// functions, its global variables, the interned integer constants, and
// the scope stack the translator uses to resolve names. A Module is
// built by exactly one translator on one goroutine; nothing here is
// safe for concurrent use.
type Module struct {
	functions     map[string]*Function
	functionOrder []string

	globals      []*GlobalVariable
	globalsByName map[string]*GlobalVariable

	consts map[int32]*ConstInt

	// scopes[0] is the global scope, populated by NewGlobal and never
	// popped. Entering a function pushes scope 1; entering a block pushes
	// scope n+1; leaving pops the innermost scope.
	scopes []map[string]Value

	current *Function
}

// NewModule creates an empty Module with its global scope initialized.
func NewModule() *Module {
	return &Module{
		functions:     make(map[string]*Function),
		globalsByName: make(map[string]*GlobalVariable),
		consts:        make(map[int32]*ConstInt),
		scopes:        []map[string]Value{make(map[string]Value)},
	}
}

// InternConstInt returns the canonical ConstInt Value for v, creating it
// on first use.
func (m *Module) InternConstInt(v int32) *ConstInt {
	if c, ok := m.consts[v]; ok {
		return c
	}
	c := &ConstInt{valueBase: valueBase{typ: types.Int32{}}, V: v}
	m.consts[v] = c
	return c
}

// ErrAlreadyDefined is returned by DefineFunction when name already names
// a function in this Module.
type ErrAlreadyDefined struct{ Name string }

func (e *ErrAlreadyDefined) Error() string {
	return fmt.Sprintf("function %q already defined", e.Name)
}

// DefineFunction defines a new function with the given signature, or
// returns ErrAlreadyDefined if name is already taken. The returned
// Function has its formal parameters already materialized in source
// order, already decayed per ParamSpec, but has not yet had its
// entry/scope/body set up - the caller in pkg/translate drives the
// remaining setup steps.
func (m *Module) DefineFunction(name string, ret types.Type, params []ParamSpec) (*Function, error) {
	if _, exists := m.functions[name]; exists {
		return nil, &ErrAlreadyDefined{Name: name}
	}
	sig := types.Function{Return: ret}
	for _, p := range params {
		sig.Params = append(sig.Params, p.Type)
	}
	fn := newFunction(name, sig)
	for _, p := range params {
		fn.addFormal(p.Type, p.Name, p.OriginalArrayType)
	}
	m.functions[name] = fn
	m.functionOrder = append(m.functionOrder, name)
	return fn, nil
}

// FindFunction looks up a function (user-defined or builtin) by name.
func (m *Module) FindFunction(name string) (*Function, bool) {
	fn, ok := m.functions[name]
	return fn, ok
}

// Functions returns every user-defined and builtin function in
// definition order.
func (m *Module) Functions() []*Function {
	fns := make([]*Function, 0, len(m.functionOrder))
	for _, name := range m.functionOrder {
		fns = append(fns, m.functions[name])
	}
	return fns
}

// builtinSignatures are the six standard I/O primitives every
// translation unit gets for free, without a user definition.
var builtinSignatures = []struct {
	Name string
	Sig  types.Function
}{
	{"getint", types.Function{Return: types.Int32{}}},
	{"putint", types.Function{Return: types.Void{}, Params: []types.Type{types.Int32{}}}},
	{"getch", types.Function{Return: types.Int32{}}},
	{"putch", types.Function{Return: types.Void{}, Params: []types.Type{types.Int32{}}}},
	{"getarray", types.Function{Return: types.Int32{}, Params: []types.Type{types.Pointer{Elem: types.Int32{}}}}},
	{"putarray", types.Function{Return: types.Void{}, Params: []types.Type{types.Int32{}, types.Pointer{Elem: types.Int32{}}}}},
}

// DeclareBuiltins pre-populates the six standard I/O builtins. Call
// once per Module before translation begins.
func (m *Module) DeclareBuiltins() {
	for _, b := range builtinSignatures {
		m.DeclareBuiltin(b.Name, b.Sig)
	}
}

// DeclareBuiltin registers a single externally-linked function
// signature, callable without a user definition. A builtin Function
// has no body: its Code is empty.
func (m *Module) DeclareBuiltin(name string, sig types.Function) {
	if _, exists := m.functions[name]; exists {
		return
	}
	fn := &Function{Name: name, Sig: sig}
	for i, pt := range sig.Params {
		fn.formals = append(fn.formals, &FormalParam{
			valueBase: valueBase{typ: pt},
			SourceName: fmt.Sprintf("arg%d", i),
		})
	}
	m.functions[name] = fn
	m.functionOrder = append(m.functionOrder, name)
}

// NewGlobal defines a new global variable. init is nil for a BSS global;
// non-nil marks it initialized.
func (m *Module) NewGlobal(t types.Type, name string, init *int32) *GlobalVariable {
	g := &GlobalVariable{valueBase: valueBase{typ: t}, GlobalName: name, Init: init}
	m.globals = append(m.globals, g)
	m.globalsByName[name] = g
	m.scopes[0][name] = g
	return g
}

// Globals returns every declared global variable in declaration order.
func (m *Module) Globals() []*GlobalVariable { return m.globals }

// CurrentFunction returns the function currently being translated, or
// nil between functions.
func (m *Module) CurrentFunction() *Function { return m.current }

// SetCurrentFunction sets the function under translation and pushes its
// top-level scope (scope level 1).
func (m *Module) SetCurrentFunction(f *Function) {
	m.current = f
	m.EnterScope()
}

// ClearCurrentFunction pops the function's top-level scope and clears the
// current function, called once its body has been fully translated.
func (m *Module) ClearCurrentFunction() {
	m.LeaveScope()
	m.current = nil
}

// EnterScope pushes a new, empty scope.
func (m *Module) EnterScope() {
	m.scopes = append(m.scopes, make(map[string]Value))
}

// LeaveScope pops the innermost scope, discarding its names (but not the
// Values themselves, which remain owned by the Module/Function).
func (m *Module) LeaveScope() {
	m.scopes = m.scopes[:len(m.scopes)-1]
}

// ScopeLevel returns the current scope depth (0 is global).
func (m *Module) ScopeLevel() int { return len(m.scopes) - 1 }

// FindVar looks up name from the innermost scope outward, so an inner
// declaration shadows an outer one of the same name.
func (m *Module) FindVar(name string) (Value, bool) {
	for i := len(m.scopes) - 1; i >= 0; i-- {
		if v, ok := m.scopes[i][name]; ok {
			return v, true
		}
	}
	return nil, false
}

// ErrRedefinition is returned by DefineVar when name is already declared
// in the current (innermost) scope.
type ErrRedefinition struct{ Name string }

func (e *ErrRedefinition) Error() string {
	return fmt.Sprintf("%q redefined in the same scope", e.Name)
}

// DefineVar declares a new LocalVariable (scalar or array) of type t named name in
// the current scope of the current function, returning ErrRedefinition
// if name is already declared in that same scope.
func (m *Module) DefineVar(t types.Type, name string) (Value, error) {
	top := m.scopes[len(m.scopes)-1]
	if _, exists := top[name]; exists {
		return nil, &ErrRedefinition{Name: name}
	}
	v := m.current.NewLocalVar(t, name, m.ScopeLevel())
	top[name] = v
	return v, nil
}

// DefineArrayVar is DefineVar's array-typed counterpart, used by
// translate for non-parameter array declarations.
func (m *Module) DefineArrayVar(t types.Array, name string) (Value, error) {
	return m.DefineVar(t, name)
}
