// Package translate implements the AST-to-IR translator: scope-aware
// statement and expression translation, inherited-attribute short-circuit
// boolean lowering, array address arithmetic, and function/parameter
// materialization. It walks the surface AST directly into the target IR
// in a single pass, using the classic split between "translate for
// value" and "translate for control" entry points (cond.go and expr.go)
// to keep short-circuit control flow and value production independent.
package translate

import (
	"github.com/minicc-lang/minicc/pkg/diag"
	"github.com/minicc-lang/minicc/pkg/ir"
	"github.com/minicc-lang/minicc/pkg/trace"
	"github.com/minicc-lang/minicc/pkg/types"
)

// Translator holds the state threaded through one compilation run: the
// Module under construction, the diagnostics collected so far, and a side
// channel recording each array-decayed parameter's original dimensions
// against its materialized LocalVariable copy. This explicit side table
// is preferred over AST parent pointers or mutable global state.
type Translator struct {
	Module *ir.Module
	Tracer trace.Tracer
	Diags  diag.List

	arrayOrigins map[*ir.LocalVariable]*types.Array
}

// New creates a Translator over an already-constructed Module (with its
// builtins declared). Pass trace.NopTracer{} for silent operation.
func New(m *ir.Module, tracer trace.Tracer) *Translator {
	if tracer == nil {
		tracer = trace.NopTracer{}
	}
	return &Translator{
		Module:       m,
		Tracer:       tracer,
		arrayOrigins: make(map[*ir.LocalVariable]*types.Array),
	}
}

func (t *Translator) trace(format string, args ...any) {
	t.Tracer.Tracef(trace.PhaseTranslate, format, args...)
}

func (t *Translator) fail(err error) {
	t.Diags.Add(err)
}

// Ok reports whether translation completed with no diagnostics.
func (t *Translator) Ok() bool { return t.Diags.Empty() }
