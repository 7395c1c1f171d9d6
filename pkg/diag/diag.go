// Package diag implements the translation core's error taxonomy:
// SemanticError, TypeError and InternalError, each carrying the
// offending source line, plus a List that accumulates diagnostics the
// way a parser accumulates parse errors before reporting them
// together.
package diag

import "fmt"

// SemanticError reports an undefined/duplicate name, break/continue
// outside a loop, arity mismatch, non-constant dimension or initializer,
// or a missing required array dimension.
type SemanticError struct {
	Line    int
	Message string
}

func (e *SemanticError) Error() string {
	return fmt.Sprintf("Line %d: %s", e.Line, e.Message)
}

// NewSemanticError constructs a SemanticError.
func NewSemanticError(line int, format string, args ...any) *SemanticError {
	return &SemanticError{Line: line, Message: fmt.Sprintf(format, args...)}
}

// TypeError reports an operand type unacceptable for an operator, such as
// comparing a pointer with a relational operator.
type TypeError struct {
	Line    int
	Message string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("Line %d: %s", e.Line, e.Message)
}

// NewTypeError constructs a TypeError.
func NewTypeError(line int, format string, args ...any) *TypeError {
	return &TypeError{Line: line, Message: fmt.Sprintf(format, args...)}
}

// InternalError reports an invariant violation: a missing opcode handler,
// a label referenced but never appended, or an operand Value not owned by
// the enclosing Module or Function. Internal errors are programmer bugs
// in this core, not user-facing MiniC mistakes.
type InternalError struct {
	Message string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error: %s", e.Message)
}

// NewInternalError constructs an InternalError.
func NewInternalError(format string, args ...any) *InternalError {
	return &InternalError{Message: fmt.Sprintf(format, args...)}
}

// Strict controls whether Assert panics (debug builds) or merely
// returns its error (release builds).
var Strict = true

// Assert panics with an InternalError if cond is false and Strict is set;
// otherwise it returns the error for the caller to propagate.
func Assert(cond bool, format string, args ...any) error {
	if cond {
		return nil
	}
	err := NewInternalError(format, args...)
	if Strict {
		panic(err)
	}
	return err
}

// List accumulates diagnostics produced while translating or selecting a
// Module, mirroring a parser's error-list-then-report pattern.
type List struct {
	errs []error
}

// Add appends a diagnostic. A nil error is ignored.
func (l *List) Add(err error) {
	if err != nil {
		l.errs = append(l.errs, err)
	}
}

// Empty reports whether no diagnostics were recorded.
func (l *List) Empty() bool { return len(l.errs) == 0 }

// Errors returns the recorded diagnostics in emission order.
func (l *List) Errors() []error { return l.errs }

// Error implements the error interface, joining all recorded diagnostics.
func (l *List) Error() string {
	if len(l.errs) == 0 {
		return ""
	}
	s := ""
	for i, e := range l.errs {
		if i > 0 {
			s += "\n"
		}
		s += e.Error()
	}
	return s
}
