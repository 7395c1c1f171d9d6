// Package trace implements a structured, per-phase tracing facility in
// place of print-based debugging scattered through the source. Rather
// than a bespoke boolean flag gating one bespoke dump function per pass,
// a single Tracer interface lets a caller enable output for whichever
// phases it cares about.
package trace

import (
	"fmt"
	"io"
)

// Phase names a translation-core phase a Tracer can be scoped to.
type Phase string

const (
	PhaseTranslate Phase = "translate"
	PhaseSelect    Phase = "select"
)

// Tracer receives one line per emitted instruction (or other notable
// event) during a phase. The zero value (via NopTracer) discards everything.
type Tracer interface {
	Tracef(phase Phase, format string, args ...any)
}

// NopTracer discards all trace output; it is the default used when a
// caller does not ask for tracing.
type NopTracer struct{}

func (NopTracer) Tracef(Phase, string, ...any) {}

// WriterTracer writes one line per trace event to W, restricted to the
// phases listed in Enabled (nil/empty enables no phase).
type WriterTracer struct {
	W       io.Writer
	Enabled map[Phase]bool
}

// NewWriterTracer creates a WriterTracer enabled for the given phases.
func NewWriterTracer(w io.Writer, phases ...Phase) *WriterTracer {
	enabled := make(map[Phase]bool, len(phases))
	for _, p := range phases {
		enabled[p] = true
	}
	return &WriterTracer{W: w, Enabled: enabled}
}

func (t *WriterTracer) Tracef(phase Phase, format string, args ...any) {
	if t == nil || t.W == nil || !t.Enabled[phase] {
		return
	}
	fmt.Fprintf(t.W, "[%s] %s\n", phase, fmt.Sprintf(format, args...))
}
