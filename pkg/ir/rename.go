package ir

import "fmt"

// RenameAll assigns every Value in fn its externally stable IR name from
// one shared index sequence in creation order: a formal, local, mem
// slot, or instruction result gets "%tN" ("%lN" for a local), and an
// ordinary label gets ".LN", all drawing from the same counter rather
// than each kind restarting its own. A label allocated ahead of the
// values that feed it (the usual case for a branch target) still takes
// the next index in that single timeline, not a separate one. Calling
// RenameAll twice on the same function is idempotent and produces
// byte-identical names both times.
func RenameAll(fn *Function) {
	for i, v := range fn.order {
		if l, isLabel := v.(*LabelInstruction); isLabel {
			l.idx = i
			l.setName(fmt.Sprintf(".L%d", l.idx))
			continue
		}
		if _, isLocal := v.(*LocalVariable); isLocal {
			v.setName(fmt.Sprintf("%%l%d", i))
		} else {
			v.setName(fmt.Sprintf("%%t%d", i))
		}
	}
}

// LabelText returns the textual form a Label prints as: its FixedName
// ("exit") if set, or its ".LN" name otherwise.
func LabelText(l Label) string {
	switch v := l.(type) {
	case *LabelInstruction:
		if v.FixedName != "" {
			return v.FixedName
		}
		return v.Name()
	case *Exit:
		return "exit"
	default:
		return l.Name()
	}
}
