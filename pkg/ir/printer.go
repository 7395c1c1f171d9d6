package ir

import (
	"fmt"
	"io"

	"github.com/minicc-lang/minicc/pkg/types"
)

// Printer renders a Module in a stable, LLVM-flavored textual IR form:
// one line per global, then one `define`/`declare` block per function
// with its locals and instructions. The output exists for inspection
// and golden-file tests, not for round-tripping back into a Module.
type Printer struct {
	w io.Writer
}

// NewPrinter creates a Printer writing to w.
func NewPrinter(w io.Writer) *Printer { return &Printer{w: w} }

// PrintModule prints every global then every function, functions in
// definition order and RenameAll'd beforehand by the caller.
func (p *Printer) PrintModule(m *Module) {
	for _, g := range m.Globals() {
		p.printGlobal(g)
	}
	for _, fn := range m.Functions() {
		if len(fn.Code()) == 0 {
			continue // builtin: declared, never defined
		}
		p.PrintFunction(fn)
	}
}

func (p *Printer) printGlobal(g *GlobalVariable) {
	base, dims := baseAndDims(g.typ)
	fmt.Fprintf(p.w, "declare %s @%s", base, g.GlobalName)
	for _, d := range dims {
		fmt.Fprintf(p.w, "[%d]", d)
	}
	if g.Init != nil {
		fmt.Fprintf(p.w, " = %d", *g.Init)
	}
	fmt.Fprintln(p.w)
}

// baseAndDims splits an Array type into its element-type text and
// dimension vector, or returns t's own text with no dims for a scalar.
func baseAndDims(t types.Type) (string, []int) {
	if a, ok := t.(types.Array); ok {
		return a.Elem.String(), a.Dims
	}
	return t.String(), nil
}

// PrintFunction prints one function definition.
func (p *Printer) PrintFunction(fn *Function) {
	fmt.Fprintf(p.w, "define %s @%s(", fn.Sig.Return, fn.Name)
	for i, param := range fn.formals {
		if i > 0 {
			fmt.Fprint(p.w, ", ")
		}
		if param.OriginalArrayType != nil {
			fmt.Fprintf(p.w, "%s %s", param.OriginalArrayType.Elem, param.Name())
			for _, d := range param.OriginalArrayType.Dims {
				fmt.Fprintf(p.w, "[%d]", d)
			}
		} else {
			fmt.Fprintf(p.w, "%s %s", param.Type(), param.Name())
		}
	}
	fmt.Fprintln(p.w, ") {")

	for _, l := range fn.locals {
		fmt.Fprintf(p.w, "  declare %s %s ; variable: %s\n", l.Type(), l.Name(), l.SourceName)
	}

	for _, inst := range fn.code {
		p.printInstruction(inst)
	}
	fmt.Fprintln(p.w, "}")
}

func (p *Printer) operand(v Value) string {
	switch t := v.(type) {
	case *ConstInt:
		return fmt.Sprintf("%d", t.V)
	case *GlobalVariable:
		return "@" + t.GlobalName
	default:
		return v.Name()
	}
}

func (p *Printer) printInstruction(inst Instruction) {
	switch i := inst.(type) {
	case *Entry:
		fmt.Fprintln(p.w, "entry:")
	case *LabelInstruction:
		fmt.Fprintf(p.w, "%s:\n", LabelText(i))
	case *Exit:
		// The exit label printed just above already marks this program
		// point; the Exit instruction itself carries no further text.
	case *Goto:
		fmt.Fprintf(p.w, "  br label %s\n", LabelText(i.Target))
	case *Branch:
		fmt.Fprintf(p.w, "  bc %s, label %s, label %s\n", p.operand(i.Cond), LabelText(i.True), LabelText(i.False))
	case *Add:
		fmt.Fprintf(p.w, "  %s = add %s,%s\n", i.Name(), p.operand(i.L), p.operand(i.R))
	case *Sub:
		fmt.Fprintf(p.w, "  %s = sub %s,%s\n", i.Name(), p.operand(i.L), p.operand(i.R))
	case *Mul:
		fmt.Fprintf(p.w, "  %s = mul %s,%s\n", i.Name(), p.operand(i.L), p.operand(i.R))
	case *Div:
		fmt.Fprintf(p.w, "  %s = div %s,%s\n", i.Name(), p.operand(i.L), p.operand(i.R))
	case *Mod:
		fmt.Fprintf(p.w, "  %s = mod %s,%s\n", i.Name(), p.operand(i.L), p.operand(i.R))
	case *Cmp:
		fmt.Fprintf(p.w, "  %s = cmp %s %s, %s\n", i.Name(), i.Op, p.operand(i.L), p.operand(i.R))
	case *Move:
		switch i.Kind() {
		case MoveStore:
			fmt.Fprintf(p.w, "  *%s = %s\n", p.operand(i.Dst), p.operand(i.Src))
		case MoveLoad:
			fmt.Fprintf(p.w, "  %s = *%s\n", p.operand(i.Dst), p.operand(i.Src))
		default:
			fmt.Fprintf(p.w, "  %s = %s\n", p.operand(i.Dst), p.operand(i.Src))
		}
	case *Call:
		args := make([]string, len(i.Args))
		for j, a := range i.Args {
			args[j] = fmt.Sprintf("%s %s", a.Type(), p.operand(a))
		}
		argList := ""
		for j, a := range args {
			if j > 0 {
				argList += ", "
			}
			argList += a
		}
		if i.HasResult() {
			fmt.Fprintf(p.w, "  %s = call %s @%s(%s)\n", i.Name(), i.Callee.Sig.Return, i.Callee.Name, argList)
		} else {
			fmt.Fprintf(p.w, "  call void @%s(%s)\n", i.Callee.Name, argList)
		}
	}
}
