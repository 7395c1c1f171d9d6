package arm

import (
	"fmt"
	"io"
)

// Printer outputs ARM32 assembly in GNU as syntax.
type Printer struct {
	w io.Writer
}

func NewPrinter(w io.Writer) *Printer { return &Printer{w: w} }

// PrintProgram outputs an entire assembled translation unit.
func (p *Printer) PrintProgram(prog *Program) {
	if len(prog.Globals) > 0 {
		fmt.Fprintf(p.w, "\t.data\n")
		for _, g := range prog.Globals {
			p.printGlobal(g)
		}
		fmt.Fprintf(p.w, "\n")
	}
	fmt.Fprintf(p.w, "\t.text\n")
	for _, f := range prog.Functions {
		p.printFunction(f)
	}
}

func (p *Printer) printGlobal(g GlobVar) {
	fmt.Fprintf(p.w, "\t.global\t%s\n", g.Name)
	fmt.Fprintf(p.w, "\t.align\t2\n")
	fmt.Fprintf(p.w, "%s:\n", g.Name)
	if g.Init != nil {
		fmt.Fprintf(p.w, "\t.word\t%d\n", *g.Init)
	} else {
		fmt.Fprintf(p.w, "\t.space\t%d\n", g.Size)
	}
}

func (p *Printer) printFunction(f *Function) {
	fmt.Fprintf(p.w, "\t.align\t2\n")
	fmt.Fprintf(p.w, "\t.global\t%s\n", f.Name)
	fmt.Fprintf(p.w, "\t.type\t%s, %%function\n", f.Name)
	fmt.Fprintf(p.w, "%s:\n", f.Name)
	for _, inst := range f.Code {
		p.printInstruction(inst)
	}
	fmt.Fprintf(p.w, "\t.size\t%s, .-%s\n\n", f.Name, f.Name)
}

func regList(regs []Reg) string {
	s := "{"
	for i, r := range regs {
		if i > 0 {
			s += ", "
		}
		s += r.String()
	}
	return s + "}"
}

func (p *Printer) printInstruction(inst Instruction) {
	switch i := inst.(type) {
	case LabelDef:
		fmt.Fprintf(p.w, "%s:\n", i.Name)
	case ADD:
		fmt.Fprintf(p.w, "\tadd\t%s, %s, %s\n", i.Rd, i.Rn, i.Rm)
	case ADDi:
		fmt.Fprintf(p.w, "\tadd\t%s, %s, #%d\n", i.Rd, i.Rn, i.Imm)
	case SUB:
		fmt.Fprintf(p.w, "\tsub\t%s, %s, %s\n", i.Rd, i.Rn, i.Rm)
	case SUBi:
		fmt.Fprintf(p.w, "\tsub\t%s, %s, #%d\n", i.Rd, i.Rn, i.Imm)
	case MUL:
		fmt.Fprintf(p.w, "\tmul\t%s, %s, %s\n", i.Rd, i.Rn, i.Rm)
	case SDIV:
		fmt.Fprintf(p.w, "\tsdiv\t%s, %s, %s\n", i.Rd, i.Rn, i.Rm)
	case MLS:
		fmt.Fprintf(p.w, "\tmls\t%s, %s, %s, %s\n", i.Rd, i.Rn, i.Rm, i.Ra)
	case MOV:
		fmt.Fprintf(p.w, "\tmov\t%s, %s\n", i.Rd, i.Rm)
	case MOVi:
		fmt.Fprintf(p.w, "\tmov\t%s, #%d\n", i.Rd, i.Imm)
	case MOVW:
		fmt.Fprintf(p.w, "\tmovw\t%s, #%d\n", i.Rd, i.Imm)
	case MOVT:
		fmt.Fprintf(p.w, "\tmovt\t%s, #%d\n", i.Rd, i.Imm)
	case LDR:
		if i.Ofs == 0 {
			fmt.Fprintf(p.w, "\tldr\t%s, [%s]\n", i.Rt, i.Rn)
		} else {
			fmt.Fprintf(p.w, "\tldr\t%s, [%s, #%d]\n", i.Rt, i.Rn, i.Ofs)
		}
	case LDRLabel:
		fmt.Fprintf(p.w, "\tldr\t%s, =%s\n", i.Rt, i.Target)
	case STR:
		if i.Ofs == 0 {
			fmt.Fprintf(p.w, "\tstr\t%s, [%s]\n", i.Rt, i.Rn)
		} else {
			fmt.Fprintf(p.w, "\tstr\t%s, [%s, #%d]\n", i.Rt, i.Rn, i.Ofs)
		}
	case PUSH:
		fmt.Fprintf(p.w, "\tpush\t%s\n", regList(i.Regs))
	case POP:
		fmt.Fprintf(p.w, "\tpop\t%s\n", regList(i.Regs))
	case B:
		fmt.Fprintf(p.w, "\tb\t%s\n", i.Target)
	case BL:
		fmt.Fprintf(p.w, "\tbl\t%s\n", i.Target)
	case BX:
		fmt.Fprintf(p.w, "\tbx\t%s\n", i.Rn)
	case CMP:
		fmt.Fprintf(p.w, "\tcmp\t%s, %s\n", i.Rn, i.Rm)
	case Bcond:
		fmt.Fprintf(p.w, "\tb%s\t%s\n", i.Cond, i.Target)
	case MOVcond:
		fmt.Fprintf(p.w, "\tmov%s\t%s, #%d\n", i.Cond, i.Rd, i.Imm)
	default:
		fmt.Fprintf(p.w, "\t// unknown instruction: %T\n", inst)
	}
}
