package arm

import (
	"strings"
	"testing"
)

func TestPrintProgramGlobalsAndText(t *testing.T) {
	init := int32(3)
	prog := &Program{
		Globals: []GlobVar{
			{Name: "g", Init: &init},
			{Name: "arr", Size: 16},
		},
		Functions: []*Function{
			{Name: "f", Code: []Instruction{
				PUSH{Regs: []Reg{FP, LR}},
				MOV{Rd: FP, Rm: SP},
				BX{Rn: LR},
			}},
		},
	}

	var buf strings.Builder
	NewPrinter(&buf).PrintProgram(prog)
	out := buf.String()

	for _, want := range []string{
		"\t.data\n",
		"g:\n",
		"\t.word\t3\n",
		"arr:\n",
		"\t.space\t16\n",
		"\t.text\n",
		"f:\n",
		"\tpush\t{fp, lr}\n",
		"\tbx\tlr\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("printed program missing %q, got:\n%s", want, out)
		}
	}
}

func TestPrintProgramOmitsDataSectionWhenNoGlobals(t *testing.T) {
	prog := &Program{Functions: []*Function{{Name: "f"}}}
	var buf strings.Builder
	NewPrinter(&buf).PrintProgram(prog)
	if strings.Contains(buf.String(), ".data") {
		t.Error("a program with no globals should not emit a .data section")
	}
}

func TestPrintInstructionAddressingForms(t *testing.T) {
	cases := []struct {
		inst Instruction
		want string
	}{
		{ADD{Rd: R0, Rn: R1, Rm: R2}, "\tadd\tr0, r1, r2\n"},
		{ADDi{Rd: R0, Rn: FP, Imm: -8}, "\tadd\tr0, fp, #-8\n"},
		{LDR{Rt: R0, Rn: FP, Ofs: 0}, "\tldr\tr0, [fp]\n"},
		{LDR{Rt: R0, Rn: FP, Ofs: -4}, "\tldr\tr0, [fp, #-4]\n"},
		{LDRLabel{Rt: R0, Target: Label("g")}, "\tldr\tr0, =g\n"},
		{Bcond{Cond: CondLT, Target: Label(".L1")}, "\tblt\t.L1\n"},
		{MOVcond{Cond: CondEQ, Rd: R0, Imm: 1}, "\tmoveq\tr0, #1\n"},
	}
	for _, c := range cases {
		var buf strings.Builder
		NewPrinter(&buf).printInstruction(c.inst)
		if buf.String() != c.want {
			t.Errorf("printInstruction(%#v) = %q, want %q", c.inst, buf.String(), c.want)
		}
	}
}
