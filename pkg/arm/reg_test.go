package arm

import (
	"fmt"
	"testing"
)

func TestRegStringSpecialNames(t *testing.T) {
	cases := map[Reg]string{
		SP:  "sp",
		LR:  "lr",
		PC:  "pc",
		R11: "fp",
		R12: "ip",
	}
	for r, want := range cases {
		if got := r.String(); got != want {
			t.Errorf("%v.String() = %q, want %q", r, got, want)
		}
	}
}

func TestRegStringGeneralPurpose(t *testing.T) {
	for i, r := range []Reg{R0, R1, R2, R3, R4, R5, R6, R7, R8, R9, R10} {
		want := fmt.Sprintf("r%d", i)
		if got := r.String(); got != want {
			t.Errorf("R%d.String() = %q, want %q", i, got, want)
		}
	}
}

func TestArgRegsOrder(t *testing.T) {
	want := [4]Reg{R0, R1, R2, R3}
	if ArgRegs != want {
		t.Errorf("ArgRegs = %v, want %v", ArgRegs, want)
	}
}

func TestScratchIsNotAnArgReg(t *testing.T) {
	for _, r := range ArgRegs {
		if r == Scratch {
			t.Error("Scratch must not overlap the argument-passing registers")
		}
	}
}
