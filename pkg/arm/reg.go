// Package arm implements the ARM32 instruction selector and printer: a
// linear scan over each IR function's Move/arithmetic/Cmp/Branch/Call
// instructions that spills every named value to its own stack slot and
// threads operands through a small pool of scratch registers, in one
// pass from IR straight to assembly text, targeting ARM32's
// r0-r12/sp/lr register file under AAPCS32.
package arm

import "fmt"

// Reg names one of ARM32's 13 general-purpose registers plus sp, lr, pc.
type Reg int

const (
	R0 Reg = iota
	R1
	R2
	R3
	R4
	R5
	R6
	R7
	R8
	R9
	R10
	R11 // FP
	R12 // IP, reserved as the selector's scratch register
	SP
	LR
	PC
)

func (r Reg) String() string {
	switch r {
	case SP:
		return "sp"
	case LR:
		return "lr"
	case PC:
		return "pc"
	case R11:
		return "fp"
	case R12:
		return "ip"
	default:
		return fmt.Sprintf("r%d", int(r))
	}
}

// FP is the frame pointer, R11 in the AAPCS32 convention.
const FP = R11

// Scratch is the reserved scratch register the selector uses to shuttle
// operands between the stack and computation; it is never allocated to
// a named IR value.
const Scratch = R12

// ArgRegs are the first four integer argument/result registers per the
// ARM32 AAPCS calling convention.
var ArgRegs = [4]Reg{R0, R1, R2, R3}

// WordSize is the size in bytes of an ARM32 machine word.
const WordSize = 4
