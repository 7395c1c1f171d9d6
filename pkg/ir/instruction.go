package ir

import "github.com/minicc-lang/minicc/pkg/types"

// Instruction is the interface for every IR opcode. Every Instruction
// is also a Value: an instruction that produces a result is itself the
// operand later instructions reference. Opcodes with no result simply
// carry types.Void{} and an empty name that RenameAll never assigns.
type Instruction interface {
	Value
	Opcode() string
}

// Label is implemented by the two instruction kinds that can be a jump
// target: LabelInstruction (an ordinary or fixed-name label) and Exit
// (the function's implicit exit point, itself a valid goto target for
// lowered `return` statements).
type Label interface {
	Instruction
	isLabel()
}

// Entry is always the first instruction in a function's code. It
// carries no data; it exists purely to mark the function's entry point
// in the linear instruction stream.
type Entry struct {
	valueBase
}

func (e *Entry) Opcode() string { return "entry" }

// LabelInstruction marks a position in the instruction stream that a
// Goto or Branch can target. FixedName is non-empty only for the
// function's exit label ("exit"), which prints literally
// instead of through the ".LN" counter. idx is assigned by RenameAll
// for ordinary labels.
type LabelInstruction struct {
	valueBase
	FixedName string
	idx       int
}

func (l *LabelInstruction) Opcode() string { return "label" }
func (*LabelInstruction) isLabel()         {}

// Exit is always the last instruction in a non-degenerate function's
// code and is itself a valid Goto/Branch target for lowered `return`
// statements, reached only that way. Slot is nil for a void-returning
// function.
type Exit struct {
	valueBase
	Slot Value
}

func (e *Exit) Opcode() string { return "exit" }
func (*Exit) isLabel()         {}

// Goto is an unconditional jump.
type Goto struct {
	valueBase
	Target Label
}

func (g *Goto) Opcode() string { return "goto" }

// Branch is a conditional jump on a previously computed Int1 condition.
type Branch struct {
	valueBase
	Cond  Value
	True  Label
	False Label
}

func (b *Branch) Opcode() string { return "bc" }

// arithBinary is the common shape of Add/Sub/Mul/Div/Mod: two Int32
// operands producing an Int32 result, evaluated left before right.
type arithBinary struct {
	valueBase
	L, R Value
}

// Add is integer addition.
type Add struct{ arithBinary }

// Sub is integer subtraction.
type Sub struct{ arithBinary }

// Mul is integer multiplication.
type Mul struct{ arithBinary }

// Div is signed integer division.
type Div struct{ arithBinary }

// Mod is signed integer remainder, expanded by the selector via sdiv
// followed by mls (multiply-subtract) since ARM32 has no remainder
// instruction.
type Mod struct{ arithBinary }

func (*Add) Opcode() string { return "add" }
func (*Sub) Opcode() string { return "sub" }
func (*Mul) Opcode() string { return "mul" }
func (*Div) Opcode() string { return "div" }
func (*Mod) Opcode() string { return "mod" }

// CmpOp names one of the six signed comparison operators an IR Cmp
// instruction can carry.
type CmpOp int

const (
	CmpEQ CmpOp = iota
	CmpNE
	CmpLT
	CmpLE
	CmpGT
	CmpGE
)

func (op CmpOp) String() string {
	return [...]string{"eq", "ne", "lt", "le", "gt", "ge"}[op]
}

// Negate returns the logically negated comparison operator. A
// LogicalNot condition can be lowered either by swapping a Branch's
// true/false labels or, equivalently at the leaf, by negating the
// comparison; this core swaps labels, and keeps Negate available for
// the selector's own condition-code handling.
func (op CmpOp) Negate() CmpOp {
	return [...]CmpOp{CmpNE, CmpEQ, CmpGE, CmpGT, CmpLE, CmpLT}[op]
}

// Cmp computes a signed integer comparison, producing an Int1 result.
type Cmp struct {
	valueBase
	Op   CmpOp
	L, R Value
}

func (*Cmp) Opcode() string { return "cmp" }

// Move implements scalar copy, store-through-pointer and
// load-through-pointer, disambiguated by Dst/Src's pointer-ness. It
// never introduces a new named Value: Dst already exists (a
// LocalVariable, MemVariable or GlobalVariable).
type Move struct {
	valueBase
	Dst, Src Value
}

func (*Move) Opcode() string { return "move" }

// Kind classifies a Move for the printer and the selector.
type MoveKind int

const (
	MoveScalar MoveKind = iota
	MoveStore           // *Dst = Src
	MoveLoad            // Dst = *Src
)

// Kind reports which of the three Move forms this instruction is.
func (m *Move) Kind() MoveKind {
	_, dstPtr := m.Dst.Type().(types.Pointer)
	_, srcPtr := m.Src.Type().(types.Pointer)
	switch {
	case dstPtr && !srcPtr:
		return MoveStore
	case srcPtr && !dstPtr:
		return MoveLoad
	default:
		return MoveScalar
	}
}

// Call invokes Callee with Args, evaluated left to right. It produces a
// result iff Callee's return type is not Void.
type Call struct {
	valueBase
	Callee *Function
	Args   []Value
}

func (*Call) Opcode() string { return "call" }

// HasResult reports whether this call's return value is used, i.e.
// whether the callee is non-void.
func (c *Call) HasResult() bool {
	_, isVoid := c.Callee.Sig.Return.(types.Void)
	return !isVoid
}
