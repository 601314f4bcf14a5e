package interp

import (
	"github.com/ezrec/rvlearn/token"
)

// Format is the operand shape of an opcode.
type Format int

//go:generate go tool stringer -linecomment -type=Format
const (
	FORMAT_REGISTER  = Format(0) // register
	FORMAT_IMMEDIATE = Format(1) // immediate
	FORMAT_BRANCH    = Format(2) // branch
)

// Pattern returns the operand pattern lines of this format must match.
func (format Format) Pattern() token.Pattern {
	switch format {
	case FORMAT_REGISTER:
		return token.PATTERN_REGISTER
	case FORMAT_IMMEDIATE:
		return token.PATTERN_IMMEDIATE
	default:
		return token.PATTERN_BRANCH
	}
}

// Opcode is an executable instruction.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_ADD  = Opcode(0)  // add
	OP_SUB  = Opcode(1)  // sub
	OP_AND  = Opcode(2)  // and
	OP_OR   = Opcode(3)  // or
	OP_XOR  = Opcode(4)  // xor
	OP_SLL  = Opcode(5)  // sll
	OP_SRL  = Opcode(6)  // srl
	OP_SLT  = Opcode(7)  // slt
	OP_ADDI = Opcode(8)  // addi
	OP_ANDI = Opcode(9)  // andi
	OP_ORI  = Opcode(10) // ori
	OP_XORI = Opcode(11) // xori
	OP_SLLI = Opcode(12) // slli
	OP_SRLI = Opcode(13) // srli
	OP_SLTI = Opcode(14) // slti
	OP_BEQ  = Opcode(15) // beq
	OP_BNE  = Opcode(16) // bne
	OP_BLT  = Opcode(17) // blt
)

const opcodeCount = 18

var opcodeMap map[string]Opcode

func init() {
	opcodeMap = make(map[string]Opcode, opcodeCount)
	for n := range opcodeCount {
		op := Opcode(n)
		opcodeMap[op.String()] = op
	}
}

// LookupOpcode finds the opcode for a lowercased mnemonic.
func LookupOpcode(mnemonic string) (op Opcode, ok bool) {
	op, ok = opcodeMap[mnemonic]
	return
}

// Format returns the operand shape of the opcode.
func (op Opcode) Format() Format {
	switch {
	case op >= OP_BEQ:
		return FORMAT_BRANCH
	case op >= OP_ADDI:
		return FORMAT_IMMEDIATE
	default:
		return FORMAT_REGISTER
	}
}

// Alu computes the result of a register or immediate opcode.
// Shift amounts use the low five bits; right shifts are arithmetic.
func (op Opcode) Alu(a, b int32) (value int32) {
	switch op {
	case OP_ADD, OP_ADDI:
		value = a + b
	case OP_SUB:
		value = a - b
	case OP_AND, OP_ANDI:
		value = a & b
	case OP_OR, OP_ORI:
		value = a | b
	case OP_XOR, OP_XORI:
		value = a ^ b
	case OP_SLL, OP_SLLI:
		value = a << (uint32(b) & 0x1f)
	case OP_SRL, OP_SRLI:
		value = a >> (uint32(b) & 0x1f)
	case OP_SLT, OP_SLTI:
		if a < b {
			value = 1
		}
	}

	return
}

// Taken reports whether a branch opcode's relation holds.
func (op Opcode) Taken(a, b int32) bool {
	switch op {
	case OP_BEQ:
		return a == b
	case OP_BNE:
		return a != b
	case OP_BLT:
		return a < b
	}

	return false
}

// Directive is an assembler directive.
type Directive int

//go:generate go tool stringer -linecomment -type=Directive
const (
	DIRECTIVE_GLOBAL = Directive(0) // global
)

// LookupDirective finds a directive by its case-sensitive name.
func LookupDirective(name string) (directive Directive, ok bool) {
	switch name {
	case DIRECTIVE_GLOBAL.String():
		return DIRECTIVE_GLOBAL, true
	}

	return
}

// PrintMode selects the state snapshot written after every step.
type PrintMode int

//go:generate go tool stringer -linecomment -type=PrintMode
const (
	PRINT_NONE      = PrintMode(0) // none
	PRINT_REGISTERS = PrintMode(1) // registers
	PRINT_MEMORY    = PrintMode(2) // memory
	PRINT_BOTH      = PrintMode(3) // both
)

// Registers reports whether the mode includes the register file.
func (mode PrintMode) Registers() bool {
	return mode == PRINT_REGISTERS || mode == PRINT_BOTH
}

// Memory reports whether the mode includes memory.
func (mode PrintMode) Memory() bool {
	return mode == PRINT_MEMORY || mode == PRINT_BOTH
}
