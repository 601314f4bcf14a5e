package interp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/rvlearn/token"
)

func TestOpcode_Lookup(t *testing.T) {
	assert := assert.New(t)

	for n := range opcodeCount {
		op := Opcode(n)
		found, ok := LookupOpcode(op.String())
		assert.True(ok, op.String())
		assert.Equal(op, found)
		assert.True(token.IsInstruction(op.String()), op.String())
	}

	for _, name := range []string{"bqe", "ADD", "lb", "sb", ""} {
		_, ok := LookupOpcode(name)
		assert.False(ok, name)
	}
}

func TestOpcode_Format(t *testing.T) {
	assert := assert.New(t)

	table := map[Opcode]Format{
		OP_ADD:  FORMAT_REGISTER,
		OP_SLT:  FORMAT_REGISTER,
		OP_ADDI: FORMAT_IMMEDIATE,
		OP_SLTI: FORMAT_IMMEDIATE,
		OP_BEQ:  FORMAT_BRANCH,
		OP_BLT:  FORMAT_BRANCH,
	}

	for op, format := range table {
		assert.Equal(format, op.Format(), op.String())
	}

	assert.Equal(token.PATTERN_REGISTER, FORMAT_REGISTER.Pattern())
	assert.Equal(token.PATTERN_IMMEDIATE, FORMAT_IMMEDIATE.Pattern())
	assert.Equal(token.PATTERN_BRANCH, FORMAT_BRANCH.Pattern())
}

func TestOpcode_Alu(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		op     Opcode
		a, b   int32
		result int32
	}){
		{OP_ADD, 10, 21, 31},
		{OP_ADDI, 10, -3, 7},
		{OP_ADD, math.MaxInt32, 1, math.MinInt32},
		{OP_SUB, 5, 7, -2},
		{OP_SUB, math.MinInt32, 1, math.MaxInt32},
		{OP_AND, 0b1100, 0b1010, 0b1000},
		{OP_ANDI, 0b1100, 0b1010, 0b1000},
		{OP_OR, 0b1100, 0b1010, 0b1110},
		{OP_ORI, 0b1100, 0b1010, 0b1110},
		{OP_XOR, 0b1100, 0b1010, 0b0110},
		{OP_XORI, 0b1100, 0b1010, 0b0110},
		{OP_SLL, 1, 4, 16},
		{OP_SLLI, 1, 33, 2},
		{OP_SLL, 1, 31, math.MinInt32},
		{OP_SRL, 256, 4, 16},
		{OP_SRLI, -16, 2, -4},
		{OP_SRL, 8, -1, 0},
		{OP_SLT, -1, 0, 1},
		{OP_SLT, 0, 0, 0},
		{OP_SLTI, 3, 2, 0},
		{OP_BEQ, 1, 1, 0},
	}

	for _, entry := range table {
		assert.Equal(entry.result, entry.op.Alu(entry.a, entry.b), "%v %v,%v", entry.op, entry.a, entry.b)
	}
}

func TestOpcode_Taken(t *testing.T) {
	assert := assert.New(t)

	assert.True(OP_BEQ.Taken(3, 3))
	assert.False(OP_BEQ.Taken(3, 4))
	assert.True(OP_BNE.Taken(3, 4))
	assert.False(OP_BNE.Taken(4, 4))
	assert.True(OP_BLT.Taken(-4, 3))
	assert.False(OP_BLT.Taken(3, 3))
	assert.False(OP_ADD.Taken(0, 0))
}

func TestDirective(t *testing.T) {
	assert := assert.New(t)

	dir, ok := LookupDirective("global")
	assert.True(ok)
	assert.Equal(DIRECTIVE_GLOBAL, dir)

	for _, name := range []string{"GLOBAL", "text", "globl", ""} {
		_, ok = LookupDirective(name)
		assert.False(ok, name)
	}
}

func TestPrintMode(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		mode      PrintMode
		registers bool
		memory    bool
	}){
		{PRINT_NONE, false, false},
		{PRINT_REGISTERS, true, false},
		{PRINT_MEMORY, false, true},
		{PRINT_BOTH, true, true},
		{PrintMode(4), false, false},
		{PrintMode(-1), false, false},
	}

	for _, entry := range table {
		assert.Equal(entry.registers, entry.mode.Registers(), entry.mode.String())
		assert.Equal(entry.memory, entry.mode.Memory(), entry.mode.String())
	}

	assert.Equal("both", PRINT_BOTH.String())
}
