package interp

import (
	"strconv"
	"strings"

	"github.com/ezrec/rvlearn/token"
)

// Registers is the register file. Slot token.REGISTER_PC is the program
// counter.
type Registers [token.REGISTER_COUNT]int32

// Read returns the value of a register.
func (regs *Registers) Read(index int) (value int32, err error) {
	if index < 0 || index >= len(regs) {
		err = ErrRegisterBounds(index)
		return
	}

	value = regs[index]
	return
}

// Write sets the value of a register. Register zero is constant.
func (regs *Registers) Write(index int, value int32) (err error) {
	switch {
	case index == token.REGISTER_ZERO:
		err = ErrRegisterConstant
	case index < 0 || index >= len(regs):
		err = ErrRegisterBounds(index)
	default:
		regs[index] = value
	}

	return
}

// String returns the register values as a comma separated list.
func (regs Registers) String() string {
	text := make([]string, len(regs))
	for n, value := range regs {
		text[n] = strconv.FormatInt(int64(value), 10)
	}
	return strings.Join(text, ",")
}

// Memory is the byte addressed data store.
type Memory []uint8

// NewMemory creates a zeroed memory of size bytes.
func NewMemory(size int) Memory {
	return make(Memory, max(size, 0))
}

// String returns the memory contents as a comma separated list.
func (mem Memory) String() string {
	text := make([]string, len(mem))
	for n, value := range mem {
		text[n] = strconv.Itoa(int(value))
	}
	return strings.Join(text, ",")
}
