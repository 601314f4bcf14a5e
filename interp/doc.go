// Package interp implements the rvlearn interpreter.
//
// The machine has a 33 slot register file and a zeroed byte memory. Slot 0
// reads as zero and rejects writes. Slot 32 is the program counter, which is
// also an ordinary register: arithmetic on it moves execution, which is how
// relative jumps work without a jump instruction.
//
// A program is a list of lexed lines, and the program counter addresses
// lines. Labels are collected in one pass at construction. Execution then
// fetches, decodes and executes one line per step until the program counter
// leaves the program. Nothing halts a program that loops, so callers
// wanting a bound drive Step themselves.
package interp
