// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package interp

import (
	"fmt"
	"io"
	"maps"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/ezrec/rvlearn/token"
)

// Options configures an interpreter.
type Options struct {
	EnforceGlobalDirective bool      // Line 1 must be '.global <label>'.
	MemorySize             int       // Memory size in bytes.
	PrintMode              PrintMode // Snapshot written after each step.
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		EnforceGlobalDirective: true,
		MemorySize:             256,
		PrintMode:              PRINT_NONE,
	}
}

// Interpreter executes a lexed program.
type Interpreter struct {
	Verbose bool      // If set, logs every step at debug level.
	Output  io.Writer // Destination of print mode snapshots.

	options  Options
	lines    [][]token.Token
	register Registers
	memory   Memory
	labels   map[string]int
	steps    int
	last     token.Token // First token of the last line executed.
}

// New creates an interpreter for a program and collects its labels.
// The caller's token slices are not modified.
func New(lines [][]token.Token, options Options) (in *Interpreter) {
	in = &Interpreter{
		Output:  os.Stdout,
		options: options,
		lines:   make([][]token.Token, len(lines)),
		memory:  NewMemory(options.MemorySize),
		labels:  make(map[string]int),
	}

	for n, line := range lines {
		in.lines[n] = collapseTabs(line)
	}

	in.collectLabels()

	return
}

// collapseTabs reduces a leading run of tabs to a single tab. A line of
// nothing but tabs becomes empty.
func collapseTabs(line []token.Token) []token.Token {
	n := 0
	for n < len(line) && line[n].Kind == token.TAB {
		n++
	}

	switch {
	case n == 0:
		return line
	case n == len(line):
		return line[n:]
	default:
		return line[n-1:]
	}
}

// body drops the indentation marker from a collapsed line.
func body(line []token.Token) []token.Token {
	if len(line) > 0 && line[0].Kind == token.TAB {
		return line[1:]
	}
	return line
}

func indented(line []token.Token) bool {
	return len(line) > 0 && line[0].Kind == token.TAB
}

// collectLabels records the line index of every label declaration.
func (in *Interpreter) collectLabels() {
	for n, line := range in.lines {
		line = body(line)
		if len(line) > 0 && line[0].Kind == token.LABEL {
			in.labels[line[0].Literal] = n
		}
	}
}

// Pc returns the program counter.
func (in *Interpreter) Pc() int {
	return int(in.register[token.REGISTER_PC])
}

// Done reports whether the program counter has left the program.
func (in *Interpreter) Done() bool {
	return in.Pc() >= len(in.lines)
}

// Steps returns the number of steps executed.
func (in *Interpreter) Steps() int {
	return in.steps
}

// Registers returns a copy of the register file.
func (in *Interpreter) Registers() Registers {
	return in.register
}

// Register returns the value of one register.
func (in *Interpreter) Register(index int) (value int32, err error) {
	return in.register.Read(index)
}

// Memory returns a copy of memory.
func (in *Interpreter) Memory() Memory {
	return append(Memory(nil), in.memory...)
}

// Labels returns a copy of the label table.
func (in *Interpreter) Labels() map[string]int {
	return maps.Clone(in.labels)
}

// Run steps until the program counter leaves the program or an error occurs.
// A program that loops forever never returns.
func (in *Interpreter) Run() (err error) {
	for done := in.Done(); !done; {
		done, err = in.Step()
		if err != nil {
			return
		}
	}

	return
}

// Step executes one line. done is set once the program counter is past
// the last line.
func (in *Interpreter) Step() (done bool, err error) {
	pc := in.Pc()
	if pc >= len(in.lines) {
		done = true
		return
	}
	if pc < 0 {
		err = in.last.Errorf(token.ErrInvalidRegisterCall, "program counter %v is outside of the program", pc)
		return
	}

	line := body(in.lines[pc])
	if len(line) == 0 {
		err = in.last.Errorf(token.ErrUnexpectedToken, "program line %v is empty", pc)
		return
	}

	if in.Verbose {
		log.Debugf("%d: %v", pc, line)
	}

	first := line[0]
	in.last = first

	if pc == 0 && in.options.EnforceGlobalDirective {
		if first.Kind != token.DIRECTIVE || first.Literal != DIRECTIVE_GLOBAL.String() {
			err = first.Errorf(token.ErrMissingGlobalDirective,
				"expected '.global [label name]' at the top of the file, but found '%v' instead",
				strings.ToLower(first.Kind.String()))
			return
		}
		err = in.directive(line)
		if err != nil {
			return
		}
		in.advance()
	} else {
		switch first.Kind {
		case token.NOP:
			in.advance()
		case token.LABEL:
			// Straight-line fallthrough skips the label's indented body.
			in.advance()
			for !in.Done() && indented(in.lines[in.Pc()]) {
				in.advance()
			}
		case token.INSTRUCTION:
			err = in.instruction(line)
			if err != nil {
				return
			}
			in.advance()
		case token.DIRECTIVE:
			err = in.directive(line)
			if err != nil {
				return
			}
			in.advance()
		default:
			err = first.Errorf(token.ErrUnexpectedToken, "unexpected token '%v'", first.Kind)
			return
		}
	}

	in.steps++
	err = in.snapshot()
	if err != nil {
		return
	}

	done = in.Done()
	return
}

// advance moves the program counter to the next line.
func (in *Interpreter) advance() {
	in.register[token.REGISTER_PC]++
}

// snapshot writes the state selected by the print mode.
func (in *Interpreter) snapshot() (err error) {
	mode := in.options.PrintMode
	if in.Output == nil || !(mode.Registers() || mode.Memory()) {
		return
	}

	text := "\n"
	if mode.Registers() {
		text += fmt.Sprintf("%v: %v\n", f("registers"), in.register.String())
	}
	if mode.Memory() {
		text += fmt.Sprintf("%v: %v\n", f("memory"), in.memory.String())
	}

	_, err = io.WriteString(in.Output, text)
	return
}

// instruction decodes and executes an instruction line.
func (in *Interpreter) instruction(line []token.Token) (err error) {
	ins := line[0]

	op, ok := LookupOpcode(ins.Literal)
	if !ok {
		err = ins.Errorf(token.ErrUnknownInstruction, "unknown instruction '%v'", ins.Literal)
		return
	}

	format := op.Format()
	err = Verify(line, format.Pattern())
	if err != nil {
		return
	}

	switch format {
	case FORMAT_REGISTER:
		var a, b int32
		if a, err = in.read(line[3]); err != nil {
			return
		}
		if b, err = in.read(line[5]); err != nil {
			return
		}
		err = in.write(line[1], op.Alu(a, b))
	case FORMAT_IMMEDIATE:
		var a, imm int32
		if a, err = in.read(line[3]); err != nil {
			return
		}
		if imm, err = immediate(line[5]); err != nil {
			return
		}
		err = in.write(line[1], op.Alu(a, imm))
	case FORMAT_BRANCH:
		var a, b int32
		if a, err = in.read(line[1]); err != nil {
			return
		}
		if b, err = in.read(line[3]); err != nil {
			return
		}
		if op.Taken(a, b) {
			err = in.branch(line[5])
		}
	}

	return
}

// branch moves the program counter to a taken branch's target. Offsets
// are in bytes of four per line, added on top of the normal advance.
// Labels land on the label line, so execution resumes just after it.
func (in *Interpreter) branch(target token.Token) (err error) {
	if target.Kind == token.IMMEDIATE {
		var offset int32
		offset, err = immediate(target)
		if err != nil {
			return
		}
		in.register[token.REGISTER_PC] += offset / 4
		return
	}

	return in.jump(target)
}

// jump sets the program counter to a label's line.
func (in *Interpreter) jump(label token.Token) (err error) {
	ln, ok := in.labels[label.Literal]
	if !ok {
		err = label.Errorf(token.ErrUnknownLabel, "unknown label '%v'", label.Literal)
		return
	}

	in.register[token.REGISTER_PC] = int32(ln)
	return
}

// directive processes a directive line.
func (in *Interpreter) directive(line []token.Token) (err error) {
	dir := line[0]

	directive, ok := LookupDirective(dir.Literal)
	if !ok {
		err = dir.Errorf(token.ErrUnknownDirective, "unknown directive '%v'", dir.Literal)
		return
	}

	switch directive {
	case DIRECTIVE_GLOBAL:
		if dir.Line != 1 {
			err = dir.Errorf(token.ErrInvalidDirective,
				"directive '%v' can only be used at the top of the file", dir.Literal)
			return
		}
		err = Verify(line, token.PATTERN_DIRECTIVE_LABEL)
		if err != nil {
			return
		}
		err = in.jump(line[1])
	}

	return
}

// read returns the register named by a REGCALL token.
func (in *Interpreter) read(reg token.Token) (value int32, err error) {
	index, err := strconv.Atoi(reg.Literal)
	if err != nil {
		err = reg.Errorf(token.ErrInvalidRegisterCall, "invalid register call '%v'", reg.Literal)
		return
	}

	value, err = in.register.Read(index)
	if err != nil {
		err = reg.Errorf(token.ErrInvalidRegisterCall, "%v", err)
	}
	return
}

// write sets the register named by a REGCALL token.
func (in *Interpreter) write(reg token.Token, value int32) (err error) {
	index, err := strconv.Atoi(reg.Literal)
	if err != nil {
		err = reg.Errorf(token.ErrInvalidRegisterCall, "invalid register call '%v'", reg.Literal)
		return
	}

	err = in.register.Write(index, value)
	if err != nil {
		err = reg.Errorf(token.ErrInvalidRegisterCall, "%v", err)
	}
	return
}

// immediate decodes an IMMEDIATE token.
func immediate(imm token.Token) (value int32, err error) {
	v64, err := strconv.ParseInt(imm.Literal, 10, 32)
	if err != nil {
		err = imm.Errorf(token.ErrSyntax, "immediate '%v' is out of range", imm.Literal)
		return
	}

	value = int32(v64)
	return
}
