package token

import (
	"errors"

	"github.com/ezrec/rvlearn/translate"
)

var f = translate.From

var (
	// Error kinds. Every positioned error unwraps to exactly one of these.
	ErrIllegalCharacter       = errors.New(f("illegal character"))
	ErrInvalidRegisterCall    = errors.New(f("invalid register call"))
	ErrSyntax                 = errors.New(f("syntax error"))
	ErrUnexpectedToken        = errors.New(f("unexpected token"))
	ErrUnknownLabel           = errors.New(f("unknown label"))
	ErrUnknownInstruction     = errors.New(f("unknown instruction"))
	ErrUnknownDirective       = errors.New(f("unknown directive"))
	ErrMissingGlobalDirective = errors.New(f("missing global directive"))
	ErrInvalidDirective       = errors.New(f("invalid directive"))
)

// ErrRegisterName is an unresolvable register name.
type ErrRegisterName string

func (err ErrRegisterName) Error() string {
	return f("invalid register call '%v'", string(err))
}

// ErrSource locates an error kind in the program text.
type ErrSource struct {
	Err  error  // Error kind.
	Line int    // Source line.
	Col  int    // Source column, 0 if unknown.
	Msg  string // Detail, may be empty.
}

// Errorf creates a positioned error of the given kind.
func Errorf(kind error, line, col int, format string, args ...any) error {
	return &ErrSource{Err: kind, Line: line, Col: col, Msg: f(format, args...)}
}

func (err *ErrSource) Error() (text string) {
	text = f("%v from line %d", err.Err, err.Line)
	if err.Col != 0 {
		text += f(", col %d", err.Col)
	}
	if len(err.Msg) != 0 {
		text += ": " + err.Msg
	}
	return
}

func (err *ErrSource) Unwrap() error {
	return err.Err
}
