package interp

import (
	"errors"

	"github.com/ezrec/rvlearn/translate"
)

var f = translate.From

var (
	ErrRegisterConstant = errors.New(f("register 0 is an unchangeable constant"))
)

// ErrRegisterBounds is an access outside of the register file.
type ErrRegisterBounds int

func (err ErrRegisterBounds) Error() string {
	return f("register %v is outside of register bounds", int(err))
}
