package cpu

import (
	"errors"

	"github.com/ezrec/icm/translate"
)

var f = translate.From

var (
	// Processor errors
	ErrBounds     = errors.New(f("address out of bounds"))
	ErrAddressing = errors.New(f("address invalid"))
	ErrArgument   = errors.New(f("destination not in position mode"))
	ErrChannel    = errors.New(f("channel failed"))
	ErrOverflow   = errors.New(f("arithmetic overflow"))

	// Instruction decode errors
	ErrOpcodeUnknown = errors.New(f("opcode unknown"))
)

// ErrOpcode is a word whose low two digits name no opcode.
type ErrOpcode int32

func (eo ErrOpcode) Error() string {
	return f("bad opcode %d in word %d", int32(eo)%100, int32(eo))
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	if err == ErrOpcodeUnknown {
		return true
	}
	_, ok = err.(ErrOpcode)
	return
}

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Ip  int
	Err error
}

func (err *ErrRuntime) Error() string {
	return f("ip %d %v", err.Ip, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
