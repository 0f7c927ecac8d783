package cpu

import (
	"fmt"
)

// Mode is a parameter addressing mode.
type Mode int

//go:generate go tool stringer -linecomment -type=Mode
const (
	MODE_POSITION  = Mode(0) // position
	MODE_IMMEDIATE = Mode(1) // immediate
)

// Param is a decoded instruction parameter.
// In MODE_POSITION, Value is a memory address; in MODE_IMMEDIATE it is
// the literal operand.
type Param struct {
	Mode  Mode
	Value int32
}

// Position creates a memory address parameter.
func Position(address int32) Param {
	return Param{Mode: MODE_POSITION, Value: address}
}

// Immediate creates a literal parameter.
func Immediate(value int32) Param {
	return Param{Mode: MODE_IMMEDIATE, Value: value}
}

// Resolve classifies the nth (zero-based) parameter of an instruction.
// modes holds the digits above the two-digit opcode, least significant
// digit first. A zero digit selects MODE_POSITION, anything else
// MODE_IMMEDIATE. Position parameters must be non-negative.
func Resolve(nth int, modes int32, raw int32) (param Param, err error) {
	digit := modes
	for range nth {
		digit /= 10
	}
	digit %= 10

	if digit != 0 {
		param = Immediate(raw)
		return
	}

	if raw < 0 {
		err = ErrAddressing
		return
	}

	param = Position(raw)
	return
}

// String returns the listing form; addresses are bracketed.
func (param Param) String() string {
	if param.Mode == MODE_POSITION {
		return fmt.Sprintf("[%d]", param.Value)
	}
	return fmt.Sprintf("%d", param.Value)
}
