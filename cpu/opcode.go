package cpu

import (
	"fmt"
	"strings"
)

// Opcode is the operation selected by the low two digits of a word.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_UNKNOWN    = Opcode(0)  // unknown
	OP_ADD        = Opcode(1)  // add
	OP_MUL        = Opcode(2)  // mul
	OP_STORE      = Opcode(3)  // store
	OP_SHOW       = Opcode(4)  // show
	OP_JUMP_TRUE  = Opcode(5)  // jt
	OP_JUMP_FALSE = Opcode(6)  // jf
	OP_LESS_THAN  = Opcode(7)  // lt
	OP_EQUALS     = Opcode(8)  // eq
	OP_HALT       = Opcode(99) // halt
)

// Opcodes lists the defined operations, in numeric order.
var Opcodes = []Opcode{
	OP_ADD, OP_MUL, OP_STORE, OP_SHOW,
	OP_JUMP_TRUE, OP_JUMP_FALSE, OP_LESS_THAN, OP_EQUALS,
	OP_HALT,
}

// Arity returns the number of parameters that follow the opcode word.
func (op Opcode) Arity() int {
	switch op {
	case OP_ADD, OP_MUL, OP_LESS_THAN, OP_EQUALS:
		return 3
	case OP_JUMP_TRUE, OP_JUMP_FALSE:
		return 2
	case OP_STORE, OP_SHOW:
		return 1
	}
	return 0
}

// Target returns the index of the parameter written by the opcode,
// or -1 if it writes no memory.
func (op Opcode) Target() int {
	switch op {
	case OP_ADD, OP_MUL, OP_LESS_THAN, OP_EQUALS:
		return 2
	case OP_STORE:
		return 0
	}
	return -1
}

// Instruction is a decoded word and its parameters.
type Instruction struct {
	Word   int32
	Opcode Opcode
	Params []Param
}

// Len returns the number of memory words the instruction occupies.
func (in Instruction) Len() int {
	return 1 + len(in.Params)
}

// String returns the assembly listing form of the instruction.
func (in Instruction) String() string {
	if in.Opcode == OP_UNKNOWN {
		return fmt.Sprintf(".word %d", in.Word)
	}

	if len(in.Params) == 0 {
		return in.Opcode.String()
	}

	params := make([]string, len(in.Params))
	for n, param := range in.Params {
		params[n] = param.String()
	}

	return fmt.Sprintf("%v %v", in.Opcode, strings.Join(params, ", "))
}

// Decode decodes the instruction at ip.
// Words with no matching opcode decode as OP_UNKNOWN without parameters.
// Returns ErrBounds if the instruction extends past the end of memory.
func Decode(memory []int32, ip int) (in Instruction, err error) {
	if ip < 0 || ip >= len(memory) {
		err = ErrBounds
		return
	}

	word := memory[ip]
	op := Opcode(word % 100)
	modes := word / 100

	in.Word = word

	switch op {
	case OP_ADD, OP_MUL, OP_STORE, OP_SHOW,
		OP_JUMP_TRUE, OP_JUMP_FALSE, OP_LESS_THAN, OP_EQUALS,
		OP_HALT:
		in.Opcode = op
	default:
		in.Opcode = OP_UNKNOWN
		return
	}

	arity := op.Arity()
	if ip+arity >= len(memory) {
		err = ErrBounds
		return
	}

	if arity > 0 {
		in.Params = make([]Param, arity)
	}

	for n := range arity {
		in.Params[n], err = Resolve(n, modes, memory[ip+1+n])
		if err != nil {
			return
		}
	}

	return
}

// Encode builds the opcode word for op with the given parameter modes.
func Encode(op Opcode, modes ...Mode) (word int32) {
	word = int32(op)
	scale := int32(100)
	for _, mode := range modes {
		word += int32(mode) * scale
		scale *= 10
	}
	return
}
