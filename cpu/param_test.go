package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		nth   int
		modes int32
		raw   int32
		param Param
		err   error
	}){
		{"pos_0", 0, 0, 4, Position(4), nil},
		{"imm_0", 0, 1, 4, Immediate(4), nil},
		{"imm_0_neg", 0, 1, -4, Immediate(-4), nil},
		{"pos_1_of_01", 1, 1, 7, Position(7), nil},
		{"imm_1_of_10", 1, 10, 7, Immediate(7), nil},
		{"imm_2_of_100", 2, 100, 0, Immediate(0), nil},
		{"pos_2_of_011", 2, 11, 9, Position(9), nil},
		{"nonzero_digit", 0, 7, 3, Immediate(3), nil},
		{"pos_negative", 0, 0, -1, Param{}, ErrAddressing},
		{"pos_negative_2", 2, 11, -5, Param{}, ErrAddressing},
	}

	for _, entry := range table {
		param, err := Resolve(entry.nth, entry.modes, entry.raw)
		assert.Equal(entry.err, err, entry.name)
		assert.Equal(entry.param, param, entry.name)
	}
}

func TestParam_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("[6]", Position(6).String())
	assert.Equal("-6", Immediate(-6).String())
	assert.Equal("immediate", MODE_IMMEDIATE.String())
	assert.Equal("Mode(5)", Mode(5).String())
}
