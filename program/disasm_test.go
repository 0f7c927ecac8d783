package program

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"

	"github.com/ezrec/icm/cpu"
)

func TestDisassemble(t *testing.T) {
	assert := assert.New(t)

	var ips []int
	var ops []cpu.Opcode
	for ip, in := range Disassemble([]int32{1101, 4, 5, 6, 3, 0, 99, 1}) {
		ips = append(ips, ip)
		ops = append(ops, in.Opcode)
	}

	// The trailing add is cut short by the end of memory.
	assert.Equal([]int{0, 4, 6, 7}, ips)
	assert.Equal([]cpu.Opcode{cpu.OP_ADD, cpu.OP_STORE, cpu.OP_HALT, cpu.OP_UNKNOWN}, ops)
}

func TestDisassemble_Break(t *testing.T) {
	assert := assert.New(t)

	count := 0
	for range Disassemble([]int32{99, 99, 99, 99}) {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(2, count)
}

func TestListing(t *testing.T) {
	g := goldie.New(t)

	table := [](struct {
		name   string
		memory []int32
	}){
		{"echo", []int32{3, 5, 4, 5, 99, 0}},
		{"compare", compareWords},
	}

	for _, entry := range table {
		var buf bytes.Buffer
		err := Listing(&buf, entry.memory)
		assert.NoError(t, err)
		g.Assert(t, entry.name, buf.Bytes())
	}
}
