package program

import (
	"fmt"
	"io"
	"iter"

	"github.com/ezrec/icm/cpu"
)

// Disassemble decodes memory linearly from address zero.
// Words that do not decode are yielded as OP_UNKNOWN, one word at a time.
func Disassemble(memory []int32) iter.Seq2[int, cpu.Instruction] {
	return func(yield func(ip int, in cpu.Instruction) bool) {
		for ip := 0; ip < len(memory); {
			in, err := cpu.Decode(memory, ip)
			if err != nil {
				in = cpu.Instruction{Word: memory[ip], Opcode: cpu.OP_UNKNOWN}
			}
			if !yield(ip, in) {
				return
			}
			ip += in.Len()
		}
	}
}

// Listing writes an address-annotated disassembly of memory to w.
func Listing(w io.Writer, memory []int32) (err error) {
	for ip, in := range Disassemble(memory) {
		_, err = fmt.Fprintf(w, "%04d: %v\n", ip, in)
		if err != nil {
			return
		}
	}

	return
}
