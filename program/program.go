package program

import (
	"slices"
)

// Program is a loaded memory image with its source mapping.
type Program struct {
	Words  []int32        // Initial memory.
	LineNo []int          // Source line of each word.
	Label  map[string]int // Label addresses.
}

// Memory returns a fresh copy of the memory image, suitable for handing
// to a processor.
func (prog *Program) Memory() []int32 {
	return slices.Clone(prog.Words)
}

// Debug returns the source line for the word at ip, or 0 if unknown.
func (prog *Program) Debug(ip int) (lineno int) {
	if ip >= 0 && ip < len(prog.LineNo) {
		lineno = prog.LineNo[ip]
	}
	return
}
