// Package cpu implements the stored-program integer processor.
//
// A Processor owns a flat memory of signed 32-bit words and an instruction
// pointer. Each step decodes the word at the instruction pointer into one of
// ten opcodes, whose parameters are resolved in Position (memory address) or
// Immediate (literal) mode from the decimal mode digits above the opcode.
//
// Input and output go through externally supplied channel endpoints, so
// processors can be chained into pipelines or feedback loops. The Store and
// Show opcodes are the only ones that block.
package cpu
