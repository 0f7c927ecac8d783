package cpu

import (
	"errors"
	"fmt"
	"log"
	"math"
	"slices"

	"github.com/ezrec/icm/io"
)

// State is the execution state of a Processor.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_RUNNING = State(0) // running
	STATE_HALTED  = State(1) // halted
)

// Processor is the execution engine for a single instruction stream.
// A Processor is not safe for concurrent use; run each one on its own
// goroutine and communicate only through its channel endpoints.
type Processor struct {
	Verbose bool // Set to enable verbose logging.

	ip     int         // Current instruction pointer.
	memory []int32     // Program and data memory.
	input  io.Receiver // Source for OP_STORE.
	output io.Sender   // Destination for OP_SHOW.

	state State
	ticks int   // Instructions executed since the last re-arm.
	err   error // First fatal error; the processor is dead once set.
}

// NewProcessor creates a processor that takes ownership of memory.
func NewProcessor(ip int, memory []int32, input io.Receiver, output io.Sender) (cpu *Processor) {
	cpu = &Processor{
		ip:     ip,
		memory: memory,
		input:  input,
		output: output,
	}

	return
}

// SetIp repositions the instruction pointer. Only valid between runs.
func (cpu *Processor) SetIp(ip int) {
	cpu.ip = ip
	cpu.rearm()
}

// SetMemory replaces the entire memory. Only valid between runs.
func (cpu *Processor) SetMemory(memory []int32) {
	cpu.memory = memory
	cpu.rearm()
}

// SetInput replaces the input endpoint. Only valid between runs.
func (cpu *Processor) SetInput(input io.Receiver) {
	cpu.input = input
}

// SetOutput replaces the output endpoint. Only valid between runs.
func (cpu *Processor) SetOutput(output io.Sender) {
	cpu.output = output
}

// rearm makes a normally halted processor runnable again.
// A failed processor stays failed.
func (cpu *Processor) rearm() {
	if cpu.err != nil {
		return
	}
	cpu.state = STATE_RUNNING
	cpu.ticks = 0
}

// Input returns the input endpoint, for collaborators that pre-feed or
// drain it.
func (cpu *Processor) Input() io.Receiver {
	return cpu.input
}

// Output returns the output endpoint.
func (cpu *Processor) Output() io.Sender {
	return cpu.output
}

// Ip returns the current instruction pointer.
func (cpu *Processor) Ip() int {
	return cpu.ip
}

// Memory returns a copy of the current memory.
func (cpu *Processor) Memory() []int32 {
	return slices.Clone(cpu.memory)
}

// State returns the current execution state.
func (cpu *Processor) State() State {
	return cpu.state
}

// Ticks returns the count of instructions executed.
func (cpu *Processor) Ticks() int {
	return cpu.ticks
}

// Err returns the error that killed the processor, if any.
func (cpu *Processor) Err() error {
	return cpu.err
}

// String returns the current processor state as a string.
func (cpu *Processor) String() (text string) {
	regs := []string{"ip", "state", "ticks", "size", "next"}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "ip":
			strval = fmt.Sprintf("%04d", cpu.ip)
		case "state":
			strval = cpu.state.String()
			if cpu.err != nil {
				strval += " (" + cpu.err.Error() + ")"
			}
		case "ticks":
			strval = fmt.Sprintf("%d", cpu.ticks)
		case "size":
			strval = fmt.Sprintf("%d", len(cpu.memory))
		case "next":
			in, err := Decode(cpu.memory, cpu.ip)
			if err != nil {
				strval = "----"
			} else {
				strval = in.String()
			}
		}
		text += fmt.Sprintf("% 5s: %v\n", reg, strval)
	}

	return
}

// Run executes instructions until the program halts or fails.
// A nil return means OP_HALT was reached; any error leaves the processor
// permanently failed.
func (cpu *Processor) Run() (err error) {
	if cpu.err != nil {
		return cpu.err
	}

	cpu.state = STATE_RUNNING
	if cpu.Verbose {
		log.Printf("cpu: run from %04d", cpu.ip)
	}

	for done := false; !done; {
		done, err = cpu.Step()
	}

	if cpu.Verbose {
		if err != nil {
			log.Printf("cpu: %v", err)
		} else {
			log.Printf("cpu: halt at %04d after %d ticks", cpu.ip, cpu.ticks)
		}
	}

	return
}

// Step executes a single instruction.
// done is set when the processor stops, either at OP_HALT or on error.
func (cpu *Processor) Step() (done bool, err error) {
	if cpu.err != nil {
		return true, cpu.err
	}

	in, err := Decode(cpu.memory, cpu.ip)
	if err != nil {
		return true, cpu.fail(err)
	}

	return cpu.Execute(in)
}

// fail records err as the fatal error of the instruction at ip.
func (cpu *Processor) fail(err error) error {
	cpu.err = &ErrRuntime{Ip: cpu.ip, Err: err}
	cpu.state = STATE_HALTED
	return cpu.err
}

// Execute executes a single decoded instruction at the current ip.
// Any error leaves the processor permanently failed, as for Step.
func (cpu *Processor) Execute(in Instruction) (done bool, err error) {
	if cpu.err != nil {
		return true, cpu.err
	}

	defer func() {
		if err != nil {
			err = cpu.fail(err)
			done = true
		}
	}()

	if cpu.Verbose {
		log.Printf("%04d: %v", cpu.ip, in)
	}

	if len(in.Params) != in.Opcode.Arity() {
		err = ErrOpcode(in.Word)
		return
	}

	next_ip := cpu.ip + in.Len()

	var dst Param
	if target := in.Opcode.Target(); target >= 0 {
		dst = in.Params[target]
	}

	switch in.Opcode {
	case OP_ADD, OP_MUL, OP_LESS_THAN, OP_EQUALS:
		var a, b, value int32
		a, err = cpu.load(in.Params[0])
		if err != nil {
			return
		}
		b, err = cpu.load(in.Params[1])
		if err != nil {
			return
		}
		value, err = cpu.doAlu(in.Opcode, a, b)
		if err != nil {
			return
		}
		err = cpu.store(dst, value)
		if err != nil {
			return
		}
	case OP_STORE:
		// Check the destination before consuming input.
		_, err = cpu.address(dst)
		if err != nil {
			return
		}
		var value int32
		value, err = cpu.receive()
		if err != nil {
			return
		}
		err = cpu.store(dst, value)
		if err != nil {
			return
		}
	case OP_SHOW:
		var value int32
		value, err = cpu.load(in.Params[0])
		if err != nil {
			return
		}
		err = cpu.send(value)
		if err != nil {
			return
		}
	case OP_JUMP_TRUE, OP_JUMP_FALSE:
		var cond int32
		cond, err = cpu.load(in.Params[0])
		if err != nil {
			return
		}
		if (cond != 0) == (in.Opcode == OP_JUMP_TRUE) {
			var target int32
			target, err = cpu.load(in.Params[1])
			if err != nil {
				return
			}
			if target < 0 {
				err = ErrAddressing
				return
			}
			next_ip = int(target)
		}
	case OP_HALT:
		// ip stays on the halt word.
		cpu.ticks++
		cpu.state = STATE_HALTED
		done = true
		return
	case OP_UNKNOWN:
		err = ErrOpcode(in.Word)
		return
	default:
		err = ErrOpcode(in.Word)
		return
	}

	cpu.ip = next_ip
	cpu.ticks++

	return
}

// address returns the memory index of a destination parameter.
func (cpu *Processor) address(param Param) (addr int, err error) {
	if param.Mode != MODE_POSITION {
		err = ErrArgument
		return
	}

	addr = int(param.Value)
	if addr < 0 {
		err = ErrAddressing
		return
	}
	if addr >= len(cpu.memory) {
		err = ErrBounds
		return
	}

	return
}

// load returns the value of a source parameter.
func (cpu *Processor) load(param Param) (value int32, err error) {
	switch param.Mode {
	case MODE_IMMEDIATE:
		value = param.Value
	case MODE_POSITION:
		addr := int(param.Value)
		if addr < 0 {
			err = ErrAddressing
			return
		}
		if addr >= len(cpu.memory) {
			err = ErrBounds
			return
		}
		value = cpu.memory[addr]
	default:
		err = ErrAddressing
	}

	return
}

// store writes value to a destination parameter.
func (cpu *Processor) store(param Param, value int32) (err error) {
	addr, err := cpu.address(param)
	if err != nil {
		return
	}

	cpu.memory[addr] = value
	return
}

// receive blocks for the next input value.
func (cpu *Processor) receive() (value int32, err error) {
	if cpu.input == nil {
		err = errors.Join(ErrChannel, io.ErrChannelClosed)
		return
	}

	value, err = cpu.input.Receive()
	if err != nil {
		err = errors.Join(ErrChannel, err)
	}

	return
}

// send blocks until the output accepts value.
func (cpu *Processor) send(value int32) (err error) {
	if cpu.output == nil {
		err = errors.Join(ErrChannel, io.ErrChannelClosed)
		return
	}

	err = cpu.output.Send(value)
	if err != nil {
		err = errors.Join(ErrChannel, err)
	}

	return
}

// doAlu performs the requested arithmetic or comparison.
// Results that do not fit in 32 bits fail with ErrOverflow.
func (cpu *Processor) doAlu(op Opcode, a, b int32) (value int32, err error) {
	var wide int64

	switch op {
	case OP_ADD:
		wide = int64(a) + int64(b)
	case OP_MUL:
		wide = int64(a) * int64(b)
	case OP_LESS_THAN:
		if a < b {
			wide = 1
		}
	case OP_EQUALS:
		if a == b {
			wide = 1
		}
	}

	if wide > math.MaxInt32 || wide < math.MinInt32 {
		err = ErrOverflow
		return
	}

	value = int32(wide)
	return
}
