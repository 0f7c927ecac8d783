// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package network wires processors into pipelines and feedback loops.
package network

import (
	"context"
	"errors"
	"log"
	"runtime"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/ezrec/icm/cpu"
	"github.com/ezrec/icm/internal"
	"github.com/ezrec/icm/io"
)

// Network state. A program, replicated once per phase setting.
type Network struct {
	Verbose  bool    // If set, enables verbose logging.
	Feedback bool    // If set, the last output feeds the first input.
	Program  []int32 // Memory image given to each processor.
	Limit    int     // Maximum concurrent runs during Search.
}

// NewNetwork creates a new network.
func NewNetwork(program []int32, feedback bool) (nw *Network) {
	nw = &Network{
		Feedback: feedback,
		Program:  program,
	}

	return
}

// Run starts one processor per phase setting and returns the final signal.
//
// Processor n receives phases[n] as its first input; processor 0 then
// receives the initial signal 0. Each processor's output feeds the next.
// Without feedback the signal is the last value output by the last
// processor. With feedback, the last processor feeds processor 0, and the
// signal is the last value it sends after processor 0 has halted.
func (nw *Network) Run(phases []int32) (signal int32, err error) {
	count := len(phases)
	if count == 0 {
		err = ErrNoPhases
		return
	}
	if len(nw.Program) == 0 {
		err = ErrNoProgram
		return
	}
	if nw.Feedback && count < 2 {
		err = ErrFeedbackSingle
		return
	}

	// pipes[n] is the input of processor n, pipes[count] the network output.
	pipes := make([]*io.Pipe, count+1)
	for n := range pipes {
		pipes[n] = io.NewPipe(0)
	}
	if nw.Feedback {
		pipes[count] = pipes[0]
	} else {
		// Nothing is upstream of the first processor.
		pipes[0].Close()
	}

	cpus := make([]*cpu.Processor, count)
	for n, phase := range phases {
		preset := &io.Rom{Data: []int32{phase}}
		if n == 0 {
			preset.Data = append(preset.Data, 0)
		}
		input := io.NewChain(preset, pipes[n])
		cpus[n] = cpu.NewProcessor(0, slices.Clone(nw.Program), input, pipes[n+1])
		cpus[n].Verbose = nw.Verbose
	}

	eg, ctx := errgroup.WithContext(context.Background())

	// Disconnect everything once any processor fails, so blocked peers
	// fail instead of waiting forever.
	go func() {
		<-ctx.Done()
		for _, pipe := range pipes {
			pipe.Close()
		}
	}()

	var got bool
	collect := func(output io.Receiver) (err error) {
		for {
			var value int32
			value, err = output.Receive()
			if errors.Is(err, io.ErrChannelClosed) {
				break
			}
			if err != nil {
				return
			}
			signal = value
			got = true
		}
		if !got {
			return ErrNoSignal
		}
		return nil
	}

	for n, proc := range cpus {
		eg.Go(func() (err error) {
			err = proc.Run()
			if err != nil {
				return &ErrAmplifier{Index: n, Err: err}
			}

			if nw.Verbose {
				log.Printf("network: amplifier %d halted after %d ticks", n, proc.Ticks())
			}

			// Halted; nothing more will be sent.
			pipes[n+1].Close()

			if nw.Feedback && n == 0 {
				// The loop closes on processor 0's input.
				err = collect(proc.Input())
			}

			pipes[n].Close()
			return
		})
	}

	if !nw.Feedback {
		eg.Go(func() error {
			return collect(pipes[count])
		})
	}

	err = eg.Wait()
	if err != nil {
		signal = 0
		return
	}

	if nw.Verbose {
		log.Printf("network: phases %v signal %d", phases, signal)
	}

	return
}

// Search runs the network for every ordering of phaseSet, returning the
// highest signal and the first phase ordering that produced it.
func (nw *Network) Search(phaseSet []int32) (best int32, phases []int32, err error) {
	if len(phaseSet) == 0 {
		err = ErrNoPhases
		return
	}

	limit := nw.Limit
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	eg, ctx := errgroup.WithContext(context.Background())
	eg.SetLimit(limit)

	var mutex sync.Mutex

	for perm := range internal.Permutations(phaseSet) {
		if ctx.Err() != nil {
			break
		}
		eg.Go(func() error {
			signal, err := nw.Run(perm)
			if err != nil {
				return &ErrPhases{Phases: perm, Err: err}
			}

			mutex.Lock()
			defer mutex.Unlock()
			if phases == nil || signal > best ||
				(signal == best && slices.Compare(perm, phases) < 0) {
				best = signal
				phases = perm
			}
			return nil
		})
	}

	err = eg.Wait()
	if err != nil {
		best = 0
		phases = nil
		return
	}

	if nw.Verbose {
		log.Printf("network: best phases %v signal %d", phases, best)
	}

	return
}

// Run runs a network of memory, one processor per phase setting.
func Run(memory []int32, phases []int32, feedback bool) (signal int32, err error) {
	return NewNetwork(memory, feedback).Run(phases)
}

// Search finds the ordering of phaseSet giving the highest signal.
func Search(memory []int32, phaseSet []int32, feedback bool) (best int32, phases []int32, err error) {
	return NewNetwork(memory, feedback).Search(phaseSet)
}
