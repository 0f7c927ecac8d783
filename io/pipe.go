package io

import (
	"sync"
)

// Pipe is a point-to-point channel between a sender and a receiver.
//
// With zero capacity a Send completes only when a Receive takes the value.
// Close models a dropped peer: blocked and later Sends fail with
// ErrChannelClosed, and Receive fails once buffered values are drained.
type Pipe struct {
	data chan int32
	done chan struct{}
	once sync.Once
}

var _ Channel = (*Pipe)(nil)

// NewPipe creates a pipe buffering up to capacity values.
func NewPipe(capacity int) (pipe *Pipe) {
	pipe = &Pipe{
		data: make(chan int32, capacity),
		done: make(chan struct{}),
	}

	return
}

// Send blocks until value is accepted, or the pipe is closed.
func (pipe *Pipe) Send(value int32) (err error) {
	// A closed pipe never accepts, even if buffer space remains.
	select {
	case <-pipe.done:
		err = ErrChannelClosed
		return
	default:
	}

	select {
	case pipe.data <- value:
	case <-pipe.done:
		err = ErrChannelClosed
	}

	return
}

// Receive blocks until a value is available, or the pipe is closed
// and drained.
func (pipe *Pipe) Receive() (value int32, err error) {
	select {
	case value = <-pipe.data:
		return
	case <-pipe.done:
	}

	select {
	case value = <-pipe.data:
	default:
		err = ErrChannelClosed
	}

	return
}

// Close the pipe. Closing more than once is permitted.
func (pipe *Pipe) Close() (err error) {
	pipe.once.Do(func() {
		close(pipe.done)
	})

	return
}

// Len returns the number of buffered values.
func (pipe *Pipe) Len() int {
	return len(pipe.data)
}
