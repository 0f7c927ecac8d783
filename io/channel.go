// Package io provides the channel endpoints processors communicate through.
// It includes the blocking rendezvous Pipe used to wire processors together,
// sequential text I/O (Tape), a non-blocking FIFO (Temporary), and a fixed
// input replay (Rom).
package io

// Receiver is the receiving end of a channel.
// Receive blocks until a value is available, or fails once no value
// can ever arrive.
type Receiver interface {
	Receive() (value int32, err error)
}

// Sender is the sending end of a channel.
// Send blocks until the value has been accepted, or fails once the
// peer is gone.
type Sender interface {
	Send(value int32) error
}

// Channel is a bidirectional endpoint pair.
type Channel interface {
	Receiver
	Sender
}
