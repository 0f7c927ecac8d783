package io

import (
	"errors"
)

// Chain receives from each of its Receivers in turn, moving on to the
// next once the current one reports ErrChannelClosed.
type Chain struct {
	Receivers []Receiver
}

var _ Receiver = (*Chain)(nil)

// NewChain creates a chain over receivers.
func NewChain(receivers ...Receiver) (chain *Chain) {
	chain = &Chain{
		Receivers: receivers,
	}

	return
}

// Receive returns the next value of the first open receiver.
func (chain *Chain) Receive() (value int32, err error) {
	for len(chain.Receivers) > 0 {
		value, err = chain.Receivers[0].Receive()
		if !errors.Is(err, ErrChannelClosed) {
			return
		}
		chain.Receivers = chain.Receivers[1:]
	}

	value = 0
	err = ErrChannelClosed
	return
}
