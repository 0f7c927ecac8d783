package io

import (
	"slices"
)

// Temporary implements a circular buffer for temporary value storage.
// It operates as a FIFO queue with a fixed capacity and never blocks.
// A zero Capacity is unbounded.
type Temporary struct {
	Capacity int // Capacity in values.

	ReadIndex  int
	WriteIndex int
	Size       int
	Data       []int32
}

var _ Channel = (*Temporary)(nil)

// Rewind resets the temporary storage to empty, resetting indices and
// reinitializing the data buffer.
func (temp *Temporary) Rewind() {
	temp.ReadIndex = 0
	temp.WriteIndex = 0
	temp.Size = 0
	temp.Data = make([]int32, temp.Capacity)
}

// Receive returns the oldest value in the buffer.
// Returns ErrChannelEmpty if nothing is buffered.
func (temp *Temporary) Receive() (value int32, err error) {
	if temp.Size == 0 {
		err = ErrChannelEmpty
		return
	}

	value = temp.Data[temp.ReadIndex]
	temp.ReadIndex++
	if temp.ReadIndex == len(temp.Data) {
		temp.ReadIndex = 0
	}
	temp.Size--

	return
}

// Send writes a value to the buffer at the current write position.
// Returns ErrChannelFull if the buffer has reached capacity.
func (temp *Temporary) Send(value int32) (err error) {
	if temp.Capacity > 0 && temp.Size >= temp.Capacity {
		err = ErrChannelFull
		return
	}

	if temp.Size == len(temp.Data) {
		temp.grow()
	}

	temp.Data[temp.WriteIndex] = value

	temp.WriteIndex++
	if temp.WriteIndex == len(temp.Data) {
		temp.WriteIndex = 0
	}
	temp.Size++

	return
}

// grow enlarges an unbounded (or not yet rewound) buffer, unwrapping
// the ring so ReadIndex starts at zero.
func (temp *Temporary) grow() {
	size := 2 * len(temp.Data)
	if temp.Capacity > 0 {
		size = temp.Capacity
	} else if size == 0 {
		size = 8
	}

	data := make([]int32, size)
	copy(data, temp.Values())

	temp.Data = data
	temp.ReadIndex = 0
	temp.WriteIndex = temp.Size
}

// Values returns the buffered values, oldest first, without consuming them.
func (temp *Temporary) Values() (values []int32) {
	values = make([]int32, 0, temp.Size)
	for n := range temp.Size {
		values = append(values, temp.Data[(temp.ReadIndex+n)%len(temp.Data)])
	}
	return
}

// Last returns the most recently sent value still buffered.
func (temp *Temporary) Last() (value int32, ok bool) {
	values := temp.Values()
	if len(values) == 0 {
		return
	}

	return values[len(values)-1], true
}

// Equal reports if the buffered values match values.
func (temp *Temporary) Equal(values []int32) bool {
	return slices.Equal(temp.Values(), values)
}
