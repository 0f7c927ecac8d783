package io

// Rom replays a fixed list of values, then reports the channel closed.
type Rom struct {
	Data []int32

	readIndex int
}

var _ Receiver = (*Rom)(nil)

// Rewind restarts the replay from the first value.
func (rc *Rom) Rewind() {
	rc.readIndex = 0
}

// Receive returns the next value of Data.
func (rc *Rom) Receive() (value int32, err error) {
	if rc.readIndex >= len(rc.Data) {
		err = ErrChannelClosed
		return
	}

	value = rc.Data[rc.readIndex]
	rc.readIndex++

	return
}

// Send is refused; a Rom is read-only.
func (rc *Rom) Send(value int32) error {
	return ErrChannelFull
}
