package io

import (
	"errors"

	"github.com/ezrec/icm/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrChannelClosed = errors.New(f("channel closed"))
	ErrChannelFull   = errors.New(f("channel full"))
	ErrChannelEmpty  = errors.New(f("channel empty"))
)

// ErrParseValue is returned when tape input is not an integer.
type ErrParseValue string

func (err ErrParseValue) Error() string {
	return f("'%v' is not a value", string(err))
}
