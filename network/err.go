package network

import (
	"errors"

	"github.com/ezrec/icm/translate"
)

var f = translate.From

var (
	// Network errors
	ErrNoPhases       = errors.New(f("no phase settings"))
	ErrNoSignal       = errors.New(f("no output signal"))
	ErrNoProgram      = errors.New(f("no program"))
	ErrFeedbackSingle = errors.New(f("feedback loop needs two or more processors"))

	// Configuration errors
	ErrConfigPhaseDuplicate = errors.New(f("duplicate phase setting"))
)

// ErrAmplifier indicates which processor of a network failed.
type ErrAmplifier struct {
	Index int
	Err   error
}

func (err *ErrAmplifier) Error() string {
	return f("amplifier %d %v", err.Index, err.Err)
}

func (err *ErrAmplifier) Unwrap() error {
	return err.Err
}

// ErrPhases indicates the phase settings of a failed network run.
type ErrPhases struct {
	Phases []int32
	Err    error
}

func (err *ErrPhases) Error() string {
	return f("phases %v %v", err.Phases, err.Err)
}

func (err *ErrPhases) Unwrap() error {
	return err.Err
}
