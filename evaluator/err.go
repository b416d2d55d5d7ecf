package evaluator

import (
	"github.com/ezrec/ucircuit/translate"
)

var f = translate.From

// ErrRuntime indicates the instruction that failed during a pass.
type ErrRuntime struct {
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("line %d %v", err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrWireUnset is returned when reading a wire that has no value yet.
type ErrWireUnset string

func (err ErrWireUnset) Error() string {
	return f("wire %v unset", string(err))
}

// ErrWireDuplicate is returned when a wire is assigned a second time.
type ErrWireDuplicate struct {
	Wire     string
	Previous uint16
	Value    uint16
}

func (err *ErrWireDuplicate) Error() string {
	return f("wire %v already set to %d, cannot set to %d", err.Wire, err.Previous, err.Value)
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("%v is not a 16-bit expression", string(err))
}
