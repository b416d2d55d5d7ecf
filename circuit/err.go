package circuit

import (
	"github.com/ezrec/ucircuit/translate"
)

var f = translate.From

var (
	ErrInstructionInvalid = translate.Error("instruction invalid")
	ErrActionInvalid      = translate.Error("action invalid")
	ErrSignalCount        = translate.Error("wrong number of signals")
)

// ErrSyntax indicates the location of a parse error.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseLiteral string

func (err ErrParseLiteral) Error() string {
	return f("'%v' is not a 16-bit value", string(err))
}

type ErrParseSignal string

func (err ErrParseSignal) Error() string {
	return f("'%v' is not a value or wire", string(err))
}
