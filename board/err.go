package board

import (
	"errors"

	"github.com/ezrec/upin/translate"
)

var f = translate.From

var (
	// Board errors
	ErrKeyRange   = errors.New(f("key out of range"))
	ErrTooFewPins = errors.New(f("too few pins per port"))

	// Stimulus errors
	ErrOpInvalid  = errors.New(f("stimulus op invalid"))
	ErrArgMissing = errors.New(f("stimulus argument missing"))
	ErrExtraArgs  = errors.New(f("excessive arguments"))
	ErrMaxTicks   = errors.New(f("tick limit reached"))
)

// ErrScript locates a stimulus parse error.
type ErrScript struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrScript) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrScript) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
