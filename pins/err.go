package pins

import (
	"errors"

	"github.com/ezrec/upin/translate"
)

var f = translate.From

var (
	// Matrix errors
	ErrMatrixNil = errors.New(f("matrix nil"))
	ErrNumPins   = errors.New(f("pin count negative"))
	ErrBounds    = errors.New(f("pin coordinate out of range"))
)
