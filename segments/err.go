package segments

import (
	"errors"

	"github.com/ezrec/upin/translate"
)

var f = translate.From

var (
	ErrNoGlyph = errors.New(f("no glyph for value"))
)
