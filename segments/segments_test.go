package segments

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumber(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		In  int
		Seg Segments
	}){
		{In: 0, Seg: 0b00111111},
		{In: 1, Seg: 0b00000110},
		{In: 4, Seg: 0b01100110},
		{In: 8, Seg: 0b01111111},
		{In: 9, Seg: 0b01101111},
	}
	for _, testcase := range table {
		seg, err := Number(testcase.In)
		assert.NoError(err)
		assert.Equal(testcase.Seg, seg, fmt.Sprintf("%+v", testcase))
	}

	_, err := Number(-1)
	assert.ErrorIs(err, ErrNoGlyph)
	_, err = Number(10)
	assert.ErrorIs(err, ErrNoGlyph)
}

func TestLetter(t *testing.T) {
	assert := assert.New(t)

	seg, err := Letter('A')
	assert.NoError(err)
	assert.Equal(Segments(0b01110111), seg)

	lower, err := Letter('z')
	assert.NoError(err)
	assert.Equal(Segments(0b01011011), lower)

	_, err = Letter('!')
	assert.ErrorIs(err, ErrNoGlyph)
}

func TestHex(t *testing.T) {
	assert := assert.New(t)

	// The hex table is the digit table followed by letters A-F.
	for n := 0; n <= 9; n++ {
		seg, err := Hex(n)
		assert.NoError(err)
		number, _ := Number(n)
		assert.Equal(number, seg)
	}
	for n := 10; n <= 15; n++ {
		seg, err := Hex(n)
		assert.NoError(err)
		letter, _ := Letter(rune('A' + n - 10))
		assert.Equal(letter, seg)
	}

	_, err := Hex(16)
	assert.ErrorIs(err, ErrNoGlyph)
}

func TestRune(t *testing.T) {
	assert := assert.New(t)

	seg, err := Rune('7')
	assert.NoError(err)
	assert.Equal(Segments(0b00000111), seg)

	seg, err = Rune('H')
	assert.NoError(err)
	assert.Equal(Segments(0b01110100), seg)

	_, err = Rune(' ')
	assert.ErrorIs(err, ErrNoGlyph)
}

func TestSegments_Anode(t *testing.T) {
	assert := assert.New(t)

	seg, _ := Number(8)
	assert.Equal(BLANK, seg.Anode())
	assert.Equal(seg, seg.Anode().Anode())
	assert.Equal(seg, seg.Cathode())
}

func TestSegments_Rune(t *testing.T) {
	assert := assert.New(t)

	for n := 0; n <= 9; n++ {
		seg, _ := Number(n)
		assert.Equal(rune('0'+n), seg.Rune())
	}

	// 0 and O share a glyph; the digit wins.
	zero, _ := Letter('O')
	assert.Equal('0', zero.Rune())

	hglyph, _ := Letter('H')
	assert.Equal('H', hglyph.Rune())

	assert.Equal(' ', BLANK.Rune())
	assert.Equal(' ', Segments(0b01000001).Rune())
}
