package board

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseScript(t *testing.T) {
	assert := assert.New(t)

	listing := strings.Join([]string{
		"# warm up",
		"keys 0b101",
		"tick",
		"press $(KEYS_MASK) ; hold everything",
		"tick 3",
		"release $(1 << (MAX_KEYS - 1))",
		"reset",
		"",
	}, "\n")

	script, err := ParseScript(strings.NewReader(listing))
	assert.NoError(err)
	assert.NotNil(script)

	expect := []Step{
		{LineNo: 2, Op: OP_KEYS, Arg: 0b101},
		{LineNo: 3, Op: OP_TICK, Arg: 1},
		{LineNo: 4, Op: OP_PRESS, Arg: 0b111},
		{LineNo: 5, Op: OP_TICK, Arg: 3},
		{LineNo: 6, Op: OP_RELEASE, Arg: 0b100},
		{LineNo: 7, Op: OP_RESET},
	}
	assert.Equal(expect, script.Steps)
}

func TestParseScript_Errors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		Line string
		Err  error
	}){
		{Line: "poke 1", Err: ErrOpInvalid},
		{Line: "press", Err: ErrArgMissing},
		{Line: "reset 1", Err: ErrExtraArgs},
		{Line: "tick 1 2", Err: ErrExtraArgs},
		{Line: "keys zebra", Err: ErrParseNumber("zebra")},
	}
	for _, testcase := range table {
		script, err := ParseScript(strings.NewReader(testcase.Line))
		assert.Nil(script, testcase.Line)
		assert.ErrorIs(err, testcase.Err, testcase.Line)

		var located ErrScript
		assert.ErrorAs(err, &located, testcase.Line)
		assert.Equal(1, located.LineNo, testcase.Line)
	}
}

func TestParseScript_BadExpression(t *testing.T) {
	assert := assert.New(t)

	script, err := ParseScript(strings.NewReader("keys $(>nonsense<)"))
	assert.Nil(script)
	assert.Error(err)

	var located ErrScript
	assert.ErrorAs(err, &located)
	assert.Equal(1, located.LineNo)
}

func TestScript_Run(t *testing.T) {
	assert := assert.New(t)

	brd, err := NewBoard()
	assert.NoError(err)
	defer brd.Close()

	listing := strings.Join([]string{
		"press 0b001",
		"tick",
		"press 0b100",
		"tick 2",
		"keys 0",
		"tick",
	}, "\n")
	script, err := ParseScript(strings.NewReader(listing))
	assert.NoError(err)

	var leds []uint8
	var glyphs []rune
	err = script.Run(brd, func(brd *Board) {
		leds = append(leds, brd.Leds())
		glyphs = append(glyphs, brd.Display().Rune())
	})
	assert.NoError(err)

	assert.Equal([]uint8{0b10, 0b01, 0b01, 0b01}, leds)
	assert.Equal([]rune{'1', '5', '5', '0'}, glyphs)
	assert.Equal(4, brd.Ticks())
}

func TestScript_Run_MaxTicks(t *testing.T) {
	assert := assert.New(t)

	brd, err := NewBoard()
	assert.NoError(err)
	defer brd.Close()

	// A stimulus demanding far more ticks than the budget stops at the
	// budget with ErrMaxTicks.
	script, err := ParseScript(strings.NewReader("press 1\ntick 4000000000"))
	assert.NoError(err)

	script.MaxTicks = 3
	err = script.Run(brd, nil)
	assert.ErrorIs(err, ErrMaxTicks)
	assert.Equal(3, brd.Ticks())

	var located ErrScript
	assert.ErrorAs(err, &located)
	assert.Equal(2, located.LineNo)

	// Zero budget is unlimited.
	brd.Reset()
	script, err = ParseScript(strings.NewReader("tick 5"))
	assert.NoError(err)
	assert.NoError(script.Run(brd, nil))
	assert.Equal(5, brd.Ticks())
}

func TestScript_Run_Reset(t *testing.T) {
	assert := assert.New(t)

	brd, err := NewBoard()
	assert.NoError(err)
	defer brd.Close()

	script, err := ParseScript(strings.NewReader("press 0b11\ntick\nreset"))
	assert.NoError(err)

	assert.NoError(script.Run(brd, nil))
	assert.Equal(uint8(0), brd.Keys())
	assert.Equal(0, brd.Ticks())
}
