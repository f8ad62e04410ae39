// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package board emulates a small dev board built around the pin matrix:
// three user keys, two status LEDs driven by the parity of the held
// keys, and a 7-segment display showing the key value in hex. No
// hardware is touched; key input is injected and outputs are observed
// in memory.
package board

import (
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/upin/internal"
	"github.com/ezrec/upin/pins"
	"github.com/ezrec/upin/segments"
)

const (
	KEY_PORT  = pins.PORT_B // Port carrying the user keys.
	LED_PORT  = pins.PORT_C // Port carrying the status LEDs.
	DISP_PORT = pins.PORT_D // Port carrying the display segments.

	MAX_KEYS = 3 // User keys, pins 0..2 of KEY_PORT.
	MAX_LEDS = 2 // Status LEDs, pins 0..1 of LED_PORT.
	MAX_SEGS = 7 // Display segments, pins 0..6 of DISP_PORT.

	KEYS_MASK = uint8(0b111)
	LEDS_MASK = uint8(0b11)

	NUM_PINS = 16 // Default pin slots per port.
)

var _board_defines = map[string]string{
	"KEY_PORT":  fmt.Sprintf("%d", KEY_PORT),
	"LED_PORT":  fmt.Sprintf("%d", LED_PORT),
	"DISP_PORT": fmt.Sprintf("%d", DISP_PORT),
	"MAX_KEYS":  fmt.Sprintf("%d", MAX_KEYS),
	"MAX_LEDS":  fmt.Sprintf("%d", MAX_LEDS),
	"MAX_SEGS":  fmt.Sprintf("%d", MAX_SEGS),
	"KEYS_MASK": fmt.Sprintf("%d", KEYS_MASK),
	"LEDS_MASK": fmt.Sprintf("%d", LEDS_MASK),
	"NUM_PINS":  fmt.Sprintf("%d", NUM_PINS),
}

// Defines returns an iterator over the symbolic constants visible to
// stimulus scripts: the board's own plus those of the pins package.
func Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_board_defines), pins.Defines())
}

// Board is the emulated dev board state. The matrix holds the per-pin
// mux configuration; the sampled key, LED, and display levels live in
// the board's own registers, as they would in the device's IDR/ODR.
type Board struct {
	Verbose bool         // If set, logs every tick.
	Pins    *pins.Matrix // Per-pin mux configuration state.

	input   uint8
	leds    uint8
	display segments.Segments
	ticks   int
}

// NewBoard builds a board with the default pin matrix.
func NewBoard() (brd *Board, err error) {
	return NewBoardAlloc(NUM_PINS, pins.Heap{})
}

// NewBoardAlloc builds a board whose matrix is allocated through alloc.
// numPins must cover the display segments, the widest peripheral.
func NewBoardAlloc(numPins int, alloc pins.Allocator) (brd *Board, err error) {
	if numPins < MAX_SEGS {
		err = ErrTooFewPins
		return
	}

	m, err := pins.NewMatrixAlloc(numPins, alloc)
	if err != nil {
		return
	}

	brd = &Board{Pins: m}
	brd.Reset()

	return
}

// Reset clears every cell of the matrix, restores the mux
// configuration (keys muxed FUNC_IN, LED and display pins muxed
// FUNC_OUT), and clears the key, LED, and display registers.
func (brd *Board) Reset() {
	for port := range brd.Pins.Pins {
		for pin := range brd.Pins.Pins[port] {
			for fn := range brd.Pins.Pins[port][pin] {
				brd.Pins.Pins[port][pin][fn] = pins.PIN_OFF
			}
		}
	}

	for key := 0; key < MAX_KEYS; key++ {
		brd.Pins.Pins[KEY_PORT][key][pins.FUNC_IN] = pins.PIN_ON
	}
	for led := 0; led < MAX_LEDS; led++ {
		brd.Pins.Pins[LED_PORT][led][pins.FUNC_OUT] = pins.PIN_ON
	}
	for n := 0; n < MAX_SEGS; n++ {
		brd.Pins.Pins[DISP_PORT][n][pins.FUNC_OUT] = pins.PIN_ON
	}

	brd.input = 0
	brd.leds = 0
	brd.display = segments.BLANK
	brd.ticks = 0
}

// Press marks key (0..MAX_KEYS-1) as held.
func (brd *Board) Press(key int) (err error) {
	if key < 0 || key >= MAX_KEYS {
		err = ErrKeyRange
		return
	}
	brd.input |= 1 << key

	return
}

// Release marks key (0..MAX_KEYS-1) as not held.
func (brd *Board) Release(key int) (err error) {
	if key < 0 || key >= MAX_KEYS {
		err = ErrKeyRange
		return
	}
	brd.input &^= 1 << key

	return
}

// SetKeys replaces the key state with the low MAX_KEYS bits of keys.
func (brd *Board) SetKeys(keys uint8) {
	brd.input = keys & KEYS_MASK
}

// Keys returns the current key state bits.
func (brd *Board) Keys() uint8 {
	return brd.input & KEYS_MASK
}

// Tick samples the keys whose input mux is enabled, classifies the
// parity of the held keys, and drives the LED and display registers,
// gated by each output pin's mux cell.
func (brd *Board) Tick() (err error) {
	input := uint8(0)
	for key := 0; key < MAX_KEYS; key++ {
		if brd.Pins.Pins[KEY_PORT][key][pins.FUNC_IN] != pins.PIN_ON {
			continue
		}
		input |= brd.input & (1 << key)
	}
	input &= KEYS_MASK

	leds := userOutput[KeyCondition(input)] & LEDS_MASK
	for led := 0; led < MAX_LEDS; led++ {
		if brd.Pins.Pins[LED_PORT][led][pins.FUNC_OUT] != pins.PIN_ON {
			leds &^= 1 << led
		}
	}
	brd.leds = leds

	seg, err := segments.Hex(int(input))
	if err != nil {
		return
	}
	for n := 0; n < MAX_SEGS; n++ {
		if brd.Pins.Pins[DISP_PORT][n][pins.FUNC_OUT] != pins.PIN_ON {
			seg &^= 1 << n
		}
	}
	brd.display = seg

	brd.ticks++
	if brd.Verbose {
		log.Printf("tick %d: keys:%03b leds:%02b display:%q",
			brd.ticks, input, leds, seg.Rune())
	}

	return
}

// Leds returns the LED output bits driven by the last Tick.
func (brd *Board) Leds() uint8 {
	return brd.leds
}

// Display returns the 7-segment code driven by the last Tick.
func (brd *Board) Display() segments.Segments {
	return brd.display
}

// Ticks returns the ticks since the last Reset.
func (brd *Board) Ticks() int {
	return brd.ticks
}

// Close destroys the pin matrix. Safe to call more than once.
func (brd *Board) Close() (err error) {
	return brd.Pins.Destroy()
}
