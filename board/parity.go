package board

import (
	"math/bits"
)

// Condition classifies the parity of the held-key count.
type Condition int

const (
	EVEN_KEYS = Condition(0) // Even (or zero) keys held.
	ODD_KEYS  = Condition(1) // Odd number of keys held.

	MAX_CONDITIONS = 2
)

// LED patterns per key condition: first LED for even, second for odd.
var userOutput = [MAX_CONDITIONS]uint8{
	EVEN_KEYS: 0b01,
	ODD_KEYS:  0b10,
}

// KeyCondition reports whether an even or odd number of the input bits
// is set. Zero keys held counts as even.
func KeyCondition(input uint8) (cond Condition) {
	if bits.OnesCount8(input)%2 != 0 {
		cond = ODD_KEYS
	}

	return
}
