// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package segments maps numbers, letters, and hexadecimal values to
// their 7-segment display codes. The tables are in common-cathode
// polarity; use Anode() for common-anode wiring.
package segments

// Segments is a 7-segment display code. Bit 0 lights segment a, through
// bit 6 for segment g.
type Segments uint8

const (
	SEGMENT_MASK = Segments(0x7f) // The seven segment bits.

	BLANK = Segments(0) // All segments off.
)

// Display codes for the digits 0-9.
var numberSegments = [...]Segments{
	0b00111111, // 0
	0b00000110, // 1
	0b01011011, // 2
	0b01001111, // 3
	0b01100110, // 4
	0b01101101, // 5
	0b01111101, // 6
	0b00000111, // 7
	0b01111111, // 8
	0b01101111, // 9
}

// Display codes for the letters A-Z.
var letterSegments = [...]Segments{
	0b01110111, // A
	0b01111100, // B
	0b00111001, // C
	0b01011110, // D
	0b01111001, // E
	0b01110001, // F
	0b00111101, // G
	0b01110100, // H
	0b00110000, // I
	0b00011110, // J
	0b01110101, // K
	0b00111000, // L
	0b00010101, // M
	0b00110111, // N
	0b00111111, // O
	0b01110011, // P
	0b01100111, // Q
	0b00110011, // R
	0b01101101, // S
	0b01111000, // T
	0b00111110, // U
	0b00011100, // V
	0b00101010, // W
	0b00110110, // X
	0b01101110, // Y
	0b01011011, // Z
}

// Number returns the display code for a decimal digit 0-9.
func Number(n int) (seg Segments, err error) {
	if n < 0 || n >= len(numberSegments) {
		err = ErrNoGlyph
		return
	}
	seg = numberSegments[n]

	return
}

// Letter returns the display code for a letter, case-insensitive.
func Letter(r rune) (seg Segments, err error) {
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	if r < 'A' || r > 'Z' {
		err = ErrNoGlyph
		return
	}
	seg = letterSegments[r-'A']

	return
}

// Hex returns the display code for a hexadecimal value 0-15.
func Hex(n int) (seg Segments, err error) {
	switch {
	case n >= 0 && n <= 9:
		seg = numberSegments[n]
	case n >= 10 && n <= 15:
		seg = letterSegments[n-10]
	default:
		err = ErrNoGlyph
	}

	return
}

// Rune returns the display code for a digit or letter character.
func Rune(r rune) (seg Segments, err error) {
	if r >= '0' && r <= '9' {
		return Number(int(r - '0'))
	}

	return Letter(r)
}

// Anode inverts the segment bits for common-anode wiring.
func (seg Segments) Anode() Segments {
	return ^seg & SEGMENT_MASK
}

// Cathode returns the code unchanged; the tables are native
// common-cathode.
func (seg Segments) Cathode() Segments {
	return seg
}

// Rune returns a printable character for the display code: the first
// digit or letter whose glyph matches, or a space for BLANK and for
// codes that match no glyph. Codes shared between tables (0 and O)
// resolve to the digit.
func (seg Segments) Rune() (r rune) {
	seg &= SEGMENT_MASK
	if seg == BLANK {
		return ' '
	}
	for n, glyph := range numberSegments {
		if glyph == seg {
			return rune('0' + n)
		}
	}
	for n, glyph := range letterSegments {
		if glyph == seg {
			return rune('A' + n)
		}
	}

	return ' '
}
