// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package pins

import (
	"fmt"
	"iter"
	"maps"
)

// Port selects one of the fixed GPIO ports.
type Port int

const (
	PORT_A = Port(0) // GPIO port A
	PORT_B = Port(1) // GPIO port B
	PORT_C = Port(2) // GPIO port C
	PORT_D = Port(3) // GPIO port D

	MAX_PORTS = Port(4) // Number of ports.
)

var portNames = [MAX_PORTS]string{"A", "B", "C", "D"}

// String returns the port letter, or the raw value if out of range.
func (port Port) String() (name string) {
	if port >= PORT_A && port < MAX_PORTS {
		return portNames[port]
	}

	return fmt.Sprintf("Port(%d)", int(port))
}

// Func selects one of the per-pin function slots.
type Func int

const (
	FUNC_OUT = Func(0) // Digital output.
	FUNC_IN  = Func(1) // Digital input.
	FUNC_ALT = Func(2) // Alternate function.

	MAX_FUNCS = Func(3) // Number of function slots per pin.
)

var funcNames = [MAX_FUNCS]string{"out", "in", "alt"}

// String returns the function name, or the raw value if out of range.
func (fn Func) String() (name string) {
	if fn >= FUNC_OUT && fn < MAX_FUNCS {
		return funcNames[fn]
	}

	return fmt.Sprintf("Func(%d)", int(fn))
}

// Cell is one status value at a (port, pin, function) coordinate.
type Cell uint8

const (
	PIN_OFF = Cell(0) // Function disabled / output low.
	PIN_ON  = Cell(1) // Function enabled / output high.
)

var _pins_defines = map[string]string{
	"PORT_A":    fmt.Sprintf("%d", PORT_A),
	"PORT_B":    fmt.Sprintf("%d", PORT_B),
	"PORT_C":    fmt.Sprintf("%d", PORT_C),
	"PORT_D":    fmt.Sprintf("%d", PORT_D),
	"MAX_PORTS": fmt.Sprintf("%d", MAX_PORTS),
	"FUNC_OUT":  fmt.Sprintf("%d", FUNC_OUT),
	"FUNC_IN":   fmt.Sprintf("%d", FUNC_IN),
	"FUNC_ALT":  fmt.Sprintf("%d", FUNC_ALT),
	"MAX_FUNCS": fmt.Sprintf("%d", MAX_FUNCS),
	"PIN_OFF":   fmt.Sprintf("%d", PIN_OFF),
	"PIN_ON":    fmt.Sprintf("%d", PIN_ON),
}

// Defines returns an iterator over the symbolic constants of the package.
func Defines() iter.Seq2[string, string] {
	return maps.All(_pins_defines)
}
