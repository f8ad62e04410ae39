// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package pins

// Matrix holds one status cell for every (port, pin, function)
// coordinate of the device: MAX_PORTS rows of NumPins slots of MAX_FUNCS
// cells. The shape is fixed for the lifetime of the matrix.
//
// Cells start at PIN_OFF. The matrix is exclusively owned by its creator
// and torn down by Destroy, which may be called more than once.
type Matrix struct {
	NumPins int        // Pin slots per port, fixed at construction.
	Pins    [][][]Cell // Pins[port][pin][func] status cells.

	alloc    Allocator
	released bool
}

// NewMatrix builds a fully-allocated matrix with numPins slots per port.
func NewMatrix(numPins int) (m *Matrix, err error) {
	return NewMatrixAlloc(numPins, Heap{})
}

// NewMatrixAlloc builds a matrix through alloc, acquiring in order the
// matrix record, the port row array, one slot array per port, and one
// cell array per (port, pin). If any stage is refused, everything
// acquired so far is released through Destroy and no matrix is returned.
//
// numPins may be zero: the ports still get their (empty) slot arrays.
// A negative numPins reports ErrNumPins.
func NewMatrixAlloc(numPins int, alloc Allocator) (m *Matrix, err error) {
	if numPins < 0 {
		err = ErrNumPins
		return
	}
	if alloc == nil {
		alloc = Heap{}
	}

	if err = alloc.Alloc(STAGE_MATRIX, 1); err != nil {
		return
	}
	m = &Matrix{
		NumPins: numPins,
		alloc:   alloc,
	}

	if err = alloc.Alloc(STAGE_PORTS, 1); err != nil {
		m.Destroy()
		m = nil
		return
	}
	m.Pins = make([][][]Cell, MAX_PORTS)

	for port := range m.Pins {
		if err = alloc.Alloc(STAGE_SLOTS, 1); err != nil {
			m.Destroy()
			m = nil
			return
		}
		m.Pins[port] = make([][]Cell, numPins)

		for pin := range m.Pins[port] {
			if err = alloc.Alloc(STAGE_CELLS, 1); err != nil {
				m.Destroy()
				m = nil
				return
			}
			m.Pins[port][pin] = make([]Cell, MAX_FUNCS)
		}
	}

	return
}

// Destroy releases everything the matrix owns, bottom-up: function cell
// arrays, then pin slot arrays, then the port array, then the record
// itself. Each field is nilled as it is released, so a repeated Destroy
// observes only absent structures and does nothing. Sub-structures that
// were never built (a construction that failed midway) are skipped.
//
// Destroy on a nil matrix reports ErrMatrixNil and takes no action.
func (m *Matrix) Destroy() (err error) {
	if m == nil {
		err = ErrMatrixNil
		return
	}
	if m.alloc == nil {
		m.alloc = Heap{}
	}

	if m.Pins != nil {
		for port := range m.Pins {
			if m.Pins[port] == nil {
				continue
			}
			for pin := range m.Pins[port] {
				if m.Pins[port][pin] == nil {
					continue
				}
				m.Pins[port][pin] = nil
				m.alloc.Free(STAGE_CELLS, 1)
			}
			m.Pins[port] = nil
			m.alloc.Free(STAGE_SLOTS, 1)
		}
		m.Pins = nil
		m.alloc.Free(STAGE_PORTS, 1)
	}

	if !m.released {
		m.released = true
		m.alloc.Free(STAGE_MATRIX, 1)
	}

	return
}

// Get returns the cell at (port, pin, fn).
func (m *Matrix) Get(port Port, pin int, fn Func) (cell Cell, err error) {
	if err = m.check(port, pin, fn); err != nil {
		return
	}
	cell = m.Pins[port][pin][fn]

	return
}

// Set writes the cell at (port, pin, fn).
func (m *Matrix) Set(port Port, pin int, fn Func, cell Cell) (err error) {
	if err = m.check(port, pin, fn); err != nil {
		return
	}
	m.Pins[port][pin][fn] = cell

	return
}

func (m *Matrix) check(port Port, pin int, fn Func) (err error) {
	if m == nil || m.Pins == nil {
		err = ErrMatrixNil
		return
	}
	if port < 0 || port >= MAX_PORTS ||
		pin < 0 || pin >= m.NumPins ||
		fn < 0 || fn >= MAX_FUNCS {
		err = ErrBounds
	}

	return
}
