package pins

// Stage identifies one allocation stage of NewMatrixAlloc. Stages are
// acquired top-down and released bottom-up.
type Stage int

const (
	STAGE_MATRIX = Stage(0) // Top-level matrix record.
	STAGE_PORTS  = Stage(1) // Port row array.
	STAGE_SLOTS  = Stage(2) // Per-port pin slot array.
	STAGE_CELLS  = Stage(3) // Per-(port, pin) function cell array.

	MAX_STAGES = 4
)

// Allocator gates and accounts for every structure a Matrix owns.
// Alloc is consulted before each stage allocation; an error aborts the
// stage and rolls back the construction. Free records the release of
// count structures of the given stage during teardown.
type Allocator interface {
	Alloc(stage Stage, count int) error
	Free(stage Stage, count int)
}

// Heap is the production allocator: it never fails and keeps no accounts.
type Heap struct{}

var _ Allocator = Heap{}

func (Heap) Alloc(stage Stage, count int) error { return nil }

func (Heap) Free(stage Stage, count int) {}

// Counting tracks the net number of live structures per stage. A matrix
// created and destroyed through the same Counting allocator returns
// every stage count to zero.
type Counting struct {
	Live [MAX_STAGES]int
}

var _ Allocator = (*Counting)(nil)

func (cnt *Counting) Alloc(stage Stage, count int) (err error) {
	cnt.Live[stage] += count
	return
}

func (cnt *Counting) Free(stage Stage, count int) {
	cnt.Live[stage] -= count
}

// Total returns the net number of live structures across all stages.
func (cnt *Counting) Total() (total int) {
	for _, live := range cnt.Live {
		total += live
	}

	return
}
