// Package pins models the per-pin configuration state of a small
// microcontroller as a three-level matrix of status cells indexed by
// (port, pin, function).
//
// A Matrix is built in four stages (record, port rows, pin slots,
// function cells) through an Allocator that can account for, or refuse,
// each stage. Construction is all-or-nothing: if any stage fails, every
// structure acquired so far is released through the same Destroy routine
// that handles normal teardown, and no matrix is returned.
//
// Destroy releases the structure bottom-up, nils each field as it goes,
// skips sub-structures that were never built, and is safe to repeat.
// Only a Destroy on a nil matrix reports an error.
package pins
