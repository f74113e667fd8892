// Package partition sorts tricolor sequences into red, green, blue order.
//
// # Algorithms
//
// Two interchangeable implementations share one contract:
//   - OverrideColors: counting. One pass tallies each category, a second
//     pass overwrites contiguous regions in category order.
//   - PointersSort: Dutch National Flag. A single pass with low, scan and
//     high indices swaps reds to the front and blues to the back.
//
// Neither is stable. Both produce the same partition boundaries.
//
// # Copy-on-write
//
// Both functions clone their input and only ever write to the clone, so
// the caller's Sequence is never modified. Sequences rejected by
// tricolor.IsValidArray come back as an unmodified copy.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-tricolor/tricolor/contrib/partition"
//
//	sorted := partition.PointersSort(tricolor.Sequence{"blue", "red", "green"})
//	// sorted == [red green blue]
//
// For callers that need to tell "nothing to do" from "malformed input",
// Strict and Sort report the rejection reason.
//
// # Generic kernels
//
// ThreeWay and CountingFill work in place on any slice and are what the
// Sequence-level functions are built on.
package partition
