// Package storage provides a uniform facade over a contiguous, row-major
// float64 buffer: a Storage is a Shape paired with a flat slice, letting
// scalar, vector, and matrix values share the same strided-access API.
//
// A Storage never owns a separate backing array beyond the slice it is
// constructed with — it is a view, in the same sense that a Go slice is
// always a view over some backing array. The node package hands out
// sub-slices of one shared evaluation arena (see node.Arena) so that an
// entire expression tree's forward values and adjoints live in two
// contiguous allocations, not one per node.
package storage
