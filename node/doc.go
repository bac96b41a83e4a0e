// Package node implements the expression-graph algebra: the Node contract
// every construct satisfies, leaves/views/constants, unary and binary
// elementwise operators, assignment and compound assignment, sequencing
// ("glue"), and the reductions (sum, product, norm, dot).
//
// A Node describes a computation without performing it. Composing nodes
// builds a tree by value — children are owned by their parent struct, and
// the only sharing mechanism is a Leaf or View referenced from more than
// one position, whose Beval accumulates contributions from every position
// that calls it. The tree is never treated as a DAG for caching purposes.
//
// Every Node is bound to a shared evaluation arena (see Arena) before it
// can be evaluated: Bind hands each node an exclusive, non-overlapping
// sub-slice of the arena's value and adjoint buffers, mirroring how a Go
// slice already encapsulates an offset, a length, and a shared backing
// array — no manual offset bookkeeping is needed once a node has its own
// sub-slice.
package node
