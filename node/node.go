package node

import (
	"github.com/adgraph/adgraph/shape"
	"github.com/adgraph/adgraph/storage"
)

// Node is the common contract every expression-graph construct satisfies:
// leaves, constants, views, unary/binary operators, assignment, glue, and
// the reductions all implement it.
//
//   - Shape reports this node's output value category.
//   - ValueBufferSize/AdjointBufferSize report how many arena cells this
//     node (plus its children) requires; a node that owns its own storage
//     (Leaf, View, Constant) reports 0 for both, since it draws nothing
//     from the shared arena.
//   - Bind recurses into children first, then claims its own sub-slices of
//     the arena for its output value and, if it needs one, a scratch
//     adjoint slot.
//   - Feval computes this node's forward value (children first) and
//     returns a Storage view into the slot Bind claimed.
//   - Beval receives this node's incoming adjoint and distributes
//     contributions to its children's adjoints, using forward values
//     already cached in the arena by the preceding Feval call.
type Node interface {
	Shape() shape.Shape
	ValueBufferSize() int
	AdjointBufferSize() int
	Bind(a *Arena)
	Feval() storage.Storage
	Beval(seed storage.Storage)
}

// Writable is satisfied by expression-graph leaves that own (Leaf) or
// borrow (View) value and adjoint storage directly, rather than drawing a
// scratch slot from the arena. Assign and the compound-assign nodes write
// through a Writable's Value/Adjoint rather than through a Bind-allocated
// slot of their own.
type Writable interface {
	Node
	Value() storage.Storage
	Adjoint() storage.Storage
}

// Parent is implemented by every composite node that owns one or more
// sub-nodes. It lets a generic traversal (the engine package's leaf-adjoint
// reset, in particular) walk the tree without a type switch over every
// concrete node type; Leaf, View, and Constant are terminal and do not
// implement it.
type Parent interface {
	Node
	Children() []Node
}

// Arena is the pair of contiguous scratch buffers one bound expression's
// nodes share: a value arena for forward results and an adjoint arena for
// backward contributions. Bind hands out exclusive sub-slices of each via
// AllocVal/AllocAdj, in the same left-to-right order the size query walked
// the tree, so the two passes agree on offsets.
type Arena struct {
	val    []float64
	adj    []float64
	valPos int
	adjPos int
}

// NewArena allocates a value arena of valSize cells and an adjoint arena of
// adjSize cells.
func NewArena(valSize, adjSize int) *Arena {
	return &Arena{val: make([]float64, valSize), adj: make([]float64, adjSize)}
}

// ZeroAdjoints clears the entire adjoint arena. The engine package calls
// this before every backward pass.
func (a *Arena) ZeroAdjoints() {
	for i := range a.adj {
		a.adj[i] = 0
	}
}

// AllocVal claims the next n cells of the value arena and returns a
// Storage of the given shape viewing them. sh.Size() must equal n.
func (a *Arena) AllocVal(n int, sh shape.Shape) storage.Storage {
	s := storage.View(a.val[a.valPos:a.valPos+n], sh)
	a.valPos += n

	return s
}

// AllocAdj claims the next n cells of the adjoint arena and returns a
// Storage of the given shape viewing them. Leaf, View, and Constant never
// call it: their Bind is a no-op.
func (a *Arena) AllocAdj(n int, sh shape.Shape) storage.Storage {
	s := storage.View(a.adj[a.adjPos:a.adjPos+n], sh)
	a.adjPos += n

	return s
}

// checkBound panics with ErrUnboundEvaluation if a composite node's Feval
// or Beval runs before its Bind call has claimed its arena slots. Leaf,
// View, and Constant need no such check: their Bind is a no-op over
// storage they already own or borrow, so they are always usable.
func checkBound(bound bool) {
	if !bound {
		panic(ErrUnboundEvaluation)
	}
}

// broadcastSeed fills dst with the scalar g, the primitive behind Sum's
// backward pass: a single incoming adjoint value is replicated across a
// wider child shape.
func broadcastSeed(dst storage.Storage, g float64) {
	dst.Fill(g)
}
