package node

import (
	"github.com/adgraph/adgraph/shape"
	"github.com/adgraph/adgraph/storage"
)

// Leaf is an input variable: it owns both its value buffer and its
// adjoint buffer, sized to its Shape. Its adjoint is accumulated
// (never overwritten) so the same Leaf may appear in many positions
// across an expression and still receive the sum of every position's
// contribution.
type Leaf struct {
	sh  shape.Shape
	val storage.Storage
	adj storage.Storage
}

// NewLeaf constructs a Leaf of the given shape, initialized from init
// (copied, not aliased). len(init) must equal sh.Size().
func NewLeaf(sh shape.Shape, init []float64) *Leaf {
	val := storage.NewOwned(sh)
	for i, v := range init {
		val.SetFlat(i, v)
	}

	return &Leaf{sh: sh, val: val, adj: storage.NewOwned(sh)}
}

// Shape returns the Leaf's value category.
func (l *Leaf) Shape() shape.Shape { return l.sh }

// ValueBufferSize is 0: a Leaf owns its value storage directly and draws
// nothing from the shared evaluation arena.
func (l *Leaf) ValueBufferSize() int { return 0 }

// AdjointBufferSize is 0: a Leaf owns its adjoint storage directly.
func (l *Leaf) AdjointBufferSize() int { return 0 }

// Bind is a no-op: a Leaf already has its own storage.
func (l *Leaf) Bind(_ *Arena) {}

// Feval returns the Leaf's current value.
func (l *Leaf) Feval() storage.Storage { return l.val }

// Beval accumulates seed into the Leaf's adjoint.
func (l *Leaf) Beval(seed storage.Storage) { l.adj.AddFrom(seed) }

// Value returns the Leaf's owned value storage (Writable).
func (l *Leaf) Value() storage.Storage { return l.val }

// Adjoint returns the Leaf's owned adjoint storage (Writable).
func (l *Leaf) Adjoint() storage.Storage { return l.adj }

// Get returns the flat i-th cell of the Leaf's current value.
func (l *Leaf) Get(i int) float64 { return l.val.AtFlat(i) }

// GetAdj returns the flat i-th cell of the Leaf's current adjoint.
func (l *Leaf) GetAdj(i int) float64 { return l.adj.AtFlat(i) }

// Set overwrites the flat i-th cell of the Leaf's value, e.g. to re-seed a
// Variable between evaluations without rebinding the expression it
// appears in.
func (l *Leaf) Set(i int, v float64) { l.val.SetFlat(i, v) }

// ResetAdj zeroes the Leaf's adjoint. Used by callers who opt out of the
// engine's automatic reset-on-backward-pass policy and want explicit
// control (see engine.WithAccumulateLeafAdjoints).
func (l *Leaf) ResetAdj() { l.adj.Zero() }

// Size returns the number of cells this Leaf's shape spans.
func (l *Leaf) Size() int { return l.sh.Size() }
