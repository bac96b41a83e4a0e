package node

import (
	"github.com/adgraph/adgraph/shape"
	"github.com/adgraph/adgraph/storage"
)

// View is a non-owning Leaf: its value and adjoint storage are borrowed
// from the caller rather than allocated by NewView, for the case where a
// leaf's storage actually lives inside some other structure (e.g. a slice
// of a larger vector owned elsewhere). The caller guarantees the borrowed
// storage outlives the View and is not mutated concurrently from outside
// the expression that holds it.
type View struct {
	val storage.Storage
	adj storage.Storage
}

// NewView wraps caller-provided value and adjoint storage as a View. Both
// must share the same Shape.
func NewView(val, adj storage.Storage) (*View, error) {
	if !val.Shape().Equal(adj.Shape()) {
		return nil, ErrShapeMismatch
	}

	return &View{val: val, adj: adj}, nil
}

// Shape returns the View's value category.
func (v *View) Shape() shape.Shape { return v.val.Shape() }

// ValueBufferSize is 0: a View borrows its value storage.
func (v *View) ValueBufferSize() int { return 0 }

// AdjointBufferSize is 0: a View borrows its adjoint storage.
func (v *View) AdjointBufferSize() int { return 0 }

// Bind is a no-op: a View already has its (borrowed) storage.
func (v *View) Bind(_ *Arena) {}

// Feval returns the View's current borrowed value.
func (v *View) Feval() storage.Storage { return v.val }

// Beval accumulates seed into the View's borrowed adjoint.
func (v *View) Beval(seed storage.Storage) { v.adj.AddFrom(seed) }

// Value returns the View's borrowed value storage (Writable).
func (v *View) Value() storage.Storage { return v.val }

// Adjoint returns the View's borrowed adjoint storage (Writable).
func (v *View) Adjoint() storage.Storage { return v.adj }
