package node

import (
	"github.com/adgraph/adgraph/shape"
	"github.com/adgraph/adgraph/storage"
)

// Assign implements `lhs = rhs`: it binds to the lhs Leaf/View's own
// storage (it claims no output slot of its own), copies rhs's computed
// value into lhs on every Feval, and returns that copy.
//
// Backward: the lhs's accumulated adjoint is the incoming seed
// for rhs's backward pass, and the lhs's adjoint is never cleared by this
// node — leaves accumulate across every reference to them, including every
// assignment that targets them.
type Assign struct {
	lhs   Writable
	rhs   Node
	bound bool
}

// NewAssign constructs an Assign node. Returns ErrShapeMismatch if lhs and
// rhs shapes differ.
func NewAssign(lhs Writable, rhs Node) (*Assign, error) {
	if !lhs.Shape().Equal(rhs.Shape()) {
		return nil, ErrShapeMismatch
	}

	return &Assign{lhs: lhs, rhs: rhs}, nil
}

// Shape returns the lhs's (and rhs's) shape.
func (a *Assign) Shape() shape.Shape { return a.lhs.Shape() }

// ValueBufferSize is the rhs's requirement only: Assign itself writes into
// lhs's own owned/borrowed storage, not a new arena slot.
func (a *Assign) ValueBufferSize() int { return a.rhs.ValueBufferSize() }

// AdjointBufferSize is the rhs's requirement only.
func (a *Assign) AdjointBufferSize() int { return a.rhs.AdjointBufferSize() }

// Children returns the lhs target and the rhs expression, in that order.
func (a *Assign) Children() []Node { return []Node{a.lhs, a.rhs} }

// Bind recurses into rhs and the lhs's own (no-op) Bind.
func (a *Assign) Bind(ar *Arena) {
	a.lhs.Bind(ar)
	a.rhs.Bind(ar)
	a.bound = true
}

// Feval computes rhs and copies its value into lhs, returning the copy.
func (a *Assign) Feval() storage.Storage {
	checkBound(a.bound)
	rv := a.rhs.Feval()
	a.lhs.Value().CopyFrom(rv)

	return a.lhs.Value()
}

// Beval accumulates seed into lhs's adjoint, then forwards the resulting
// (possibly already-partially-accumulated, from later references to lhs)
// total as the seed for rhs's backward pass.
func (a *Assign) Beval(seed storage.Storage) {
	checkBound(a.bound)
	a.lhs.Adjoint().AddFrom(seed)
	a.rhs.Beval(a.lhs.Adjoint())
}
