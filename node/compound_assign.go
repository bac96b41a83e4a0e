package node

import (
	"github.com/adgraph/adgraph/shape"
	"github.com/adgraph/adgraph/storage"
)

// CompoundOp names which compound-assignment this node performs.
type CompoundOp int

const (
	// AddAssign is `lhs += rhs`.
	AddAssign CompoundOp = iota
	// SubAssign is `lhs -= rhs`.
	SubAssign
	// MulAssign is `lhs *= rhs`.
	MulAssign
	// DivAssign is `lhs /= rhs`.
	DivAssign
)

// partials returns (∂new/∂old, ∂new/∂rhs) for a compound op, evaluated at
// the pre-op lhs value `old` and the rhs value `y`.
func (op CompoundOp) partials(old, y float64) (dOld, dRhs float64) {
	switch op {
	case AddAssign:
		return 1, 1
	case SubAssign:
		return 1, -1
	case MulAssign:
		return y, old
	case DivAssign:
		return 1 / y, -old / (y * y)
	default:
		return 0, 0
	}
}

func (op CompoundOp) apply(old, y float64) float64 {
	switch op {
	case AddAssign:
		return old + y
	case SubAssign:
		return old - y
	case MulAssign:
		return old * y
	case DivAssign:
		return old / y
	default:
		return old
	}
}

// CompoundAssign implements `lhs += rhs`, `lhs -= rhs`, `lhs *= rhs`, and
// `lhs /= rhs`. The node caches both the pre-operation lhs value
// and the rhs value as they stood during Feval, so its backward pass can
// apply the product rule correctly even when rhs itself reads lhs (e.g.
// `v *= v`): without both caches, Beval's only way to recover either value
// would be to call Feval again on lhs/rhs, which by backward time returns
// lhs's post-op (already mutated) value — wrong for any rhs that reads lhs
// directly or transitively, not just the literal `v *= v` case.
//
// Backward treats lhs's adjoint slot as a running register that Beval
// both reads and rewrites rather than purely accumulates: the value
// present when this node's Beval runs is the total gradient flowing back
// from every later use of lhs (since Glue runs backward in reverse
// construction order, and a compound assignment reuses the same leaf
// storage across an entire sequence), and after this node is done, the
// register holds the gradient with respect to the *pre-op* lhs value, for
// whatever statement executed before this one in the same sequence.
type CompoundAssign struct {
	op  CompoundOp
	lhs Writable
	rhs Node

	prevVal storage.Storage // scratch: lhs value cached before the op runs
	rhsVal  storage.Storage // scratch: rhs value cached at Feval time
	postVal storage.Storage // scratch: lhs value cached after the op runs
	rAdj    storage.Storage // scratch: contribution to rhs's adjoint
	bound   bool
}

// NewCompoundAssign constructs a CompoundAssign node. Returns
// ErrShapeMismatch unless rhs is the lhs's own shape or a scalar broadcast.
func NewCompoundAssign(op CompoundOp, lhs Writable, rhs Node) (*CompoundAssign, error) {
	if !rhs.Shape().Equal(lhs.Shape()) && rhs.Shape().Kind != shape.Scalar {
		return nil, ErrShapeMismatch
	}

	return &CompoundAssign{op: op, lhs: lhs, rhs: rhs}, nil
}

// Shape returns the lhs's shape.
func (c *CompoundAssign) Shape() shape.Shape { return c.lhs.Shape() }

// ValueBufferSize is the lhs-shaped pre-op and post-op cache slots, the
// rhs-shaped cache slot, plus rhs's own requirement.
func (c *CompoundAssign) ValueBufferSize() int {
	return 2*c.lhs.Shape().Size() + c.rhs.Shape().Size() + c.rhs.ValueBufferSize()
}

// AdjointBufferSize is a scratch slot sized to rhs's shape plus rhs's own
// requirement.
func (c *CompoundAssign) AdjointBufferSize() int {
	return c.rhs.Shape().Size() + c.rhs.AdjointBufferSize()
}

// Children returns the lhs target and the rhs expression, in that order.
func (c *CompoundAssign) Children() []Node { return []Node{c.lhs, c.rhs} }

// Bind recurses into rhs, then claims this node's cache and scratch slots.
func (c *CompoundAssign) Bind(a *Arena) {
	c.lhs.Bind(a)
	c.rhs.Bind(a)
	c.prevVal = a.AllocVal(c.lhs.Shape().Size(), c.lhs.Shape())
	c.rhsVal = a.AllocVal(c.rhs.Shape().Size(), c.rhs.Shape())
	c.postVal = a.AllocVal(c.lhs.Shape().Size(), c.lhs.Shape())
	c.rAdj = a.AllocAdj(c.rhs.Shape().Size(), c.rhs.Shape())
	c.bound = true
}

// Feval caches the pre-op lhs value and the rhs value, applies the op
// elementwise from those cached values (broadcasting a scalar rhs), and
// writes the result into lhs. Both caches are taken before lhs is
// overwritten, so a later Beval never needs to re-evaluate rhs against
// lhs's already-mutated storage.
func (c *CompoundAssign) Feval() storage.Storage {
	checkBound(c.bound)
	c.prevVal.CopyFrom(c.lhs.Value())
	rv := c.rhs.Feval()
	c.rhsVal.CopyFrom(rv)

	broadcastR := rv.Shape().Kind != c.lhs.Shape().Kind && rv.Size() == 1
	n := c.lhs.Shape().Size()
	for i := 0; i < n; i++ {
		old := c.prevVal.AtFlat(i)
		y := c.rhsVal.AtFlat(0)
		if !broadcastR {
			y = c.rhsVal.AtFlat(i)
		}
		c.lhs.Value().SetFlat(i, c.op.apply(old, y))
	}

	return c.lhs.Value()
}

// Beval reads the current total gradient at lhs (the running register
// described above), splits it into a contribution to rhs and a rewritten
// contribution to the pre-op lhs value via the product rule, forwards the
// rhs contribution to rhs.Beval, and leaves the pre-op contribution in
// lhs's adjoint register for whatever runs before this node in the
// sequence. The old/y values driving the partials come from the Feval-time
// caches, never from re-deriving rhs's value at backward time.
//
// Before calling rhs.Beval, lhs's storage is temporarily rewound to its
// pre-op value: rhs's own subtree may reference lhs (the aliasing case
// this node exists for), and its Beval in turn re-derives local partials
// from its children's current Feval() results, which must see lhs as it
// stood when this op actually ran, not the post-op value sitting in lhs's
// storage at backward time. The post-op value is restored immediately
// after so any step earlier in the same sequence still observes it.
func (c *CompoundAssign) Beval(seed storage.Storage) {
	checkBound(c.bound)
	c.lhs.Adjoint().AddFrom(seed)

	broadcastR := c.rhsVal.Shape().Kind != c.lhs.Shape().Kind && c.rhsVal.Size() == 1
	if broadcastR {
		c.rAdj.SetFlat(0, 0)
	}

	n := c.lhs.Shape().Size()
	for i := 0; i < n; i++ {
		old := c.prevVal.AtFlat(i)
		y := c.rhsVal.AtFlat(0)
		if !broadcastR {
			y = c.rhsVal.AtFlat(i)
		}
		g := c.lhs.Adjoint().AtFlat(i)
		dOld, dRhs := c.op.partials(old, y)

		if broadcastR {
			c.rAdj.SetFlat(0, c.rAdj.AtFlat(0)+g*dRhs)
		} else {
			c.rAdj.SetFlat(i, g*dRhs)
		}
		c.lhs.Adjoint().SetFlat(i, g*dOld)
	}

	c.postVal.CopyFrom(c.lhs.Value())
	c.lhs.Value().CopyFrom(c.prevVal)
	c.rhs.Beval(c.rAdj)
	c.lhs.Value().CopyFrom(c.postVal)
}
