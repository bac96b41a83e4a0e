package node

import (
	"github.com/adgraph/adgraph/shape"
	"github.com/adgraph/adgraph/storage"
)

// Binary applies a BinaryKernel elementwise to two child nodes' values,
// honoring the limited broadcast rule: operands must share an
// identical shape, or one of them must be a Scalar broadcast across the
// other's shape.
type Binary struct {
	kernel   BinaryKernel
	lhs, rhs Node
	sh       shape.Shape

	out  storage.Storage // this node's forward-value slot
	lAdj storage.Storage // scratch sized to lhs.Shape(), forwarded to lhs
	rAdj storage.Storage // scratch sized to rhs.Shape(), forwarded to rhs

	lBroadcast bool
	rBroadcast bool
	bound      bool
}

// NewBinary constructs a Binary node combining lhs and rhs with kernel.
// Returns ErrShapeMismatch if the shapes cannot be composed.
func NewBinary(kernel BinaryKernel, lhs, rhs Node) (*Binary, error) {
	sh, err := shape.Elementwise(lhs.Shape(), rhs.Shape())
	if err != nil {
		return nil, ErrShapeMismatch
	}

	return &Binary{
		kernel:     kernel,
		lhs:        lhs,
		rhs:        rhs,
		sh:         sh,
		lBroadcast: lhs.Shape().Kind == shape.Scalar && sh.Kind != shape.Scalar,
		rBroadcast: rhs.Shape().Kind == shape.Scalar && sh.Kind != shape.Scalar,
	}, nil
}

// Shape returns the composed output shape.
func (b *Binary) Shape() shape.Shape { return b.sh }

// ValueBufferSize is this node's own output cells plus both children's.
func (b *Binary) ValueBufferSize() int {
	return b.sh.Size() + b.lhs.ValueBufferSize() + b.rhs.ValueBufferSize()
}

// AdjointBufferSize is this node's own per-child scratch cells plus both
// children's.
func (b *Binary) AdjointBufferSize() int {
	return b.lhs.Shape().Size() + b.rhs.Shape().Size() +
		b.lhs.AdjointBufferSize() + b.rhs.AdjointBufferSize()
}

// Children returns the lhs and rhs operands, in that order.
func (b *Binary) Children() []Node { return []Node{b.lhs, b.rhs} }

// Bind recurses into both children, then claims this node's own slots.
func (b *Binary) Bind(a *Arena) {
	b.lhs.Bind(a)
	b.rhs.Bind(a)
	b.out = a.AllocVal(b.sh.Size(), b.sh)
	b.lAdj = a.AllocAdj(b.lhs.Shape().Size(), b.lhs.Shape())
	b.rAdj = a.AllocAdj(b.rhs.Shape().Size(), b.rhs.Shape())
	b.bound = true
}

// Feval evaluates both children, then the kernel elementwise (broadcasting
// a scalar operand across the wider shape) into this node's output slot.
func (b *Binary) Feval() storage.Storage {
	checkBound(b.bound)
	lv := b.lhs.Feval()
	rv := b.rhs.Feval()
	n := b.sh.Size()
	for i := 0; i < n; i++ {
		x := lv.AtFlat(0)
		if !b.lBroadcast {
			x = lv.AtFlat(i)
		}
		y := rv.AtFlat(0)
		if !b.rBroadcast {
			y = rv.AtFlat(i)
		}
		b.out.SetFlat(i, b.kernel.F(x, y))
	}

	return b.out
}

// Beval computes each child's local partial at the cached forward values,
// multiplies by seed, sums broadcast contributions back down to a scalar
// when a child was broadcast, and forwards the result to each child.
func (b *Binary) Beval(seed storage.Storage) {
	checkBound(b.bound)
	lv := b.lhs.Feval()
	rv := b.rhs.Feval()
	n := b.sh.Size()

	if b.lBroadcast {
		b.lAdj.SetFlat(0, 0)
	}
	if b.rBroadcast {
		b.rAdj.SetFlat(0, 0)
	}

	for i := 0; i < n; i++ {
		x := lv.AtFlat(0)
		if !b.lBroadcast {
			x = lv.AtFlat(i)
		}
		y := rv.AtFlat(0)
		if !b.rBroadcast {
			y = rv.AtFlat(i)
		}
		s := seed.AtFlat(i)
		dx := s * b.kernel.Dx(x, y)
		dy := s * b.kernel.Dy(x, y)

		if b.lBroadcast {
			b.lAdj.SetFlat(0, b.lAdj.AtFlat(0)+dx)
		} else {
			b.lAdj.SetFlat(i, dx)
		}
		if b.rBroadcast {
			b.rAdj.SetFlat(0, b.rAdj.AtFlat(0)+dy)
		} else {
			b.rAdj.SetFlat(i, dy)
		}
	}

	b.lhs.Beval(b.lAdj)
	b.rhs.Beval(b.rAdj)
}
