package node

import (
	"github.com/adgraph/adgraph/shape"
	"github.com/adgraph/adgraph/storage"
)

// Sum reduces n sub-expressions (typically produced one-per-element by a
// caller-supplied functor, since Go's Node is already an interface value —
// the "trait-object" path is simply how heterogeneous sub-expression
// collections are represented here, there being no separate monomorphized
// alternative in idiomatic Go) to their total scalar value: Σ children[i].
// Each child may be of any shape; its own elements are summed flat before
// being added to the total, so Sum also serves as the "any → Scalar" full
// reduction.
type Sum struct {
	children []Node
	seeds    []storage.Storage // one per child, sized to that child's shape
	out      storage.Storage
	bound    bool
}

// NewSum constructs a Sum over the given sub-expressions.
func NewSum(children ...Node) (*Sum, error) {
	if len(children) == 0 {
		return nil, ErrEmptyReduction
	}

	return &Sum{children: children}, nil
}

// SumFunc materializes n sub-expressions via f(0), f(1), ..., f(n-1) and
// reduces them with Sum — the iterator-driven lambda-produced sum.
func SumFunc(n int, f func(i int) Node) (*Sum, error) {
	children := make([]Node, n)
	for i := 0; i < n; i++ {
		children[i] = f(i)
	}

	return NewSum(children...)
}

// Shape is always Scalar.
func (s *Sum) Shape() shape.Shape { return shape.NewScalar() }

// ValueBufferSize is this node's own scalar output cell plus every child's
// requirement.
func (s *Sum) ValueBufferSize() int {
	total := 1
	for _, c := range s.children {
		total += c.ValueBufferSize()
	}

	return total
}

// AdjointBufferSize is one broadcast-seed scratch cell per child (sized to
// that child's shape) plus every child's own requirement.
func (s *Sum) AdjointBufferSize() int {
	var total int
	for _, c := range s.children {
		total += c.Shape().Size() + c.AdjointBufferSize()
	}

	return total
}

// Children returns every summed sub-expression.
func (s *Sum) Children() []Node { return s.children }

// Bind recurses into every child, then claims this node's output cell and
// each child's broadcast-seed scratch slot.
func (s *Sum) Bind(a *Arena) {
	s.seeds = make([]storage.Storage, len(s.children))
	for i, c := range s.children {
		c.Bind(a)
		s.seeds[i] = a.AllocAdj(c.Shape().Size(), c.Shape())
	}
	s.out = a.AllocVal(1, shape.NewScalar())
	s.bound = true
}

// Feval sums every child's value (flat-summed if the child is non-scalar).
func (s *Sum) Feval() storage.Storage {
	checkBound(s.bound)
	var total float64
	for _, c := range s.children {
		total += c.Feval().Sum()
	}
	s.out.SetFlat(0, total)

	return s.out
}

// Beval forwards the (scalar) seed, broadcast across each child's shape,
// to every child.
func (s *Sum) Beval(seed storage.Storage) {
	checkBound(s.bound)
	g := seed.AtFlat(0)
	for i, c := range s.children {
		broadcastSeed(s.seeds[i], g)
		c.Beval(s.seeds[i])
	}
}
