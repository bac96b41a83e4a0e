package node

import (
	"github.com/adgraph/adgraph/shape"
	"github.com/adgraph/adgraph/storage"
)

// Norm computes the squared Euclidean norm of a Vector child: Σ x_i².
// Backward adjoint to x is 2·seed·x.
type Norm struct {
	child Node
	out   storage.Storage
	seed  storage.Storage // scratch sized to child's shape
	bound bool
}

// NewNorm constructs a Norm over child. Returns ErrShapeMismatch if child
// is not Vector-shaped.
func NewNorm(child Node) (*Norm, error) {
	if child.Shape().Kind != shape.Vector {
		return nil, ErrShapeMismatch
	}

	return &Norm{child: child}, nil
}

// Shape is always Scalar.
func (n *Norm) Shape() shape.Shape { return shape.NewScalar() }

// ValueBufferSize is this node's own scalar output cell plus the child's
// requirement.
func (n *Norm) ValueBufferSize() int { return 1 + n.child.ValueBufferSize() }

// AdjointBufferSize is a scratch slot sized to the child's shape plus the
// child's own requirement.
func (n *Norm) AdjointBufferSize() int { return n.child.Shape().Size() + n.child.AdjointBufferSize() }

// Children returns the vector sub-expression being normed.
func (n *Norm) Children() []Node { return []Node{n.child} }

// Bind recurses into the child, then claims this node's output cell and
// scratch slot.
func (n *Norm) Bind(a *Arena) {
	n.child.Bind(a)
	n.out = a.AllocVal(1, shape.NewScalar())
	n.seed = a.AllocAdj(n.child.Shape().Size(), n.child.Shape())
	n.bound = true
}

// Feval computes Σ x_i² over the child's value.
func (n *Norm) Feval() storage.Storage {
	checkBound(n.bound)
	cv := n.child.Feval()
	n.out.SetFlat(0, cv.SumSquares())

	return n.out
}

// Beval forwards 2·seed·x_i to the child.
func (n *Norm) Beval(seed storage.Storage) {
	checkBound(n.bound)
	g := seed.AtFlat(0)
	cv := n.child.Feval()
	sz := cv.Size()
	for i := 0; i < sz; i++ {
		n.seed.SetFlat(i, 2*g*cv.AtFlat(i))
	}
	n.child.Beval(n.seed)
}
