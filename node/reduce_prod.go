package node

import (
	"github.com/adgraph/adgraph/shape"
	"github.com/adgraph/adgraph/storage"
)

// Prod reduces n scalar sub-expressions to their product: Π children[i].
// Every child must be Scalar-shaped: the total/x_i backward trick operates
// on a running scalar product, not an elementwise one.
type Prod struct {
	children []Node
	seeds    []storage.Storage // one scalar scratch cell per child
	out      storage.Storage
	bound    bool
}

// NewProd constructs a Prod over the given scalar sub-expressions. Returns
// ErrShapeMismatch if any child is not Scalar-shaped.
func NewProd(children ...Node) (*Prod, error) {
	if len(children) == 0 {
		return nil, ErrEmptyReduction
	}
	for _, c := range children {
		if c.Shape().Kind != shape.Scalar {
			return nil, ErrShapeMismatch
		}
	}

	return &Prod{children: children}, nil
}

// ProdFunc materializes n scalar sub-expressions via f(0), f(1), ...,
// f(n-1) and reduces them with Prod.
func ProdFunc(n int, f func(i int) Node) (*Prod, error) {
	children := make([]Node, n)
	for i := 0; i < n; i++ {
		children[i] = f(i)
	}

	return NewProd(children...)
}

// Shape is always Scalar.
func (p *Prod) Shape() shape.Shape { return shape.NewScalar() }

// ValueBufferSize is this node's own scalar output cell plus every child's
// requirement.
func (p *Prod) ValueBufferSize() int {
	total := 1
	for _, c := range p.children {
		total += c.ValueBufferSize()
	}

	return total
}

// AdjointBufferSize is one scalar scratch cell per child plus every
// child's own requirement.
func (p *Prod) AdjointBufferSize() int {
	var total int
	for _, c := range p.children {
		total += 1 + c.AdjointBufferSize()
	}

	return total
}

// Children returns every multiplied sub-expression.
func (p *Prod) Children() []Node { return p.children }

// Bind recurses into every child, then claims this node's output cell and
// each child's scalar scratch cell.
func (p *Prod) Bind(a *Arena) {
	p.seeds = make([]storage.Storage, len(p.children))
	for i, c := range p.children {
		c.Bind(a)
		p.seeds[i] = a.AllocAdj(1, shape.NewScalar())
	}
	p.out = a.AllocVal(1, shape.NewScalar())
	p.bound = true
}

// Feval computes the running product of every child's scalar value.
func (p *Prod) Feval() storage.Storage {
	checkBound(p.bound)
	total := 1.0
	for _, c := range p.children {
		total *= c.Feval().AtFlat(0)
	}
	p.out.SetFlat(0, total)

	return p.out
}

// Beval distributes the product-rule adjoint to each child using the
// total/x_i trick, guarded against division by zero by recomputing the
// product of the other factors whenever exactly one factor is zero (when
// more than one factor is zero, every child's derivative is itself zero).
func (p *Prod) Beval(seed storage.Storage) {
	checkBound(p.bound)
	g := seed.AtFlat(0)
	total := p.out.AtFlat(0)

	zeroCount := 0
	zeroIdx := -1
	for i, c := range p.children {
		if c.Feval().AtFlat(0) == 0 {
			zeroCount++
			zeroIdx = i
		}
	}

	for i, c := range p.children {
		xi := c.Feval().AtFlat(0)
		var d float64
		switch {
		case zeroCount == 0:
			d = total / xi
		case zeroCount == 1 && i == zeroIdx:
			d = 1.0
			for j, cj := range p.children {
				if j != i {
					d *= cj.Feval().AtFlat(0)
				}
			}
		default:
			d = 0
		}
		p.seeds[i].SetFlat(0, g*d)
		c.Beval(p.seeds[i])
	}
}
