package node

import (
	"github.com/adgraph/adgraph/shape"
	"github.com/adgraph/adgraph/storage"
)

// Dot computes a matrix-vector product v = M·x, for M a Matrix(r,c) and x
// a Vector(c), producing a Vector(r). Backward: M_adj += seed ⊗ xᵀ,
// x_adj += Mᵀ·seed.
type Dot struct {
	m, x Node
	sh   shape.Shape

	out  storage.Storage // Vector(r)
	mAdj storage.Storage // scratch Matrix(r,c), forwarded to m
	xAdj storage.Storage // scratch Vector(c), forwarded to x

	bound bool
}

// NewDot constructs a Dot node. Returns an error if m is not a Matrix, x
// is not a Vector, or their inner dimensions disagree.
func NewDot(m, x Node) (*Dot, error) {
	sh, err := shape.Dot(m.Shape(), x.Shape())
	if err != nil {
		return nil, err
	}

	return &Dot{m: m, x: x, sh: sh}, nil
}

// Shape returns Vector(r) where r = m's row count.
func (d *Dot) Shape() shape.Shape { return d.sh }

// ValueBufferSize is this node's own Vector(r) output plus both children's
// requirements.
func (d *Dot) ValueBufferSize() int {
	return d.sh.Size() + d.m.ValueBufferSize() + d.x.ValueBufferSize()
}

// AdjointBufferSize is the M- and x-shaped scratch slots plus both
// children's own requirements.
func (d *Dot) AdjointBufferSize() int {
	return d.m.Shape().Size() + d.x.Shape().Size() +
		d.m.AdjointBufferSize() + d.x.AdjointBufferSize()
}

// Children returns the matrix and vector operands, in that order.
func (d *Dot) Children() []Node { return []Node{d.m, d.x} }

// Bind recurses into both children, then claims this node's output and
// scratch slots.
func (d *Dot) Bind(a *Arena) {
	d.m.Bind(a)
	d.x.Bind(a)
	d.out = a.AllocVal(d.sh.Size(), d.sh)
	d.mAdj = a.AllocAdj(d.m.Shape().Size(), d.m.Shape())
	d.xAdj = a.AllocAdj(d.x.Shape().Size(), d.x.Shape())
	d.bound = true
}

// Feval computes out = M·x via storage.MatVec.
func (d *Dot) Feval() storage.Storage {
	checkBound(d.bound)
	mv := d.m.Feval()
	xv := d.x.Feval()
	_ = storage.MatVec(mv, xv, d.out) // shapes already validated at construction

	return d.out
}

// Beval computes M_adj = seed ⊗ xᵀ and x_adj = Mᵀ·seed, then forwards each
// to its child.
func (d *Dot) Beval(seed storage.Storage) {
	checkBound(d.bound)
	mv := d.m.Feval()
	xv := d.x.Feval()
	rows := d.m.Shape().Rows
	cols := d.m.Shape().Cols

	for i := 0; i < rows; i++ {
		si := seed.AtFlat(i)
		for j := 0; j < cols; j++ {
			d.mAdj.Set2(i, j, si*xv.AtFlat(j))
		}
	}
	for j := 0; j < cols; j++ {
		var sum float64
		for i := 0; i < rows; i++ {
			sum += mv.At2(i, j) * seed.AtFlat(i)
		}
		d.xAdj.SetFlat(j, sum)
	}

	d.m.Beval(d.mAdj)
	d.x.Beval(d.xAdj)
}
