package function

import (
	"github.com/adgraph/adgraph/node"
	"github.com/adgraph/adgraph/shape"
)

// Builder constructs the body of a Function: given n fresh scalar input
// Variables x (one per the Function's declared input size) and a slice of
// fresh, zero-initialized work Variables w (one per shape the Function was
// constructed with), it returns the tuple of output expressions whose
// Jacobian with respect to x is wanted. Every output must be Scalar-shaped.
//
// A Builder is called once per Jacobian call to size the result, and once
// more per row when the Jacobian is evaluated in parallel (see doc.go); it
// must not close over any mutable state shared
// across calls; x and w are its only inputs.
type Builder func(x []*node.Leaf, w []*node.Leaf) []node.Node

// Function packages a Builder together with the input size and work-
// variable shapes it expects, plus the Jacobian-dispatch configuration
// from New's Option arguments.
type Function struct {
	n          int
	workShapes []shape.Shape
	build      Builder
	opts       options
}

// New constructs a Function over n scalar inputs and the given work-
// variable shapes, with build as the expression-graph constructor.
// workShapes may be empty if the Builder needs no scratch variables.
func New(n int, workShapes []shape.Shape, build Builder, opts ...Option) *Function {
	cfg := defaultOptions()
	for _, o := range opts {
		o(&cfg)
	}

	return &Function{n: n, workShapes: workShapes, build: build, opts: cfg}
}

// InputSize returns n, the Function's declared number of scalar inputs.
func (f *Function) InputSize() int { return f.n }

// freshGraph builds one brand-new expression graph instance from f.build:
// n fresh scalar input Leaves seeded from x0, fresh zero-valued work
// Leaves, and whatever output nodes the Builder returns. Every call
// produces storage disjoint from every other call's, which is what makes
// per-row parallel dispatch (see jacobian.go) safe without any node.Node
// needing to support cloning.
func (f *Function) freshGraph(x0 []float64) ([]*node.Leaf, []node.Node, error) {
	if len(x0) != f.n {
		return nil, nil, ErrInputSizeMismatch
	}

	x := make([]*node.Leaf, f.n)
	for i, v := range x0 {
		x[i] = node.NewLeaf(shape.NewScalar(), []float64{v})
	}

	w := make([]*node.Leaf, len(f.workShapes))
	for i, sh := range f.workShapes {
		w[i] = node.NewLeaf(sh, make([]float64, sh.Size()))
	}

	outs := f.build(x, w)
	if len(outs) == 0 {
		return nil, nil, ErrNoOutputs
	}
	for _, o := range outs {
		if o.Shape().Kind != shape.Scalar {
			return nil, nil, ErrNonScalarOutput
		}
	}

	return x, outs, nil
}
