package function_test

import (
	"testing"

	"github.com/adgraph/adgraph/function"
	"github.com/adgraph/adgraph/node"
	"github.com/adgraph/adgraph/shape"
	"github.com/stretchr/testify/require"
)

// quadraticBuilder builds outputs [x0^2 + x1, x0*x1] for a 2-element input,
// with no work variables. Its Jacobian at (a,b) is [[2a, 1], [b, a]].
func quadraticBuilder(x []*node.Leaf, _ []*node.Leaf) []node.Node {
	sq0 := node.NewUnary(node.Pow(2), x[0])
	out0, err := node.NewBinary(node.Add, sq0, x[1])
	if err != nil {
		panic(err)
	}
	out1, err := node.NewBinary(node.Mul, x[0], x[1])
	if err != nil {
		panic(err)
	}

	return []node.Node{out0, out1}
}

func TestJacobianSequential(t *testing.T) {
	f := function.New(2, nil, quadraticBuilder)

	jac, err := f.Jacobian([]float64{3, 4})
	require.NoError(t, err)

	require.InDelta(t, 6, jac.At2(0, 0), 1e-9) // d(x0^2+x1)/dx0 = 2*3
	require.InDelta(t, 1, jac.At2(0, 1), 1e-9) // d(x0^2+x1)/dx1 = 1
	require.InDelta(t, 4, jac.At2(1, 0), 1e-9) // d(x0*x1)/dx0 = x1
	require.InDelta(t, 3, jac.At2(1, 1), 1e-9) // d(x0*x1)/dx1 = x0
}

func TestJacobianInputSizeMismatch(t *testing.T) {
	f := function.New(2, nil, quadraticBuilder)

	_, err := f.Jacobian([]float64{1})
	require.ErrorIs(t, err, function.ErrInputSizeMismatch)
}

// manyOutputsBuilder builds n independent scalar outputs x_i^2, each a
// disjoint subtree over its own x[i] — exercising the pool-dispatch path,
// where m (here 12) reaches the default parallel threshold of 10.
func manyOutputsBuilder(x []*node.Leaf, _ []*node.Leaf) []node.Node {
	outs := make([]node.Node, len(x))
	for i, xi := range x {
		outs[i] = node.NewUnary(node.Pow(2), xi)
	}

	return outs
}

func TestJacobianParallelMatchesSequential(t *testing.T) {
	const n = 12
	x0 := make([]float64, n)
	for i := range x0 {
		x0[i] = float64(i + 1)
	}

	seqFn := function.New(n, nil, manyOutputsBuilder)
	seqJac, err := seqFn.Jacobian(x0)
	require.NoError(t, err)

	parFn := function.New(n, nil, manyOutputsBuilder,
		function.WithParallelJacobian(),
		function.WithJacobianParallelThreshold(10),
		function.WithPoolSize(4),
	)
	parJac, err := parFn.Jacobian(x0)
	require.NoError(t, err)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			require.InDelta(t, seqJac.At2(i, j), parJac.At2(i, j), 1e-9)
		}
	}
	// d(x_i^2)/dx_i = 2*x_i, all cross-partials are zero.
	for i := 0; i < n; i++ {
		require.InDelta(t, 2*x0[i], parJac.At2(i, i), 1e-9)
	}
}

func TestFunctionWorkVariables(t *testing.T) {
	// out = (w = x0*x1, w*w): reuses the S3 cascade shape, but driven
	// through the Function/Builder surface with an explicit work Variable.
	build := func(x []*node.Leaf, w []*node.Leaf) []node.Node {
		prod, err := node.NewBinary(node.Mul, x[0], x[1])
		require.NoError(t, err)
		assignW, err := node.NewAssign(w[0], prod)
		require.NoError(t, err)
		sq, err := node.NewBinary(node.Mul, w[0], w[0])
		require.NoError(t, err)
		glue, err := node.NewGlue(assignW, sq)
		require.NoError(t, err)

		return []node.Node{glue}
	}

	f := function.New(2, []shape.Shape{shape.NewScalar()}, build)
	jac, err := f.Jacobian([]float64{1, 2})
	require.NoError(t, err)

	require.InDelta(t, 8, jac.At2(0, 0), 1e-9) // d/dx0 (x0 x1)^2 = 2 x0 x1^2 = 8
	require.InDelta(t, 4, jac.At2(0, 1), 1e-9) // d/dx1 (x0 x1)^2 = 2 x1 x0^2 = 4
}
