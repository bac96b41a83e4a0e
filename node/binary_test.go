package node_test

import (
	"testing"

	"github.com/adgraph/adgraph/node"
	"github.com/adgraph/adgraph/shape"
	"github.com/stretchr/testify/require"
)

// TestBinaryChainAddThenSub checks a chained add-then-subtract:
// expr = (x + y) - z. Expect value 0, adjoints 1, 1, -1.
func TestBinaryChainAddThenSub(t *testing.T) {
	x, y, z := scalarLeaf(1), scalarLeaf(2), scalarLeaf(3)
	xy, err := node.NewBinary(node.Add, x, y)
	require.NoError(t, err)
	expr, err := node.NewBinary(node.Sub, xy, z)
	require.NoError(t, err)

	val := autodiff(expr)
	require.InDelta(t, 0, val.AtFlat(0), 1e-12)
	require.InDelta(t, 1, x.GetAdj(0), 1e-12)
	require.InDelta(t, 1, y.GetAdj(0), 1e-12)
	require.InDelta(t, -1, z.GetAdj(0), 1e-12)
}

func TestBinaryShapeMismatchRejected(t *testing.T) {
	v3 := node.NewLeaf(mustVector(3), []float64{1, 2, 3})
	v4 := node.NewLeaf(mustVector(4), []float64{1, 2, 3, 4})
	_, err := node.NewBinary(node.Add, v3, v4)
	require.ErrorIs(t, err, node.ErrShapeMismatch)
}

func TestBinaryScalarBroadcast(t *testing.T) {
	s := scalarLeaf(2)
	v := node.NewLeaf(mustVector(3), []float64{1, 2, 3})
	expr, err := node.NewBinary(node.Mul, s, v)
	require.NoError(t, err)

	val := autodiff(expr)
	require.Equal(t, 3, val.Size())
	require.InDelta(t, 2, val.AtFlat(0), 1e-12)
	require.InDelta(t, 4, val.AtFlat(1), 1e-12)
	require.InDelta(t, 6, val.AtFlat(2), 1e-12)

	// d/ds (s*v_i summed via seed=1 each) = sum(v_i) = 6
	require.InDelta(t, 6, s.GetAdj(0), 1e-12)
	require.InDelta(t, 2, v.GetAdj(0), 1e-12)
	require.InDelta(t, 2, v.GetAdj(1), 1e-12)
	require.InDelta(t, 2, v.GetAdj(2), 1e-12)
}

func mustVector(n int) shape.Shape {
	s, err := shape.NewVector(n)
	if err != nil {
		panic(err)
	}

	return s
}
