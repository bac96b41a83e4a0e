package node_test

import (
	"testing"

	"github.com/adgraph/adgraph/node"
	"github.com/stretchr/testify/require"
)

func TestConstantContributesNoAdjoint(t *testing.T) {
	c := node.NewConstant(scalarLeaf(0).Shape(), []float64{4})
	x := scalarLeaf(3)
	expr, err := node.NewBinary(node.Mul, x, c)
	require.NoError(t, err)

	val := autodiff(expr)
	require.InDelta(t, 12, val.AtFlat(0), 1e-12)
	require.InDelta(t, 4, x.GetAdj(0), 1e-12)
	// Constant has no adjoint storage to inspect; Beval on it must simply
	// not panic, which autodiff already exercised.
}
