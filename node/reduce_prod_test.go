package node_test

import (
	"testing"

	"github.com/adgraph/adgraph/node"
	"github.com/stretchr/testify/require"
)

func TestProdBasic(t *testing.T) {
	a, b, c := scalarLeaf(2), scalarLeaf(3), scalarLeaf(4)
	prod, err := node.NewProd(a, b, c)
	require.NoError(t, err)

	val := autodiff(prod)
	require.InDelta(t, 24, val.AtFlat(0), 1e-12)
	require.InDelta(t, 12, a.GetAdj(0), 1e-12) // 3*4
	require.InDelta(t, 8, b.GetAdj(0), 1e-12)   // 2*4
	require.InDelta(t, 6, c.GetAdj(0), 1e-12)   // 2*3
}

// TestProdWithOneZeroFactor exercises the zero-guarded branch of Beval:
// when exactly one factor is zero, its own derivative is the product of
// the other factors, while every other factor's derivative is zero.
func TestProdWithOneZeroFactor(t *testing.T) {
	a, b, c := scalarLeaf(0), scalarLeaf(3), scalarLeaf(4)
	prod, err := node.NewProd(a, b, c)
	require.NoError(t, err)

	val := autodiff(prod)
	require.InDelta(t, 0, val.AtFlat(0), 1e-12)
	require.InDelta(t, 12, a.GetAdj(0), 1e-12) // 3*4, the other two factors
	require.InDelta(t, 0, b.GetAdj(0), 1e-12)
	require.InDelta(t, 0, c.GetAdj(0), 1e-12)
}

func TestProdRejectsNonScalarChild(t *testing.T) {
	v := node.NewLeaf(mustVector(2), []float64{1, 2})
	_, err := node.NewProd(v)
	require.ErrorIs(t, err, node.ErrShapeMismatch)
}

func TestProdFunc(t *testing.T) {
	leaves := []*node.Leaf{scalarLeaf(1), scalarLeaf(2), scalarLeaf(3)}
	prod, err := node.ProdFunc(len(leaves), func(i int) node.Node { return leaves[i] })
	require.NoError(t, err)

	val := autodiff(prod)
	require.InDelta(t, 6, val.AtFlat(0), 1e-12)
}
