package node_test

import (
	"testing"

	"github.com/adgraph/adgraph/node"
	"github.com/stretchr/testify/require"
)

func TestAssignCopiesAndAccumulatesAdjoint(t *testing.T) {
	x := scalarLeaf(3)
	w := scalarLeaf(0) // work variable
	assign, err := node.NewAssign(w, node.NewUnary(node.Neg, x))
	require.NoError(t, err)

	val := autodiff(assign)
	require.InDelta(t, -3, val.AtFlat(0), 1e-12)
	require.InDelta(t, -3, w.Get(0), 1e-12, "Assign must copy rhs into lhs's value buffer")
	require.InDelta(t, 1, w.GetAdj(0), 1e-12, "Assign's own seed accumulates into lhs's adjoint")
	require.InDelta(t, -1, x.GetAdj(0), 1e-12)
}

// TestGlueOfAssignsChainsGradients checks a glue of two assigns, the second
// reading the first's target: w1=1, w2=2, expr = (w3 = w1*w2, w4 = w3*w3).
// Expect w4=4, ∂w4/∂w1 = 2·w1·w2² = 8, ∂w4/∂w2 = 2·w2·w1² = 4.
func TestGlueOfAssignsChainsGradients(t *testing.T) {
	w1 := scalarLeaf(1)
	w2 := scalarLeaf(2)
	w3 := scalarLeaf(0)
	w4 := scalarLeaf(0)

	mul1, err := node.NewBinary(node.Mul, w1, w2)
	require.NoError(t, err)
	assign3, err := node.NewAssign(w3, mul1)
	require.NoError(t, err)

	mul2, err := node.NewBinary(node.Mul, w3, w3)
	require.NoError(t, err)
	assign4, err := node.NewAssign(w4, mul2)
	require.NoError(t, err)

	glue, err := node.NewGlue(assign3, assign4)
	require.NoError(t, err)

	val := autodiff(glue)
	require.InDelta(t, 4, val.AtFlat(0), 1e-12)
	require.InDelta(t, 8, w1.GetAdj(0), 1e-12)
	require.InDelta(t, 4, w2.GetAdj(0), 1e-12)
}

// TestGlueBackwardOrderMatters exercises the reverse-construction-order
// invariant directly: a second step that reads a leaf written by the first
// step must see the first step's effect reflected in its backward
// contribution, which only happens if the last step's backward runs before
// the first step's.
func TestGlueBackwardOrderMatters(t *testing.T) {
	a := scalarLeaf(5)
	w := scalarLeaf(0)
	assignW, err := node.NewAssign(w, a)
	require.NoError(t, err)
	square, err := node.NewBinary(node.Mul, w, w)
	require.NoError(t, err)

	glue, err := node.NewGlue(assignW, square)
	require.NoError(t, err)

	val := autodiff(glue)
	require.InDelta(t, 25, val.AtFlat(0), 1e-12)
	require.InDelta(t, 10, a.GetAdj(0), 1e-12, "d(w^2)/da = 2w = 2a = 10")
}
