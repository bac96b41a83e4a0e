package node_test

import (
	"testing"

	"github.com/adgraph/adgraph/node"
	"github.com/stretchr/testify/require"
)

// TestCompoundAssignSelfAliasing exercises the `v *= v` case directly: rhs
// is the very leaf lhs is about to overwrite, the specific aliasing form
// compound-assign aliasing resolves. Expect s=3 -> 9, d(s*s)/ds = 2s = 6.
func TestCompoundAssignSelfAliasing(t *testing.T) {
	s := scalarLeaf(3)
	ca, err := node.NewCompoundAssign(node.MulAssign, s, s)
	require.NoError(t, err)

	val := autodiff(ca)
	require.InDelta(t, 9, val.AtFlat(0), 1e-12)
	require.InDelta(t, 6, s.GetAdj(0), 1e-12)
}

func TestCompoundAssignOps(t *testing.T) {
	cases := []struct {
		name       string
		op         node.CompoundOp
		lhs0, rhs0 float64
		wantVal    float64
		wantLhsAdj float64
		wantRhsAdj float64
	}{
		{"add", node.AddAssign, 3, 4, 7, 1, 1},
		{"sub", node.SubAssign, 3, 4, -1, 1, -1},
		{"mul", node.MulAssign, 3, 4, 12, 4, 3},
		{"div", node.DivAssign, 8, 4, 2, 0.25, -0.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lhs := scalarLeaf(tc.lhs0)
			rhs := scalarLeaf(tc.rhs0)
			ca, err := node.NewCompoundAssign(tc.op, lhs, rhs)
			require.NoError(t, err)

			val := autodiff(ca)
			require.InDelta(t, tc.wantVal, val.AtFlat(0), 1e-9)
			require.InDelta(t, tc.wantLhsAdj, lhs.GetAdj(0), 1e-9)
			require.InDelta(t, tc.wantRhsAdj, rhs.GetAdj(0), 1e-9)
		})
	}
}

// TestCompoundAssignCascade is a compound-assignment cascade over a vector
// v and a scalar s, chained through Glue: v *= s, then v += (v - s). It
// stresses both the running-register adjoint semantics across a Glue
// sequence and the pre-op/post-op lhs restoration around a rhs subtree
// (v - s) that itself reads the lhs the compound assignment is rewriting.
//
// With v0 = [3, 4], s0 = 2: v1 = v0*s0 = [6, 8]; v2 = v1 + (v1 - s0) =
// 2*v0*s0 - s0 elementwise; out = sum(v2) = 2*s0*sum(v0) - 2*s0.
// d(out)/d(v0_i) = 2*s0 = 4 for each i; d(out)/d(s0) = 2*sum(v0) - 2 = 12.
func TestCompoundAssignCascade(t *testing.T) {
	v := node.NewLeaf(mustVector(2), []float64{3, 4})
	s := scalarLeaf(2)

	step1, err := node.NewCompoundAssign(node.MulAssign, v, s)
	require.NoError(t, err)

	diff, err := node.NewBinary(node.Sub, v, s)
	require.NoError(t, err)
	step2, err := node.NewCompoundAssign(node.AddAssign, v, diff)
	require.NoError(t, err)

	total, err := node.NewSum(v)
	require.NoError(t, err)

	glue, err := node.NewGlue(step1, step2, total)
	require.NoError(t, err)

	val := autodiff(glue)
	require.InDelta(t, 24, val.AtFlat(0), 1e-9)
	require.InDelta(t, 4, v.GetAdj(0), 1e-9)
	require.InDelta(t, 4, v.GetAdj(1), 1e-9)
	require.InDelta(t, 12, s.GetAdj(0), 1e-9)
}
