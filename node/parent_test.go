package node_test

import (
	"testing"

	"github.com/adgraph/adgraph/node"
	"github.com/stretchr/testify/require"
)

// TestParentChildrenTraversal covers the node.Parent contract that the
// engine package's leaf-adjoint reset relies on: every composite node's
// Children are reachable, and terminal nodes (Leaf) do not implement
// Parent at all.
func TestParentChildrenTraversal(t *testing.T) {
	x := scalarLeaf(2)
	y := scalarLeaf(3)

	_, isParent := node.Node(x).(node.Parent)
	require.False(t, isParent, "a Leaf is terminal and must not implement Parent")

	prod, err := node.NewBinary(node.Mul, x, y)
	require.NoError(t, err)

	p, ok := node.Node(prod).(node.Parent)
	require.True(t, ok, "Binary must implement Parent")
	require.Equal(t, []node.Node{node.Node(x), node.Node(y)}, p.Children())

	glue, err := node.NewGlue(prod, x)
	require.NoError(t, err)
	gp, ok := node.Node(glue).(node.Parent)
	require.True(t, ok, "Glue must implement Parent")
	require.Len(t, gp.Children(), 2)

	// Walk the whole tree collecting every Writable (Leaf/View) reachable,
	// the same traversal engine.Bind performs for leaf-adjoint resets.
	var leaves []node.Writable
	var walk func(n node.Node)
	walk = func(n node.Node) {
		if w, ok := n.(node.Writable); ok {
			leaves = append(leaves, w)
		}
		if pn, ok := n.(node.Parent); ok {
			for _, c := range pn.Children() {
				walk(c)
			}
		}
	}
	walk(glue)
	require.Len(t, leaves, 3) // x appears in prod and again as glue's second step, plus y once
}
