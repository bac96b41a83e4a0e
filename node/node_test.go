package node_test

import (
	"github.com/adgraph/adgraph/node"
	"github.com/adgraph/adgraph/shape"
	"github.com/adgraph/adgraph/storage"
)

// bindRoot is the minimal two-phase bind+seed-ones backward driver the
// node package's own tests use, standing in for the engine package (which
// adds configuration and the zero/accumulate policy on top of this same
// sequence): query total sizes, allocate one arena, bind, then drive
// forward and backward passes.
func bindRoot(root node.Node) *node.Arena {
	arena := node.NewArena(root.ValueBufferSize(), root.AdjointBufferSize())
	root.Bind(arena)

	return arena
}

func autodiff(root node.Node) storage.Storage {
	arena := bindRoot(root)
	val := root.Feval()
	arena.ZeroAdjoints()
	seed := storage.NewOwned(root.Shape())
	seed.Fill(1)
	root.Beval(seed)

	return val
}

func scalarLeaf(v float64) *node.Leaf {
	return node.NewLeaf(shape.NewScalar(), []float64{v})
}
