package engine

import (
	"github.com/adgraph/adgraph/node"
	"github.com/adgraph/adgraph/storage"
)

// BoundExpr is the result of Bind: a root node.Node together with the
// arena it was laid out into and the policy governing leaf-adjoint
// zeroing between backward passes. It is the engine's evaluator handle —
// the "bind(expr) → BoundExpr" step.
type BoundExpr struct {
	root   node.Node
	arena  *node.Arena
	leaves []node.Writable // every Leaf/View reachable from root, collected once at Bind time
	opts   options
}

// Bind performs the two-phase binding protocol: first it queries
// root's total value- and adjoint-buffer requirements (children recurse and
// sum with their own output cells), then it allocates one contiguous value
// arena and one contiguous adjoint arena sized to those totals and hands
// every node an exclusive, non-overlapping sub-slice of each via a single
// recursive Bind(arena) call. Binding twice (by calling Bind again on the
// same root) is permitted and simply produces a fresh arena:
// rebinding invalidates any offsets a prior BoundExpr captured, but the two
// BoundExprs do not otherwise interfere.
func Bind(root node.Node, opts ...Option) (*BoundExpr, error) {
	if root == nil {
		return nil, ErrNilRoot
	}

	cfg := defaultOptions()
	for _, o := range opts {
		o(&cfg)
	}

	arena := node.NewArena(root.ValueBufferSize(), root.AdjointBufferSize())
	root.Bind(arena)

	return &BoundExpr{root: root, arena: arena, leaves: collectWritable(root), opts: cfg}, nil
}

// collectWritable walks the expression tree rooted at n and returns every
// node.Writable (Leaf or View) it can reach, recursing through node.Parent
// for composite nodes. A node may appear more than once in the result if
// the same Leaf/View is referenced from multiple positions; resetting or
// reading its adjoint through any of those duplicate entries is equivalent
// since they all alias the same owned/borrowed storage.
func collectWritable(n node.Node) []node.Writable {
	var out []node.Writable
	var walk func(node.Node)
	walk = func(n node.Node) {
		if w, ok := n.(node.Writable); ok {
			out = append(out, w)
		}
		if p, ok := n.(node.Parent); ok {
			for _, c := range p.Children() {
				walk(c)
			}
		}
	}
	walk(n)

	return out
}

// Feval drives the forward pass: post-order, children before self, values
// persisting in the arena for the following Backward call to read. It may
// be called any number of times; each call re-derives the forward value
// from the leaves' current values.
func (b *BoundExpr) Feval() storage.Storage {
	return b.root.Feval()
}

// Backward drives the reverse-mode adjoint pass, seeding the root with
// seed (a Storage of the root's own Shape; pass a ones-filled Storage for
// the conventional ∂output/∂output = 1 seed). The shared adjoint arena is
// always zeroed first; under the Reset policy (default) every reachable
// leaf's adjoint is zeroed too, while under AccumulateAdjoints leaf
// adjoints keep their prior values and this call's contributions are
// summed into them.
func (b *BoundExpr) Backward(seed storage.Storage) error {
	if !seed.Shape().Equal(b.root.Shape()) {
		return ErrShapeMismatch
	}

	b.arena.ZeroAdjoints()
	if b.opts.adjointPolicy == ResetAdjoints {
		for _, w := range b.leaves {
			w.Adjoint().Zero()
		}
	}
	b.root.Beval(seed)

	return nil
}

// Autodiff runs Feval followed by a Backward pass seeded with ones across
// the root's output shape — the combined "does both" driver.
func (b *BoundExpr) Autodiff() (storage.Storage, error) {
	val := b.Feval()

	seed := storage.NewOwned(b.root.Shape())
	seed.Fill(1)
	if err := b.Backward(seed); err != nil {
		return storage.Storage{}, err
	}

	return val, nil
}

// Root returns the bound expression's root node, e.g. so a caller can read
// a Leaf's current adjoint via its own Get/GetAdj accessors after a
// Backward pass.
func (b *BoundExpr) Root() node.Node { return b.root }
