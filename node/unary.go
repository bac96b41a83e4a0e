package node

import (
	"github.com/adgraph/adgraph/shape"
	"github.com/adgraph/adgraph/storage"
)

// Unary applies a UnaryKernel elementwise to a child node's value. Its
// output shape equals its child's shape (no broadcasting possible with a
// single operand).
type Unary struct {
	kernel UnaryKernel
	child  Node
	sh     shape.Shape

	out   storage.Storage // this node's forward-value slot
	scrAd storage.Storage // scratch: incoming-adjoint-times-local-partial, forwarded to child
	bound bool
}

// NewUnary constructs a Unary node applying kernel to child.
func NewUnary(kernel UnaryKernel, child Node) *Unary {
	return &Unary{kernel: kernel, child: child, sh: child.Shape()}
}

// Shape returns the output shape, identical to the child's.
func (u *Unary) Shape() shape.Shape { return u.sh }

// ValueBufferSize is this node's own output cells plus its child's.
func (u *Unary) ValueBufferSize() int { return u.sh.Size() + u.child.ValueBufferSize() }

// AdjointBufferSize is this node's own scratch cells plus its child's.
func (u *Unary) AdjointBufferSize() int { return u.sh.Size() + u.child.AdjointBufferSize() }

// Children returns the child node this Unary applies its kernel to.
func (u *Unary) Children() []Node { return []Node{u.child} }

// Bind recurses into the child first, then claims this node's own slots.
func (u *Unary) Bind(a *Arena) {
	u.child.Bind(a)
	u.out = a.AllocVal(u.sh.Size(), u.sh)
	u.scrAd = a.AllocAdj(u.sh.Size(), u.sh)
	u.bound = true
}

// Feval evaluates the child, then the kernel elementwise into this node's
// output slot.
func (u *Unary) Feval() storage.Storage {
	checkBound(u.bound)
	cv := u.child.Feval()
	storage.ApplyUnary(u.out, cv, u.kernel.F)

	return u.out
}

// Beval multiplies seed by the kernel's local derivative (evaluated at the
// child's cached forward value) and forwards the product to the child.
func (u *Unary) Beval(seed storage.Storage) {
	checkBound(u.bound)
	cv := u.child.Feval()
	n := u.sh.Size()
	for i := 0; i < n; i++ {
		u.scrAd.SetFlat(i, seed.AtFlat(i)*u.kernel.Df(cv.AtFlat(i)))
	}
	u.child.Beval(u.scrAd)
}
