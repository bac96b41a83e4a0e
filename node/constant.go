package node

import (
	"github.com/adgraph/adgraph/shape"
	"github.com/adgraph/adgraph/storage"
)

// Constant holds a compile-time-fixed value with no adjoint storage: its
// backward pass is a no-op, and it is effectively pruned from backward
// traversal since nothing ever reads its (nonexistent) adjoint.
type Constant struct {
	sh  shape.Shape
	val storage.Storage
}

// NewConstant constructs a Constant of the given shape from data (copied,
// not aliased). len(data) must equal sh.Size().
func NewConstant(sh shape.Shape, data []float64) *Constant {
	val := storage.NewOwned(sh)
	for i, v := range data {
		val.SetFlat(i, v)
	}

	return &Constant{sh: sh, val: val}
}

// Shape returns the Constant's value category.
func (c *Constant) Shape() shape.Shape { return c.sh }

// ValueBufferSize is 0: a Constant owns its value storage directly.
func (c *Constant) ValueBufferSize() int { return 0 }

// AdjointBufferSize is 0: a Constant carries no adjoint.
func (c *Constant) AdjointBufferSize() int { return 0 }

// Bind is a no-op: a Constant already has its own storage.
func (c *Constant) Bind(_ *Arena) {}

// Feval returns the Constant's fixed value.
func (c *Constant) Feval() storage.Storage { return c.val }

// Beval is a no-op: constants contribute no leaf adjoint.
func (c *Constant) Beval(_ storage.Storage) {}
