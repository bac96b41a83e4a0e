package storage

import (
	"fmt"

	"github.com/adgraph/adgraph/shape"
)

// storageErrorf wraps an underlying error with a method tag, mirroring the
// tag-then-wrap convention used throughout this codebase's error paths.
func storageErrorf(tag string, err error) error {
	return fmt.Errorf("storage.%s: %w", tag, err)
}

// Storage is a Shape paired with a flat, row-major float64 slice. For a
// Matrix(r,c) shape, element (i,j) lives at data[i*c+j]; for a Vector(n),
// element i lives at data[i]; a Scalar has exactly one cell at data[0].
type Storage struct {
	sh   shape.Shape
	data []float64
}

// View wraps an existing slice as a Storage of the given shape. The slice's
// length must equal sh.Size(); callers that allocate sub-slices out of a
// shared arena (see the node and engine packages) satisfy this by
// construction.
func View(data []float64, sh shape.Shape) Storage {
	return Storage{sh: sh, data: data[:sh.Size()]}
}

// NewOwned allocates a fresh, zero-filled Storage of the given shape. Used
// by Leaf and Constant, which own their buffers rather than drawing them
// from a shared evaluation arena.
func NewOwned(sh shape.Shape) Storage {
	return Storage{sh: sh, data: make([]float64, sh.Size())}
}

// Shape returns this storage's value-category tag.
func (s Storage) Shape() shape.Shape { return s.sh }

// Size returns the number of float64 cells this storage spans.
func (s Storage) Size() int { return len(s.data) }

// AtFlat returns the i-th cell in row-major order, valid for any shape.
// Panics with ErrIndexOutOfBounds if i is outside this storage's span,
// rather than letting the index reach the backing slice and panic with a
// bare Go runtime error.
func (s Storage) AtFlat(i int) float64 {
	if i < 0 || i >= len(s.data) {
		panic(storageErrorf("AtFlat", ErrIndexOutOfBounds))
	}

	return s.data[i]
}

// SetFlat writes the i-th cell in row-major order, valid for any shape.
// Panics with ErrIndexOutOfBounds if i is outside this storage's span.
func (s Storage) SetFlat(i int, v float64) {
	if i < 0 || i >= len(s.data) {
		panic(storageErrorf("SetFlat", ErrIndexOutOfBounds))
	}
	s.data[i] = v
}

// At2 returns the (row,col) element of a Matrix-shaped storage. Panics
// with ErrIndexOutOfBounds if row or col is outside this storage's shape.
func (s Storage) At2(row, col int) float64 {
	if row < 0 || row >= s.sh.Rows || col < 0 || col >= s.sh.Cols {
		panic(storageErrorf("At2", ErrIndexOutOfBounds))
	}

	return s.data[row*s.sh.Cols+col]
}

// Set2 writes the (row,col) element of a Matrix-shaped storage. Panics
// with ErrIndexOutOfBounds if row or col is outside this storage's shape.
func (s Storage) Set2(row, col int, v float64) {
	if row < 0 || row >= s.sh.Rows || col < 0 || col >= s.sh.Cols {
		panic(storageErrorf("Set2", ErrIndexOutOfBounds))
	}
	s.data[row*s.sh.Cols+col] = v
}

// Fill overwrites every cell with v.
func (s Storage) Fill(v float64) {
	for i := range s.data {
		s.data[i] = v
	}
}

// Zero overwrites every cell with 0.
func (s Storage) Zero() {
	for i := range s.data {
		s.data[i] = 0
	}
}

// CopyFrom overwrites this storage's cells with src's, in flat order. The
// caller must ensure equal size; this is the copy the Assign node performs
// from an rhs's computed value into an lhs leaf/view's owned buffer.
func (s Storage) CopyFrom(src Storage) {
	copy(s.data, src.data)
}

// AddFrom accumulates src's cells into this storage's cells, in flat order
// (s[i] += src[i]). This is the leaf-adjoint accumulation primitive: it is
// never an overwrite, so the same leaf may appear in many positions and
// still receive the sum of every position's contribution.
func (s Storage) AddFrom(src Storage) {
	for i := range s.data {
		s.data[i] += src.data[i]
	}
}

// Sum returns the flat sum of every cell, used by the Sum reduction.
func (s Storage) Sum() float64 {
	var total float64
	for _, v := range s.data {
		total += v
	}

	return total
}

// SumSquares returns the flat sum of squares of every cell, used by the
// Norm reduction's forward pass.
func (s Storage) SumSquares() float64 {
	var total float64
	for _, v := range s.data {
		total += v * v
	}

	return total
}

// Row returns a non-owning view of row i of a Matrix-shaped storage, as a
// Vector(Cols) storage aliasing the same backing array.
func (s Storage) Row(i int) (Storage, error) {
	if s.sh.Kind != shape.Matrix {
		return Storage{}, storageErrorf("Row", ErrNotMatrix)
	}
	rowShape, err := shape.NewVector(s.sh.Cols)
	if err != nil {
		return Storage{}, storageErrorf("Row", err)
	}
	lo := i * s.sh.Cols

	return Storage{sh: rowShape, data: s.data[lo : lo+s.sh.Cols]}, nil
}

// Head returns a non-owning view of the first n cells of a Vector-shaped
// storage, aliasing the same backing array.
func (s Storage) Head(n int) (Storage, error) {
	if s.sh.Kind != shape.Vector {
		return Storage{}, storageErrorf("Head", fmt.Errorf("%w", ErrNotMatrix))
	}
	vs, err := shape.NewVector(n)
	if err != nil {
		return Storage{}, storageErrorf("Head", err)
	}

	return Storage{sh: vs, data: s.data[:n]}, nil
}

// Tail returns a non-owning view of the last n cells of a Vector-shaped
// storage, aliasing the same backing array.
func (s Storage) Tail(n int) (Storage, error) {
	if s.sh.Kind != shape.Vector {
		return Storage{}, storageErrorf("Tail", fmt.Errorf("%w", ErrNotMatrix))
	}
	vs, err := shape.NewVector(n)
	if err != nil {
		return Storage{}, storageErrorf("Tail", err)
	}
	lo := len(s.data) - n

	return Storage{sh: vs, data: s.data[lo:]}, nil
}
