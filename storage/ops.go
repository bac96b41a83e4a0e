package storage

import "github.com/adgraph/adgraph/shape"

// Operation name tags, mirroring the op* constant convention used for
// error-wrap context throughout this codebase.
const (
	opMatVec = "MatVec"
)

// ApplyUnary writes f(src[i]) into dst[i] for every cell, in flat order.
// dst and src must have equal size; broadcasting (src smaller than dst) is
// the caller's responsibility, handled explicitly in the node package's
// binary and compound-assign kernels rather than here, since the broadcast
// index rule differs per node kind.
func ApplyUnary(dst, src Storage, f func(float64) float64) {
	for i := range src.data {
		dst.data[i] = f(src.data[i])
	}
}

// MatVec computes out = m · x for a Matrix(r,c) m and Vector(c) x, writing
// into the caller-provided Vector(r) out.
func MatVec(m, x, out Storage) error {
	if m.sh.Kind != shape.Matrix {
		return storageErrorf(opMatVec, ErrNotMatrix)
	}
	if x.sh.Kind != shape.Vector || x.sh.Rows != m.sh.Cols {
		return storageErrorf(opMatVec, ErrDimensionMismatch)
	}
	if out.sh.Kind != shape.Vector || out.sh.Rows != m.sh.Rows {
		return storageErrorf(opMatVec, ErrDimensionMismatch)
	}

	rows, cols := m.sh.Rows, m.sh.Cols
	for i := 0; i < rows; i++ {
		var sum float64
		base := i * cols
		for j := 0; j < cols; j++ {
			sum += m.data[base+j] * x.data[j]
		}
		out.data[i] = sum
	}

	return nil
}
