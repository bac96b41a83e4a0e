package storage

import "errors"

// Sentinel errors for storage operations.
var (
	// ErrDimensionMismatch indicates two storages have incompatible shapes
	// for the requested operation.
	ErrDimensionMismatch = errors.New("storage: dimension mismatch")

	// ErrIndexOutOfBounds indicates a flat or (row,col) index fell outside
	// the storage's shape.
	ErrIndexOutOfBounds = errors.New("storage: index out of bounds")

	// ErrNotMatrix indicates a matrix-only operation (Row, MatVec's first
	// argument) was given a non-Matrix storage. Head and Tail also return
	// it when given a non-Vector storage. At2 and Set2 do not check the
	// kind; they panic with ErrIndexOutOfBounds on a bad index.
	ErrNotMatrix = errors.New("storage: not a matrix")
)
