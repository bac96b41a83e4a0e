package shape

import "errors"

// Sentinel errors for shape composition.
var (
	// ErrShapeMismatch indicates an operator was applied to operands whose
	// shapes cannot be composed (unequal, non-scalar-broadcastable shapes).
	ErrShapeMismatch = errors.New("shape: mismatch")

	// ErrNotVector indicates an operation that requires a Vector operand
	// (Norm, the x of Dot) was given a Scalar or Matrix.
	ErrNotVector = errors.New("shape: not a vector")

	// ErrNotMatrix indicates an operation that requires a Matrix operand
	// (the M of Dot) was given a Scalar or Vector.
	ErrNotMatrix = errors.New("shape: not a matrix")

	// ErrInvalidDimensions indicates a non-positive vector length or
	// matrix row/column count was requested.
	ErrInvalidDimensions = errors.New("shape: dimensions must be > 0")
)
