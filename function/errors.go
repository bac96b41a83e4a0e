package function

import "errors"

// Sentinel errors for Function construction and Jacobian assembly.
var (
	// ErrInputSizeMismatch indicates Jacobian was called with an x0 slice
	// whose length does not equal the Function's declared input size.
	ErrInputSizeMismatch = errors.New("function: input vector size mismatch")

	// ErrNoOutputs indicates a Builder returned zero output expressions.
	ErrNoOutputs = errors.New("function: builder produced no outputs")

	// ErrNonScalarOutput indicates one of the Builder's output expressions
	// was not Scalar-shaped; the Jacobian layer assembles one row per
	// scalar output only.
	ErrNonScalarOutput = errors.New("function: jacobian output must be scalar")
)
