package engine

import "errors"

// Sentinel errors for the binder/evaluator.
var (
	// ErrNilRoot indicates Bind was called with a nil root node.
	ErrNilRoot = errors.New("engine: root node is nil")

	// ErrShapeMismatch indicates a seed passed to Backward does not match
	// the bound expression's output shape.
	ErrShapeMismatch = errors.New("engine: seed shape does not match root output shape")
)
