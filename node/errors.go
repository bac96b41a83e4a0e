package node

import "errors"

// Sentinel errors for node construction and evaluation.
var (
	// ErrUnboundEvaluation indicates Feval or Beval was called on a node
	// that has not yet been bound to an arena via Bind. Since the Node
	// contract's Feval/Beval carry no error return, every composite node
	// panics with this value rather than reading through a nil arena slot.
	ErrUnboundEvaluation = errors.New("node: evaluation attempted before bind")

	// ErrShapeMismatch indicates an operator node was constructed from
	// operands whose shapes cannot be composed.
	ErrShapeMismatch = errors.New("node: shape mismatch")

	// ErrEmptyReduction indicates Sum, Prod, or Glue was constructed with
	// zero sub-expressions.
	ErrEmptyReduction = errors.New("node: reduction has no operands")
)
