// Package shape defines the value-category tag every expression node
// carries — Scalar, Vector(n), or Matrix(r,c) — and the composition rules
// operators use to derive an output shape from their operands' shapes.
//
// Shape is a closed, three-variant tag: there is no rank promotion beyond
// scalar broadcast. Elementwise operators require identical shapes or one
// operand to be a scalar; Dot requires a Matrix(r,c) paired with a
// Vector(c); Norm collapses a Vector, and Sum any shape, down to a Scalar.
package shape
