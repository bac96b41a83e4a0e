package adgraph

import (
	"github.com/adgraph/adgraph/node"
	"github.com/adgraph/adgraph/shape"
)

// Var constructs an input Variable (node.Leaf) of the given shape,
// initialized from init. It is sugar for node.NewLeaf, letting a caller
// build an expression without importing the node package directly.
func Var(sh shape.Shape, init []float64) *node.Leaf { return node.NewLeaf(sh, init) }

// Const constructs a compile-time-fixed value (node.Constant) of the given
// shape from data. Sugar for node.NewConstant.
func Const(sh shape.Shape, data []float64) *node.Constant { return node.NewConstant(sh, data) }

// Scalar returns the Scalar shape. Sugar for shape.NewScalar.
func Scalar() shape.Shape { return shape.NewScalar() }

// Vector returns a Vector(n) shape. Sugar for shape.NewVector.
func Vector(n int) (shape.Shape, error) { return shape.NewVector(n) }

// Matrix returns a Matrix(r,c) shape. Sugar for shape.NewMatrix.
func Matrix(r, c int) (shape.Shape, error) { return shape.NewMatrix(r, c) }

// Sin, Cos, Tan, Exp, Log, and Neg build a Unary node applying the
// corresponding kernel to child. Sugar over node.NewUnary plus the
// matching node.UnaryKernel value.
func Sin(child node.Node) *node.Unary { return node.NewUnary(node.Sin, child) }
func Cos(child node.Node) *node.Unary { return node.NewUnary(node.Cos, child) }
func Tan(child node.Node) *node.Unary { return node.NewUnary(node.Tan, child) }
func Exp(child node.Node) *node.Unary { return node.NewUnary(node.Exp, child) }
func Log(child node.Node) *node.Unary { return node.NewUnary(node.Log, child) }
func Neg(child node.Node) *node.Unary { return node.NewUnary(node.Neg, child) }

// Pow builds a Unary node raising child to the integer power k.
func Pow(child node.Node, k int) *node.Unary { return node.NewUnary(node.Pow(k), child) }

// Add, Sub, Mul, and Div build a Binary node combining lhs and rhs with the
// corresponding kernel. Sugar over node.NewBinary plus the matching
// node.BinaryKernel value.
func Add(lhs, rhs node.Node) (*node.Binary, error) { return node.NewBinary(node.Add, lhs, rhs) }
func Sub(lhs, rhs node.Node) (*node.Binary, error) { return node.NewBinary(node.Sub, lhs, rhs) }
func Mul(lhs, rhs node.Node) (*node.Binary, error) { return node.NewBinary(node.Mul, lhs, rhs) }
func Div(lhs, rhs node.Node) (*node.Binary, error) { return node.NewBinary(node.Div, lhs, rhs) }

// Sum, Prod, Norm, and Dot are sugar over the matching node reduction
// constructors.
func Sum(children ...node.Node) (*node.Sum, error) { return node.NewSum(children...) }
func Prod(children ...node.Node) (*node.Prod, error) { return node.NewProd(children...) }
func Norm(child node.Node) (*node.Norm, error) { return node.NewNorm(child) }
func Dot(m, x node.Node) (*node.Dot, error) { return node.NewDot(m, x) }

// Assign, AddAssign, SubAssign, MulAssign, and DivAssign are sugar over
// node.NewAssign and node.NewCompoundAssign.
func Assign(lhs node.Writable, rhs node.Node) (*node.Assign, error) {
	return node.NewAssign(lhs, rhs)
}

func AddAssign(lhs node.Writable, rhs node.Node) (*node.CompoundAssign, error) {
	return node.NewCompoundAssign(node.AddAssign, lhs, rhs)
}

func SubAssign(lhs node.Writable, rhs node.Node) (*node.CompoundAssign, error) {
	return node.NewCompoundAssign(node.SubAssign, lhs, rhs)
}

func MulAssign(lhs node.Writable, rhs node.Node) (*node.CompoundAssign, error) {
	return node.NewCompoundAssign(node.MulAssign, lhs, rhs)
}

func DivAssign(lhs node.Writable, rhs node.Node) (*node.CompoundAssign, error) {
	return node.NewCompoundAssign(node.DivAssign, lhs, rhs)
}

// Glue sequences steps in construction order. Sugar over node.NewGlue.
func Glue(steps ...node.Node) (*node.Glue, error) { return node.NewGlue(steps...) }
