package node

import "math"

// UnaryKernel names a scalar function f and its derivative Df, evaluated
// elementwise by a Unary node. Df is evaluated at the cached forward input
// value: multiply this node's incoming adjoint by the local
// partial w.r.t. each child (evaluated at the cached forward values)".
type UnaryKernel struct {
	Name string
	F    func(x float64) float64
	Df   func(x float64) float64
}

// Sin is the sine kernel: f(x) = sin(x), f'(x) = cos(x).
var Sin = UnaryKernel{Name: "sin", F: math.Sin, Df: math.Cos}

// Cos is the cosine kernel: f(x) = cos(x), f'(x) = -sin(x).
var Cos = UnaryKernel{Name: "cos", F: math.Cos, Df: func(x float64) float64 { return -math.Sin(x) }}

// Tan is the tangent kernel: f(x) = tan(x), f'(x) = sec²(x) = 1 + tan²(x).
var Tan = UnaryKernel{Name: "tan", F: math.Tan, Df: func(x float64) float64 {
	t := math.Tan(x)
	return 1 + t*t
}}

// Exp is the natural-exponential kernel: f(x) = e^x, f'(x) = e^x.
var Exp = UnaryKernel{Name: "exp", F: math.Exp, Df: math.Exp}

// Log is the natural-logarithm kernel: f(x) = ln(x), f'(x) = 1/x.
// domain violations (x ≤ 0) are not trapped; they pass through as NaN/Inf.
var Log = UnaryKernel{Name: "log", F: math.Log, Df: func(x float64) float64 { return 1 / x }}

// Neg is elementwise negation: f(x) = -x, f'(x) = -1.
var Neg = UnaryKernel{Name: "neg", F: func(x float64) float64 { return -x }, Df: func(float64) float64 { return -1 }}

// Pow returns the integer-exponent power kernel f(x) = x^k, f'(x) = k·x^(k-1).
func Pow(k int) UnaryKernel {
	kf := float64(k)
	return UnaryKernel{
		Name: "pow",
		F:    func(x float64) float64 { return math.Pow(x, kf) },
		Df:   func(x float64) float64 { return kf * math.Pow(x, kf-1) },
	}
}

// BinaryKernel names a scalar function f(x,y) and its partials Dx, Dy,
// evaluated elementwise by a Binary node.
type BinaryKernel struct {
	Name string
	F    func(x, y float64) float64
	Dx   func(x, y float64) float64
	Dy   func(x, y float64) float64
}

// Add is elementwise addition: f = x+y, ∂f/∂x = 1, ∂f/∂y = 1.
var Add = BinaryKernel{
	Name: "add",
	F:    func(x, y float64) float64 { return x + y },
	Dx:   func(float64, float64) float64 { return 1 },
	Dy:   func(float64, float64) float64 { return 1 },
}

// Sub is elementwise subtraction: f = x-y, ∂f/∂x = 1, ∂f/∂y = -1.
var Sub = BinaryKernel{
	Name: "sub",
	F:    func(x, y float64) float64 { return x - y },
	Dx:   func(float64, float64) float64 { return 1 },
	Dy:   func(float64, float64) float64 { return -1 },
}

// Mul is elementwise multiplication: f = x*y, ∂f/∂x = y, ∂f/∂y = x.
var Mul = BinaryKernel{
	Name: "mul",
	F:    func(x, y float64) float64 { return x * y },
	Dx:   func(x, y float64) float64 { return y },
	Dy:   func(x, y float64) float64 { return x },
}

// Div is elementwise division: f = x/y, ∂f/∂x = 1/y, ∂f/∂y = -x/y².
var Div = BinaryKernel{
	Name: "div",
	F:    func(x, y float64) float64 { return x / y },
	Dx:   func(x, y float64) float64 { return 1 / y },
	Dy:   func(x, y float64) float64 { return -x / (y * y) },
}
