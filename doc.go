// Package adgraph is your reverse-mode automatic-differentiation engine
// for Go: build an expression graph once, then evaluate its forward value
// and every input's gradient together in one pass.
//
// 🚀 What is adgraph?
//
//	A small, dependency-light library that brings together:
//
//	  • Node algebra: leaves, constants, unary/binary ops, reductions (sum,
//	    product, norm, dot), assignment, compound assignment, glue
//	  • One arena per evaluation: a single contiguous scratch buffer shared
//	    by an entire expression tree, laid out once at bind time
//	  • A Jacobian layer that assembles many scalar outputs into one
//	    matrix, with optional worker-pool dispatch over independent rows
//
// ✨ Why choose adgraph?
//
//   - Predictable   — one value arena, one adjoint arena, per bind; no
//     per-node heap traffic during evaluation
//   - Composable    — nodes are built by value and combined by ownership;
//     the same Leaf may appear in many positions and its adjoint simply
//     accumulates
//   - Extensible    — new elementwise kernels are a UnaryKernel/
//     BinaryKernel value away; new reductions follow the existing Sum/
//     Prod/Norm/Dot shape
//
// Under the hood, everything is organized under five subpackages:
//
//	shape/    — the Scalar/Vector/Matrix value-category tag and its composition rules
//	storage/  — the flat, row-major Storage facade every node's arena slot is a view of
//	node/     — the expression-graph node algebra: leaves, operators, assignment, reductions
//	engine/   — the two-phase binder and forward/backward evaluator
//	function/ — the Function/Jacobian layer, with optional parallel row dispatch
//
// Quick example: z = sin(x) differentiated at x = 3.1.
//
//	x := node.NewLeaf(shape.NewScalar(), []float64{3.1})
//	z := node.NewUnary(node.Sin, x)
//	bound, _ := engine.Bind(z)
//	val, _ := bound.Autodiff()
//	val.AtFlat(0)   // sin(3.1)
//	x.GetAdj(0)     // cos(3.1)
//
//	go get github.com/adgraph/adgraph
package adgraph
