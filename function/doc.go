// Package function packages a user-provided builder — given n fresh scalar
// input Variables x and a set of fresh work Variables w, returns a tuple of
// output expressions — into a Jacobian layer: for f: ℝⁿ → ℝᵐ, it assembles
// the m×n matrix of partial derivatives row by row, one row per output, by
// binding, seeding output i with 1, backward-propagating, and reading each
// x[j]'s adjoint.
//
// The sequential path builds one graph and evaluates every row against it,
// zeroing the input adjoints before each row. In the parallel path each
// row's expression graph is built fresh from the caller's Builder
// rather than copied from a prototype: evaluating rows in parallel requires
// an explicit deep clone of the graph (including fresh leaf adjoint
// storage) per worker, and re-invoking the builder on brand-new Leaf
// instances is that clone — it produces a graph with no storage in common
// with any other row's, without requiring node.Node to support a generic
// Clone operation it otherwise has no use for.
//
// When the number of outputs m reaches the threshold set by
// WithJacobianParallelThreshold (default 10) and WithParallelJacobian is set, rows are dispatched across a bounded
// worker pool via golang.org/x/sync/errgroup, which bounds concurrency with
// SetLimit and propagates the first row's error. Below the threshold, or
// with pooling disabled (the default), rows run sequentially on the
// caller's goroutine.
package function
