// Package engine is the binder/evaluator that turns a constructed node.Node
// tree into something that can actually be run: it queries the tree's total
// buffer requirements, allocates one value arena and one adjoint arena,
// binds every node to its exclusive sub-slice of each, and then drives the
// forward and backward passes.
//
// A BoundExpr also owns the policy for what happens to leaf adjoints
// between backward passes: by default they are reset to zero so repeated
// calls to Backward produce independent gradients, but a caller that wants
// gradients to accumulate across several seeded passes (e.g. summing
// contributions from multiple loss terms evaluated separately) can opt in
// via WithAccumulateLeafAdjoints.
package engine
