package engine

// AdjointPolicy selects whether Bind's resulting BoundExpr resets leaf
// adjoints (the owned adjoint storage of every node.Leaf reachable from the
// root, in addition to the shared adjoint arena) at the start of every
// Backward call, or leaves them for the caller to accumulate across several
// seeded passes. The default is Reset.
type AdjointPolicy int

const (
	// ResetAdjoints zeroes the adjoint arena and every reachable leaf's
	// adjoint before each Backward call. This is the default.
	ResetAdjoints AdjointPolicy = iota

	// AccumulateAdjoints leaves prior leaf adjoints in place before each
	// Backward call (the shared adjoint arena is still zeroed), so repeated
	// seeded passes sum their contributions into the same leaf adjoint
	// storage.
	AccumulateAdjoints
)

// options holds the resolved configuration a Bind call produces from its
// Option arguments.
type options struct {
	adjointPolicy AdjointPolicy
}

func defaultOptions() options {
	return options{adjointPolicy: ResetAdjoints}
}

// Option configures a BoundExpr at Bind time, following the functional-
// options convention used throughout this module.
type Option func(*options)

// WithAccumulateLeafAdjoints opts a BoundExpr into AccumulateAdjoints
// policy: Backward no longer resets leaf adjoints first, so a caller that
// wants to sum gradient contributions from several seeded passes (e.g.
// several independent loss terms) can do so without re-binding between
// calls.
func WithAccumulateLeafAdjoints() Option {
	return func(o *options) { o.adjointPolicy = AccumulateAdjoints }
}
