package node

import (
	"github.com/adgraph/adgraph/shape"
	"github.com/adgraph/adgraph/storage"
)

// Glue sequences sub-expressions that share side effects through assigned
// leaves/views. Forward evaluates each step in construction order and
// returns the last step's value. Backward evaluates the last step first
// with the incoming seed, then every preceding step with a zero seed, in
// reverse construction order — this ordering is a hard invariant, not a
// heuristic: earlier steps' effects flow through
// the leaves that later steps already wrote adjoints into, so giving an
// earlier step a zero seed of its own does not discard anything it
// contributed through shared leaves.
type Glue struct {
	steps     []Node
	zeroSeeds []storage.Storage // one per non-last step, always zero after arena reset
	bound     bool
}

// NewGlue constructs a Glue sequencing steps in order. At least one step
// is required.
func NewGlue(steps ...Node) (*Glue, error) {
	if len(steps) == 0 {
		return nil, ErrEmptyReduction
	}

	return &Glue{steps: steps}, nil
}

// Shape returns the last step's shape.
func (g *Glue) Shape() shape.Shape { return g.steps[len(g.steps)-1].Shape() }

// ValueBufferSize sums every step's requirement.
func (g *Glue) ValueBufferSize() int {
	var total int
	for _, s := range g.steps {
		total += s.ValueBufferSize()
	}

	return total
}

// AdjointBufferSize sums every non-last step's zero-seed scratch cell plus
// every step's own requirement.
func (g *Glue) AdjointBufferSize() int {
	var total int
	for i, s := range g.steps {
		if i < len(g.steps)-1 {
			total += s.Shape().Size()
		}
		total += s.AdjointBufferSize()
	}

	return total
}

// Children returns every step, in construction order.
func (g *Glue) Children() []Node { return g.steps }

// Bind recurses into every step in construction order, claiming a
// zero-seed scratch slot for every step but the last.
func (g *Glue) Bind(a *Arena) {
	g.zeroSeeds = make([]storage.Storage, len(g.steps))
	for i, s := range g.steps {
		s.Bind(a)
		if i < len(g.steps)-1 {
			g.zeroSeeds[i] = a.AllocAdj(s.Shape().Size(), s.Shape())
		}
	}
	g.bound = true
}

// Feval evaluates every step in order and returns the last step's value.
func (g *Glue) Feval() storage.Storage {
	checkBound(g.bound)
	var last storage.Storage
	for _, s := range g.steps {
		last = s.Feval()
	}

	return last
}

// Beval evaluates the last step with seed, then every preceding step in
// reverse order with a zero seed (the arena-wide adjoint reset before every
// backward pass guarantees these scratch slots start, and remain, zero:
// nothing else ever writes into them).
func (g *Glue) Beval(seed storage.Storage) {
	checkBound(g.bound)
	n := len(g.steps)
	g.steps[n-1].Beval(seed)
	for i := n - 2; i >= 0; i-- {
		g.steps[i].Beval(g.zeroSeeds[i])
	}
}
