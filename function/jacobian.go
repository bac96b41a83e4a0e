package function

import (
	"github.com/adgraph/adgraph/engine"
	"github.com/adgraph/adgraph/shape"
	"github.com/adgraph/adgraph/storage"
	"golang.org/x/sync/errgroup"
)

// Jacobian assembles the m×n matrix of partial derivatives of f's m scalar
// outputs with respect to its n-element input vector, evaluated at x0. Row
// i is ∂outs[i]/∂x, assembled by zeroing adjoints, seeding output
// i with 1, backward-propagating, and copying x's adjoint vector into row
// i. When the output count m reaches the configured threshold and
// WithParallelJacobian was set at construction, rows are computed across a
// bounded worker pool (see doc.go); otherwise evaluation is sequential on
// the caller's goroutine.
func (f *Function) Jacobian(x0 []float64) (storage.Storage, error) {
	x, outs, err := f.freshGraph(x0)
	if err != nil {
		return storage.Storage{}, err
	}
	m := len(outs)

	jShape, err := shape.NewMatrix(m, f.n)
	if err != nil {
		return storage.Storage{}, err
	}
	jac := storage.NewOwned(jShape)

	if f.opts.parallel && m >= f.opts.threshold {
		if err := f.jacobianParallel(x0, m, jac); err != nil {
			return storage.Storage{}, err
		}

		return jac, nil
	}

	for i, out := range outs {
		for _, xj := range x {
			xj.ResetAdj()
		}
		bound, err := engine.Bind(out)
		if err != nil {
			return storage.Storage{}, err
		}
		if _, err := bound.Autodiff(); err != nil {
			return storage.Storage{}, err
		}
		for j := 0; j < f.n; j++ {
			jac.Set2(i, j, x[j].GetAdj(0))
		}
	}

	return jac, nil
}

// jacobianParallel evaluates each output row on its own goroutine, each
// against an independently-built expression graph (a fresh freshGraph call
// per row, per the deep-clone requirement) so no two goroutines ever
// touch the same leaf adjoint storage — the "outputs are not allowed to
// share leaf adjoint storage across tasks" rule.
// golang.org/x/sync/errgroup bounds concurrency to the configured pool
// size and blocks the caller until every row's goroutine has finished,
// then returns the first row error, if any; rows write disjoint positions of jac, so no
// synchronization is needed across the writes themselves.
func (f *Function) jacobianParallel(x0 []float64, m int, jac storage.Storage) error {
	g := new(errgroup.Group)
	g.SetLimit(f.opts.poolSize)

	for i := 0; i < m; i++ {
		i := i
		g.Go(func() error {
			rowX, rowOuts, err := f.freshGraph(x0)
			if err != nil {
				return err
			}
			if i >= len(rowOuts) {
				return ErrNoOutputs
			}

			bound, err := engine.Bind(rowOuts[i])
			if err != nil {
				return err
			}
			if _, err := bound.Autodiff(); err != nil {
				return err
			}
			for j := 0; j < f.n; j++ {
				jac.Set2(i, j, rowX[j].GetAdj(0))
			}

			return nil
		})
	}

	return g.Wait()
}
