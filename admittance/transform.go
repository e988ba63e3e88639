package admittance

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/stevenheidel/admittance/nullspace"
)

// ApplyTransform re-expresses m in a new internal basis given by the
// (n by n') matrix t, where n is the current internal dimension:
//
//	Y_i -> t^T Y_i t
//	P   -> t^T P
//	Q   -> t^T Q
//
// Ports are untouched. This is the single mechanism by which the
// internal dimension of a model ever changes.
func ApplyTransform(m Model, t mat.Matrix) (Model, error) {
	rows, cols := t.Dims()
	if n := inDim(m); rows != n {
		return nil, fmt.Errorf("transform has %d rows for dimension %d: %w", rows, n, ErrDimensionMismatch)
	}

	ys := make([]*mat.Dense, len(m.Y()))
	for i, y := range m.Y() {
		var left, full mat.Dense
		left.Mul(t.T(), y)
		full.Mul(&left, t)
		ys[i] = &full
	}
	_, k := m.P().Dims()
	p := mat.NewDense(cols, k, nil)
	p.Mul(t.T(), m.P())
	q := mat.NewDense(cols, k, nil)
	q.Mul(t.T(), m.Q())

	return m.CopyWith(Overrides{Y: ys, P: p, Q: q})
}

// CanonicalGauge returns m in the basis in which its input coupling
// takes the block form
//
//	P = [ I_k ]
//	    [  0  ]
//
// obtained through the invertible change of basis t = B^-T with
// B = [P | nullspace(P^T)]. The resulting internal matrices are dense.
func CanonicalGauge(m Model, opts ...Option) (Model, error) {
	o := gatherOptions(opts)
	p := m.P()
	n, k := p.Dims()

	var basis mat.Matrix
	complement, err := o.nullspace(p.T())
	switch {
	case err == nil:
		var b mat.Dense
		b.Augment(p, complement)
		basis = &b
	case errors.Is(err, nullspace.ErrFullRank):
		// P is square with full rank and already spans the basis.
		if n != k {
			return nil, fmt.Errorf("input coupling is %dx%d but has no cokernel: %w", n, k, ErrDimensionMismatch)
		}
		basis = p
	default:
		return nil, err
	}

	// A rank deficient P leaves more than n basis columns; the gauge
	// change exists only for couplings of full column rank.
	if rows, cols := basis.Dims(); rows != cols {
		return nil, fmt.Errorf("input coupling is %dx%d with deficient rank: %w", n, k, ErrDimensionMismatch)
	}

	var inverse mat.Dense
	if err := inverse.Inverse(basis); err != nil {
		return nil, fmt.Errorf("canonical gauge: %w", err)
	}
	return ApplyTransform(m, mat.DenseCopyOf(inverse.T()))
}
