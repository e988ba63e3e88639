// Package nullspace computes bases for matrix null spaces. It is the
// numeric primitive behind port shorting, port uniting and the canonical
// gauge; callers inject it as a Func so alternate backends (sparse
// kernels, different tolerance policies) can be substituted.
package nullspace

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/stevenheidel/admittance/gonumExtensions"
)

// Func computes a basis for the null space of a. Implementations must
// return a (c by c-rank(a)) matrix with linearly independent columns
// spanning {v : a v = 0}, ErrFullRank when that space is trivial.
type Func func(a mat.Matrix) (*mat.Dense, error)

var (
	// ErrFullRank signals that the matrix has full column rank, so its
	// null space holds only the zero vector. Dense storage cannot hold a
	// zero-column basis, hence a sentinel instead of an empty matrix.
	ErrFullRank = errors.New("nullspace: matrix has full column rank")

	// ErrFactorization signals that the SVD failed to converge.
	ErrFactorization = errors.New("nullspace: factorization failed")

	// ErrNaNInf signals a NaN or Inf entry in the input matrix.
	ErrNaNInf = errors.New("nullspace: NaN or Inf in matrix")
)

// Basis returns an orthonormal basis for the null space of a,
// as a (c by c-rank(a)) matrix N with
//
//	a N = 0
//
// The rank is decided numerically: singular values below
// max(r, c) * eps * sigma_max are treated as zero.
func Basis(a mat.Matrix) (*mat.Dense, error) {
	if gonumExtensions.NANORINF(a) {
		return nil, ErrNaNInf
	}
	r, c := a.Dims()

	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDFullV); !ok {
		return nil, fmt.Errorf("%d by %d matrix: %w", r, c, ErrFactorization)
	}

	values := svd.Values(nil)
	tol := float64(max(r, c)) * epsilon * values[0]
	rank := 0
	for _, sigma := range values {
		if sigma > tol {
			rank++
		}
	}
	if rank == c {
		return nil, fmt.Errorf("%d by %d matrix: %w", r, c, ErrFullRank)
	}

	// The columns of V beyond the rank span the null space.
	var v mat.Dense
	svd.VTo(&v)
	basis := mat.DenseCopyOf(v.Slice(0, c, rank, c))
	return basis, nil
}

// epsilon is the double precision machine epsilon.
const epsilon = 2.220446049250313e-16
