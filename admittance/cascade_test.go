package admittance

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestCascadeEmpty(t *testing.T) {
	_, err := Cascade(nil)
	require.ErrorIs(t, err, ErrNoModels)
}

func TestCascadeSingle(t *testing.T) {
	m := identityCircuit(t, "1", "2")
	res, err := Cascade([]Model{m})
	require.NoError(t, err)
	require.Same(t, m, res)
}

func TestCascadeBlockAssembly(t *testing.T) {
	a := scaledCircuit(t, "a", 1, 2, 3)
	b := scaledCircuit(t, "b", 4, 5, 6)

	res, err := Cascade([]Model{a, b})
	require.NoError(t, err)

	require.Equal(t, []Port{"a", "b"}, res.Ports())
	require.Len(t, res.Y(), 1)
	require.True(t, mat.Equal(res.Y()[0], mat.NewDense(2, 2, []float64{
		1, 0,
		0, 4,
	})))
	require.True(t, mat.Equal(res.P(), mat.NewDense(2, 2, []float64{
		2, 0,
		0, 5,
	})))
	require.True(t, mat.Equal(res.Q(), mat.NewDense(2, 2, []float64{
		3, 0,
		0, 6,
	})))
}

func TestCascadeAssociative(t *testing.T) {
	a := scaledCircuit(t, "a", 1, 2, 3)
	b := scaledCircuit(t, "b", 4, 5, 6)
	c := scaledCircuit(t, "c", 7, 8, 9)

	ab, err := Cascade([]Model{a, b})
	require.NoError(t, err)
	left, err := Cascade([]Model{ab, c})
	require.NoError(t, err)
	flat, err := Cascade([]Model{a, b, c})
	require.NoError(t, err)

	require.True(t, left.EqualApprox(flat, tol))
}

func TestCascadeDuplicatePortsAcrossInputs(t *testing.T) {
	// The same identifier on two inputs is concatenated, not resolved.
	a := scaledCircuit(t, "x", 1, 1, 1)
	b := scaledCircuit(t, "x", 2, 2, 2)

	res, err := Cascade([]Model{a, b})
	require.NoError(t, err)
	require.Equal(t, []Port{"x", "x"}, res.Ports())
}

func TestCascadeIncompatible(t *testing.T) {
	circuit := identityCircuit(t, "1")
	sa := identitySampled(t, []float64{1e9}, "a")
	sb := identitySampled(t, []float64{2e9}, "b")

	_, err := Cascade([]Model{circuit, sa})
	require.ErrorIs(t, err, ErrIncompatibleModels)

	_, err = Cascade([]Model{sa, sb})
	require.ErrorIs(t, err, ErrIncompatibleModels)
}

func TestCascadeUnequalSampleCounts(t *testing.T) {
	a := identityCircuit(t, "a")
	b, err := NewCircuitModel([]*mat.Dense{eye(1), eye(1)}, eye(1), eye(1), []Port{"b"})
	require.NoError(t, err)

	// Circuit models are always compatible, so the explicit sample
	// count check has to catch this.
	_, err = Cascade([]Model{a, b})
	require.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestCascadeSampled(t *testing.T) {
	freqs := []float64{1e9, 2e9}
	a := identitySampled(t, freqs, "a1", "a2")
	b := identitySampled(t, freqs, "b1")

	res, err := Cascade([]Model{a, b})
	require.NoError(t, err)

	sampled, ok := res.(*SampledModel)
	require.True(t, ok)
	require.Equal(t, freqs, sampled.Freqs())
	require.Equal(t, []Port{"a1", "a2", "b1"}, res.Ports())
	require.Len(t, res.Y(), 2)
	require.True(t, mat.Equal(res.Y()[0], eye(3)))
	require.Equal(t, 3, inDim(res))
}
