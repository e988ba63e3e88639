package admittance

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/stevenheidel/admittance/gonumExtensions"
)

const tol = 1e-9

func eye(n int) *mat.Dense {
	return mat.DenseCopyOf(gonumExtensions.Eye(n, n, 0))
}

// identityCircuit builds the canonical test fixture: a circuit model
// with one port per identifier, P = Q = I and a single Y = I block.
func identityCircuit(t *testing.T, ports ...Port) *CircuitModel {
	t.Helper()
	n := len(ports)
	m, err := NewCircuitModel([]*mat.Dense{eye(n)}, eye(n), eye(n), ports)
	require.NoError(t, err)
	return m
}

// scaledCircuit builds a one port circuit model with distinguishable
// entries, handy for checking block placement after a cascade.
func scaledCircuit(t *testing.T, port Port, y, p, q float64) *CircuitModel {
	t.Helper()
	m, err := NewCircuitModel(
		[]*mat.Dense{mat.NewDense(1, 1, []float64{y})},
		mat.NewDense(1, 1, []float64{p}),
		mat.NewDense(1, 1, []float64{q}),
		[]Port{port},
	)
	require.NoError(t, err)
	return m
}

// identitySampled is identityCircuit for the frequency sampled family,
// with one Y = I block per grid point.
func identitySampled(t *testing.T, freqs []float64, ports ...Port) *SampledModel {
	t.Helper()
	n := len(ports)
	ys := make([]*mat.Dense, len(freqs))
	for i := range freqs {
		ys[i] = eye(n)
	}
	m, err := NewSampledModel(ys, eye(n), eye(n), ports, freqs)
	require.NoError(t, err)
	return m
}
