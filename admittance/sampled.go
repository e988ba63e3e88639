package admittance

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// SampledModel is the frequency sampled model family: one Y matrix per
// point of a sampling grid. Sampled models may only be cascaded with
// sampled models sharing the identical grid.
type SampledModel struct {
	ys    []*mat.Dense
	p     *mat.Dense
	q     *mat.Dense
	ports []Port
	freqs []float64
}

// NewSampledModel validates the shape invariants and the grid length
// (one frequency per Y matrix) and returns the model.
func NewSampledModel(ys []*mat.Dense, p, q *mat.Dense, ports []Port, freqs []float64) (*SampledModel, error) {
	if err := validateParts(ys, p, q, ports); err != nil {
		return nil, err
	}
	if len(freqs) != len(ys) {
		return nil, fmt.Errorf("%d frequencies for %d Y matrices: %w", len(freqs), len(ys), ErrDimensionMismatch)
	}
	return &SampledModel{ys: ys, p: p, q: q, ports: ports, freqs: freqs}, nil
}

func (m *SampledModel) Y() []*mat.Dense { return m.ys }
func (m *SampledModel) P() *mat.Dense   { return m.p }
func (m *SampledModel) Q() *mat.Dense   { return m.q }
func (m *SampledModel) Ports() []Port   { return m.ports }

// Freqs returns the sampling grid.
func (m *SampledModel) Freqs() []float64 { return m.freqs }

// CopyWith returns a new sampled model with the named contract fields
// replaced and the sampling grid copied verbatim.
func (m *SampledModel) CopyWith(o Overrides) (Model, error) {
	ys, p, q, ports := mergeOverrides(m, o)
	return NewSampledModel(ys, p, q, ports, m.freqs)
}

// Compatible reports whether every member of models is a sampled model
// over the identical sampling grid.
func (m *SampledModel) Compatible(models []Model) bool {
	for _, other := range models {
		o, ok := other.(*SampledModel)
		if !ok {
			return false
		}
		if !floats.Equal(m.freqs, o.freqs) {
			return false
		}
	}
	return true
}

// Equal reports exact field-wise equality with another sampled model.
func (m *SampledModel) Equal(other Model) bool {
	o, ok := other.(*SampledModel)
	if !ok {
		return false
	}
	return matricesEqual(m.ys, o.ys, 0) &&
		mat.Equal(m.p, o.p) && mat.Equal(m.q, o.q) &&
		portsEqual(m.ports, o.ports) &&
		floats.Equal(m.freqs, o.freqs)
}

// EqualApprox is Equal with numeric fields compared within tol; ports
// still compare exactly.
func (m *SampledModel) EqualApprox(other Model, tol float64) bool {
	o, ok := other.(*SampledModel)
	if !ok {
		return false
	}
	if len(m.freqs) != len(o.freqs) {
		return false
	}
	return matricesEqual(m.ys, o.ys, tol) &&
		mat.EqualApprox(m.p, o.p, tol) && mat.EqualApprox(m.q, o.q, tol) &&
		portsEqual(m.ports, o.ports) &&
		floats.EqualApprox(m.freqs, o.freqs, tol)
}
