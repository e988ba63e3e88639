package admittance

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/stevenheidel/admittance/gonumExtensions"
)

// Cascade combines independent compatible models into one model whose
// internal matrices are the block diagonal joins of the inputs and whose
// port list is the concatenation of the input port lists, in input
// order. Duplicate port identifiers across inputs are permitted and left
// unresolved; CascadeAndUnite joins them instead. A single model is
// returned unchanged.
func Cascade(models []Model) (Model, error) {
	if len(models) == 0 {
		return nil, ErrNoModels
	}
	if len(models) == 1 {
		return models[0], nil
	}
	if !models[0].Compatible(models) {
		return nil, fmt.Errorf("cascade of %d models: %w", len(models), ErrIncompatibleModels)
	}
	// Equal Y sequence length is part of every family's compatibility
	// contract but is re-checked here before any block is assembled.
	samples := len(models[0].Y())
	for i, m := range models {
		if len(m.Y()) != samples {
			return nil, fmt.Errorf("model %d has %d Y matrices, want %d: %w", i, len(m.Y()), samples, ErrDimensionMismatch)
		}
	}

	ys := make([]*mat.Dense, samples)
	for i := 0; i < samples; i++ {
		blocks := make([]mat.Matrix, len(models))
		for j, m := range models {
			blocks[j] = m.Y()[i]
		}
		ys[i] = gonumExtensions.BlockDiag(blocks...)
	}

	ps := make([]mat.Matrix, len(models))
	qs := make([]mat.Matrix, len(models))
	var ports []Port
	for j, m := range models {
		ps[j] = m.P()
		qs[j] = m.Q()
		ports = append(ports, m.Ports()...)
	}

	return models[0].CopyWith(Overrides{
		Y:     ys,
		P:     gonumExtensions.BlockDiag(ps...),
		Q:     gonumExtensions.BlockDiag(qs...),
		Ports: ports,
	})
}
