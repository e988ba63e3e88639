package admittance

import "github.com/stevenheidel/admittance/nullspace"

// options holds the configurable collaborators of the operations that
// eliminate degrees of freedom.
type options struct {
	nullspace nullspace.Func
}

// Option configures Short, Unite, CanonicalGauge and CascadeAndUnite.
type Option func(*options)

// WithNullspace substitutes the null space backend used to eliminate
// constrained degrees of freedom. The default is nullspace.Basis.
func WithNullspace(f nullspace.Func) Option {
	return func(o *options) { o.nullspace = f }
}

func gatherOptions(opts []Option) options {
	o := options{nullspace: nullspace.Basis}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
