package admittance

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// CircuitModel is the lumped circuit model family. Its Y sequence holds
// one matrix per circuit relation block (for instance conductance and
// susceptance contributions). Any collection of circuit models is
// compatible for cascading.
type CircuitModel struct {
	ys    []*mat.Dense
	p     *mat.Dense
	q     *mat.Dense
	ports []Port
}

// NewCircuitModel validates the shape invariants and returns the model:
// every Y matrix n by n, P and Q n by k, k unique ports.
func NewCircuitModel(ys []*mat.Dense, p, q *mat.Dense, ports []Port) (*CircuitModel, error) {
	if err := validateParts(ys, p, q, ports); err != nil {
		return nil, err
	}
	return &CircuitModel{ys: ys, p: p, q: q, ports: ports}, nil
}

func (m *CircuitModel) Y() []*mat.Dense { return m.ys }
func (m *CircuitModel) P() *mat.Dense   { return m.p }
func (m *CircuitModel) Q() *mat.Dense   { return m.q }
func (m *CircuitModel) Ports() []Port   { return m.ports }

// CopyWith returns a new circuit model with the named fields replaced,
// revalidated through the constructor.
func (m *CircuitModel) CopyWith(o Overrides) (Model, error) {
	ys, p, q, ports := mergeOverrides(m, o)
	return NewCircuitModel(ys, p, q, ports)
}

// Compatible reports whether every member of models is a circuit model.
// The family imposes no further rule.
func (m *CircuitModel) Compatible(models []Model) bool {
	for _, other := range models {
		if _, ok := other.(*CircuitModel); !ok {
			return false
		}
	}
	return true
}

// Equal reports exact field-wise equality with another circuit model. A
// model of another family is unequal, never an error.
func (m *CircuitModel) Equal(other Model) bool {
	o, ok := other.(*CircuitModel)
	if !ok {
		return false
	}
	return matricesEqual(m.ys, o.ys, 0) &&
		mat.Equal(m.p, o.p) && mat.Equal(m.q, o.q) &&
		portsEqual(m.ports, o.ports)
}

// EqualApprox is Equal with matrix entries compared within tol.
func (m *CircuitModel) EqualApprox(other Model, tol float64) bool {
	o, ok := other.(*CircuitModel)
	if !ok {
		return false
	}
	return matricesEqual(m.ys, o.ys, tol) &&
		mat.EqualApprox(m.p, o.p, tol) && mat.EqualApprox(m.q, o.q, tol) &&
		portsEqual(m.ports, o.ports)
}

// validateParts checks the shared shape invariants of the contract.
func validateParts(ys []*mat.Dense, p, q *mat.Dense, ports []Port) error {
	if p == nil || q == nil {
		return fmt.Errorf("nil coupling matrix: %w", ErrDimensionMismatch)
	}
	n, k := p.Dims()
	if qn, qk := q.Dims(); qn != n || qk != k {
		return fmt.Errorf("P is %dx%d but Q is %dx%d: %w", n, k, qn, qk, ErrDimensionMismatch)
	}
	if len(ports) != k {
		return fmt.Errorf("%d ports for %d coupling columns: %w", len(ports), k, ErrDimensionMismatch)
	}
	for i, y := range ys {
		if ym, yn := y.Dims(); ym != n || yn != n {
			return fmt.Errorf("Y[%d] is %dx%d, want %dx%d: %w", i, ym, yn, n, n, ErrDimensionMismatch)
		}
	}
	seen := make(map[Port]struct{}, len(ports))
	for _, port := range ports {
		if _, dup := seen[port]; dup {
			return fmt.Errorf("port %v: %w", port, ErrDuplicatePort)
		}
		seen[port] = struct{}{}
	}
	return nil
}

// mergeOverrides resolves an Overrides against the current fields of m.
func mergeOverrides(m Model, o Overrides) (ys []*mat.Dense, p, q *mat.Dense, ports []Port) {
	ys, p, q, ports = m.Y(), m.P(), m.Q(), m.Ports()
	if o.Y != nil {
		ys = o.Y
	}
	if o.P != nil {
		p = o.P
	}
	if o.Q != nil {
		q = o.Q
	}
	if o.Ports != nil {
		ports = o.Ports
	}
	return ys, p, q, ports
}

// matricesEqual compares two Y sequences element-wise, exactly when
// tol == 0 and within tol otherwise.
func matricesEqual(a, b []*mat.Dense, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if tol == 0 {
			if !mat.Equal(a[i], b[i]) {
				return false
			}
		} else if !mat.EqualApprox(a[i], b[i], tol) {
			return false
		}
	}
	return true
}

func portsEqual(a, b []Port) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
