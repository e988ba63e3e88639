// Package admittance provides a uniform algebra over linear network
// models of the form
//
//	Y phi = P x
//	y     = Q^T phi
//
// where x and y are port-indexed input and output vectors and phi is an
// internal state vector. Models are immutable values; every operation
// derives a new model from existing ones and never mutates its arguments.
package admittance

import "gonum.org/v1/gonum/mat"

// Port identifies an external terminal of a model. Port values must be
// comparable; strings are typical. Ports are unique within one model.
type Port = any

// Overrides names the contract fields a CopyWith call replaces. A nil
// field keeps the current value.
type Overrides struct {
	Y     []*mat.Dense
	P     *mat.Dense
	Q     *mat.Dense
	Ports []Port
}

// Model is the contract every concrete model family satisfies. For a
// model with internal dimension n and k ports, every Y matrix is n by n
// and P and Q are n by k. Accessors return internal storage; callers
// must treat it as read only.
type Model interface {
	// Y returns the internal relation matrices, one per sample index.
	Y() []*mat.Dense
	// P returns the input port coupling matrix.
	P() *mat.Dense
	// Q returns the output port coupling matrix.
	Q() *mat.Dense
	// Ports returns the ordered port identifiers.
	Ports() []Port

	// CopyWith returns a new model of the same family with the fields
	// named in o replaced and every other field copied verbatim. The
	// result is validated like a freshly constructed model.
	CopyWith(o Overrides) (Model, error)

	// Compatible reports whether the collection may be cascaded. Each
	// family defines its own rule; a collection holding a model of
	// another family is never compatible.
	Compatible(models []Model) bool

	// Equal reports whether other is of the same family and every stored
	// field compares equal by value.
	Equal(other Model) bool

	// EqualApprox is Equal with numeric fields compared within tol.
	// Ports still compare exactly.
	EqualApprox(other Model, tol float64) bool
}

// PortIndices returns, for each queried port, the position of its first
// occurrence among the ports of m, or -1 when absent.
func PortIndices(m Model, ports []Port) []int {
	indices := make([]int, len(ports))
	modelPorts := m.Ports()
	for i, port := range ports {
		indices[i] = -1
		for j, candidate := range modelPorts {
			if candidate == port {
				indices[i] = j
				break
			}
		}
	}
	return indices
}

// inDim returns the internal dimension n of m, taken from P.
func inDim(m Model) int {
	n, _ := m.P().Dims()
	return n
}
