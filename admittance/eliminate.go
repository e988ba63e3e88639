package admittance

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/stevenheidel/admittance/gonumExtensions"
)

// Open drops the named ports from m. The internal dimension is
// unchanged; only the coupling columns and port entries disappear. An
// empty port set is a no-op.
func Open(m Model, ports []Port) (Model, error) {
	if len(ports) == 0 {
		return m, nil
	}
	indices, err := resolveIndices(m, ports)
	if err != nil {
		return nil, err
	}
	return dropPorts(m, indices)
}

// OpenExcept drops every port of m not named in ports.
func OpenExcept(m Model, ports []Port) (Model, error) {
	complement, err := complementPorts(m, ports)
	if err != nil {
		return nil, err
	}
	return Open(m, complement)
}

// Short forces the named ports to zero potential and removes them. The
// P columns of the named ports become rows of a constraint matrix; the
// model is transformed onto a null space basis of those constraints,
// reducing the internal dimension by their rank, and the named ports are
// then dropped. An empty port set is a no-op.
func Short(m Model, ports []Port, opts ...Option) (Model, error) {
	if len(ports) == 0 {
		return m, nil
	}
	indices, err := resolveIndices(m, ports)
	if err != nil {
		return nil, err
	}

	p := m.P()
	n := inDim(m)
	constraints := mat.NewDense(len(indices), n, nil)
	for row, col := range indices {
		for i := 0; i < n; i++ {
			constraints.Set(row, i, p.At(i, col))
		}
	}

	reduced, err := eliminate(m, constraints, opts)
	if err != nil {
		return nil, err
	}
	return dropPorts(reduced, indices)
}

// ShortExcept shorts every port of m not named in ports.
func ShortExcept(m Model, ports []Port, opts ...Option) (Model, error) {
	complement, err := complementPorts(m, ports)
	if err != nil {
		return nil, err
	}
	return Short(m, complement, opts...)
}

// Unite merges the named ports into the first named one. Each further
// port contributes one constraint row forcing its P column to equal the
// first port's column; the model is transformed onto a null space basis
// of those constraints and every named port except the first is dropped.
// Naming one port or none is a no-op.
func Unite(m Model, ports []Port, opts ...Option) (Model, error) {
	if len(ports) <= 1 {
		return m, nil
	}
	indices, err := resolveIndices(m, ports)
	if err != nil {
		return nil, err
	}

	p := m.P()
	n := inDim(m)
	first := indices[0]
	constraints := mat.NewDense(len(indices)-1, n, nil)
	for row, col := range indices[1:] {
		for i := 0; i < n; i++ {
			constraints.Set(row, i, p.At(i, first)-p.At(i, col))
		}
	}

	reduced, err := eliminate(m, constraints, opts)
	if err != nil {
		return nil, err
	}
	return dropPorts(reduced, indices[1:])
}

// eliminate transforms m onto a null space basis of the constraint
// matrix, removing the constrained degrees of freedom.
func eliminate(m Model, constraints *mat.Dense, opts []Option) (Model, error) {
	o := gatherOptions(opts)
	basis, err := o.nullspace(constraints)
	if err != nil {
		return nil, err
	}
	return ApplyTransform(m, basis)
}

// resolveIndices maps the requested ports to positions in m, failing
// before any matrix work when one is absent or repeated. Requests are
// ordered sets; a repeated identifier would otherwise corrupt a Unite,
// whose merge target must stay distinct from the dropped ports.
func resolveIndices(m Model, ports []Port) ([]int, error) {
	indices := PortIndices(m, ports)
	seen := make(map[int]struct{}, len(indices))
	for i, index := range indices {
		if index < 0 {
			return nil, fmt.Errorf("port %v: %w", ports[i], ErrPortNotFound)
		}
		if _, dup := seen[index]; dup {
			return nil, fmt.Errorf("port %v requested twice: %w", ports[i], ErrDuplicatePort)
		}
		seen[index] = struct{}{}
	}
	return indices, nil
}

// complementPorts returns the ports of m not named in ports, in model
// order, validating the named set first.
func complementPorts(m Model, ports []Port) ([]Port, error) {
	indices, err := resolveIndices(m, ports)
	if err != nil {
		return nil, err
	}
	named := make(map[int]struct{}, len(indices))
	for _, index := range indices {
		named[index] = struct{}{}
	}
	var complement []Port
	for i, port := range m.Ports() {
		if _, ok := named[i]; !ok {
			complement = append(complement, port)
		}
	}
	return complement, nil
}

// dropPorts removes the coupling columns and port entries at the given
// positions. At least one port must survive.
func dropPorts(m Model, indices []int) (Model, error) {
	removed := make(map[int]struct{}, len(indices))
	for _, index := range indices {
		removed[index] = struct{}{}
	}
	var keep []int
	var ports []Port
	for i, port := range m.Ports() {
		if _, gone := removed[i]; !gone {
			keep = append(keep, i)
			ports = append(ports, port)
		}
	}
	if len(keep) == 0 {
		return nil, fmt.Errorf("dropping all %d ports: %w", len(m.Ports()), ErrNoPorts)
	}
	return m.CopyWith(Overrides{
		P:     gonumExtensions.SelectColumns(m.P(), keep),
		Q:     gonumExtensions.SelectColumns(m.Q(), keep),
		Ports: ports,
	})
}
