package admittance

// taggedPort disambiguates ports of different cascade inputs: the same
// identifier used by two models becomes two distinct tagged ports.
type taggedPort struct {
	model int
	port  Port
}

// CascadeAndUnite joins models through shared port names: identically
// named ports across different inputs become one electrically joined
// port. Each input's ports are first tagged with the input index so the
// cascade sees pairwise distinct identifiers; every identifier carried
// by two or more inputs is then united, in order of first appearance,
// and the tags are stripped again. Models sharing no port names reduce
// to a plain cascade. A single model is returned unchanged.
func CascadeAndUnite(models []Model, opts ...Option) (Model, error) {
	if len(models) == 0 {
		return nil, ErrNoModels
	}
	if len(models) == 1 {
		return models[0], nil
	}

	tagged := make([]Model, len(models))
	for i, m := range models {
		ports := make([]Port, len(m.Ports()))
		for j, port := range m.Ports() {
			ports[j] = taggedPort{model: i, port: port}
		}
		relabeled, err := m.CopyWith(Overrides{Ports: ports})
		if err != nil {
			return nil, err
		}
		tagged[i] = relabeled
	}

	joined, err := Cascade(tagged)
	if err != nil {
		return nil, err
	}

	// Group the surviving tagged ports by original identifier, keeping
	// first-appearance order, and unite every shared group.
	var order []Port
	groups := make(map[Port][]Port)
	for _, port := range joined.Ports() {
		original := port.(taggedPort).port
		if _, seen := groups[original]; !seen {
			order = append(order, original)
		}
		groups[original] = append(groups[original], port)
	}
	for _, original := range order {
		if group := groups[original]; len(group) > 1 {
			joined, err = Unite(joined, group, opts...)
			if err != nil {
				return nil, err
			}
		}
	}

	stripped := make([]Port, len(joined.Ports()))
	for i, port := range joined.Ports() {
		stripped[i] = port.(taggedPort).port
	}
	return joined.CopyWith(Overrides{Ports: stripped})
}
