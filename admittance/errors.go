package admittance

import "errors"

// Sentinel errors returned by the model algebra. Callers match them with
// errors.Is; operations wrap them with context where useful. No
// operation panics on user-triggered conditions.
var (
	// ErrNoModels is returned when an operation over a collection of
	// models receives an empty collection.
	ErrNoModels = errors.New("admittance: no models given")

	// ErrIncompatibleModels is returned when a collection fails its
	// family's compatibility rule and may not be cascaded.
	ErrIncompatibleModels = errors.New("admittance: incompatible models")

	// ErrPortNotFound is returned when a requested port identifier is
	// absent from a model's port list. It is raised before any matrix
	// work begins; a failing request never applies a partial transform.
	ErrPortNotFound = errors.New("admittance: port not found")

	// ErrDimensionMismatch is returned when matrix shapes are mutually
	// inconsistent, at construction or when combining models.
	ErrDimensionMismatch = errors.New("admittance: dimension mismatch")

	// ErrDuplicatePort is returned when a model would carry the same
	// port identifier twice.
	ErrDuplicatePort = errors.New("admittance: duplicate port")

	// ErrNoPorts is returned when an elimination would remove every
	// port; dense storage cannot hold the resulting empty couplings.
	ErrNoPorts = errors.New("admittance: no ports would remain")
)
