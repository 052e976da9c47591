package lewis

import "errors"

var (
	// ErrChargeState is returned when the requested net charge cannot be
	// reconciled with the adjacency matrix: a negative diagonal entry
	// that no donor can repair, or no atom able to host the charge.
	// The whole call aborts; no partial result is returned.
	ErrChargeState = errors.New("lewis: incompatible charge state and adjacency matrix")

	// ErrDimensionMismatch is returned when the element list and the
	// adjacency matrix disagree in length.
	ErrDimensionMismatch = errors.New("lewis: elements and adjacency matrix size mismatch")

	// ErrOptionViolation is returned when an Option carries a value the
	// solver cannot honor (negative caps, zero patience, and the like).
	ErrOptionViolation = errors.New("lewis: invalid option value")
)
