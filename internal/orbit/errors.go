package orbit

import "errors"

var (
	// ErrDimensionMismatch indicates positions, radii and speeds do not line up.
	ErrDimensionMismatch = errors.New("orbit: dimension mismatch between positions, radii and speeds")

	// ErrInvalidRadius indicates a non-positive or non-finite major radius.
	ErrInvalidRadius = errors.New("orbit: major radius must be positive and finite")
)
