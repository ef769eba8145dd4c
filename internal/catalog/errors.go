package catalog

import "errors"

var (
	// ErrIncompleteCatalog indicates a canonical body is missing from the source.
	ErrIncompleteCatalog = errors.New("catalog: canonical body missing")

	// ErrUnknownBody indicates a body that is not in the display table.
	ErrUnknownBody = errors.New("catalog: unknown body")

	// ErrBadResponse indicates the feed answered with something unusable.
	ErrBadResponse = errors.New("catalog: bad response from bodies endpoint")
)
