package pagination

import "errors"

var (
	// ErrStaleMeasurement is returned when a report does not belong to the
	// outstanding render request of the active sub-page.
	ErrStaleMeasurement = errors.New("measurement does not match the outstanding render request")

	// ErrChainSettled is returned when a report arrives for a chain in which
	// every sub-page is settled.
	ErrChainSettled = errors.New("every sub-page is settled")

	ErrNegativeOffset = errors.New("measured offset is negative")
	ErrEmptyChain     = errors.New("page has no sub-pages")

	// ErrSubPageOutOfRange is returned by Reset for an index outside the chain.
	ErrSubPageOutOfRange = errors.New("sub-page index out of range")

	// ErrNotConverged is returned by Run when the chain did not settle within
	// the allowed number of passes.
	ErrNotConverged = errors.New("layout did not converge")
)
