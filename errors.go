package chartjs

import "errors"

var (
	// ErrUnknownMode is returned when resolving with an unregistered mode
	// name. The selection policies themselves never fail: degenerate inputs
	// yield an empty result set.
	ErrUnknownMode = errors.New("unknown interaction mode")
)
