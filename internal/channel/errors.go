package channel

import "errors"

// Construction-time validation errors (spec.md §7, InvalidInput). These are
// reported at the Add… boundary; they never leave the channel in a mutated
// state.
var (
	ErrTooFewPoints      = errors.New("channel: fewer than 4 points")
	ErrOutsideDomain     = errors.New("channel: point outside domain")
	ErrNonPositiveWidth  = errors.New("channel: width must be positive")
	ErrNonPositiveRadius = errors.New("channel: radius must be positive")
)
