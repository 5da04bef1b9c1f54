package behavior

import "errors"

var (
	// ErrNotConfigured is returned by calls that depend on the anchor's
	// geometry before Configure has been called.
	ErrNotConfigured = errors.New("behavior: anchor geometry not configured")
	// ErrInvalidGeometry is returned by Configure for negative sizes.
	ErrInvalidGeometry = errors.New("behavior: invalid anchor geometry")
	// ErrNilOverlay is returned when an unseen overlay id is attached
	// without an overlay.
	ErrNilOverlay = errors.New("behavior: nil overlay")
	// ErrNoBehavior is returned by From for values that carry no Behavior.
	ErrNoBehavior = errors.New("behavior: value is not associated with a Behavior")
)
