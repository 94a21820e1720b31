package orderbook

import "github.com/google/uuid"

// NewOrderID mints a random external id a caller may use as a Book's ID
// type when it has no natural identifier of its own. Book never calls this
// itself — spec §9 requires any id/random generator to be passed in by the
// caller rather than drawn from process-wide state, so this is opt-in
// sugar, not a dependency of the core.
func NewOrderID() string {
	return uuid.NewString()
}
