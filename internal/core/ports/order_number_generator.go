package ports

import "context"

// OrderNumberGenerator produces unique human-readable order numbers.
//
// Implementations must be collision-resistant across concurrent checkouts.
// The composed production generator tries a store-side function first and
// falls back to a local timestamp-based generator when the store is
// unreachable, so checkout never blocks indefinitely on this step.
type OrderNumberGenerator interface {
	// Next returns the next order number.
	Next(ctx context.Context) (string, error)
}
