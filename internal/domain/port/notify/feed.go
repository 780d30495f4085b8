package notify

import "context"

// LedgerFeed publishes change notifications for a user's transaction set.
// Subscribers recompute the ledger view from scratch on every tick; the feed
// itself carries no payload. Only the user view is push-based; the admin view
// re-fetches explicitly after mutations.
type LedgerFeed interface {
	// Publish signals that the given user's transaction set changed.
	// Must never block the publisher.
	Publish(userID uint64)

	// Subscribe registers for change signals for the given user. The returned
	// channel receives one tick per change (coalescing is allowed). The cancel
	// function releases the subscription; it is also released when ctx ends.
	Subscribe(ctx context.Context, userID uint64) (<-chan struct{}, func())
}
