package storefront

import (
	"context"
	"time"
)

// CartStore holds carts keyed by session, with a TTL standing in for
// the end of the browsing session. Carts are never durably persisted.
type CartStore interface {
	// Get returns the cart for the session key, or shared.ErrNotFound
	// if the session has no cart (new session or expired)
	Get(ctx context.Context, key string) (*Cart, error)

	// Put stores the cart under the session key, resetting its TTL
	Put(ctx context.Context, key string, cart *Cart, ttl time.Duration) error

	// Delete discards the cart for the session key
	Delete(ctx context.Context, key string) error
}
