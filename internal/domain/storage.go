package domain

import "context"

// KVStore is the local persistence port: durable key-value storage for the
// session tokens, the user profile, and the cart snapshot. No transactional
// guarantees; last write wins. Consumers must handle deserialization failure
// by treating the stored value as absent and deleting it.
type KVStore interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// Notifier is the user-facing notification sink (the toast analog). Cart
// mutations and admin actions emit confirmations through it; background sync
// failures never do.
type Notifier interface {
	Success(ctx context.Context, msg string)
	Error(ctx context.Context, msg string)
}

// Confirmer is the interactive confirmation step required before destructive
// admin operations. Implementations prompt the operator; tests stub it.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}
