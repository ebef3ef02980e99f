package storagekeys

// Keys under which the client persists its state in the local key-value
// store. They mirror the keys the web storefront has always used in browser
// storage, so a store shared with other babycash tooling stays compatible.
// Absence of a key is the canonical "logged out" / "empty cart" signal.
const (
	// AccessToken holds the current bearer access token.
	AccessToken = "baby-cash-token"

	// RefreshToken holds the refresh token used for access token rotation.
	RefreshToken = "baby-cash-refresh-token"

	// User holds the JSON-serialized profile of the authenticated user.
	User = "baby-cash-user"

	// Cart holds the JSON-serialized cart item snapshot.
	Cart = "baby-cash-cart"
)
