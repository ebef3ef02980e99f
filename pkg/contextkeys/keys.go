package contextkeys

// contextKey is an unexported type for context keys to avoid collisions.
type contextKey string

const (
	// RequestIDKey is the context key for storing and retrieving a request ID.
	RequestIDKey contextKey = "request_id"

	// UserIDKey is the context key for storing and retrieving the id of the
	// authenticated user, when one is known.
	UserIDKey contextKey = "user_id"

	// UserEmailKey is the context key for storing and retrieving the email of
	// the authenticated user.
	UserEmailKey contextKey = "user_email"
)

// String makes contextKey satisfy fmt.Stringer to help with debugging/logging of keys themselves.
func (c contextKey) String() string {
	return string(c)
}
