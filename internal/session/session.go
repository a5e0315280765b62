// Package session models the browser's session storage as an injected
// key/value capability.
package session

// Well-known session keys.
const (
	KeyAuthToken = "auth-token"
	KeyIsAdmin   = "is-admin"
)

// Store is a string key/value store scoped to one user session.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Clear() error
}

// Token returns the bearer token, or "" when none is stored.
func Token(s Store) string {
	v, _ := s.Get(KeyAuthToken)
	return v
}

// Authenticated reports whether a bearer token is present. Presence is the
// only check; the token is never inspected.
func Authenticated(s Store) bool {
	v, ok := s.Get(KeyAuthToken)
	return ok && v != ""
}

// IsAdmin reports whether the admin flag holds the literal "true".
func IsAdmin(s Store) bool {
	v, _ := s.Get(KeyIsAdmin)
	return v == "true"
}
