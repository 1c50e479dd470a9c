package scratch

import "github.com/google/uuid"

// UUIDFragment returns the first 8 hex characters of a random UUID. It
// suits Options.FragmentFunc when the counter-ordered default is not
// wanted, e.g. when filenames must not reveal creation order.
func UUIDFragment() string {
	return uuid.New().String()[:8]
}
