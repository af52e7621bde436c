// Package identity provides opaque unique identifiers for tracked items.
package identity

import (
	"fmt"

	"github.com/google/uuid"
)

// ID is an opaque, comparable, stringifiable token. It is created once per
// entity and never changes for the entity's lifetime.
type ID string

// String returns the identifier as a plain string.
func (id ID) String() string { return string(id) }

// New returns a fresh random ID.
func New() ID {
	return ID(uuid.NewString())
}

// NewSequence returns a generator producing deterministic IDs of the form
// "<prefix>-1", "<prefix>-2", and so on. Useful in tests and anywhere stable
// output matters more than global uniqueness.
func NewSequence(prefix string) func() ID {
	n := 0
	return func() ID {
		n++
		return ID(fmt.Sprintf("%s-%d", prefix, n))
	}
}

// Identifiable is implemented by values that carry a stable unique ID.
// The ID is used as the membership and handler key in a ListState.
type Identifiable interface {
	Identity() ID
}
