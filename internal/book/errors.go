package book

import (
	"errors"
	"fmt"
)

var (
	// ErrNilEntity is returned when a store operation receives a nil entity.
	ErrNilEntity = errors.New("nil entity")
	// ErrNilPredicate is returned when a view is given a nil predicate.
	ErrNilPredicate = errors.New("nil predicate")
	// ErrNilSnapshot is returned when ResetData receives a nil snapshot.
	ErrNilSnapshot = errors.New("nil snapshot")
)

// NotFoundError reports that an edit or remove referenced an entity that is
// not in the book.
type NotFoundError struct {
	Kind string // "person" or "company"
	Name string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.Name)
}

// InvalidEntityError reports a mode literal outside {people, companies, all}.
type InvalidEntityError struct {
	Value string
}

func (e InvalidEntityError) Error() string {
	return fmt.Sprintf("invalid entity type: %s. Please enter either people, companies or all.", e.Value)
}

func errNotFound(kind, name string) error {
	return NotFoundError{Kind: kind, Name: name}
}
