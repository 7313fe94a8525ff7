package cli

import "fmt"

type duplicateError struct {
	kind string
	name string
}

func (e duplicateError) Error() string {
	return fmt.Sprintf("%s already in the address book: %s", e.kind, e.name)
}

func errDuplicate(kind, name string) error {
	return duplicateError{kind: kind, name: name}
}

type notFoundError struct {
	kind string
	ref  string
}

func (e notFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.kind, e.ref)
}

func errNotFound(kind, ref string) error {
	return notFoundError{kind: kind, ref: ref}
}
