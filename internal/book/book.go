// Package book holds the in-memory address book: the canonical entity store,
// the two predicate-filtered projections over it, and the manager that tracks
// which projection the UI is currently looking at.
package book

import (
	"rolo/internal/model"
)

// AddressBook owns the canonical, unfiltered people and company lists.
// Uniqueness under domain identity is an invariant the mutating callers
// uphold via HasPerson/HasCompany; the book itself only guarantees ordered,
// in-place storage.
//
// Every mutation synchronously invokes the registered change hooks before
// returning, so filtered projections are never observed stale.
type AddressBook struct {
	people    []model.Person
	companies []model.Company
	onChange  []func()
}

// NewAddressBook returns an empty book.
func NewAddressBook() *AddressBook {
	return &AddressBook{}
}

// Observe registers a hook invoked after every mutation. Hooks run
// synchronously in registration order.
func (b *AddressBook) Observe(fn func()) {
	if fn == nil {
		return
	}
	b.onChange = append(b.onChange, fn)
}

func (b *AddressBook) notify() {
	for _, fn := range b.onChange {
		fn()
	}
}

// People returns the backing person list in insertion order.
// Callers must not mutate the returned slice.
func (b *AddressBook) People() []model.Person { return b.people }

// Companies returns the backing company list in insertion order.
// Callers must not mutate the returned slice.
func (b *AddressBook) Companies() []model.Company { return b.companies }

// HasPerson reports whether a person with p's identity is stored.
func (b *AddressBook) HasPerson(p *model.Person) (bool, error) {
	if p == nil {
		return false, ErrNilEntity
	}
	return b.indexOfPerson(*p) >= 0, nil
}

// HasCompany reports whether a company with c's identity is stored.
func (b *AddressBook) HasCompany(c *model.Company) (bool, error) {
	if c == nil {
		return false, ErrNilEntity
	}
	return b.indexOfCompany(*c) >= 0, nil
}

// AddPerson appends p. Duplicate checking is the caller's job.
func (b *AddressBook) AddPerson(p *model.Person) error {
	if p == nil {
		return ErrNilEntity
	}
	b.people = append(b.people, p.Clone())
	b.notify()
	return nil
}

// AddCompany appends c. Duplicate checking is the caller's job.
func (b *AddressBook) AddCompany(c *model.Company) error {
	if c == nil {
		return ErrNilEntity
	}
	b.companies = append(b.companies, c.Clone())
	b.notify()
	return nil
}

// RemovePerson removes the identity match for target.
func (b *AddressBook) RemovePerson(target *model.Person) error {
	if target == nil {
		return ErrNilEntity
	}
	i := b.indexOfPerson(*target)
	if i < 0 {
		return errNotFound("person", target.Name)
	}
	b.people = append(b.people[:i], b.people[i+1:]...)
	b.notify()
	return nil
}

// RemoveCompany removes the identity match for target.
func (b *AddressBook) RemoveCompany(target *model.Company) error {
	if target == nil {
		return ErrNilEntity
	}
	i := b.indexOfCompany(*target)
	if i < 0 {
		return errNotFound("company", target.Name)
	}
	b.companies = append(b.companies[:i], b.companies[i+1:]...)
	b.notify()
	return nil
}

// SetPerson replaces target with edited, preserving list position.
func (b *AddressBook) SetPerson(target, edited *model.Person) error {
	if target == nil || edited == nil {
		return ErrNilEntity
	}
	i := b.indexOfPerson(*target)
	if i < 0 {
		return errNotFound("person", target.Name)
	}
	b.people[i] = edited.Clone()
	b.notify()
	return nil
}

// SetCompany replaces target with edited, preserving list position.
func (b *AddressBook) SetCompany(target, edited *model.Company) error {
	if target == nil || edited == nil {
		return ErrNilEntity
	}
	i := b.indexOfCompany(*target)
	if i < 0 {
		return errNotFound("company", target.Name)
	}
	b.companies[i] = edited.Clone()
	b.notify()
	return nil
}

// ResetData replaces both collections wholesale, preserving snapshot order.
func (b *AddressBook) ResetData(people []model.Person, companies []model.Company) {
	b.people = make([]model.Person, 0, len(people))
	for _, p := range people {
		b.people = append(b.people, p.Clone())
	}
	b.companies = make([]model.Company, 0, len(companies))
	for _, c := range companies {
		b.companies = append(b.companies, c.Clone())
	}
	b.notify()
}

// Equal compares both collections field by field, in order.
func (b *AddressBook) Equal(other *AddressBook) bool {
	if other == nil {
		return false
	}
	if len(b.people) != len(other.people) || len(b.companies) != len(other.companies) {
		return false
	}
	for i := range b.people {
		if !b.people[i].Equal(other.people[i]) {
			return false
		}
	}
	for i := range b.companies {
		if !b.companies[i].Equal(other.companies[i]) {
			return false
		}
	}
	return true
}

func (b *AddressBook) indexOfPerson(p model.Person) int {
	for i := range b.people {
		if b.people[i].SamePerson(p) {
			return i
		}
	}
	return -1
}

func (b *AddressBook) indexOfCompany(c model.Company) int {
	for i := range b.companies {
		if b.companies[i].SameCompany(c) {
			return i
		}
	}
	return -1
}
