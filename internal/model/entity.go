package model

import "fmt"

// EntityKind tags the variant held by an Entity.
type EntityKind int

const (
	KindPerson EntityKind = iota
	KindCompany
)

// Entity is the displayable union over the two contact variants. Exactly one
// of the payload fields is set, per Kind. Rendering and counting code should
// switch on Kind once rather than type-test in multiple places.
type Entity struct {
	Kind    EntityKind
	Person  Person
	Company Company
}

func PersonEntity(p Person) Entity { return Entity{Kind: KindPerson, Person: p} }

func CompanyEntity(c Company) Entity { return Entity{Kind: KindCompany, Company: c} }

// Name returns the display name of whichever variant is held.
func (e Entity) Name() string {
	switch e.Kind {
	case KindPerson:
		return e.Person.Name
	case KindCompany:
		return e.Company.Name
	}
	return ""
}

// ID returns the stable id of whichever variant is held.
func (e Entity) ID() string {
	switch e.Kind {
	case KindPerson:
		return e.Person.ID
	case KindCompany:
		return e.Company.ID
	}
	return ""
}

// Same reports domain-identity equality. Entities of different kinds are
// never the same, even with matching names.
func (e Entity) Same(other Entity) bool {
	if e.Kind != other.Kind {
		return false
	}
	switch e.Kind {
	case KindPerson:
		return e.Person.SamePerson(other.Person)
	case KindCompany:
		return e.Company.SameCompany(other.Company)
	}
	return false
}

// Equal compares the held variant field by field.
func (e Entity) Equal(other Entity) bool {
	if e.Kind != other.Kind {
		return false
	}
	switch e.Kind {
	case KindPerson:
		return e.Person.Equal(other.Person)
	case KindCompany:
		return e.Company.Equal(other.Company)
	}
	return false
}

func (e Entity) String() string {
	switch e.Kind {
	case KindPerson:
		return fmt.Sprintf("person %s", e.Person.Name)
	case KindCompany:
		return fmt.Sprintf("company %s", e.Company.Name)
	}
	return "entity"
}
