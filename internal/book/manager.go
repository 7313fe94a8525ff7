package book

import (
	"fmt"

	"rolo/internal/model"
)

// Mode selects which filtered projection the UI is currently showing.
type Mode int

const (
	ModePeople Mode = iota
	ModeCompanies
	ModeAll
)

// Mode literals accepted by SetCurrEntity (exact, case-sensitive).
const (
	EntityPeople    = "people"
	EntityCompanies = "companies"
	EntityAll       = "all"
)

func (m Mode) String() string {
	switch m {
	case ModePeople:
		return EntityPeople
	case ModeCompanies:
		return EntityCompanies
	default:
		return EntityAll
	}
}

// WindowGeometry is pass-through UI state; the book never interprets it.
type WindowGeometry struct {
	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`
	X      int `json:"x,omitempty"`
	Y      int `json:"y,omitempty"`
}

// Prefs are the user settings the manager carries alongside the book.
type Prefs struct {
	FilePath string         `json:"filePath,omitempty"`
	Window   WindowGeometry `json:"window,omitempty"`
}

// Manager mediates between the canonical book, the two filtered views and
// the active mode. Every mutating or filter-updating operation sets the mode
// as a side effect; queries never do. One Manager serves one session, on one
// logical thread.
type Manager struct {
	book      *AddressBook
	prefs     Prefs
	people    *FilteredView[model.Person]
	companies *FilteredView[model.Company]
	mode      Mode
}

// NewManager seeds a manager with copies of the given snapshot and prefs.
// The initial mode is companies, matching the UI default tab.
func NewManager(people []model.Person, companies []model.Company, prefs Prefs) *Manager {
	b := NewAddressBook()
	b.ResetData(people, companies)
	m := &Manager{
		book:  b,
		prefs: prefs,
		mode:  ModeCompanies,
	}
	m.people = NewFilteredView(b.People)
	m.companies = NewFilteredView(b.Companies)
	b.Observe(m.people.Refresh)
	b.Observe(m.companies.Refresh)
	return m
}

// Book exposes the canonical store (read-mostly; mutate via the manager so
// the mode side effects apply).
func (m *Manager) Book() *AddressBook { return m.book }

// Prefs returns the current user prefs.
func (m *Manager) Prefs() Prefs { return m.prefs }

// SetPrefs replaces the user prefs wholesale.
func (m *Manager) SetPrefs(p Prefs) { m.prefs = p }

// SetWindowGeometry stores GUI geometry verbatim.
func (m *Manager) SetWindowGeometry(g WindowGeometry) { m.prefs.Window = g }

// Mode returns the active mode.
func (m *Manager) Mode() Mode { return m.mode }

// CurrEntity returns the active mode literal ("people", "companies", "all").
func (m *Manager) CurrEntity() string { return m.mode.String() }

// SetCurrEntity sets the mode from its literal. Unknown values leave the
// mode untouched and return InvalidEntityError.
func (m *Manager) SetCurrEntity(name string) error {
	switch name {
	case EntityPeople:
		m.mode = ModePeople
	case EntityCompanies:
		m.mode = ModeCompanies
	case EntityAll:
		m.mode = ModeAll
	default:
		return InvalidEntityError{Value: name}
	}
	return nil
}

// HasPerson reports identity membership.
func (m *Manager) HasPerson(p *model.Person) (bool, error) {
	return m.book.HasPerson(p)
}

// HasCompany reports identity membership.
func (m *Manager) HasCompany(c *model.Company) (bool, error) {
	return m.book.HasCompany(c)
}

// AddPerson inserts p, resets the person filter to show-all and switches the
// mode to people.
func (m *Manager) AddPerson(p *model.Person) error {
	if err := m.book.AddPerson(p); err != nil {
		return err
	}
	m.people.ShowAll()
	m.mode = ModePeople
	return nil
}

// DeletePerson removes the identity match and switches the mode to people.
func (m *Manager) DeletePerson(target *model.Person) error {
	if err := m.book.RemovePerson(target); err != nil {
		return err
	}
	m.mode = ModePeople
	return nil
}

// SetPerson replaces target with edited in place and switches the mode to
// people.
func (m *Manager) SetPerson(target, edited *model.Person) error {
	if err := m.book.SetPerson(target, edited); err != nil {
		return err
	}
	m.mode = ModePeople
	return nil
}

// AddCompany inserts c, resets the company filter to show-all and switches
// the mode to companies.
func (m *Manager) AddCompany(c *model.Company) error {
	if err := m.book.AddCompany(c); err != nil {
		return err
	}
	m.companies.ShowAll()
	m.mode = ModeCompanies
	return nil
}

// DeleteCompany removes the identity match and switches the mode to
// companies.
func (m *Manager) DeleteCompany(target *model.Company) error {
	if err := m.book.RemoveCompany(target); err != nil {
		return err
	}
	m.mode = ModeCompanies
	return nil
}

// SetCompany replaces target with edited in place and switches the mode to
// companies.
func (m *Manager) SetCompany(target, edited *model.Company) error {
	if err := m.book.SetCompany(target, edited); err != nil {
		return err
	}
	m.mode = ModeCompanies
	return nil
}

// ResetData replaces the whole book from a snapshot. The mode is unchanged.
func (m *Manager) ResetData(people []model.Person, companies []model.Company) {
	m.book.ResetData(people, companies)
}

// Snapshot returns copies of both canonical collections, in store order.
func (m *Manager) Snapshot() ([]model.Person, []model.Company) {
	people := make([]model.Person, 0, len(m.book.People()))
	for _, p := range m.book.People() {
		people = append(people, p.Clone())
	}
	companies := make([]model.Company, 0, len(m.book.Companies()))
	for _, c := range m.book.Companies() {
		companies = append(companies, c.Clone())
	}
	return people, companies
}

// FilteredPeople returns the live person projection.
func (m *Manager) FilteredPeople() *FilteredView[model.Person] { return m.people }

// FilteredCompanies returns the live company projection.
func (m *Manager) FilteredCompanies() *FilteredView[model.Company] { return m.companies }

// UpdateFilteredPersonList replaces the person predicate and switches the
// mode to people.
func (m *Manager) UpdateFilteredPersonList(pred Predicate[model.Person]) error {
	if err := m.people.SetPredicate(pred); err != nil {
		return err
	}
	m.mode = ModePeople
	return nil
}

// UpdateFilteredCompanyList replaces the company predicate and switches the
// mode to companies.
func (m *Manager) UpdateFilteredCompanyList(pred Predicate[model.Company]) error {
	if err := m.companies.SetPredicate(pred); err != nil {
		return err
	}
	m.mode = ModeCompanies
	return nil
}

// UpdateToAllEntities switches the mode to all.
func (m *Manager) UpdateToAllEntities() {
	m.mode = ModeAll
}

// FilteredEntityList returns the entities the active mode selects, computed
// at call time. In all mode the result is a fresh companies-then-people
// concatenation (fixed contract) and does not track later mutations.
func (m *Manager) FilteredEntityList() []model.Entity {
	switch m.mode {
	case ModePeople:
		out := make([]model.Entity, 0, m.people.Len())
		for _, p := range m.people.AsList() {
			out = append(out, model.PersonEntity(p))
		}
		return out
	case ModeCompanies:
		out := make([]model.Entity, 0, m.companies.Len())
		for _, c := range m.companies.AsList() {
			out = append(out, model.CompanyEntity(c))
		}
		return out
	default:
		out := make([]model.Entity, 0, m.companies.Len()+m.people.Len())
		for _, c := range m.companies.AsList() {
			out = append(out, model.CompanyEntity(c))
		}
		for _, p := range m.people.AsList() {
			out = append(out, model.PersonEntity(p))
		}
		return out
	}
}

// NumEntities is the length of FilteredEntityList for the active mode.
func (m *Manager) NumEntities() int { return len(m.FilteredEntityList()) }

// NumPeople is the current filtered person count.
func (m *Manager) NumPeople() int { return m.people.Len() }

// NumCompanies is the current filtered company count.
func (m *Manager) NumCompanies() int { return m.companies.Len() }

// IsEmpty reports whether the active mode selects nothing.
func (m *Manager) IsEmpty() bool { return m.NumEntities() == 0 }

// Equals compares book, prefs and the materialized contents of both views.
// Predicates are functions and cannot be compared; the observable contents
// are what equality means here.
func (m *Manager) Equals(other *Manager) bool {
	if other == nil {
		return false
	}
	if m == other {
		return true
	}
	if !m.book.Equal(other.book) || m.prefs != other.prefs {
		return false
	}
	if m.people.Len() != other.people.Len() || m.companies.Len() != other.companies.Len() {
		return false
	}
	for i, p := range m.people.AsList() {
		if !p.Equal(other.people.AsList()[i]) {
			return false
		}
	}
	for i, c := range m.companies.AsList() {
		if !c.Equal(other.companies.AsList()[i]) {
			return false
		}
	}
	return true
}

func (m *Manager) String() string {
	msg := fmt.Sprintf("There are %d entities in the address book.\n", m.NumEntities())
	msg += fmt.Sprintf("There are %d people in the address book.\n", m.NumPeople())
	msg += fmt.Sprintf("There are %d companies in the address book.\n", m.NumCompanies())
	return msg
}
