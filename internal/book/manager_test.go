package book

import (
	"errors"
	"strings"
	"testing"

	"rolo/internal/model"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	return NewManager(nil, nil, Prefs{})
}

func TestManagerInitialModeIsCompanies(t *testing.T) {
	m := newTestManager(t)
	if m.Mode() != ModeCompanies {
		t.Fatalf("initial mode: got %v, want companies", m.Mode())
	}
	if m.CurrEntity() != "companies" {
		t.Fatalf("CurrEntity: got %q", m.CurrEntity())
	}
}

func TestManagerModeTransitions(t *testing.T) {
	tests := []struct {
		name string
		op   func(m *Manager) error
		want Mode
	}{
		{"add person", func(m *Manager) error { return m.AddPerson(p("Alice")) }, ModePeople},
		{"delete person", func(m *Manager) error {
			if err := m.AddPerson(p("Alice")); err != nil {
				return err
			}
			return m.DeletePerson(p("Alice"))
		}, ModePeople},
		{"set person", func(m *Manager) error {
			if err := m.AddPerson(p("Alice")); err != nil {
				return err
			}
			if err := m.SetCurrEntity("all"); err != nil {
				return err
			}
			return m.SetPerson(p("Alice"), p("Alicia"))
		}, ModePeople},
		{"update person filter", func(m *Manager) error {
			return m.UpdateFilteredPersonList(func(model.Person) bool { return true })
		}, ModePeople},
		{"add company", func(m *Manager) error {
			if err := m.SetCurrEntity("people"); err != nil {
				return err
			}
			return m.AddCompany(c("Initech"))
		}, ModeCompanies},
		{"delete company", func(m *Manager) error {
			if err := m.AddCompany(c("Initech")); err != nil {
				return err
			}
			if err := m.SetCurrEntity("people"); err != nil {
				return err
			}
			return m.DeleteCompany(c("Initech"))
		}, ModeCompanies},
		{"update company filter", func(m *Manager) error {
			if err := m.SetCurrEntity("people"); err != nil {
				return err
			}
			return m.UpdateFilteredCompanyList(func(model.Company) bool { return true })
		}, ModeCompanies},
		{"show all", func(m *Manager) error {
			m.UpdateToAllEntities()
			return nil
		}, ModeAll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestManager(t)
			if err := tt.op(m); err != nil {
				t.Fatalf("op error: %v", err)
			}
			if m.Mode() != tt.want {
				t.Fatalf("mode after %s: got %v, want %v", tt.name, m.Mode(), tt.want)
			}
		})
	}
}

func TestSetCurrEntity(t *testing.T) {
	m := newTestManager(t)

	for _, name := range []string{"people", "companies", "all"} {
		if err := m.SetCurrEntity(name); err != nil {
			t.Fatalf("SetCurrEntity(%q) error: %v", name, err)
		}
		if m.CurrEntity() != name {
			t.Fatalf("CurrEntity after set: got %q, want %q", m.CurrEntity(), name)
		}
	}

	if err := m.SetCurrEntity("all"); err != nil {
		t.Fatalf("SetCurrEntity(all) error: %v", err)
	}
	err := m.SetCurrEntity("bogus")
	var inv InvalidEntityError
	if !errors.As(err, &inv) {
		t.Fatalf("SetCurrEntity(bogus): got %v, want InvalidEntityError", err)
	}
	if inv.Value != "bogus" {
		t.Fatalf("error should carry the offending value: %+v", inv)
	}
	if !strings.Contains(err.Error(), "bogus") || !strings.Contains(err.Error(), "people, companies or all") {
		t.Fatalf("error message must name the value and the valid set: %q", err.Error())
	}
	// Failed set leaves the mode untouched.
	if m.Mode() != ModeAll {
		t.Fatalf("mode changed on invalid input: %v", m.Mode())
	}

	// Literals are case-sensitive exact matches.
	if err := m.SetCurrEntity("People"); err == nil {
		t.Fatalf("expected case-sensitive match to reject %q", "People")
	}
}

func TestAddPersonResetsFilterAndAppears(t *testing.T) {
	m := newTestManager(t)
	if err := m.UpdateFilteredPersonList(func(model.Person) bool { return false }); err != nil {
		t.Fatalf("UpdateFilteredPersonList error: %v", err)
	}

	if err := m.AddPerson(p("Alice")); err != nil {
		t.Fatalf("AddPerson error: %v", err)
	}
	if m.Mode() != ModePeople {
		t.Fatalf("mode after AddPerson: %v", m.Mode())
	}
	// The add resets the person predicate, so Alice is visible.
	if m.NumPeople() != 1 {
		t.Fatalf("expected Alice in unfiltered people view, count=%d", m.NumPeople())
	}
}

func TestFilteredEntityListAllModeOrdering(t *testing.T) {
	m := newTestManager(t)
	if err := m.AddPerson(p("Alice")); err != nil {
		t.Fatalf("AddPerson error: %v", err)
	}
	if err := m.AddPerson(p("Bob")); err != nil {
		t.Fatalf("AddPerson error: %v", err)
	}
	if err := m.AddCompany(c("Initech")); err != nil {
		t.Fatalf("AddCompany error: %v", err)
	}

	if err := m.SetCurrEntity("all"); err != nil {
		t.Fatalf("SetCurrEntity error: %v", err)
	}
	all := m.FilteredEntityList()
	if len(all) != m.NumCompanies()+m.NumPeople() {
		t.Fatalf("all-mode length %d != companies %d + people %d",
			len(all), m.NumCompanies(), m.NumPeople())
	}
	// Companies first, then people, each in store order.
	if all[0].Kind != model.KindCompany || all[0].Name() != "Initech" {
		t.Fatalf("expected company first, got %v", all[0])
	}
	if all[1].Name() != "Alice" || all[2].Name() != "Bob" {
		t.Fatalf("people must follow in store order, got %v then %v", all[1], all[2])
	}

	// All-mode result is a snapshot: later mutations do not retrofit it.
	snap := m.FilteredEntityList()
	if err := m.AddPerson(p("Carol")); err != nil {
		t.Fatalf("AddPerson error: %v", err)
	}
	if len(snap) != 3 {
		t.Fatalf("all-mode snapshot must not grow, got %d", len(snap))
	}
}

func TestFilteredEntityListPerMode(t *testing.T) {
	m := newTestManager(t)
	if err := m.AddCompany(c("Initech")); err != nil {
		t.Fatalf("AddCompany error: %v", err)
	}
	if err := m.AddPerson(p("Alice")); err != nil {
		t.Fatalf("AddPerson error: %v", err)
	}

	// AddPerson left us in people mode.
	list := m.FilteredEntityList()
	if len(list) != 1 || list[0].Kind != model.KindPerson {
		t.Fatalf("people mode should select people only, got %v", list)
	}
	if m.NumEntities() != 1 {
		t.Fatalf("NumEntities in people mode: %d", m.NumEntities())
	}

	if err := m.SetCurrEntity("companies"); err != nil {
		t.Fatalf("SetCurrEntity error: %v", err)
	}
	list = m.FilteredEntityList()
	if len(list) != 1 || list[0].Kind != model.KindCompany {
		t.Fatalf("companies mode should select companies only, got %v", list)
	}
}

func TestManagerScenarioEmptyToPopulated(t *testing.T) {
	m := newTestManager(t)
	if !m.IsEmpty() || m.NumEntities() != 0 {
		t.Fatalf("fresh manager should be empty")
	}

	if err := m.AddCompany(c("Initech")); err != nil {
		t.Fatalf("AddCompany error: %v", err)
	}
	if m.Mode() != ModeCompanies {
		t.Fatalf("mode after AddCompany: %v", m.Mode())
	}
	if m.IsEmpty() || m.NumEntities() != 1 {
		t.Fatalf("after one company: empty=%v count=%d", m.IsEmpty(), m.NumEntities())
	}

	if err := m.AddPerson(p("Alice")); err != nil {
		t.Fatalf("AddPerson error: %v", err)
	}
	if m.Mode() != ModePeople {
		t.Fatalf("mode after AddPerson: %v", m.Mode())
	}
	// Per-list counters see both; the entity list is mode-scoped until "all".
	if m.NumPeople() != 1 || m.NumCompanies() != 1 {
		t.Fatalf("per-list counts: people=%d companies=%d", m.NumPeople(), m.NumCompanies())
	}
	if m.NumEntities() != 1 {
		t.Fatalf("people-mode entity count should exclude companies, got %d", m.NumEntities())
	}
	if err := m.SetCurrEntity("all"); err != nil {
		t.Fatalf("SetCurrEntity error: %v", err)
	}
	if m.NumEntities() != 2 {
		t.Fatalf("all-mode entity count: %d", m.NumEntities())
	}
}

func TestManagerSnapshotRoundTrip(t *testing.T) {
	people := []model.Person{
		{Name: "Alice", Tags: []string{"friend"}},
		{Name: "Bob"},
	}
	companies := []model.Company{
		{Name: "Initech", People: []model.Person{{Name: "Bob"}}},
	}

	m := newTestManager(t)
	m.ResetData(people, companies)

	gotPeople, gotCompanies := m.Snapshot()
	if len(gotPeople) != 2 || len(gotCompanies) != 1 {
		t.Fatalf("snapshot sizes: %d people, %d companies", len(gotPeople), len(gotCompanies))
	}
	for i := range people {
		if !gotPeople[i].Equal(people[i]) {
			t.Fatalf("person %d lost in round trip: %+v", i, gotPeople[i])
		}
	}
	for i := range companies {
		if !gotCompanies[i].Equal(companies[i]) {
			t.Fatalf("company %d lost in round trip: %+v", i, gotCompanies[i])
		}
	}

	m2 := NewManager(gotPeople, gotCompanies, Prefs{})
	if !m.Equals(m2) {
		t.Fatalf("round-tripped manager should compare equal")
	}
}

func TestManagerEquals(t *testing.T) {
	a := NewManager([]model.Person{{Name: "Alice"}}, nil, Prefs{FilePath: "a.json"})
	b := NewManager([]model.Person{{Name: "Alice"}}, nil, Prefs{FilePath: "a.json"})
	if !a.Equals(b) {
		t.Fatalf("structurally equal managers should be equal")
	}
	if !a.Equals(a) {
		t.Fatalf("manager should equal itself")
	}
	if a.Equals(nil) {
		t.Fatalf("manager should not equal nil")
	}

	b.SetPrefs(Prefs{FilePath: "b.json"})
	if a.Equals(b) {
		t.Fatalf("prefs divergence should break equality")
	}

	b.SetPrefs(Prefs{FilePath: "a.json"})
	if err := b.UpdateFilteredPersonList(func(model.Person) bool { return false }); err != nil {
		t.Fatalf("UpdateFilteredPersonList error: %v", err)
	}
	if a.Equals(b) {
		t.Fatalf("filtered view divergence should break equality")
	}
}

func TestManagerSummaryString(t *testing.T) {
	m := newTestManager(t)
	if err := m.AddCompany(c("Initech")); err != nil {
		t.Fatalf("AddCompany error: %v", err)
	}
	if err := m.AddPerson(p("Alice")); err != nil {
		t.Fatalf("AddPerson error: %v", err)
	}
	if err := m.SetCurrEntity("all"); err != nil {
		t.Fatalf("SetCurrEntity error: %v", err)
	}

	got := m.String()
	want := "There are 2 entities in the address book.\n" +
		"There are 1 people in the address book.\n" +
		"There are 1 companies in the address book.\n"
	if got != want {
		t.Fatalf("summary mismatch:\ngot  %q\nwant %q", got, want)
	}
}

func TestManagerWindowGeometryPassThrough(t *testing.T) {
	m := newTestManager(t)
	g := WindowGeometry{Width: 120, Height: 40, X: 10, Y: 20}
	m.SetWindowGeometry(g)
	if m.Prefs().Window != g {
		t.Fatalf("geometry should round-trip verbatim: %+v", m.Prefs().Window)
	}
}
