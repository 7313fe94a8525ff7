package store

import (
	"strings"
	"testing"

	"rolo/internal/model"
)

func testStore(t *testing.T) Store {
	t.Helper()
	return Store{Dir: t.TempDir()}
}

func TestLoadMissingReturnsEmpty(t *testing.T) {
	s := testStore(t)
	db, err := s.Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(db.People) != 0 || len(db.Companies) != 0 {
		t.Fatalf("fresh db should be empty: %+v", db)
	}
	if db.Version != 1 {
		t.Fatalf("fresh db version: %d", db.Version)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := testStore(t)
	db := &DB{
		Version: 1,
		Mode:    "all",
		People: []model.Person{
			{ID: "per-1", Name: "Alice", Tags: []string{"friend"}},
			{ID: "per-2", Name: "Bob"},
		},
		Companies: []model.Company{
			{ID: "com-1", Name: "Initech", People: []model.Person{{ID: "per-2", Name: "Bob"}}},
		},
	}
	if err := s.Save(db); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got.Mode != "all" {
		t.Fatalf("mode lost: %q", got.Mode)
	}
	if len(got.People) != 2 || len(got.Companies) != 1 {
		t.Fatalf("sizes: %d people, %d companies", len(got.People), len(got.Companies))
	}
	// No loss or reordering.
	for i := range db.People {
		if !got.People[i].Equal(db.People[i]) {
			t.Fatalf("person %d mismatch: %+v", i, got.People[i])
		}
	}
	if !got.Companies[0].Equal(db.Companies[0]) {
		t.Fatalf("company mismatch: %+v", got.Companies[0])
	}
}

func TestFindPersonByIDThenName(t *testing.T) {
	db := &DB{People: []model.Person{
		{ID: "per-1", Name: "Alice"},
		{ID: "per-2", Name: "per-1"}, // pathological name; id match must win
	}}

	got, ok := db.FindPerson("per-1")
	if !ok || got.ID != "per-1" {
		t.Fatalf("id lookup should win: %+v", got)
	}
	got, ok = db.FindPerson("Alice")
	if !ok || got.ID != "per-1" {
		t.Fatalf("name lookup failed: %+v", got)
	}
	if _, ok := db.FindPerson("Nobody"); ok {
		t.Fatalf("unexpected hit")
	}
}

func TestNextIDUniqueAndPrefixed(t *testing.T) {
	s := testStore(t)
	db := &DB{}
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		id := s.NextID(db, "per")
		if !strings.HasPrefix(id, "per-") {
			t.Fatalf("bad prefix: %q", id)
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
		db.People = append(db.People, model.Person{ID: id})
	}
}
