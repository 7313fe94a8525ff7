package tui

import (
	"strings"
	"testing"

	"rolo/internal/model"
)

func TestEntityRowTitleFallsBackWhenUnnamed(t *testing.T) {
	item := entityRowItem{entity: model.PersonEntity(model.Person{ID: "per-x"})}
	if got := item.Title(); !strings.Contains(got, "(unnamed)") {
		t.Fatalf("unnamed row title = %q", got)
	}
}

func TestEntityMetaLine(t *testing.T) {
	p := model.PersonEntity(model.Person{
		Name:  "Alice Pauline",
		Phone: "555-0100",
		Email: "alice@example.com",
		Tags:  []string{"friend", ""},
	})
	meta := entityMetaLine(p)
	for _, want := range []string{"555-0100", "alice@example.com", "#friend"} {
		if !strings.Contains(meta, want) {
			t.Fatalf("person meta %q missing %q", meta, want)
		}
	}
	if strings.Contains(meta, "# ") {
		t.Fatalf("blank tags must be skipped: %q", meta)
	}

	c := model.CompanyEntity(model.Company{
		Name:     "Acme Corp",
		Industry: "Manufacturing",
		Location: "Reno",
		People:   []model.Person{{Name: "Bob Choo"}},
	})
	meta = entityMetaLine(c)
	for _, want := range []string{"Manufacturing", "Reno", "1 contact"} {
		if !strings.Contains(meta, want) {
			t.Fatalf("company meta %q missing %q", meta, want)
		}
	}
}

func TestEntityRowFilterValueIsName(t *testing.T) {
	item := entityRowItem{entity: model.CompanyEntity(model.Company{Name: "Acme Corp"})}
	if got := item.FilterValue(); got != "Acme Corp" {
		t.Fatalf("FilterValue = %q", got)
	}
}
