package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"rolo/internal/model"
)

// Tabler is implemented by values that can render themselves as a table.
type Tabler interface {
	TableRows() (headers []string, rows [][]string)
}

// WriteTable renders v human-readably. Entity slices get dedicated layouts;
// anything else falls back to a single pretty-JSON cell.
func WriteTable(w io.Writer, v any) error {
	switch t := v.(type) {
	case []model.Person:
		return writePersonTable(w, t)
	case []model.Company:
		return writeCompanyTable(w, t)
	case []model.Entity:
		return writeEntityTable(w, t)
	case Tabler:
		headers, rows := t.TableRows()
		return writeRows(w, headers, rows)
	default:
		return WriteJSON(w, v, true)
	}
}

func writePersonTable(w io.Writer, people []model.Person) error {
	rows := make([][]string, 0, len(people))
	for _, p := range people {
		rows = append(rows, []string{p.ID, p.Name, p.Phone, p.Email, strings.Join(p.Tags, ",")})
	}
	return writeRows(w, []string{"ID", "NAME", "PHONE", "EMAIL", "TAGS"}, rows)
}

func writeCompanyTable(w io.Writer, companies []model.Company) error {
	rows := make([][]string, 0, len(companies))
	for _, c := range companies {
		rows = append(rows, []string{c.ID, c.Name, c.Industry, c.Location, fmt.Sprintf("%d", len(c.People))})
	}
	return writeRows(w, []string{"ID", "NAME", "INDUSTRY", "LOCATION", "PEOPLE"}, rows)
}

func writeEntityTable(w io.Writer, entities []model.Entity) error {
	rows := make([][]string, 0, len(entities))
	for _, e := range entities {
		var kind, detail string
		switch e.Kind {
		case model.KindPerson:
			kind = "person"
			detail = e.Person.Phone
		case model.KindCompany:
			kind = "company"
			detail = e.Company.Industry
		}
		rows = append(rows, []string{e.ID(), kind, e.Name(), detail})
	}
	return writeRows(w, []string{"ID", "KIND", "NAME", "DETAIL"}, rows)
}

func writeRows(w io.Writer, headers []string, rows [][]string) error {
	if len(rows) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, err := f.Fprintln(w, " none")
		return err
	}

	table := uitable.New()
	table.MaxColWidth = 50

	hdr := make([]interface{}, len(headers))
	bold := color.New(color.Bold)
	for i, h := range headers {
		hdr[i] = bold.Sprint(h)
	}
	table.AddRow(hdr...)

	for _, r := range rows {
		cells := make([]interface{}, len(r))
		for i, c := range r {
			cells[i] = c
		}
		table.AddRow(cells...)
	}

	_, err := fmt.Fprintln(w, table.String())
	return err
}
