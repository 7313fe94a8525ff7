package tui

import (
	"fmt"
	"io"
	"strings"

	"rolo/internal/model"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

type entityRowItem struct {
	entity model.Entity
	// showBadge adds a kind marker; only the combined tab needs it.
	showBadge bool
}

func (i entityRowItem) FilterValue() string { return i.entity.Name() }

func (i entityRowItem) Title() string {
	name := strings.TrimSpace(i.entity.Name())
	if name == "" {
		name = "(unnamed)"
	}
	meta := entityMetaLine(i.entity)
	badge := ""
	if i.showBadge {
		badge = renderKindBadge(i.entity.Kind) + " "
	}
	if meta == "" {
		return badge + name
	}
	return badge + name + "  " + faintStyle.Render(meta)
}

func (i entityRowItem) Description() string { return i.entity.ID() }

func entityMetaLine(e model.Entity) string {
	parts := make([]string, 0, 3)
	switch e.Kind {
	case model.KindPerson:
		if p := strings.TrimSpace(e.Person.Phone); p != "" {
			parts = append(parts, p)
		}
		if m := strings.TrimSpace(e.Person.Email); m != "" {
			parts = append(parts, m)
		}
		for _, tag := range e.Person.Tags {
			tag = strings.TrimSpace(tag)
			if tag == "" {
				continue
			}
			parts = append(parts, "#"+tag)
		}
	case model.KindCompany:
		if ind := strings.TrimSpace(e.Company.Industry); ind != "" {
			parts = append(parts, ind)
		}
		if loc := strings.TrimSpace(e.Company.Location); loc != "" {
			parts = append(parts, loc)
		}
		if n := len(e.Company.People); n == 1 {
			parts = append(parts, "1 contact")
		} else if n > 1 {
			parts = append(parts, fmt.Sprintf("%d contacts", n))
		}
	}
	return strings.Join(parts, "  ")
}

func renderKindBadge(kind model.EntityKind) string {
	if kind == model.KindCompany {
		return lipgloss.NewStyle().Foreground(colorBadgeCompany).Bold(true).Render("C")
	}
	return lipgloss.NewStyle().Foreground(colorBadgePerson).Bold(true).Render("P")
}

type compactItemDelegate struct {
	normal   lipgloss.Style
	selected lipgloss.Style
}

func newCompactItemDelegate() compactItemDelegate {
	return compactItemDelegate{
		normal: lipgloss.NewStyle(),
		selected: lipgloss.NewStyle().
			Foreground(colorSelectedFg).
			Background(colorSelectedBg).
			Bold(true),
	}
}

func (d compactItemDelegate) Height() int  { return 1 }
func (d compactItemDelegate) Spacing() int { return 0 }
func (d compactItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d compactItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	contentW := m.Width()
	if contentW < 4 {
		fmt.Fprint(w, "")
		return
	}

	style := d.normal
	if index == m.Index() {
		style = d.selected
	}

	txt := ""
	if t, ok := item.(interface{ Title() string }); ok {
		txt = t.Title()
	} else {
		txt = fmt.Sprint(item)
	}

	line := txt
	lineW := xansi.StringWidth(line)
	if lineW < contentW {
		line += strings.Repeat(" ", contentW-lineW)
	} else if lineW > contentW {
		line = xansi.Cut(line, 0, contentW)
	}

	fmt.Fprint(w, style.Render(line))
}

func newEntityList() list.Model {
	l := list.New(nil, newCompactItemDelegate(), 0, 0)
	// The app renders its own tabs, header and footer, so keep list chrome off.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	// Filtering goes through the address book views, not the bubble list.
	l.SetFilteringEnabled(false)
	l.SetStatusBarItemName("entity", "entities")
	l.KeyMap.Quit.SetKeys("q")

	cursorUpKeys := append([]string{}, l.KeyMap.CursorUp.Keys()...)
	cursorUpKeys = append(cursorUpKeys, "ctrl+p")
	l.KeyMap.CursorUp.SetKeys(cursorUpKeys...)

	cursorDownKeys := append([]string{}, l.KeyMap.CursorDown.Keys()...)
	cursorDownKeys = append(cursorDownKeys, "ctrl+n")
	l.KeyMap.CursorDown.SetKeys(cursorDownKeys...)
	return l
}
