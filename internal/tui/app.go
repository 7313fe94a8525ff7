package tui

import (
	"fmt"
	"strings"

	"rolo/internal/book"
	"rolo/internal/model"
	"rolo/internal/store"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Run starts the interactive browser. save is called once on exit with the
// manager so the caller can persist the snapshot the way it loaded it.
func Run(mgr *book.Manager, st store.Store, save func(*book.Manager) error) error {
	p := tea.NewProgram(newAppModel(mgr, st, save), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(appModel); ok && m.exitErr != nil {
		return m.exitErr
	}
	return nil
}

type focusArea int

const (
	focusList focusArea = iota
	focusFilter
	focusDetail
)

var tabOrder = []string{book.EntityAll, book.EntityPeople, book.EntityCompanies}

type appModel struct {
	mgr  *book.Manager
	st   store.Store
	save func(*book.Manager) error

	lst    list.Model
	filter textinput.Model
	focus  focusArea

	// query is the applied filter text, kept for the header; clearing it
	// resets both views back to show-all.
	query string

	width  int
	height int

	status  string
	exitErr error
}

func newAppModel(mgr *book.Manager, st store.Store, save func(*book.Manager) error) appModel {
	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "filter by name, phone, email, tag..."
	ti.CharLimit = 120

	m := appModel{
		mgr:    mgr,
		st:     st,
		save:   save,
		lst:    newEntityList(),
		filter: ti,
	}
	m.refreshList(true)
	return m
}

func (m appModel) Init() tea.Cmd { return nil }

// tabIndex maps the manager mode onto the tab row. The manager is the
// source of truth so CLI-persisted modes land on the matching tab.
func (m appModel) tabIndex() int {
	switch m.mgr.Mode() {
	case book.ModePeople:
		return 1
	case book.ModeCompanies:
		return 2
	default:
		return 0
	}
}

func (m *appModel) refreshList(resetCursor bool) {
	entities := m.mgr.FilteredEntityList()
	badged := m.mgr.Mode() == book.ModeAll
	items := make([]list.Item, 0, len(entities))
	for _, e := range entities {
		items = append(items, entityRowItem{entity: e, showBadge: badged})
	}
	m.lst.SetItems(items)
	if resetCursor {
		m.lst.Select(0)
	}
}

func (m *appModel) selectTab(idx int) {
	if idx < 0 {
		idx = len(tabOrder) - 1
	}
	if idx >= len(tabOrder) {
		idx = 0
	}
	_ = m.mgr.SetCurrEntity(tabOrder[idx])
	m.refreshList(true)
}

func (m *appModel) applyFilter(q string) {
	q = strings.TrimSpace(q)
	m.query = q
	mode := m.mgr.Mode()
	if q == "" {
		m.mgr.FilteredPeople().ShowAll()
		m.mgr.FilteredCompanies().ShowAll()
	} else {
		switch mode {
		case book.ModePeople:
			_ = m.mgr.UpdateFilteredPersonList(func(p model.Person) bool {
				return p.MatchesQuery(q)
			})
		case book.ModeCompanies:
			_ = m.mgr.UpdateFilteredCompanyList(func(c model.Company) bool {
				return c.MatchesQuery(q)
			})
		default:
			// Combined tab: narrow both projections, then restore the mode
			// the predicate updates just switched away from.
			_ = m.mgr.UpdateFilteredPersonList(func(p model.Person) bool {
				return p.MatchesQuery(q)
			})
			_ = m.mgr.UpdateFilteredCompanyList(func(c model.Company) bool {
				return c.MatchesQuery(q)
			})
			m.mgr.UpdateToAllEntities()
		}
	}
	m.refreshList(true)
	if q != "" && m.mgr.IsEmpty() {
		m.status = fmt.Sprintf("no matches for %q", q)
	}
}

func (m *appModel) quit() tea.Cmd {
	m.mgr.SetWindowGeometry(book.WindowGeometry{Width: m.width, Height: m.height})
	if err := m.save(m.mgr); err != nil {
		m.exitErr = err
	}
	if cfg, err := store.LoadConfig(); err == nil {
		cfg.Mode = m.mgr.CurrEntity()
		cfg.Window = m.mgr.Prefs().Window
		if err := store.SaveConfig(cfg); err != nil && m.exitErr == nil {
			m.exitErr = err
		}
	}
	return tea.Quit
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.lst.SetSize(msg.Width, m.listHeight())
		m.filter.Width = msg.Width - 4
		return m, nil

	case tea.KeyMsg:
		switch m.focus {
		case focusFilter:
			return m.updateFilter(msg)
		case focusDetail:
			return m.updateDetail(msg)
		}
		return m.updateList(msg)
	}

	var cmd tea.Cmd
	m.lst, cmd = m.lst.Update(msg)
	return m, cmd
}

func (m appModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	m.debugLogf("key mode=%s focus=%d str=%q", m.mgr.CurrEntity(), int(m.focus), msg.String())
	switch msg.String() {
	case "ctrl+c", "q":
		return m, m.quit()
	case "tab", "right", "l":
		m.selectTab(m.tabIndex() + 1)
		return m, nil
	case "shift+tab", "left", "h":
		m.selectTab(m.tabIndex() - 1)
		return m, nil
	case "1", "2", "3":
		m.selectTab(int(msg.Runes[0] - '1'))
		return m, nil
	case "/":
		m.focus = focusFilter
		m.filter.SetValue(m.query)
		m.filter.Focus()
		return m, textinput.Blink
	case "esc":
		if m.query != "" {
			m.applyFilter("")
		}
		return m, nil
	case "enter":
		if _, ok := m.lst.SelectedItem().(entityRowItem); ok {
			m.focus = focusDetail
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.lst, cmd = m.lst.Update(msg)
	return m, cmd
}

func (m appModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, m.quit()
	case "esc":
		m.focus = focusList
		m.filter.Blur()
		return m, nil
	case "enter":
		m.focus = focusList
		m.filter.Blur()
		m.applyFilter(m.filter.Value())
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	return m, cmd
}

func (m appModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, m.quit()
	case "esc", "enter", "backspace":
		m.focus = focusList
		return m, nil
	}
	return m, nil
}

func (m appModel) listHeight() int {
	// tabs + header line + footer, plus the filter line while it is open.
	chrome := 4
	if m.focus == focusFilter {
		chrome++
	}
	h := m.height - chrome
	if h < 1 {
		h = 1
	}
	return h
}

func (m appModel) View() string {
	if m.width == 0 {
		return "loading..."
	}
	if m.focus == focusDetail {
		return m.viewDetail()
	}

	var b strings.Builder
	b.WriteString(m.viewTabs())
	b.WriteString("\n")
	b.WriteString(m.viewHeader())
	b.WriteString("\n")
	if m.focus == focusFilter {
		b.WriteString(m.filter.View())
		b.WriteString("\n")
	}
	b.WriteString(m.lst.View())
	b.WriteString("\n")
	b.WriteString(m.viewFooter())
	return b.String()
}

func (m appModel) viewTabs() string {
	labels := []string{
		fmt.Sprintf("All (%d)", m.mgr.FilteredCompanies().Len()+m.mgr.FilteredPeople().Len()),
		fmt.Sprintf("People (%d)", m.mgr.NumPeople()),
		fmt.Sprintf("Companies (%d)", m.mgr.NumCompanies()),
	}
	active := m.tabIndex()
	rendered := make([]string, len(labels))
	for i, lbl := range labels {
		if i == active {
			rendered[i] = tabActiveStyle.Render(lbl)
		} else {
			rendered[i] = tabStyle.Render(lbl)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, rendered...)
}

func (m appModel) viewHeader() string {
	if m.query != "" {
		return faintStyle.Render(fmt.Sprintf("filter: %q  (esc clears)", m.query))
	}
	if m.mgr.IsEmpty() {
		return faintStyle.Render("empty")
	}
	return faintStyle.Render(fmt.Sprintf("%d entities", m.mgr.NumEntities()))
}

func (m appModel) viewFooter() string {
	if m.status != "" {
		return errorStyle.Render(m.status)
	}
	return faintStyle.Render("tab/1-3 switch  / filter  enter detail  q quit")
}

func (m appModel) viewDetail() string {
	item, ok := m.lst.SelectedItem().(entityRowItem)
	if !ok {
		return faintStyle.Render("nothing selected")
	}
	e := item.entity

	var b strings.Builder
	b.WriteString(detailTitleStyle.Render(e.Name()))
	b.WriteString("\n")
	b.WriteString(faintStyle.Render(e.ID()))
	b.WriteString("\n\n")

	field := func(label, value string) {
		if strings.TrimSpace(value) == "" {
			return
		}
		b.WriteString(detailLabelStyle.Render(fmt.Sprintf("%-10s", label)))
		b.WriteString(" ")
		b.WriteString(value)
		b.WriteString("\n")
	}

	switch e.Kind {
	case model.KindPerson:
		p := e.Person
		field("phone", p.Phone)
		field("email", p.Email)
		field("address", p.Address)
		field("tags", strings.Join(p.Tags, ", "))
		if strings.TrimSpace(p.Note) != "" {
			b.WriteString("\n")
			b.WriteString(renderMarkdown(p.Note, m.width-2))
			b.WriteString("\n")
		}
	case model.KindCompany:
		c := e.Company
		field("industry", c.Industry)
		field("location", c.Location)
		field("website", c.Website)
		field("email", c.Email)
		field("phone", c.Phone)
		field("address", c.Address)
		if len(c.People) > 0 {
			b.WriteString("\n")
			b.WriteString(headerStyle.Render("Contacts"))
			b.WriteString("\n")
			for _, p := range c.People {
				line := "  " + p.Name
				if strings.TrimSpace(p.Phone) != "" {
					line += "  " + faintStyle.Render(p.Phone)
				}
				b.WriteString(line)
				b.WriteString("\n")
			}
		}
		if strings.TrimSpace(c.Description) != "" {
			b.WriteString("\n")
			b.WriteString(renderMarkdown(c.Description, m.width-2))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(faintStyle.Render("esc back  q quit"))
	return b.String()
}
