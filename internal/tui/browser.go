package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	bubbletable "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/rshade/tablekit/internal/records"
	"github.com/rshade/tablekit/pkg/pagination"
	"github.com/rshade/tablekit/pkg/table"
	"github.com/rshade/tablekit/pkg/theme"
)

// Browser defaults.
const (
	defaultPageSize    = 20
	defaultTableHeight = 15
)

// Focus identifies which component receives typed keys.
type Focus int

const (
	// FocusTable routes keys to the table.
	FocusTable Focus = iota
	// FocusPager routes keys to the page field.
	FocusPager
)

// BrowserConfig configures a BrowserModel.
type BrowserConfig struct {
	PageSize    int
	Height      int
	Label       string
	Theme       *theme.Theme
	PagerStyles pagination.Styles
	TableStyles table.Styles
	Logger      zerolog.Logger

	// StartPage is the page shown first. Values past the last page show the last page.
	StartPage int
}

// BrowserKeyMap holds the browser-level bindings shown in the help bar.
type BrowserKeyMap struct {
	Quit  key.Binding
	Focus key.Binding
	Up    key.Binding
	Down  key.Binding
	Prev  key.Binding
	Next  key.Binding
}

// DefaultBrowserKeyMap returns the browser bindings.
func DefaultBrowserKeyMap() BrowserKeyMap {
	pager := pagination.DefaultKeyMap()
	rows := bubbletable.DefaultKeyMap()
	return BrowserKeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Focus: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "switch focus"),
		),
		Up:   rows.LineUp,
		Down: rows.LineDown,
		Prev: pager.Prev,
		Next: pager.Next,
	}
}

// ShortHelp implements help.KeyMap.
func (k BrowserKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Prev, k.Next, k.Focus, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k BrowserKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Prev, k.Next}, {k.Focus, k.Quit}}
}

// BrowserModel is the Bubble Tea model behind `tablekit show --interactive`.
// It shows one page of records in a table with a page selector below it.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type BrowserModel struct {
	records  []records.Record
	cfg      table.Config[records.Record]
	pageSize int

	table bubbletable.Model
	pager *pagination.Model
	help  help.Model
	keys  BrowserKeyMap
	focus Focus

	quitting bool
}

// NewBrowserModel creates a browser over recs showing the columns of cfg.
func NewBrowserModel(
	recs []records.Record,
	cfg table.Config[records.Record],
	bc BrowserConfig,
) BrowserModel {
	if bc.PageSize <= 0 {
		bc.PageSize = defaultPageSize
	}
	if bc.Height <= 0 {
		bc.Height = defaultTableHeight
	}
	if bc.Theme == nil {
		bc.Theme = theme.Default()
	}
	if bc.PagerStyles == (pagination.Styles{}) {
		bc.PagerStyles = pagination.DefaultStyles()
	}
	if bc.TableStyles == (table.Styles{}) {
		bc.TableStyles = table.DefaultStyles()
	}

	m := BrowserModel{
		records:  recs,
		cfg:      cfg,
		pageSize: bc.PageSize,
		help:     help.New(),
		keys:     DefaultBrowserKeyMap(),
		focus:    FocusTable,
	}

	total := totalPages(len(recs), bc.PageSize)
	m.pager = pagination.NewModel(
		total,
		bc.Label,
		pagination.WithTheme(bc.Theme),
		pagination.WithStyles(bc.PagerStyles),
		pagination.WithLogger(bc.Logger),
	)
	m.pager.Blur()
	if start := min(bc.StartPage, total); start > pagination.FirstPage {
		m.pager.Pagination().HandleInput(strconv.Itoa(start))
	}

	m.table = table.NewModel(m.pageRecords(), cfg, bc.Height,
		table.WithTheme(bc.Theme),
		table.WithStyles(bc.TableStyles),
	)

	return m
}

// totalPages returns the page count for n records; an empty set has one page.
func totalPages(n, size int) int {
	if n == 0 {
		return 1
	}
	return (n + size - 1) / size
}

// pageRecords returns the records of the current page.
func (m BrowserModel) pageRecords() []records.Record {
	start := (m.pager.Page() - 1) * m.pageSize
	end := min(start+m.pageSize, len(m.records))
	if start >= end {
		return nil
	}
	return m.records[start:end]
}

// Init implements tea.Model.
func (m BrowserModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case pagination.PageChangedMsg:
		table.SetData(&m.table, m.pageRecords(), m.cfg)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m BrowserModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Focus):
		m.toggleFocus()
		return m, nil
	case m.focus == FocusPager,
		key.Matches(msg, m.keys.Prev),
		key.Matches(msg, m.keys.Next):
		_, cmd := m.pager.Update(msg)
		return m, cmd
	default:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
}

func (m *BrowserModel) toggleFocus() {
	if m.focus == FocusTable {
		m.focus = FocusPager
		m.table.Blur()
		m.pager.Focus()
		return
	}
	m.focus = FocusTable
	m.pager.Blur()
	m.table.Focus()
}

// View implements tea.Model.
func (m BrowserModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.table.View())
	b.WriteString("\n")
	b.WriteString(m.pager.View())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// Page returns the current page.
func (m BrowserModel) Page() int {
	return m.pager.Page()
}

// TotalPages returns the number of pages.
func (m BrowserModel) TotalPages() int {
	return m.pager.Total()
}

// Focus returns the focused component.
func (m BrowserModel) Focus() Focus {
	return m.focus
}

// Selected returns the record under the table cursor, or nil when the page is empty.
func (m BrowserModel) Selected() records.Record {
	page := m.pageRecords()
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(page) {
		return nil
	}
	return page[cursor]
}

// Rows returns the cell rows currently shown in the table.
func (m BrowserModel) Rows() []bubbletable.Row {
	return m.table.Rows()
}
