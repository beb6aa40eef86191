package pagination

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// pageInputWidth is the visible width of the page field in cells.
const pageInputWidth = 6

// PageChangedMsg is emitted by Model after the current page changes.
type PageChangedMsg struct {
	Page int
}

// Model is a Bubble Tea host for Pagination.
//
// It owns the page text and keeps it in a text input. Every edit of the
// field is passed to Pagination.HandleInput and the normalized text is
// written back into the field, so the field never shows a value the
// Pagination rejected.
type Model struct {
	pager *Pagination
	input textinput.Model
	keys  KeyMap

	// changed is set when the current page moves during one Update.
	changed bool
}

// NewModel creates a focused Model for total pages.
// Options are applied to the underlying Pagination.
func NewModel(total int, label string, opts ...Option) *Model {
	m := &Model{
		input: newPageInput(),
		keys:  DefaultKeyMap(),
	}

	m.pager = New(total, label, m.setText, opts...)

	hostFn := m.pager.onPageChange
	m.pager.onPageChange = func(page int) {
		m.changed = true
		if hostFn != nil {
			hostFn(page)
		}
	}

	return m
}

func newPageInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Width = pageInputWidth
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.Focus()
	return ti
}

func (m *Model) setText(s string) {
	m.input.SetValue(s)
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Stepping keys move the page; any other key is
// an edit of the page field while it is focused.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.changed = false

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Prev):
			m.pager.Prev()
		case key.Matches(msg, m.keys.Next):
			m.pager.Next()
		default:
			cmd = m.updateInput(msg)
		}
	default:
		m.input, cmd = m.input.Update(msg)
	}

	if m.changed {
		page := m.pager.CurrentPage()
		cmd = tea.Batch(cmd, func() tea.Msg {
			return PageChangedMsg{Page: page}
		})
	}

	return m, cmd
}

// updateInput applies an edit to the field and hands the new value to the
// Pagination when it differs from the previous one.
func (m *Model) updateInput(msg tea.KeyMsg) tea.Cmd {
	if !m.input.Focused() {
		return nil
	}

	before := m.input.Value()

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if raw := m.input.Value(); raw != before {
		m.pager.HandleInput(raw)
	}
	return cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	return m.pager.render(m.pager.theme.Render(m.pager.styles.Input, m.input.View()))
}

// Page returns the current page.
func (m *Model) Page() int {
	return m.pager.CurrentPage()
}

// Total returns the page bound.
func (m *Model) Total() int {
	return m.pager.Total()
}

// Value returns the text currently held in the page field.
func (m *Model) Value() string {
	return m.input.Value()
}

// Pagination returns the underlying Pagination.
func (m *Model) Pagination() *Pagination {
	return m.pager
}

// Focus focuses the page field.
func (m *Model) Focus() tea.Cmd {
	return m.input.Focus()
}

// Blur removes focus from the page field. Stepping keys keep working.
func (m *Model) Blur() {
	m.input.Blur()
}

// Focused reports whether the page field has focus.
func (m *Model) Focused() bool {
	return m.input.Focused()
}

// KeyMap returns the stepping bindings.
func (m *Model) KeyMap() KeyMap {
	return m.keys
}

// SetKeyMap replaces the stepping bindings.
func (m *Model) SetKeyMap(k KeyMap) {
	m.keys = k
}
