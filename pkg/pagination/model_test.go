package pagination_test

import (
	"strconv"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/tablekit/pkg/pagination"
)

func typeRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func backspace() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyBackspace}
}

// pageChanges runs cmd and returns the PageChangedMsg values it produced.
func pageChanges(cmd tea.Cmd) []pagination.PageChangedMsg {
	if cmd == nil {
		return nil
	}

	var out []pagination.PageChangedMsg
	switch msg := cmd().(type) {
	case pagination.PageChangedMsg:
		out = append(out, msg)
	case tea.BatchMsg:
		for _, c := range msg {
			out = append(out, pageChanges(c)...)
		}
	}
	return out
}

func TestModel_New(t *testing.T) {
	m := pagination.NewModel(10, "of")

	assert.Equal(t, 1, m.Page())
	assert.Equal(t, 10, m.Total())
	assert.Equal(t, "1", m.Value())
	assert.True(t, m.Focused())
	assert.Nil(t, m.Init())
}

func TestModel_StepKeys(t *testing.T) {
	m := pagination.NewModel(3, "of")

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		wantPage int
		wantMsg  bool
	}{
		{name: "prev at first page", msg: tea.KeyMsg{Type: tea.KeyPgUp}, wantPage: 1},
		{name: "pgdown", msg: tea.KeyMsg{Type: tea.KeyPgDown}, wantPage: 2, wantMsg: true},
		{name: "tab", msg: tea.KeyMsg{Type: tea.KeyTab}, wantPage: 3, wantMsg: true},
		{name: "next at last page", msg: tea.KeyMsg{Type: tea.KeyCtrlF}, wantPage: 3},
		{name: "shift+tab", msg: tea.KeyMsg{Type: tea.KeyShiftTab}, wantPage: 2, wantMsg: true},
		{name: "ctrl+b", msg: tea.KeyMsg{Type: tea.KeyCtrlB}, wantPage: 1, wantMsg: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, cmd := m.Update(tt.msg)

			assert.Equal(t, tt.wantPage, m.Page())
			assert.Equal(t, strconv.Itoa(tt.wantPage), m.Value())

			changes := pageChanges(cmd)
			if tt.wantMsg {
				require.Len(t, changes, 1)
				assert.Equal(t, tt.wantPage, changes[0].Page)
			} else {
				assert.Empty(t, changes)
			}
		})
	}
}

func TestModel_TypingScenario(t *testing.T) {
	m := pagination.NewModel(10, "of")

	m.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	require.Equal(t, 2, m.Page())
	require.Equal(t, "2", m.Value())

	m.Update(backspace())
	assert.Equal(t, "", m.Value())
	assert.Equal(t, 2, m.Page(), "clearing the field keeps the page")

	_, cmd := m.Update(typeRunes("7"))
	assert.Equal(t, "7", m.Value())
	assert.Equal(t, 7, m.Page())
	changes := pageChanges(cmd)
	require.Len(t, changes, 1)
	assert.Equal(t, 7, changes[0].Page)

	// "7" + "5" = "75", above the total.
	_, cmd = m.Update(typeRunes("5"))
	assert.Equal(t, "10", m.Value())
	assert.Equal(t, 7, m.Page())
	assert.Empty(t, pageChanges(cmd))

	m.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	assert.Equal(t, 8, m.Page())
	assert.Equal(t, "8", m.Value())
}

func TestModel_NonDigitFallsBack(t *testing.T) {
	m := pagination.NewModel(10, "of")
	m.Update(tea.KeyMsg{Type: tea.KeyPgDown})

	m.Update(typeRunes("x"))
	assert.Equal(t, "1", m.Value())
	assert.Equal(t, 2, m.Page())
}

func TestModel_BlurredIgnoresTyping(t *testing.T) {
	m := pagination.NewModel(10, "of")
	m.Blur()
	require.False(t, m.Focused())

	m.Update(typeRunes("5"))
	assert.Equal(t, "1", m.Value())

	m.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	assert.Equal(t, 2, m.Page(), "stepping works without focus")

	m.Focus()
	assert.True(t, m.Focused())
}

func TestModel_HostPageChangeHook(t *testing.T) {
	var got []int
	m := pagination.NewModel(5, "of", pagination.WithOnPageChange(func(page int) {
		got = append(got, page)
	}))

	m.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	m.Update(tea.KeyMsg{Type: tea.KeyPgUp})

	assert.Equal(t, []int{2, 1}, got)
}

func TestModel_View(t *testing.T) {
	m := pagination.NewModel(4, "Page")

	view := m.View()
	assert.Contains(t, view, "<")
	assert.Contains(t, view, "1")
	assert.Contains(t, view, "Page 4")
	assert.Contains(t, view, ">")
	assert.Same(t, m.Pagination(), m.Pagination())
}

func TestModel_KeyMap(t *testing.T) {
	m := pagination.NewModel(4, "of")
	keys := m.KeyMap()

	assert.Len(t, keys.ShortHelp(), 2)
	assert.Len(t, keys.FullHelp(), 1)

	keys.Next.SetEnabled(false)
	m.SetKeyMap(keys)
	m.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	assert.Equal(t, 1, m.Page())
}
