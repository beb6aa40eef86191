package theme

import "github.com/charmbracelet/lipgloss"

// Color palette shared by the default classes.
const (
	ColorHeader   = lipgloss.Color("39")  // Blue
	ColorBorder   = lipgloss.Color("240") // Gray
	ColorMuted    = lipgloss.Color("245") // Light gray
	ColorLabel    = lipgloss.Color("250")
	ColorValue    = lipgloss.Color("255")
	ColorSelected = lipgloss.Color("57") // Purple
	ColorAccent   = lipgloss.Color("205")
)

// Class names defined by Default.
const (
	ClassPager            = "pager"
	ClassPagerButton      = "pager-btn"
	ClassPagerButtonOff   = "pager-btn-disabled"
	ClassPagerContent     = "pager-content"
	ClassPagerInput       = "pager-input"
	ClassPagerLabel       = "pager-label"
	ClassTable            = "table"
	ClassTableRow         = "table-row"
	ClassTableHeader      = "table-header"
	ClassTableCell        = "table-cell"
	ClassTableSelectedRow = "table-selected"
)

// Default returns the built-in theme used by the tablekit CLI.
// Callers get a fresh copy and may redefine classes freely.
func Default() *Theme {
	t := New()

	t.Define(ClassPager, lipgloss.NewStyle().Padding(0, 1))
	t.Define(ClassPagerButton, lipgloss.NewStyle().
		Foreground(ColorAccent).
		Bold(true).
		Padding(0, 1))
	t.Define(ClassPagerButtonOff, lipgloss.NewStyle().
		Foreground(ColorBorder).
		Faint(true).
		Padding(0, 1))
	t.Define(ClassPagerContent, lipgloss.NewStyle().Padding(0, 1))
	t.Define(ClassPagerInput, lipgloss.NewStyle().
		Foreground(ColorValue).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(ColorBorder))
	t.Define(ClassPagerLabel, lipgloss.NewStyle().Foreground(ColorLabel).PaddingLeft(1))

	t.Define(ClassTable, lipgloss.NewStyle().BorderForeground(ColorBorder))
	t.Define(ClassTableRow, lipgloss.NewStyle())
	t.Define(ClassTableHeader, lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorHeader).
		Padding(0, 1))
	t.Define(ClassTableCell, lipgloss.NewStyle().Foreground(ColorValue).Padding(0, 1))
	t.Define(ClassTableSelectedRow, lipgloss.NewStyle().
		Foreground(lipgloss.Color("229")).
		Background(ColorSelected).
		Bold(false))

	return t
}
