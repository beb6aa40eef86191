package table

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/tablekit/pkg/theme"
)

// maxColumnWidth caps computed column widths; longer cells are truncated.
const maxColumnWidth = 40

// Columns computes bubbles table columns for the rendered cells.
// Each column is as wide as its widest cell, capped at maxColumnWidth.
func Columns(headers []string, rows [][]string) []table.Column {
	columns := make([]table.Column, len(headers))
	for i, h := range headers {
		width := lipgloss.Width(h)
		for _, row := range rows {
			if i < len(row) {
				width = max(width, lipgloss.Width(row[i]))
			}
		}
		columns[i] = table.Column{Title: h, Width: min(width, maxColumnWidth)}
	}
	return columns
}

// NewModel builds an interactive bubbles table for data.
// The selected row uses the theme's "table-selected" class.
func NewModel[T any](data []T, cfg Config[T], height int, opts ...Option) table.Model {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	headers, cells := Cells(data, cfg)

	rows := make([]table.Row, len(cells))
	for i, c := range cells {
		rows[i] = table.Row(c)
	}

	t := table.New(
		table.WithColumns(Columns(headers, cells)),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	row := o.theme.Style(o.styles.Tr)
	s := table.DefaultStyles()
	if o.styles.Th != "" {
		s.Header = o.theme.Style(o.styles.Th).Inherit(row)
	}
	if o.styles.Td != "" {
		s.Cell = o.theme.Style(o.styles.Td).Inherit(row)
	}
	if o.theme.Has(theme.ClassTableSelectedRow) {
		s.Selected = o.theme.Style(theme.ClassTableSelectedRow)
	}
	t.SetStyles(s)

	return t
}

// SetData replaces the rows of an existing model, recomputing column widths.
func SetData[T any](m *table.Model, data []T, cfg Config[T]) {
	headers, cells := Cells(data, cfg)

	rows := make([]table.Row, len(cells))
	for i, c := range cells {
		rows[i] = table.Row(c)
	}

	// SetColumns re-renders the current rows, which must not have more cells than columns.
	m.SetRows(nil)
	m.SetColumns(Columns(headers, cells))
	m.SetRows(rows)
	m.SetCursor(0)
}
