package table

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"

	"github.com/rshade/tablekit/pkg/theme"
)

// RenderFunc produces the display content of one cell.
// key is the Key of the column being rendered.
type RenderFunc[T any] func(item T, key string) string

// Column configures one table column.
type Column[T any] struct {
	// Key identifies the field the column shows; it is passed to Render.
	Key string
	// Name is the column title.
	Name string
	// Render produces the cell content. A nil Render yields empty cells.
	Render RenderFunc[T]
}

// Config is the ordered list of columns. Columns render in slice order.
type Config[T any] []Column[T]

// Headers returns the column titles in order.
func (c Config[T]) Headers() []string {
	headers := make([]string, len(c))
	for i, col := range c {
		headers[i] = col.Name
	}
	return headers
}

// Keys returns the column keys in order.
func (c Config[T]) Keys() []string {
	keys := make([]string, len(c))
	for i, col := range c {
		keys[i] = col.Key
	}
	return keys
}

// Row renders every column of the config for item.
// Panics raised by a column's Render are not recovered.
func (c Config[T]) Row(item T) []string {
	row := make([]string, len(c))
	for i, col := range c {
		if col.Render == nil {
			continue
		}
		row[i] = col.Render(item, col.Key)
	}
	return row
}

// Cells renders data against cfg and returns the header row and one row per record.
func Cells[T any](data []T, cfg Config[T]) ([]string, [][]string) {
	rows := make([][]string, len(data))
	for i, item := range data {
		rows[i] = cfg.Row(item)
	}
	return cfg.Headers(), rows
}

// Field returns a RenderFunc that formats the value selected by fn with fmt.Sprint.
func Field[T any](fn func(T) any) RenderFunc[T] {
	return func(item T, _ string) string {
		return fmt.Sprint(fn(item))
	}
}

// MapField renders the value stored under the column key of a map record.
// Missing keys and nil values render as an empty string.
func MapField(item map[string]any, key string) string {
	v, ok := item[key]
	if !ok || v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

// Option configures table rendering.
type Option func(*options)

type options struct {
	styles Styles
	theme  *theme.Theme
	border lipgloss.Border
	width  int
}

func defaultOptions() options {
	return options{
		theme:  theme.Default(),
		border: lipgloss.NormalBorder(),
	}
}

// WithStyles sets the class tokens used for the table parts.
func WithStyles(s Styles) Option {
	return func(o *options) {
		o.styles = s
	}
}

// WithTheme sets the theme class tokens are resolved against.
// A nil theme is ignored.
func WithTheme(t *theme.Theme) Option {
	return func(o *options) {
		if t != nil {
			o.theme = t
		}
	}
}

// WithBorder sets the border drawn around and between cells.
func WithBorder(b lipgloss.Border) Option {
	return func(o *options) {
		o.border = b
	}
}

// WithWidth fixes the total table width. Zero sizes columns to their content.
func WithWidth(width int) Option {
	return func(o *options) {
		o.width = width
	}
}

// Render draws data against cfg as a bordered table.
func Render[T any](data []T, cfg Config[T], opts ...Option) string {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	headers, rows := Cells(data, cfg)

	row := o.theme.Style(o.styles.Tr)
	header := o.theme.Style(o.styles.Th).Inherit(row)
	cell := o.theme.Style(o.styles.Td).Inherit(row)
	outer := o.theme.Style(o.styles.Table)

	t := lgtable.New().
		Border(o.border).
		BorderStyle(lipgloss.NewStyle().Foreground(outer.GetBorderTopForeground())).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(r, _ int) lipgloss.Style {
			if r == lgtable.HeaderRow {
				return header
			}
			return cell
		})

	if o.width > 0 {
		t = t.Width(o.width)
	}

	return outer.UnsetBorderStyle().Render(t.String())
}
