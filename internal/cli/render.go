package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/rshade/tablekit/internal/cli/pagination"
	"github.com/rshade/tablekit/internal/config"
	"github.com/rshade/tablekit/internal/logging"
	"github.com/rshade/tablekit/internal/records"
	"github.com/rshade/tablekit/internal/tui"
	pager "github.com/rshade/tablekit/pkg/pagination"
	"github.com/rshade/tablekit/pkg/table"
	"github.com/rshade/tablekit/pkg/theme"
)

// renderer draws records for the table output modes.
type renderer struct {
	cfg     *config.Config
	theme   *theme.Theme
	table   table.Config[records.Record]
	printer *message.Printer
}

func newRenderer(cfg *config.Config, columns []column) (*renderer, error) {
	if cfg == nil {
		cfg = config.New()
	}
	th, err := cfg.BuildTheme()
	if err != nil {
		return nil, err
	}
	return &renderer{
		cfg:     cfg,
		theme:   th,
		table:   tableConfig(columns),
		printer: message.NewPrinter(language.English),
	}, nil
}

// plain prints the selected page as an ASCII table followed by the footer.
func (r *renderer) plain(w io.Writer, recs []records.Record, params pagination.Params) error {
	out := table.Render(pagination.Apply(params, recs), r.table,
		table.WithTheme(theme.New()),
		table.WithStyles(table.Styles{}),
		table.WithBorder(lipgloss.ASCIIBorder()),
	)
	if _, err := fmt.Fprintln(w, out); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, r.footer(pagination.NewMeta(params, len(recs))))
	return err
}

// styled prints the selected page rendered with the configured theme.
func (r *renderer) styled(w io.Writer, recs []records.Record, params pagination.Params) error {
	out := table.Render(pagination.Apply(params, recs), r.table,
		table.WithTheme(r.theme),
		table.WithStyles(r.cfg.Table.Styles),
	)
	if _, err := fmt.Fprintln(w, out); err != nil {
		return err
	}
	footer := r.theme.Render(r.cfg.Pagination.Styles.Label, r.footer(pagination.NewMeta(params, len(recs))))
	_, err := fmt.Fprintln(w, footer)
	return err
}

// footer describes the selected page, e.g. "Showing 21-40 of 1,234 records | Page 2 of 62".
func (r *renderer) footer(meta pagination.Meta) string {
	label := r.cfg.Pagination.Label
	if meta.TotalItems == 0 {
		return r.printer.Sprintf("No records | Page %d %s %d", meta.CurrentPage, label, meta.TotalPages)
	}
	return r.printer.Sprintf("Showing %d-%d of %d records | Page %d %s %d",
		meta.First, meta.Last, meta.TotalItems, meta.CurrentPage, label, meta.TotalPages)
}

// interactive runs the browser over all records, starting at the requested page.
func (r *renderer) interactive(ctx context.Context, recs []records.Record, params pagination.Params) error {
	pageSize := r.cfg.Pagination.PageSize
	startPage := pager.FirstPage
	if params.IsPageBased() && params.PageSize > 0 {
		pageSize = params.PageSize
		startPage = params.EffectivePage(len(recs))
	}

	model := tui.NewBrowserModel(recs, r.table, tui.BrowserConfig{
		PageSize:    pageSize,
		StartPage:   startPage,
		Height:      r.cfg.Table.Height,
		Label:       r.cfg.Pagination.Label,
		Theme:       r.theme,
		PagerStyles: r.cfg.Pagination.Styles,
		TableStyles: r.cfg.Table.Styles,
		Logger:      logging.ComponentLogger(*logging.FromContext(ctx), "pagination"),
	})

	p := tea.NewProgram(model, tea.WithContext(ctx), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run interactive browser: %w", err)
	}
	return nil
}

// renderStructured writes the selected page as a JSON or YAML page envelope.
// Total is the page count and Extra the number of records across all pages.
func renderStructured(
	w io.Writer,
	format string,
	recs []records.Record,
	columns []column,
	params pagination.Params,
) error {
	meta := pagination.NewMeta(params, len(recs))
	items := meta.TotalItems
	page := pager.Page[[]records.Ordered]{
		Data:  records.Project(pagination.Apply(params, recs), columnKeys(columns)),
		Total: meta.TotalPages,
		Extra: &items,
	}

	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(page)
	case OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2) //nolint:mnd // Two-space YAML indent.
		if err := enc.Encode(page); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedOutput, format)
	}
}
