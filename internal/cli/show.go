package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/tablekit/internal/cli/pagination"
	"github.com/rshade/tablekit/internal/records"
	"github.com/rshade/tablekit/internal/tui"
	"github.com/rshade/tablekit/pkg/table"
)

// Output formats accepted by --output.
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

// Show command errors.
var (
	ErrUnsupportedOutput = errors.New("unsupported output format")
	ErrInvalidColumn     = errors.New("invalid column entry")
	ErrUnknownColumn     = errors.New("unknown column")
)

// showFlags holds the flags of the show command.
type showFlags struct {
	columns     string
	sort        string
	output      string
	interactive bool
	plain       bool
	params      pagination.Params
}

// column is one parsed --columns entry.
type column struct {
	Key   string
	Title string
}

// newShowCmd creates the show command that renders record files as a table.
func newShowCmd(st *state) *cobra.Command {
	var flags showFlags

	cmd := &cobra.Command{
		Use:   "show FILE...",
		Short: "Render record files as a paginated table",
		Long: `Render one or more YAML or JSON files holding a list of objects.

Columns default to the keys of the records in the order they first appear.
On a terminal the records open in an interactive browser; otherwise the
selected page is printed as a plain table followed by a page footer.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("page-size") && !cmd.Flags().Changed("limit") && st.cfg != nil {
				flags.params.PageSize = st.cfg.Pagination.PageSize
			}
			if !cmd.Flags().Changed("page") && (flags.params.Offset > 0 || flags.params.Limit > 0) {
				flags.params.Page = 0
			}
			return runShow(cmd, st, args, flags, cmd.Flags().Changed("interactive"))
		},
	}

	cmd.Flags().StringVar(&flags.columns, "columns", "",
		"comma-separated columns to show, each key or key:Title (default: all keys)")
	cmd.Flags().StringVar(&flags.sort, "sort", "", "sort by field, optionally with order (e.g. cost:desc)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", OutputTable, "output format: table, json, yaml")
	cmd.Flags().BoolVarP(&flags.interactive, "interactive", "i", false,
		"browse records interactively (default on a terminal)")
	cmd.Flags().BoolVar(&flags.plain, "plain", false, "force plain output without styling")
	cmd.Flags().IntVar(&flags.params.Page, "page", pagination.DefaultPage, "page number to show (1-based)")
	cmd.Flags().IntVar(&flags.params.PageSize, "page-size", 0, "records per page (default from config)")
	cmd.Flags().IntVar(&flags.params.Offset, "offset", 0, "records to skip (offset-based paging)")
	cmd.Flags().IntVar(&flags.params.Limit, "limit", 0, "maximum records to show (offset-based paging)")

	return cmd
}

func runShow(cmd *cobra.Command, st *state, paths []string, flags showFlags, interactiveSet bool) error {
	ctx := cmd.Context()

	switch flags.output {
	case OutputTable, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedOutput, flags.output)
	}
	if err := flags.params.Validate(); err != nil {
		return err
	}

	set, err := records.LoadFiles(ctx, paths)
	if err != nil {
		return err
	}
	logger.Debug().Ctx(ctx).
		Int("records", set.Len()).
		Int("files", len(paths)).
		Msg("records loaded")

	columns, err := parseColumns(flags.columns, set.Keys)
	if err != nil {
		return err
	}

	recs := set.Records
	if flags.sort != "" {
		field, order, sortErr := pagination.ParseSort(flags.sort)
		if sortErr != nil {
			return sortErr
		}
		recs, err = pagination.NewRecordSorter(set.Keys).Sort(recs, field, order)
		if err != nil {
			return err
		}
	}

	if flags.output != OutputTable {
		return renderStructured(cmd.OutOrStdout(), flags.output, recs, columns, flags.params)
	}

	r, err := newRenderer(st.cfg, columns)
	if err != nil {
		return err
	}

	mode := tui.DetectOutputMode(tui.DetectOptions{
		Terminal:       tui.IsTerminal(cmd.OutOrStdout()),
		Plain:          flags.plain,
		Interactive:    flags.interactive,
		InteractiveSet: interactiveSet,
		LookupEnv:      st.lookupEnv,
	})
	logger.Debug().Ctx(ctx).Str("mode", mode.String()).Msg("output mode selected")

	switch mode {
	case tui.OutputModeInteractive:
		return r.interactive(ctx, recs, flags.params)
	case tui.OutputModeStyled:
		return r.styled(cmd.OutOrStdout(), recs, flags.params)
	case tui.OutputModePlain:
		return r.plain(cmd.OutOrStdout(), recs, flags.params)
	default:
		return r.plain(cmd.OutOrStdout(), recs, flags.params)
	}
}

// parseColumns parses --columns. An empty value selects every key with the
// key itself as title.
func parseColumns(value string, keys []string) ([]column, error) {
	if strings.TrimSpace(value) == "" {
		columns := make([]column, len(keys))
		for i, k := range keys {
			columns[i] = column{Key: k, Title: k}
		}
		return columns, nil
	}

	known := make(map[string]bool, len(keys))
	for _, k := range keys {
		known[k] = true
	}

	var columns []column
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, fmt.Errorf("%w: empty entry in %q", ErrInvalidColumn, value)
		}
		key, title, hasTitle := strings.Cut(part, ":")
		key = strings.TrimSpace(key)
		title = strings.TrimSpace(title)
		if key == "" || (hasTitle && title == "") {
			return nil, fmt.Errorf("%w: %q", ErrInvalidColumn, part)
		}
		if !known[key] {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, key)
		}
		if !hasTitle {
			title = key
		}
		columns = append(columns, column{Key: key, Title: title})
	}
	return columns, nil
}

// tableConfig builds the table column configuration for records.
func tableConfig(columns []column) table.Config[records.Record] {
	cfg := make(table.Config[records.Record], len(columns))
	for i, c := range columns {
		cfg[i] = table.Column[records.Record]{Key: c.Key, Name: c.Title, Render: table.MapField}
	}
	return cfg
}

func columnKeys(columns []column) []string {
	keys := make([]string, len(columns))
	for i, c := range columns {
		keys[i] = c.Key
	}
	return keys
}
