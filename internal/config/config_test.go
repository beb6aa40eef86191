package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/tablekit/internal/config"
	"github.com/rshade/tablekit/internal/logging"
	"github.com/rshade/tablekit/pkg/pagination"
	"github.com/rshade/tablekit/pkg/table"
	"github.com/rshade/tablekit/pkg/theme"
)

// envMap returns a lookupEnv function backed by m.
func envMap(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNew_Defaults(t *testing.T) {
	cfg := config.New()

	assert.Equal(t, config.DefaultLogLevel, cfg.Logging.Level)
	assert.Equal(t, config.DefaultLogFormat, cfg.Logging.Format)
	assert.Equal(t, config.DefaultLabel, cfg.Pagination.Label)
	assert.Equal(t, config.DefaultPageSize, cfg.Pagination.PageSize)
	assert.Equal(t, pagination.DefaultStyles(), cfg.Pagination.Styles)
	assert.Equal(t, table.DefaultStyles(), cfg.Table.Styles)
	assert.Equal(t, config.DefaultTableHeight, cfg.Table.Height)
	require.NoError(t, cfg.Validate())
}

func TestDefaultPath(t *testing.T) {
	assert.Equal(t, "/etc/tk.yaml", config.DefaultPath(envMap(map[string]string{
		config.EnvConfigPath: "/etc/tk.yaml",
	})))

	p := config.DefaultPath(envMap(nil))
	if p != "" {
		assert.Equal(t, filepath.Join(".tablekit", "config.yaml"),
			filepath.Join(filepath.Base(filepath.Dir(p)), filepath.Base(p)))
	}
}

func TestLoad(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		cfg, err := config.Load("")
		require.NoError(t, err)
		assert.Equal(t, config.New(), cfg)
	})

	t.Run("missing file", func(t *testing.T) {
		cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, config.New(), cfg)
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "config.yaml", `
pagination:
  label: "de"
  styles:
    btn: loud
theme:
  loud:
    bold: true
`)
		cfg, err := config.Load(path)
		require.NoError(t, err)

		assert.Equal(t, "de", cfg.Pagination.Label)
		assert.Equal(t, config.DefaultPageSize, cfg.Pagination.PageSize)
		assert.Equal(t, "loud", cfg.Pagination.Styles.Btn)
		assert.Equal(t, theme.ClassPagerLabel, cfg.Pagination.Styles.Label)
		assert.True(t, cfg.Theme["loud"].Bold)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "config.yaml", "pagination: [unclosed")
		_, err := config.Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing config")
	})
}

func TestApplyEnv(t *testing.T) {
	cfg := config.New()
	err := cfg.ApplyEnv(envMap(map[string]string{
		config.EnvLogLevel:  "debug",
		config.EnvLogFormat: "json",
		config.EnvLogFile:   "/tmp/tk.log",
		config.EnvPageSize:  "50",
	}))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "/tmp/tk.log", cfg.Logging.File)
	assert.Equal(t, 50, cfg.Pagination.PageSize)

	err = config.New().ApplyEnv(envMap(map[string]string{config.EnvPageSize: "many"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.EnvPageSize)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr error
	}{
		{name: "page size zero", mutate: func(c *config.Config) { c.Pagination.PageSize = 0 }, wantErr: config.ErrInvalidPageSize},
		{name: "page size too large", mutate: func(c *config.Config) { c.Pagination.PageSize = 1001 }, wantErr: config.ErrInvalidPageSize},
		{name: "table height", mutate: func(c *config.Config) { c.Table.Height = 0 }, wantErr: config.ErrInvalidTableHeight},
		{name: "log format", mutate: func(c *config.Config) { c.Logging.Format = "xml" }, wantErr: config.ErrInvalidLogFormat},
		{
			name: "theme border",
			mutate: func(c *config.Config) {
				c.Theme = map[string]theme.ClassSpec{"x": {Border: "squiggly"}}
			},
			wantErr: theme.ErrUnknownBorder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBuildTheme(t *testing.T) {
	cfg := config.New()
	cfg.Theme = map[string]theme.ClassSpec{
		theme.ClassPagerLabel: {Italic: true},
		"custom":              {Underline: true},
	}

	th, err := cfg.BuildTheme()
	require.NoError(t, err)

	assert.True(t, th.Has(theme.ClassTableHeader), "defaults kept")
	assert.True(t, th.Style(theme.ClassPagerLabel).GetItalic(), "default class overridden")
	assert.True(t, th.Style("custom").GetUnderline())
}

func TestLoggingConfig(t *testing.T) {
	lc := config.LoggingConfig{Level: "warn", Format: "json", File: "/var/log/tk.log"}

	assert.NoError(t, lc.Validate())
	assert.Equal(t, logging.Config{Level: "warn", Format: "json", File: "/var/log/tk.log"}, lc.ToLoggingConfig())
}
