package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/rshade/tablekit/pkg/pagination"
	"github.com/rshade/tablekit/pkg/table"
	"github.com/rshade/tablekit/pkg/theme"
)

// Environment variables read by ApplyEnv and DefaultPath.
const (
	EnvConfigPath = "TABLEKIT_CONFIG"
	EnvLogLevel   = "TABLEKIT_LOG_LEVEL"
	EnvLogFormat  = "TABLEKIT_LOG_FORMAT"
	EnvLogFile    = "TABLEKIT_LOG_FILE"
	EnvPageSize   = "TABLEKIT_PAGE_SIZE"
)

// Defaults and validation limits.
const (
	DefaultLabel       = "of"
	DefaultPageSize    = 20
	MinPageSize        = 1
	MaxPageSize        = 1000
	DefaultTableHeight = 15
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "console"
)

// Validation errors.
var (
	ErrInvalidPageSize    = errors.New("pagination.page_size must be between 1 and 1000")
	ErrInvalidLogFormat   = errors.New("logging.format must be 'console' or 'json'")
	ErrInvalidTableHeight = errors.New("table.height must be positive")
)

// Config is the tablekit configuration.
type Config struct {
	Logging    LoggingConfig              `yaml:"logging"`
	Theme      map[string]theme.ClassSpec `yaml:"theme,omitempty"`
	Pagination PaginationConfig           `yaml:"pagination"`
	Table      TableConfig                `yaml:"table"`
}

// PaginationConfig configures the page selector.
type PaginationConfig struct {
	// Label is shown before the page total, e.g. "of" renders "of 12".
	Label    string            `yaml:"label"`
	PageSize int               `yaml:"page_size"`
	Styles   pagination.Styles `yaml:"styles"`
}

// TableConfig configures table rendering.
type TableConfig struct {
	// Height is the number of visible rows in interactive mode.
	Height int          `yaml:"height"`
	Styles table.Styles `yaml:"styles"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Pagination: PaginationConfig{
			Label:    DefaultLabel,
			PageSize: DefaultPageSize,
			Styles:   pagination.DefaultStyles(),
		},
		Table: TableConfig{
			Height: DefaultTableHeight,
			Styles: table.DefaultStyles(),
		},
	}
}

// DefaultPath returns the global config path: $TABLEKIT_CONFIG when set,
// otherwise ~/.tablekit/config.yaml. It returns "" when no home directory
// can be determined.
func DefaultPath(lookupEnv func(string) (string, bool)) string {
	if p, ok := lookupEnv(EnvConfigPath); ok && p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tablekit", "config.yaml")
}

// Load reads the YAML file at path over the defaults. Fields absent from the
// file keep their default values. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := New()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides configuration values from environment variables.
func (c *Config) ApplyEnv(lookupEnv func(string) (string, bool)) error {
	if v, ok := lookupEnv(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := lookupEnv(EnvLogFormat); ok && v != "" {
		c.Logging.Format = v
	}
	if v, ok := lookupEnv(EnvLogFile); ok {
		c.Logging.File = v
	}
	if v, ok := lookupEnv(EnvPageSize); ok && v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvPageSize, err)
		}
		c.Pagination.PageSize = size
	}
	return nil
}

// Validate checks the configuration for values the CLI cannot work with.
func (c *Config) Validate() error {
	if c.Pagination.PageSize < MinPageSize || c.Pagination.PageSize > MaxPageSize {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, c.Pagination.PageSize)
	}
	if c.Table.Height <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidTableHeight, c.Table.Height)
	}
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	if _, err := c.BuildTheme(); err != nil {
		return err
	}
	return nil
}

// BuildTheme returns the default theme with the configured classes layered on top.
func (c *Config) BuildTheme() (*theme.Theme, error) {
	t := theme.Default()
	if len(c.Theme) == 0 {
		return t, nil
	}

	overlay, err := theme.FromSpecs(c.Theme)
	if err != nil {
		return nil, fmt.Errorf("theme: %w", err)
	}
	t.Extend(overlay)
	return t, nil
}
