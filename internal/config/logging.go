package config

import (
	"fmt"

	"github.com/rshade/tablekit/internal/logging"
)

// LoggingConfig configures the CLI logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	// File, when set, receives log records instead of stderr.
	File string `yaml:"file,omitempty"`
}

// Validate checks the logging format.
func (lc LoggingConfig) Validate() error {
	switch lc.Format {
	case logging.FormatConsole, logging.FormatJSON:
		return nil
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidLogFormat, lc.Format)
	}
}

// ToLoggingConfig converts the section into a logging.Config.
func (lc LoggingConfig) ToLoggingConfig() logging.Config {
	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		File:   lc.File,
	}
}
