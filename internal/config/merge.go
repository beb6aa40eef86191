package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rshade/tablekit/pkg/theme"
)

// ErrNilConfig is returned when a merge has no Config to merge into.
var ErrNilConfig = errors.New("nil config")

// sectionDecoder decodes one top-level section and stores it on cfg.
type sectionDecoder func(cfg *Config, node *yaml.Node) error

// sections maps each top-level key of the config file to its decoder.
// Every decoder starts from a zero value, so a section in the project file
// replaces the global one as a whole. Other keys are ignored.
//
//nolint:gochecknoglobals // Read-only lookup table.
var sections = map[string]sectionDecoder{
	"logging": func(cfg *Config, node *yaml.Node) error {
		var v LoggingConfig
		if err := node.Decode(&v); err != nil {
			return err
		}
		cfg.Logging = v
		return nil
	},
	"theme": func(cfg *Config, node *yaml.Node) error {
		var v map[string]theme.ClassSpec
		if err := node.Decode(&v); err != nil {
			return err
		}
		cfg.Theme = v
		return nil
	},
	"pagination": func(cfg *Config, node *yaml.Node) error {
		var v PaginationConfig
		if err := node.Decode(&v); err != nil {
			return err
		}
		cfg.Pagination = v
		return nil
	},
	"table": func(cfg *Config, node *yaml.Node) error {
		var v TableConfig
		if err := node.Decode(&v); err != nil {
			return err
		}
		cfg.Table = v
		return nil
	},
}

// ShallowMergeYAML applies the sections found in the YAML file at path on
// top of target. Sections missing from the file keep their current value.
func ShallowMergeYAML(target *Config, path string) error {
	if target == nil {
		return ErrNilConfig
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading overlay file %s: %w", path, err)
	}

	var doc map[string]yaml.Node
	if err = yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parsing overlay YAML from %s: %w", path, err)
	}

	for name, node := range doc {
		decode, ok := sections[name]
		if !ok {
			continue
		}
		if err = decode(target, &node); err != nil {
			return fmt.Errorf("applying overlay section %q: %w", name, err)
		}
	}
	return nil
}
