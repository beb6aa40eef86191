package config

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rshade/tablekit/internal/logging"
)

// ProjectConfigName is the file name of project-local configuration.
const ProjectConfigName = ".tablekit.yaml"

// FindProjectConfig walks up from startDir looking for ProjectConfigName.
// Returns the absolute path of the first match or "" if none is found.
func FindProjectConfig(startDir string) string {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return ""
	}

	for {
		candidate := filepath.Join(dir, ProjectConfigName)
		if info, statErr := os.Stat(candidate); statErr == nil && !info.IsDir() {
			return candidate
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// LoadWithProject loads the global config at globalPath, then shallow-merges
// the project config found from startDir on top of it. A project config that
// fails to merge is logged and ignored, leaving the global config in effect.
func LoadWithProject(ctx context.Context, globalPath, startDir string) (*Config, error) {
	cfg, err := Load(globalPath)
	if err != nil {
		return nil, err
	}

	overlayPath := FindProjectConfig(startDir)
	if overlayPath == "" {
		return cfg, nil
	}

	merged := *cfg
	if err = ShallowMergeYAML(&merged, overlayPath); err != nil {
		logger := logging.FromContext(ctx)
		logger.Warn().
			Str("component", "config").
			Str("operation", "merge_project_config").
			Err(err).
			Str("overlay_path", overlayPath).
			Msg("failed to merge project config, using global config")
		return cfg, nil
	}

	return &merged, nil
}
