package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/docforge/docforge/internal/domain"
)

const fileName = ".docforge.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .docforge.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .docforge.yaml from projectPath.
// Returns DefaultConfig if the file does not exist.
func (l *YAMLLoader) Load(projectPath string) (domain.ProjectConfig, error) {
	data, err := os.ReadFile(filepath.Join(projectPath, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.ProjectConfig{}, err
	}

	var cfg domain.ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	if err := cfg.Validate(); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}

	// Unset fields fall back to defaults so a partial config stays usable.
	return mergeConfig(domain.DefaultConfig(), cfg), nil
}

// mergeConfig overlays explicit (non-zero) values on top of defaults.
func mergeConfig(base, override domain.ProjectConfig) domain.ProjectConfig {
	result := base

	if override.TemplatePath != "" {
		result.TemplatePath = override.TemplatePath
	}
	if override.OutputPath != "" {
		result.OutputPath = override.OutputPath
	}
	if override.ReportPath != "" {
		result.ReportPath = override.ReportPath
	}
	if override.Metadata.Placement != "" {
		result.Metadata.Placement = override.Metadata.Placement
	}
	if override.Metadata.Version != "" {
		result.Metadata.Version = override.Metadata.Version
	}

	return result
}
