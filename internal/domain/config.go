package domain

import "fmt"

// Default paths, matching the documented layout of a docforge project.
const (
	DefaultTemplatePath = "docs/templates/api-docs-template.md"
	DefaultOutputPath   = "docs/api/endpoints.md"
	DefaultReportPath   = "docs/api/validation-report.json"
)

// ProjectConfig holds project-level configuration loaded from .docforge.yaml.
type ProjectConfig struct {
	TemplatePath string         `yaml:"template_path" json:"template_path,omitempty"`
	OutputPath   string         `yaml:"output_path"   json:"output_path,omitempty"`
	ReportPath   string         `yaml:"report_path"   json:"report_path,omitempty"`
	Metadata     MetadataConfig `yaml:"metadata"      json:"metadata,omitempty"`
}

// MetadataConfig configures the generation stamp.
// Placement resolves the two historically observed behaviors explicitly:
// "append" (the default) and "after-title".
type MetadataConfig struct {
	Placement Placement `yaml:"placement" json:"placement,omitempty"`
	Version   string    `yaml:"version"   json:"version,omitempty"`
}

// DefaultConfig returns the configuration used when no .docforge.yaml exists.
func DefaultConfig() ProjectConfig {
	return ProjectConfig{
		TemplatePath: DefaultTemplatePath,
		OutputPath:   DefaultOutputPath,
		ReportPath:   DefaultReportPath,
		Metadata: MetadataConfig{
			Placement: PlacementAppend,
			Version:   DefaultVersion,
		},
	}
}

// Validate catches typos in user-supplied configuration.
func (c ProjectConfig) Validate() error {
	if c.Metadata.Placement == "" {
		return nil
	}
	for _, p := range ValidPlacements {
		if c.Metadata.Placement == p {
			return nil
		}
	}
	return fmt.Errorf("%w: %q (valid: after-title, append)", ErrInvalidPlacement, c.Metadata.Placement)
}
