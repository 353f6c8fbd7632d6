package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, DefaultTemplatePath, cfg.TemplatePath)
	assert.Equal(t, DefaultOutputPath, cfg.OutputPath)
	assert.Equal(t, DefaultReportPath, cfg.ReportPath)
	assert.Equal(t, PlacementAppend, cfg.Metadata.Placement)
	assert.Equal(t, DefaultVersion, cfg.Metadata.Version)
}

func TestConfigValidate_AcceptsKnownPlacements(t *testing.T) {
	for _, p := range ValidPlacements {
		cfg := ProjectConfig{Metadata: MetadataConfig{Placement: p}}
		assert.NoError(t, cfg.Validate())
	}
}

func TestConfigValidate_EmptyPlacementAllowed(t *testing.T) {
	assert.NoError(t, ProjectConfig{}.Validate())
}

func TestConfigValidate_RejectsUnknownPlacement(t *testing.T) {
	cfg := ProjectConfig{Metadata: MetadataConfig{Placement: "prepend"}}

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPlacement)
}
