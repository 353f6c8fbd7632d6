package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspectGenerated_FullDocument(t *testing.T) {
	check := InspectGenerated(fullTemplate)

	assert.True(t, check.HasOverview)
	assert.True(t, check.HasAuthentication)
	assert.True(t, check.HasEndpoints)
	assert.True(t, check.HasExamples)
	assert.True(t, check.HasErrorCodes)
	assert.True(t, check.HasHTTPExample)
	assert.True(t, check.HasJSONExample)
	assert.True(t, check.Passed)
	assert.Equal(t, ChecksTotal, check.ChecksPassed())
}

func TestInspectGenerated_Counts(t *testing.T) {
	check := InspectGenerated("one two\nthree four five\n")

	assert.Equal(t, 3, check.LineCount, "newline-delimited segments")
	assert.Equal(t, 5, check.WordCount, "whitespace-delimited tokens")
}

func TestInspectGenerated_MissingBlocksFailChecks(t *testing.T) {
	content := "## Overview\n## Authentication\n## Endpoints\n## Request/Response Examples\n## Error Codes\n"
	check := InspectGenerated(content)

	assert.False(t, check.HasHTTPExample)
	assert.False(t, check.HasJSONExample)
	assert.False(t, check.Passed)
	assert.Equal(t, 5, check.ChecksPassed())
}

func TestNewReport_Summary(t *testing.T) {
	result := ValidateTemplate(fullTemplate)
	check := InspectGenerated(fullTemplate)

	report := NewReport("tmpl.md", "out.md", result, check)
	assert.Equal(t, "tmpl.md", report.TemplateFile)
	assert.Equal(t, "out.md", report.OutputFile)
	assert.True(t, report.Valid)
	assert.Equal(t, ChecksTotal, report.Summary.ChecksPassed)
	assert.Equal(t, ChecksTotal, report.Summary.ChecksTotal)
	assert.False(t, report.Timestamp.IsZero())
}

func TestNewReport_WithoutGeneratedCheck(t *testing.T) {
	result := ValidateTemplate("")

	report := NewReport("tmpl.md", "out.md", result, nil)
	assert.False(t, report.Valid)
	assert.Nil(t, report.Generated)
	assert.Equal(t, 0, report.Summary.ChecksPassed)
	assert.Equal(t, ChecksTotal, report.Summary.ChecksTotal)
}

func TestValidationReport_JSONShape(t *testing.T) {
	report := NewReport("tmpl.md", "out.md", ValidateTemplate(fullTemplate), InspectGenerated(fullTemplate))

	data, err := json.Marshal(report)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	for _, key := range []string{"timestamp", "template_file", "output_file", "valid", "errors", "warnings", "sections_found", "generated", "summary"} {
		assert.Contains(t, decoded, key)
	}

	generated := decoded["generated"].(map[string]any)
	assert.Contains(t, generated, "validation_passed")
	assert.Contains(t, generated, "line_count")
	assert.Contains(t, generated, "word_count")
}
