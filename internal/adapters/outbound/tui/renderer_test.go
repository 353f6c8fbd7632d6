package tui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/docforge/docforge/internal/adapters/outbound/tui"
	"github.com/docforge/docforge/internal/domain"
)

func TestRenderValidation_Valid(t *testing.T) {
	result := &domain.ValidationResult{
		Valid:         true,
		Errors:        []string{},
		Warnings:      []string{},
		SectionsFound: domain.RequiredSections,
	}

	out := tui.RenderValidation(result)
	assert.Contains(t, out, "docforge")
	assert.Contains(t, out, "VALID")
	for _, section := range domain.RequiredSections {
		assert.Contains(t, out, section)
	}
}

func TestRenderValidation_InvalidListsErrors(t *testing.T) {
	result := &domain.ValidationResult{
		Valid:         false,
		Errors:        []string{"Missing required section: Error Codes"},
		Warnings:      []string{"No HTTP examples found in template"},
		SectionsFound: []string{"Overview"},
	}

	out := tui.RenderValidation(result)
	assert.Contains(t, out, "INVALID")
	assert.Contains(t, out, "Missing required section: Error Codes")
	assert.Contains(t, out, "No HTTP examples found in template")
}

func TestRenderHealth(t *testing.T) {
	health := &domain.HealthStatus{
		Healthy: false,
		Issues:  []string{"Template file does not exist"},
	}

	out := tui.RenderHealth(health)
	assert.Contains(t, out, "UNHEALTHY")
	assert.Contains(t, out, "Template file does not exist")
}

func TestRenderReport(t *testing.T) {
	check := &domain.GeneratedCheck{
		HasOverview: true, HasAuthentication: true, HasEndpoints: true,
		HasExamples: true, HasErrorCodes: true, HasHTTPExample: true,
		HasJSONExample: true, LineCount: 42, WordCount: 120, Passed: true,
	}
	report := &domain.ValidationReport{
		OutputFile: "docs/api/endpoints.md",
		Generated:  check,
		Summary:    domain.ReportSummary{ChecksPassed: 7, ChecksTotal: 7},
	}

	out := tui.RenderReport(report)
	assert.Contains(t, out, "docs/api/endpoints.md")
	assert.Contains(t, out, "7/7 checks")
	assert.Contains(t, out, "42 lines, 120 words")
}
