package domain

import (
	"strings"
	"time"
)

// GeneratedCheck is the textual re-inspection of a generated document.
// The seven booleans (five sections plus the two example block types)
// determine Passed; counts are informational.
type GeneratedCheck struct {
	HasOverview       bool `json:"has_overview"`
	HasAuthentication bool `json:"has_authentication"`
	HasEndpoints      bool `json:"has_endpoints"`
	HasExamples       bool `json:"has_examples"`
	HasErrorCodes     bool `json:"has_error_codes"`
	HasHTTPExample    bool `json:"has_http_example"`
	HasJSONExample    bool `json:"has_json_example"`
	LineCount         int  `json:"line_count"`
	WordCount         int  `json:"word_count"`
	Passed            bool `json:"validation_passed"`
}

// ChecksTotal is the number of boolean checks in a GeneratedCheck.
const ChecksTotal = 7

// InspectGenerated recomputes a GeneratedCheck from written document text
// using substring inspection only.
func InspectGenerated(content string) *GeneratedCheck {
	check := &GeneratedCheck{
		HasOverview:       strings.Contains(content, "## Overview"),
		HasAuthentication: strings.Contains(content, "## Authentication"),
		HasEndpoints:      strings.Contains(content, "## Endpoints"),
		HasExamples:       strings.Contains(content, "## Request/Response Examples"),
		HasErrorCodes:     strings.Contains(content, "## Error Codes"),
		HasHTTPExample:    strings.Contains(content, "```http"),
		HasJSONExample:    strings.Contains(content, "```json"),
		LineCount:         len(strings.Split(content, "\n")),
		WordCount:         len(strings.Fields(content)),
	}
	check.Passed = check.ChecksPassed() == ChecksTotal
	return check
}

// ChecksPassed counts how many of the seven boolean checks hold.
func (c *GeneratedCheck) ChecksPassed() int {
	passed := 0
	for _, ok := range []bool{
		c.HasOverview, c.HasAuthentication, c.HasEndpoints,
		c.HasExamples, c.HasErrorCodes, c.HasHTTPExample, c.HasJSONExample,
	} {
		if ok {
			passed++
		}
	}
	return passed
}

// ReportSummary condenses a GeneratedCheck into passed/total counts.
type ReportSummary struct {
	ChecksPassed int `json:"checks_passed"`
	ChecksTotal  int `json:"checks_total"`
}

// ValidationReport is the durable JSON artifact written alongside the
// generated document.
type ValidationReport struct {
	Timestamp     time.Time       `json:"timestamp"`
	TemplateFile  string          `json:"template_file"`
	OutputFile    string          `json:"output_file"`
	Valid         bool            `json:"valid"`
	Errors        []string        `json:"errors"`
	Warnings      []string        `json:"warnings"`
	SectionsFound []string        `json:"sections_found"`
	Generated     *GeneratedCheck `json:"generated,omitempty"`
	Summary       ReportSummary   `json:"summary"`
}

// NewReport assembles a ValidationReport from a pre-generation validation
// result and an optional post-generation check.
func NewReport(templateFile, outputFile string, result *ValidationResult, check *GeneratedCheck) *ValidationReport {
	report := &ValidationReport{
		Timestamp:     time.Now(),
		TemplateFile:  templateFile,
		OutputFile:    outputFile,
		Valid:         result.Valid,
		Errors:        result.Errors,
		Warnings:      result.Warnings,
		SectionsFound: result.SectionsFound,
		Generated:     check,
		Summary:       ReportSummary{ChecksTotal: ChecksTotal},
	}
	if check != nil {
		report.Summary.ChecksPassed = check.ChecksPassed()
	}
	return report
}
