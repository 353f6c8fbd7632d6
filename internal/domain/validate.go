package domain

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// RequiredSections enumerates the second-level headings every API docs
// template must contain, in check order.
var RequiredSections = []string{
	"Overview",
	"Authentication",
	"Endpoints",
	"Request/Response Examples",
	"Error Codes",
}

var (
	httpBlockRe = regexp.MustCompile("(?s)```http\n(.*?)\n```")
	jsonBlockRe = regexp.MustCompile("(?s)```json\n(.*?)\n```")
	codeBlockRe = regexp.MustCompile("(?s)```(?:http|json|bash|go)\n(?:.*?)\n```")
	tableRowRe  = regexp.MustCompile(`\|.*?\|.*?\|`)
)

// minCodeBlocks is the number of fenced examples below which the template
// is considered thin on examples.
const minCodeBlocks = 5

// ValidationResult is the outcome of validating template text.
// Valid is true iff every required section is present; warnings are
// advisory and never affect validity.
type ValidationResult struct {
	Valid         bool     `json:"valid"`
	Errors        []string `json:"errors"`
	Warnings      []string `json:"warnings"`
	SectionsFound []string `json:"sections_found"`
}

// ValidateTemplate inspects template text for required sections and example
// blocks. Pure function over the text; the caller is responsible for I/O.
func ValidateTemplate(content string) *ValidationResult {
	result := &ValidationResult{
		Valid:         true,
		Errors:        []string{},
		Warnings:      []string{},
		SectionsFound: []string{},
	}

	for _, section := range RequiredSections {
		if strings.Contains(content, "## "+section) {
			result.SectionsFound = append(result.SectionsFound, section)
		} else {
			result.Valid = false
			result.Errors = append(result.Errors, "Missing required section: "+section)
		}
	}

	if !httpBlockRe.MatchString(content) {
		result.Warnings = append(result.Warnings, "No HTTP examples found in template")
	}

	for _, m := range jsonBlockRe.FindAllStringSubmatch(content, -1) {
		var v any
		if err := json.Unmarshal([]byte(m[1]), &v); err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Invalid JSON in example: %v", err))
		}
	}

	if len(codeBlockRe.FindAllString(content, -1)) < minCodeBlocks {
		result.Warnings = append(result.Warnings, "Few code examples found - consider adding more")
	}

	if !tableRowRe.MatchString(content) {
		result.Warnings = append(result.Warnings, "No tables found - consider adding tables for error codes or parameters")
	}

	return result
}
