package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fatih/camelcase"
	"github.com/spf13/cobra"

	"github.com/docforge/docforge/internal/domain"
)

const configFileName = ".docforge.yaml"

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Scaffold a .docforge.yaml and a starter template",
		Long:  "Create a .docforge.yaml with defaults and a starter API docs template containing every required section.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			configDest := filepath.Join(absPath, configFileName)
			templateDest := filepath.Join(absPath, domain.DefaultTemplatePath)

			if !force {
				for _, dest := range []string{configDest, templateDest} {
					if _, err := os.Stat(dest); err == nil {
						return fmt.Errorf("%s already exists (use --force to overwrite)", dest)
					}
				}
			}

			if err := os.WriteFile(configDest, []byte(starterConfig()), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			if err := os.MkdirAll(filepath.Dir(templateDest), 0755); err != nil {
				return fmt.Errorf("creating template directory: %w", err)
			}
			title := titleFromDir(filepath.Base(absPath))
			if err := os.WriteFile(templateDest, []byte(starterTemplate(title)), 0644); err != nil {
				return fmt.Errorf("writing template: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", configFileName)
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", domain.DefaultTemplatePath)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing files")

	return cmd
}

// titleFromDir derives a human-readable title from a directory name,
// splitting camel case as well as dash/underscore separators.
func titleFromDir(name string) string {
	var parts []string
	for _, chunk := range strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_' || r == ' ' || r == '.'
	}) {
		parts = append(parts, camelcase.Split(chunk)...)
	}
	if len(parts) == 0 {
		return "API"
	}
	for i, p := range parts {
		r, size := utf8.DecodeRuneInString(p)
		parts[i] = string(unicode.ToUpper(r)) + p[size:]
	}
	return strings.Join(parts, " ")
}

func starterConfig() string {
	return `# docforge configuration
template_path: ` + domain.DefaultTemplatePath + `
output_path: ` + domain.DefaultOutputPath + `
report_path: ` + domain.DefaultReportPath + `

metadata:
  # after-title inserts the stamp below the document title; append adds it
  # at the end of the document.
  placement: append
  version: "1.0.0"
`
}

// starterTemplate returns a template that passes validation with no
// warnings: all five sections, an http block, valid json blocks, five
// fenced examples total, and an error-code table.
func starterTemplate(title string) string {
	return `# ` + title + ` API Documentation

## Overview

Describe what the API does and who it is for.

## Authentication

All requests require a bearer token:

` + "```http" + `
GET /api/v1/status HTTP/1.1
Host: api.example.com
Authorization: Bearer <token>
` + "```" + `

## Endpoints

| Method | Path | Description |
|--------|------|-------------|
| GET | /api/v1/devices | List devices |
| POST | /api/v1/devices | Register a device |

## Request/Response Examples

Request:

` + "```json" + `
{
  "name": "living-room-sensor",
  "type": "temperature"
}
` + "```" + `

Response:

` + "```json" + `
{
  "id": "dev-001",
  "name": "living-room-sensor",
  "status": "registered"
}
` + "```" + `

Fetch with curl:

` + "```bash" + `
curl -H "Authorization: Bearer $TOKEN" https://api.example.com/api/v1/devices
` + "```" + `

Client usage:

` + "```go" + `
resp, err := client.Get("https://api.example.com/api/v1/devices")
if err != nil {
	log.Fatal(err)
}
defer resp.Body.Close()
` + "```" + `

## Error Codes

| Code | Meaning |
|------|---------|
| 400 | Bad request |
| 401 | Unauthorized |
| 404 | Not found |
| 500 | Internal server error |
`
}
