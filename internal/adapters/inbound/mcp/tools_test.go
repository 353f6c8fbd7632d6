package mcp

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docforge/docforge/internal/domain"
)

const generateTemplate = "# Device API Documentation\n\n" +
	"## Overview\n\nWhat the API does.\n\n" +
	"## Authentication\n\n```http\nGET /status HTTP/1.1\nAuthorization: Bearer token\n```\n\n" +
	"## Endpoints\n\n| Method | Path |\n|--------|------|\n| GET | /devices |\n\n" +
	"## Request/Response Examples\n\n" +
	"```json\n{\"name\": \"sensor\"}\n```\n\n" +
	"```json\n{\"id\": \"dev-001\"}\n```\n\n" +
	"```bash\ncurl https://api.example.com/devices\n```\n\n" +
	"```go\nresp, _ := client.Get(url)\n```\n\n" +
	"## Error Codes\n\n| Code | Meaning |\n|------|---------|\n| 400 | Bad request |\n"

func projectWithTemplate(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	templatePath := filepath.Join(dir, domain.DefaultTemplatePath)
	require.NoError(t, os.MkdirAll(filepath.Dir(templatePath), 0755))
	require.NoError(t, os.WriteFile(templatePath, []byte(content), 0644))
	return dir
}

func callTool(t *testing.T, handler func(context.Context, mcplib.CallToolRequest) (*mcplib.CallToolResult, error)) *mcplib.CallToolResult {
	t.Helper()
	result, err := handler(context.Background(), mcplib.CallToolRequest{})
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func TestHandleGenerate_Success(t *testing.T) {
	dir := projectWithTemplate(t, generateTemplate)

	result := callTool(t, handleGenerate(dir))
	assert.False(t, result.IsError)

	_, err := os.Stat(filepath.Join(dir, domain.DefaultReportPath))
	assert.NoError(t, err, "report should be persisted")
}

func TestHandleGenerate_ValidationFailureReturnsReport(t *testing.T) {
	dir := projectWithTemplate(t, "# Title\n\n## Overview\n")

	result := callTool(t, handleGenerate(dir))
	assert.False(t, result.IsError, "a validation failure carries the report, not an error")

	text := result.Content[0].(mcplib.TextContent).Text
	assert.Contains(t, text, "Missing required section: Error Codes")
}

func TestHandleGenerate_ReportWriteFailureIsError(t *testing.T) {
	dir := projectWithTemplate(t, generateTemplate)
	// A directory at the report path makes the report write fail.
	require.NoError(t, os.MkdirAll(filepath.Join(dir, domain.DefaultReportPath), 0755))

	result := callTool(t, handleGenerate(dir))
	assert.True(t, result.IsError, "an unpersisted report must not look like success")
}

func TestHandleValidate_MissingTemplateIsError(t *testing.T) {
	result := callTool(t, handleValidate(t.TempDir()))
	assert.True(t, result.IsError)
}
