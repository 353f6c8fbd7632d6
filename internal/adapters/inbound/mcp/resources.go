package mcp

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// registerResources registers all docforge MCP resources on the given server.
func registerResources(s *server.MCPServer, projectPath string) {
	// 1. docforge://template - the source template text
	s.AddResource(
		mcplib.NewResource(
			"docforge://template",
			"Template",
			mcplib.WithResourceDescription("The source API docs template"),
			mcplib.WithMIMEType("text/markdown"),
		),
		handleFileResource(projectPath, "docforge://template", "text/markdown", func(cfg pathConfig) string {
			return cfg.template
		}),
	)

	// 2. docforge://report - the last written validation report
	s.AddResource(
		mcplib.NewResource(
			"docforge://report",
			"Validation Report",
			mcplib.WithResourceDescription("The most recent JSON validation report"),
			mcplib.WithMIMEType("application/json"),
		),
		handleFileResource(projectPath, "docforge://report", "application/json", func(cfg pathConfig) string {
			return cfg.report
		}),
	)
}

type pathConfig struct {
	template string
	report   string
}

func handleFileResource(projectPath, uri, mimeType string, pick func(pathConfig) string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		cfg, err := loadConfig(projectPath)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}

		path := pick(pathConfig{
			template: resolvePath(projectPath, cfg.TemplatePath),
			report:   resolvePath(projectPath, cfg.ReportPath),
		})

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      uri,
				MIMEType: mimeType,
				Text:     string(data),
			},
		}, nil
	}
}

func resolvePath(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
