package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	configAdapter "github.com/docforge/docforge/internal/adapters/outbound/config"
	"github.com/docforge/docforge/internal/adapters/outbound/gitinfo"
	"github.com/docforge/docforge/internal/adapters/outbound/store"
	"github.com/docforge/docforge/internal/application"
	"github.com/docforge/docforge/internal/domain"
)

// registerTools registers all docforge MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string) {
	// 1. docforge_validate
	s.AddTool(
		mcplib.NewTool("docforge_validate",
			mcplib.WithDescription("Validate the API docs template: required sections, example blocks, tables. Returns the validation result as JSON."),
			mcplib.WithString("template", mcplib.Description("Template path relative to the project root (defaults to the configured path)")),
		),
		handleValidate(projectPath),
	)

	// 2. docforge_generate
	s.AddTool(
		mcplib.NewTool("docforge_generate",
			mcplib.WithDescription("Run the full pipeline: validate the template, generate the documentation with metadata, and write the JSON validation report."),
			mcplib.WithBoolean("no_validate", mcplib.Description("Generate even when required sections are missing")),
		),
		handleGenerate(projectPath),
	)

	// 3. docforge_health
	s.AddTool(
		mcplib.NewTool("docforge_health",
			mcplib.WithDescription("Check that the template file, template directory, and output directory exist."),
		),
		handleHealth(projectPath),
	)
}

func loadConfig(projectPath string) (domain.ProjectConfig, error) {
	return configAdapter.New().Load(projectPath)
}

func handleValidate(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		cfg, err := loadConfig(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading config: %v", err)), nil
		}

		templatePath := cfg.TemplatePath
		if t, ok := request.GetArguments()["template"].(string); ok && t != "" {
			templatePath = t
		}

		content, err := store.New().ReadTemplate(resolvePath(projectPath, templatePath))
		if err != nil {
			return errorResult(fmt.Sprintf("validate failed: %v", err)), nil
		}

		return jsonResult(domain.ValidateTemplate(content))
	}
}

func handleGenerate(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		cfg, err := loadConfig(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading config: %v", err)), nil
		}

		noValidate, _ := request.GetArguments()["no_validate"].(bool)

		svc := application.NewGenerateService(store.New(), gitinfo.New())
		report, err := svc.Run(application.RunOptions{
			ProjectPath:    projectPath,
			TemplatePath:   resolvePath(projectPath, cfg.TemplatePath),
			OutputPath:     resolvePath(projectPath, cfg.OutputPath),
			ReportPath:     resolvePath(projectPath, cfg.ReportPath),
			Metadata:       cfg.Metadata,
			SkipValidation: noValidate,
		})
		if err != nil {
			if errors.Is(err, domain.ErrValidationFailed) {
				// Validation failure still carries a useful report.
				return jsonResult(report)
			}
			return errorResult(fmt.Sprintf("generate failed: %v", err)), nil
		}

		return jsonResult(report)
	}
}

func handleHealth(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		cfg, err := loadConfig(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading config: %v", err)), nil
		}

		health := application.NewHealthService().Check(
			resolvePath(projectPath, cfg.TemplatePath),
			resolvePath(projectPath, cfg.OutputPath),
		)
		return jsonResult(health)
	}
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(message string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(message)},
		IsError: true,
	}
}
