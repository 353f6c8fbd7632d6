package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewDocforgeMCPServer creates a new MCP server with all docforge tools and
// resources registered. The projectPath is the root directory holding the
// template and output locations.
func NewDocforgeMCPServer(projectPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"docforge",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, projectPath)
	registerResources(s, projectPath)

	return s
}
