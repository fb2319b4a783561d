// Package mcpserver exposes the llmctx operations as Model Context Protocol
// tools over stdio, so editor agents can scan projects and budget context
// documents without shelling out to the CLI.
package mcpserver

import (
	"encoding/json"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	server "github.com/mark3labs/mcp-go/server"

	"llmctx/pkg/config"
	"llmctx/pkg/detector"
	"llmctx/pkg/rules"
)

// Server wires the core packages behind MCP tool handlers. All dependencies
// are injected at construction; handlers hold no ambient state.
type Server struct {
	mcpServer *server.MCPServer
	rules     detector.RuleSet
	standards *rules.Source
	cfg       *config.Config
}

// New builds the MCP server with the given rule set, standards source and
// tool configuration.
func New(version string, ruleSet detector.RuleSet, standards *rules.Source, cfg *config.Config) *Server {
	s := &Server{
		mcpServer: server.NewMCPServer(
			"llmctx",
			version,
			server.WithToolCapabilities(false),
		),
		rules:     ruleSet,
		standards: standards,
		cfg:       cfg,
	}
	s.registerTools()
	return s
}

// ServeStdio blocks serving MCP over stdin/stdout until the client
// disconnects.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func toolResultJSON(v any) *mcplib.CallToolResult {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcplib.NewToolResultErrorFromErr("failed to encode result", err)
	}
	return mcplib.NewToolResultText(string(data))
}
