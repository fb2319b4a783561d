package mcpserver

import (
	"context"
	"os"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	server "github.com/mark3labs/mcp-go/server"

	"llmctx/pkg/assembler"
	"llmctx/pkg/detector"
	"llmctx/pkg/optimizer"
	"llmctx/pkg/scan"
	"llmctx/pkg/tokens"
)

// registerTools registers every llmctx tool on the server.
func (s *Server) registerTools() {
	s.mcpServer.AddTools(
		s.scanProjectTool(),
		s.generateContextTool(),
		s.showCopyInstructionsTool(),
		s.estimateTokensTool(),
		s.optimizeContextTool(),
	)
}

// scanResult is the JSON payload returned by scan_project.
type scanResult struct {
	Path        string                   `json:"path"`
	ProjectName string                   `json:"project_name"`
	FilesFound  []string                 `json:"files_found"`
	TotalFiles  int                      `json:"total_files"`
	Detection   detector.DetectionResult `json:"detection"`
}

func (s *Server) scanProjectTool() server.ServerTool {
	tool := mcplib.NewTool("scan_project",
		mcplib.WithDescription("Scan a project directory to detect language and applicable standards"),
		mcplib.WithString("path",
			mcplib.Description("Path to the project directory (default: current directory)"),
		),
	)
	return server.ServerTool{Tool: tool, Handler: s.handleScanProject}
}

func (s *Server) generateContextTool() server.ServerTool {
	tool := mcplib.NewTool("generate_context",
		mcplib.WithDescription("Generate a universal LLM context document from a project scan"),
		mcplib.WithString("path",
			mcplib.Description("Path to the project directory (default: current directory)"),
		),
		mcplib.WithString("project_name",
			mcplib.Description("Override the project name (default: directory name)"),
		),
	)
	return server.ServerTool{Tool: tool, Handler: s.handleGenerateContext}
}

func (s *Server) showCopyInstructionsTool() server.ServerTool {
	tool := mcplib.NewTool("show_copy_instructions",
		mcplib.WithDescription("Show instructions for using a generated context document with different LLMs"),
	)
	return server.ServerTool{Tool: tool, Handler: s.handleShowCopyInstructions}
}

func (s *Server) estimateTokensTool() server.ServerTool {
	tool := mcplib.NewTool("estimate_tokens",
		mcplib.WithDescription("Estimate token count and per-provider cost for a context document"),
		mcplib.WithString("context_file",
			mcplib.Required(),
			mcplib.Description("Path to the context file to analyze"),
		),
	)
	return server.ServerTool{Tool: tool, Handler: s.handleEstimateTokens}
}

func (s *Server) optimizeContextTool() server.ServerTool {
	tool := mcplib.NewTool("optimize_context",
		mcplib.WithDescription("Analyze a context document and suggest token-saving edits"),
		mcplib.WithString("context_file",
			mcplib.Required(),
			mcplib.Description("Path to the context file to optimize"),
		),
	)
	return server.ServerTool{Tool: tool, Handler: s.handleOptimizeContext}
}

func (s *Server) scan(path string) (scanResult, error) {
	if path == "" {
		path = "."
	}
	abs, err := scan.ValidatePath(path)
	if err != nil {
		return scanResult{}, err
	}
	files, err := scan.ListFiles(abs)
	if err != nil {
		return scanResult{}, err
	}
	result, err := detector.Detect(files, s.rules)
	if err != nil {
		return scanResult{}, err
	}
	return scanResult{
		Path:        abs,
		ProjectName: scan.ProjectName(abs),
		FilesFound:  files,
		TotalFiles:  len(files),
		Detection:   result,
	}, nil
}

func (s *Server) handleScanProject(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	result, err := s.scan(req.GetString("path", "."))
	if err != nil {
		return mcplib.NewToolResultErrorFromErr("scan failed", err), nil
	}
	return toolResultJSON(result), nil
}

func (s *Server) handleGenerateContext(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	result, err := s.scan(req.GetString("path", "."))
	if err != nil {
		return mcplib.NewToolResultErrorFromErr("scan failed", err), nil
	}

	name := req.GetString("project_name", "")
	if name == "" {
		name = result.ProjectName
	}

	doc := assembler.Build(result.Detection, s.standards.Resolve(result.Detection.Standards), assembler.Options{
		ProjectName: name,
		TotalFiles:  result.TotalFiles,
	})
	return mcplib.NewToolResultText(doc), nil
}

func (s *Server) handleShowCopyInstructions(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	return mcplib.NewToolResultText(assembler.CopyInstructions()), nil
}

// estimateResult is the JSON payload returned by estimate_tokens.
type estimateResult struct {
	File   string             `json:"file"`
	Report tokens.TokenReport `json:"report"`
}

func (s *Server) handleEstimateTokens(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	file := req.GetString("context_file", "")
	if file == "" {
		return mcplib.NewToolResultError("context_file is required"), nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return mcplib.NewToolResultErrorFromErr("could not read context file", err), nil
	}
	report, err := tokens.Estimate(file, string(data), s.cfg.Providers)
	if err != nil {
		return mcplib.NewToolResultErrorFromErr("estimation failed", err), nil
	}
	return toolResultJSON(estimateResult{File: file, Report: report}), nil
}

// optimizeResult is the JSON payload returned by optimize_context.
type optimizeResult struct {
	File             string                 `json:"file"`
	CurrentTokens    int                    `json:"current_tokens"`
	Suggestions      []optimizer.Suggestion `json:"suggestions"`
	PotentialSavings int                    `json:"potential_savings"`
}

func (s *Server) handleOptimizeContext(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	file := req.GetString("context_file", "")
	if file == "" {
		return mcplib.NewToolResultError("context_file is required"), nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return mcplib.NewToolResultErrorFromErr("could not read context file", err), nil
	}
	text := string(data)

	report, err := tokens.Estimate(file, text, s.cfg.Providers)
	if err != nil {
		return mcplib.NewToolResultErrorFromErr("estimation failed", err), nil
	}
	suggestions := optimizer.Suggest(text, report, s.cfg.Advisor)

	total := 0
	for _, sg := range suggestions {
		total += sg.Savings
	}
	return toolResultJSON(optimizeResult{
		File:             file,
		CurrentTokens:    report.TokenCount,
		Suggestions:      suggestions,
		PotentialSavings: total,
	}), nil
}
