package cmd

import (
	"github.com/spf13/cobra"

	"llmctx/pkg/mcpserver"
	"llmctx/pkg/rules"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve llmctx as a Model Context Protocol server over stdio",
	Long: `Serve exposes scan_project, generate_context, show_copy_instructions,
estimate_tokens and optimize_context as MCP tools, so editor agents can use
llmctx directly. The server speaks MCP over stdin/stdout.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ruleSet, err := loadRules(cfg)
	if err != nil {
		return err
	}

	server := mcpserver.New(Version, ruleSet, rules.NewSource(cfg.RulesDir), cfg)
	return server.ServeStdio()
}
