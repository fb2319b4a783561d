package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"llmctx/cmd/ui"
	"llmctx/pkg/optimizer"
	"llmctx/pkg/tokens"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize [CONTEXT_FILE]",
	Short: "Suggest edits that shrink a context document's token footprint",
	Long: `Optimize splits the document into heading-delimited sections and flags
duplicated content, verbose bullet lists, and headings with no body. Finding
nothing to trim is a normal outcome, not an error.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runOptimize,
}

func runOptimize(cmd *cobra.Command, args []string) error {
	file := defaultOutputName
	if len(args) > 0 {
		file = args[0]
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("reading context file: %w", err)
	}
	text := string(data)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	report, err := tokens.Estimate(file, text, cfg.Providers)
	if err != nil {
		return err
	}
	suggestions := optimizer.Suggest(text, report, cfg.Advisor)

	if jsonOutput {
		total := 0
		for _, s := range suggestions {
			total += s.Savings
		}
		return emitJSON(cmd.OutOrStdout(), map[string]any{
			"file":              file,
			"current_tokens":    report.TokenCount,
			"suggestions":       suggestions,
			"potential_savings": total,
		})
	}

	ui.ShowSuggestions(cmd.OutOrStdout(), report, suggestions)
	return nil
}
