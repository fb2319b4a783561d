package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"llmctx/cmd/ui"
	"llmctx/pkg/tokens"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [CONTEXT_FILE]",
	Short: "Estimate token count and provider costs for a context document",
	Long: `Tokens prices a context document against the configured provider table.
The count is an approximation (one token per ` + fmt.Sprint(tokens.CharsPerToken) + ` characters), not a
provider tokenizer.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokens,
}

func runTokens(cmd *cobra.Command, args []string) error {
	file := defaultOutputName
	if len(args) > 0 {
		file = args[0]
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("reading context file: %w", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	report, err := tokens.Estimate(file, string(data), cfg.Providers)
	if err != nil {
		return err
	}

	if jsonOutput {
		return emitJSON(cmd.OutOrStdout(), report)
	}

	ui.ShowTokenReport(cmd.OutOrStdout(), report)
	return nil
}
