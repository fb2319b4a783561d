package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"llmctx/pkg/assembler"
)

var instructionsCmd = &cobra.Command{
	Use:   "instructions",
	Short: "Show how to use the generated context with different LLMs",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.OutOrStdout(), assembler.CopyInstructions())
	},
}
