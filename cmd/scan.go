package cmd

import (
	"github.com/spf13/cobra"

	"llmctx/cmd/ui"
	"llmctx/pkg/scan"
)

var scanCmd = &cobra.Command{
	Use:   "scan [PROJECT_PATH]",
	Short: "Detect the project's language and applicable standards",
	Long: `Scan lists the files at the project root and matches them against the
language detection rules, reporting the best-matching language, its
confidence, and any mandatory files the project is missing.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func runScan(cmd *cobra.Command, args []string) error {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}

	result, files, abs, err := scanPath(path)
	if err != nil {
		return err
	}

	if jsonOutput {
		return emitJSON(cmd.OutOrStdout(), scanPayload(result, files, abs))
	}
	ui.ShowDetection(cmd.OutOrStdout(), scan.ProjectName(abs), result, len(files))
	return nil
}
