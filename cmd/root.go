package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"llmctx/cmd/ui"
	"llmctx/pkg/detector"
	"llmctx/pkg/scan"
)

const Version = "1.0.0"

var (
	jsonOutput bool

	tipMsgStyle    = lipgloss.NewStyle().PaddingLeft(1).Foreground(lipgloss.Color("190")).Italic(true)
	endingMsgStyle = lipgloss.NewStyle().PaddingLeft(1).Foreground(lipgloss.Color("170")).Bold(true)
)

var rootCmd = &cobra.Command{
	Use:   "llmctx [PROJECT_PATH]",
	Short: "Generate one LLM-agnostic context document for any project",
	Long: `llmctx scans a project directory, classifies its primary language from the
files present, and assembles a single context document that works with any
LLM - then tells you what that document costs in tokens and how to shrink it.`,
	Version: Version,
	Args:    cobra.MaximumNArgs(1),
	RunE:    runRootCommand,
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runRootCommand(cmd *cobra.Command, args []string) error {
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
	if result.Language != detector.UnknownLanguage {
		fmt.Fprintln(cmd.OutOrStdout(), tipMsgStyle.Render("Tip: run `llmctx generate` to write "+defaultOutputName))
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "emit machine-readable JSON instead of styled output")
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(optimizeCmd)
	rootCmd.AddCommand(instructionsCmd)
	rootCmd.AddCommand(serveCmd)
}
