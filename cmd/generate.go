package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"llmctx/cmd/ui/spinner"
	"llmctx/pkg/assembler"
	"llmctx/pkg/rules"
	"llmctx/pkg/scan"
)

const defaultOutputName = assembler.DefaultFileName

var (
	generateOutput  string
	generateName    string
	generatePreview bool
)

var generateCmd = &cobra.Command{
	Use:   "generate [PROJECT_PATH]",
	Short: "Generate the LLM context document for a project",
	Long: `Generate scans the project, loads the coding standards for the detected
language, and writes a single ` + defaultOutputName + ` ready to hand to any LLM.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "output file (default "+defaultOutputName+" in the project directory)")
	generateCmd.Flags().StringVar(&generateName, "name", "", "override the project name in the document header")
	generateCmd.Flags().BoolVar(&generatePreview, "preview", false, "render the generated document in the terminal")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}

	var doc string
	var summary string

	build := func() error {
		result, files, abs, err := scanPath(path)
		if err != nil {
			return err
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		standards := rules.NewSource(cfg.RulesDir).Resolve(result.Standards)

		name := generateName
		if name == "" {
			name = scan.ProjectName(abs)
		}
		doc = assembler.Build(result, standards, assembler.Options{
			ProjectName: name,
			TotalFiles:  len(files),
		})
		summary = assembler.Summary(result, len(standards))

		out := generateOutput
		if out == "" {
			out = filepath.Join(abs, defaultOutputName)
		}
		return os.WriteFile(out, []byte(doc), 0644)
	}

	var err error
	if isTerminal() {
		err = spinner.Run("Assembling context document...", build)
	} else {
		err = build()
	}
	if err != nil {
		return err
	}

	if generatePreview && isTerminal() {
		rendered, err := glamour.Render(doc, "dark")
		if err != nil {
			return fmt.Errorf("rendering preview: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), rendered)
	}

	fmt.Fprintln(cmd.OutOrStdout(), endingMsgStyle.Render(summary))
	return nil
}
