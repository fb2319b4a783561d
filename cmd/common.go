package cmd

import (
	"encoding/json"
	"io"
	"os"

	"golang.org/x/term"

	"llmctx/pkg/config"
	"llmctx/pkg/detector"
	"llmctx/pkg/rules"
	"llmctx/pkg/scan"
)

// loadConfig reads the tool configuration, or falls back to defaults when no
// file exists. Malformed configuration is a hard error.
func loadConfig() (*config.Config, error) {
	return config.LoadDefault()
}

// loadRules returns the active rule set: an on-disk rules directory when the
// config names one, the embedded defaults otherwise.
func loadRules(cfg *config.Config) (detector.RuleSet, error) {
	return rules.Load(cfg.RulesDir)
}

// scanPath validates a project path, lists its files and runs detection.
func scanPath(path string) (detector.DetectionResult, []string, string, error) {
	abs, err := scan.ValidatePath(path)
	if err != nil {
		return detector.DetectionResult{}, nil, "", err
	}
	files, err := scan.ListFiles(abs)
	if err != nil {
		return detector.DetectionResult{}, nil, "", err
	}

	cfg, err := loadConfig()
	if err != nil {
		return detector.DetectionResult{}, nil, "", err
	}
	ruleSet, err := loadRules(cfg)
	if err != nil {
		return detector.DetectionResult{}, nil, "", err
	}

	result, err := detector.Detect(files, ruleSet)
	if err != nil {
		return detector.DetectionResult{}, nil, "", err
	}
	return result, files, abs, nil
}

// scanPayload is the JSON shape shared by the root and scan commands.
func scanPayload(result detector.DetectionResult, files []string, abs string) map[string]any {
	return map[string]any{
		"path":         abs,
		"project_name": scan.ProjectName(abs),
		"files_found":  files,
		"total_files":  len(files),
		"detection":    result,
	}
}

func emitJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// isTerminal reports whether stdout is an interactive terminal; styled
// output and spinners are reserved for that case.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
