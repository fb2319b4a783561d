package rules_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"llmctx/pkg/detector"
	"llmctx/pkg/rules"
)

const sampleRules = `
language_detection:
  python:
    files: ["requirements.txt", "*.py"]
    mandatory_files: ["README.md"]
    standards: ["coding-standards/python.md"]
    description: "Python project"
    priority: 1
  javascript:
    files: ["package.json", "*.js"]
    standards: ["coding-standards/javascript.md"]
`

func TestParsePreservesOrderAndDefaults(t *testing.T) {
	set, err := rules.Parse([]byte(sampleRules))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	if len(set) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(set))
	}
	if set[0].Language != "python" || set[1].Language != "javascript" {
		t.Errorf("Document order not preserved: %s, %s", set[0].Language, set[1].Language)
	}
	if set[0].Priority != 1 {
		t.Errorf("Explicit priority not honored: %d", set[0].Priority)
	}
	if set[1].Priority != 1 {
		t.Errorf("Default priority should be the entry position, got %d", set[1].Priority)
	}
	if set[1].Description != "javascript project" {
		t.Errorf("Default description missing, got %q", set[1].Description)
	}
}

func TestParseRejectsEmptyPatterns(t *testing.T) {
	broken := `
language_detection:
  python:
    files: []
`
	_, err := rules.Parse([]byte(broken))
	if !errors.Is(err, detector.ErrInvalidRuleSet) {
		t.Errorf("Expected ErrInvalidRuleSet, got %v", err)
	}
}

func TestParseRejectsMissingBlock(t *testing.T) {
	_, err := rules.Parse([]byte("other: 1\n"))
	if !errors.Is(err, detector.ErrInvalidRuleSet) {
		t.Errorf("Expected ErrInvalidRuleSet, got %v", err)
	}
}

func TestDefaultRulesAreUsable(t *testing.T) {
	set, err := rules.Default()
	if err != nil {
		t.Fatalf("Default returned error: %v", err)
	}
	if len(set) == 0 {
		t.Fatal("Embedded rule set is empty")
	}

	result, err := detector.Detect([]string{"requirements.txt", "main.py"}, set)
	if err != nil {
		t.Fatalf("Detect returned error: %v", err)
	}
	if result.Language != "python" {
		t.Errorf("Expected python from default rules, got %s", result.Language)
	}
}

func TestLoadFromDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, rules.RulesFileName), []byte(sampleRules), 0644); err != nil {
		t.Fatalf("Failed to write rules file: %v", err)
	}

	set, err := rules.Load(dir)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(set) != 2 {
		t.Errorf("Expected 2 entries, got %d", len(set))
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	if _, err := rules.Load(t.TempDir()); err == nil {
		t.Error("Expected an error for a directory without a rules file")
	}
}

func TestStandardsSourceResolve(t *testing.T) {
	src := rules.NewSource("")

	blocks := src.Resolve([]string{"coding-standards/python.md", "coding-standards/missing.md"})
	if len(blocks) != 2 {
		t.Fatalf("Expected 2 blocks, got %d", len(blocks))
	}
	if !strings.Contains(blocks[0].Text, "PEP 8") {
		t.Errorf("Embedded python standards not resolved: %q", blocks[0].Text[:40])
	}
	if !strings.Contains(blocks[1].Text, "not available") {
		t.Errorf("Missing reference should yield a placeholder, got %q", blocks[1].Text)
	}
}

func TestStandardsSourceDirOverridesEmbedded(t *testing.T) {
	dir := t.TempDir()
	ref := "coding-standards/python.md"
	if err := os.MkdirAll(filepath.Join(dir, "coding-standards"), 0755); err != nil {
		t.Fatalf("Failed to create standards dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, filepath.FromSlash(ref)), []byte("# Local override\n"), 0644); err != nil {
		t.Fatalf("Failed to write standard: %v", err)
	}

	blocks := rules.NewSource(dir).Resolve([]string{ref})
	if !strings.Contains(blocks[0].Text, "Local override") {
		t.Errorf("On-disk standards should win over embedded, got %q", blocks[0].Text)
	}
}

func TestStandardsSourceEmptyRefsFallBack(t *testing.T) {
	blocks := rules.NewSource("").Resolve(nil)
	if len(blocks) != 1 || blocks[0].Ref != rules.GeneralStandard {
		t.Errorf("Expected the general principles fallback, got %v", blocks)
	}
}
