package assembler_test

import (
	"strings"
	"testing"
	"time"

	"llmctx/pkg/assembler"
	"llmctx/pkg/detector"
	"llmctx/pkg/rules"
)

func sampleResult() detector.DetectionResult {
	return detector.DetectionResult{
		Language:         "python",
		Confidence:       0.8,
		Description:      "Python project",
		MissingMandatory: []string{"LICENSE"},
		Standards:        []string{"coding-standards/python.md"},
	}
}

func TestBuildContainsDetectionSummary(t *testing.T) {
	standards := []rules.StandardBlock{{Ref: "coding-standards/python.md", Text: "# Python Standards\n\nUse black.\n"}}
	doc := assembler.Build(sampleResult(), standards, assembler.Options{
		ProjectName: "demo",
		TotalFiles:  7,
		Now:         time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC),
	})

	for _, want := range []string{
		"# LLM Context - demo",
		"**Detected Language:** python (confidence: 80%)",
		"**Project Type:** Python project",
		"**Total Files Scanned:** 7",
		"- LICENSE",
		"### coding-standards/python.md",
		"Use black.",
		"## How to Use This Context",
		"CLAUDE.md",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("Document missing %q", want)
		}
	}
}

func TestBuildUnknownLanguage(t *testing.T) {
	result := detector.DetectionResult{Language: detector.UnknownLanguage}
	doc := assembler.Build(result, nil, assembler.Options{ProjectName: "mystery"})

	if !strings.Contains(doc, "Unknown/Mixed") {
		t.Error("Unknown detection should render the generic header")
	}
	if strings.Contains(doc, "Required Files Status") {
		t.Error("No mandatory section expected without missing files")
	}
}

func TestBuildDeterministicWithFixedClock(t *testing.T) {
	opts := assembler.Options{ProjectName: "demo", Now: time.Unix(0, 0).UTC()}
	first := assembler.Build(sampleResult(), nil, opts)
	second := assembler.Build(sampleResult(), nil, opts)
	if first != second {
		t.Error("Build must be deterministic for a fixed clock")
	}
}

func TestSummary(t *testing.T) {
	got := assembler.Summary(sampleResult(), 2)
	want := "Generated context for python project (confidence: 80%, 2 standards applied)"
	if got != want {
		t.Errorf("Summary = %q, want %q", got, want)
	}
}

func TestCopyInstructionsCoverMajorLLMs(t *testing.T) {
	text := assembler.CopyInstructions()
	for _, want := range []string{"Claude", "ChatGPT", "Gemini", "Other LLMs"} {
		if !strings.Contains(text, want) {
			t.Errorf("Instructions missing %q section", want)
		}
	}
}
