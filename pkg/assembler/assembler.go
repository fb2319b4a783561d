// Package assembler merges a detection result and coding-standards text
// into the single LLM-agnostic context document this tool exists to
// produce.
package assembler

import (
	"fmt"
	"strings"
	"time"

	"llmctx/pkg/detector"
	"llmctx/pkg/rules"
)

// DefaultFileName is the conventional output filename for the assembled
// document.
const DefaultFileName = "LLM_CONTEXT.md"

// Options adjust document assembly.
type Options struct {
	// ProjectName overrides the project name shown in the header.
	ProjectName string
	// TotalFiles is the number of files seen at the scan root.
	TotalFiles int
	// Now stamps the document; the zero value means time.Now().
	Now time.Time
}

// Build renders the context document from a detection result and resolved
// standards blocks.
func Build(result detector.DetectionResult, standards []rules.StandardBlock, opts Options) string {
	name := opts.ProjectName
	if name == "" {
		name = "unknown-project"
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# LLM Context - %s\n\n", name)
	fmt.Fprintf(&b, "*Generated on %s by llmctx*\n\n", now.Format("2006-01-02 15:04:05"))

	b.WriteString("## Project Detection Results\n\n")
	if result.Language != detector.UnknownLanguage {
		fmt.Fprintf(&b, "**Detected Language:** %s (confidence: %.0f%%)\n", result.Language, result.Confidence*100)
		fmt.Fprintf(&b, "**Project Type:** %s\n\n", result.Description)
	} else {
		b.WriteString("**Detected Language:** Unknown/Mixed\n")
		b.WriteString("**Project Type:** Generic project\n\n")
	}
	fmt.Fprintf(&b, "**Total Files Scanned:** %d\n\n", opts.TotalFiles)

	writeMandatory(&b, result)
	writeStandards(&b, standards)

	b.WriteString("## How to Use This Context\n\n")
	b.WriteString(CopyInstructions())
	b.WriteString("\n---\n\n")
	b.WriteString("*Context optimized for token efficiency • LLM-agnostic design • Generated by llmctx*\n")
	return b.String()
}

func writeMandatory(b *strings.Builder, result detector.DetectionResult) {
	if len(result.MissingMandatory) == 0 {
		return
	}
	b.WriteString("### Required Files Status\n\n")
	b.WriteString("**Missing Files:** Consider creating the following files:\n\n")
	for _, file := range result.MissingMandatory {
		fmt.Fprintf(b, "- %s\n", file)
	}
	b.WriteString("\n")
}

func writeStandards(b *strings.Builder, standards []rules.StandardBlock) {
	b.WriteString("---\n\n## Applicable Coding Standards\n\n")
	for _, block := range standards {
		fmt.Fprintf(b, "### %s\n\n", block.Ref)
		b.WriteString(strings.TrimRight(block.Text, "\n"))
		b.WriteString("\n\n---\n\n")
	}
}

// Summary is the one-line result description shown after generation.
func Summary(result detector.DetectionResult, standardsCount int) string {
	language := result.Language
	if language == detector.UnknownLanguage {
		language = "Unknown"
	}
	return fmt.Sprintf("Generated context for %s project (confidence: %.0f%%, %d standards applied)",
		language, result.Confidence*100, standardsCount)
}
