// Package ui renders detection and token reports for the terminal.
package ui

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"llmctx/pkg/detector"
	"llmctx/pkg/optimizer"
	"llmctx/pkg/tokens"
)

var (
	titleStyle       = lipgloss.NewStyle().Background(lipgloss.Color("#01FAC6")).Foreground(lipgloss.Color("#030303")).Bold(true).Padding(0, 1, 0)
	focusedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#01FAC6")).Bold(true)
	valueStyle       = lipgloss.NewStyle().PaddingLeft(1).Foreground(lipgloss.Color("170")).Bold(true)
	descriptionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#40BDA3"))
	successStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true)
	warnStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#01FAC6")).
			Padding(1, 2).
			Width(60)
)

// ShowDetection renders a detection verdict.
func ShowDetection(w io.Writer, projectName string, result detector.DetectionResult, totalFiles int) {
	var content strings.Builder

	content.WriteString(focusedStyle.Render("Project: "))
	content.WriteString(valueStyle.Render(projectName))
	content.WriteString("\n")

	content.WriteString(focusedStyle.Render("Language: "))
	content.WriteString(valueStyle.Render(result.Language))
	content.WriteString("\n")

	content.WriteString(focusedStyle.Render("Confidence: "))
	content.WriteString(valueStyle.Render(fmt.Sprintf("%.0f%%", result.Confidence*100)))
	content.WriteString("\n")

	content.WriteString(focusedStyle.Render("Files scanned: "))
	content.WriteString(valueStyle.Render(fmt.Sprint(totalFiles)))
	content.WriteString("\n")

	if len(result.Matches) > 0 {
		content.WriteString("\n")
		content.WriteString(focusedStyle.Render("Matched patterns:"))
		content.WriteString("\n")
		for _, match := range result.Matches {
			content.WriteString(successStyle.Render("  ✓ "))
			content.WriteString(descriptionStyle.Render(fmt.Sprintf("%s (%s)", match.Pattern, strings.Join(match.Files, ", "))))
			content.WriteString("\n")
		}
	}

	if len(result.MissingMandatory) > 0 {
		content.WriteString("\n")
		content.WriteString(focusedStyle.Render("Missing mandatory files:"))
		content.WriteString("\n")
		for _, file := range result.MissingMandatory {
			content.WriteString(warnStyle.Render("  ✗ "))
			content.WriteString(descriptionStyle.Render(file))
			content.WriteString("\n")
		}
	}

	if len(result.Candidates) > 1 {
		content.WriteString("\n")
		content.WriteString(focusedStyle.Render("Other candidates:"))
		content.WriteString("\n")
		for _, c := range result.Candidates[1:] {
			content.WriteString(descriptionStyle.Render(fmt.Sprintf("  %s (%.0f%%)", c.Language, c.Confidence*100)))
			content.WriteString("\n")
		}
	}

	fmt.Fprintln(w, titleStyle.Render("Project Detection Results"))
	fmt.Fprintln(w)
	fmt.Fprintln(w, boxStyle.Render(strings.TrimRight(content.String(), "\n")))
}

// ShowTokenReport renders a token estimate with per-provider costs.
func ShowTokenReport(w io.Writer, report tokens.TokenReport) {
	var content strings.Builder

	content.WriteString(focusedStyle.Render("Document: "))
	content.WriteString(valueStyle.Render(report.Source))
	content.WriteString("\n")
	content.WriteString(focusedStyle.Render("Characters: "))
	content.WriteString(valueStyle.Render(fmt.Sprint(report.CharCount)))
	content.WriteString("\n")
	content.WriteString(focusedStyle.Render("Estimated tokens: "))
	content.WriteString(valueStyle.Render(fmt.Sprintf("~%d", report.TokenCount)))
	content.WriteString("\n\n")

	content.WriteString(focusedStyle.Render("Cost per run:"))
	content.WriteString("\n")
	for _, name := range sortedProviders(report.Costs) {
		content.WriteString(descriptionStyle.Render(fmt.Sprintf("  %-16s %s", name, tokens.FormatCost(report.Costs[name]))))
		content.WriteString("\n")
	}

	fmt.Fprintln(w, titleStyle.Render("Token Estimate"))
	fmt.Fprintln(w)
	fmt.Fprintln(w, boxStyle.Render(strings.TrimRight(content.String(), "\n")))
}

// ShowSuggestions renders optimization suggestions, or a clean bill of
// health when there are none.
func ShowSuggestions(w io.Writer, report tokens.TokenReport, suggestions []optimizer.Suggestion) {
	fmt.Fprintln(w, titleStyle.Render("Optimization Suggestions"))
	fmt.Fprintln(w)

	if len(suggestions) == 0 {
		fmt.Fprintln(w, successStyle.Render("  Nothing to trim - the document is already lean."))
		return
	}

	var content strings.Builder
	total := 0
	for _, s := range suggestions {
		total += s.Savings
		content.WriteString(warnStyle.Render(fmt.Sprintf("  -%d tokens ", s.Savings)))
		content.WriteString(focusedStyle.Render(s.Reason))
		content.WriteString(descriptionStyle.Render(" in " + s.Section))
		content.WriteString("\n")
	}
	content.WriteString("\n")
	content.WriteString(focusedStyle.Render(fmt.Sprintf("Potential savings: %d of ~%d tokens", total, report.TokenCount)))

	fmt.Fprintln(w, boxStyle.Render(content.String()))
}

func sortedProviders(costs map[string]float64) []string {
	names := make([]string, 0, len(costs))
	for name := range costs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
