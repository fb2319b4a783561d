package optimizer_test

import (
	"reflect"
	"strings"
	"testing"

	"llmctx/pkg/optimizer"
	"llmctx/pkg/tokens"
)

var testProviders = map[string]float64{"claude_sonnet": 0.003}

func report(t *testing.T, text string) tokens.TokenReport {
	t.Helper()
	r, err := tokens.Estimate("doc", text, testProviders)
	if err != nil {
		t.Fatalf("Estimate returned error: %v", err)
	}
	return r
}

func longBullets(n int) string {
	item := "- " + strings.Repeat("this bullet item carries far more detail than anyone needs ", 3)
	var b strings.Builder
	for range n {
		b.WriteString(item)
		b.WriteString("\n")
	}
	return b.String()
}

func TestSuggestDuplicateSections(t *testing.T) {
	body := "Use dependency injection.\nKeep functions small.\n"
	text := "# Guidelines\n" + body + "\n# Guidelines Again\n" + strings.ToUpper(body)
	rep := report(t, text)

	suggestions := optimizer.Suggest(text, rep, optimizer.DefaultConfig())

	if len(suggestions) != 1 {
		t.Fatalf("Expected 1 suggestion, got %v", suggestions)
	}
	s := suggestions[0]
	if s.Reason != optimizer.ReasonDuplicate {
		t.Errorf("Expected %s, got %s", optimizer.ReasonDuplicate, s.Reason)
	}
	if s.Section != "Guidelines Again" {
		t.Errorf("The later twin should be flagged, got %q", s.Section)
	}
	if s.Savings <= 0 || s.Savings > rep.TokenCount {
		t.Errorf("Savings out of range: %d of %d", s.Savings, rep.TokenCount)
	}
}

func TestSuggestVerboseList(t *testing.T) {
	text := "# Setup\nShort intro.\n\n# Checklist\n" + longBullets(8)
	rep := report(t, text)

	suggestions := optimizer.Suggest(text, rep, optimizer.DefaultConfig())

	if len(suggestions) != 1 {
		t.Fatalf("Expected 1 suggestion, got %v", suggestions)
	}
	if suggestions[0].Reason != optimizer.ReasonVerboseList {
		t.Errorf("Expected %s, got %s", optimizer.ReasonVerboseList, suggestions[0].Reason)
	}
	if suggestions[0].Section != "Checklist" {
		t.Errorf("Expected Checklist flagged, got %q", suggestions[0].Section)
	}
}

func TestSuggestVerboseListRespectsThresholds(t *testing.T) {
	text := "# Checklist\n" + longBullets(8)
	rep := report(t, text)

	cfg := optimizer.DefaultConfig()
	cfg.BulletThreshold = 20

	if got := optimizer.Suggest(text, rep, cfg); len(got) != 0 {
		t.Errorf("Raised threshold should silence the heuristic, got %v", got)
	}
}

func TestSuggestShortBulletsAreFine(t *testing.T) {
	var b strings.Builder
	b.WriteString("# Steps\n")
	for range 10 {
		b.WriteString("- short step\n")
	}
	text := b.String()
	rep := report(t, text)

	if got := optimizer.Suggest(text, rep, optimizer.DefaultConfig()); len(got) != 0 {
		t.Errorf("Short bullet items should not be flagged, got %v", got)
	}
}

func TestSuggestRedundantHeading(t *testing.T) {
	text := "# Introduction\nReal content here, long enough to count for a few tokens.\n\n# Empty Placeholder\n\n# Closing\nMore real content to finish the document with.\n"
	rep := report(t, text)

	suggestions := optimizer.Suggest(text, rep, optimizer.DefaultConfig())

	if len(suggestions) != 1 {
		t.Fatalf("Expected 1 suggestion, got %v", suggestions)
	}
	s := suggestions[0]
	if s.Reason != optimizer.ReasonRedundantHeading {
		t.Errorf("Expected %s, got %s", optimizer.ReasonRedundantHeading, s.Reason)
	}
	if s.Savings < 1 {
		t.Errorf("Redundant heading savings must be nonzero, got %d", s.Savings)
	}
}

func TestSuggestCleanDocumentYieldsNothing(t *testing.T) {
	text := "# One\nDistinct content in the first section of this document.\n\n# Two\nCompletely different material in the second section.\n"
	rep := report(t, text)

	if got := optimizer.Suggest(text, rep, optimizer.DefaultConfig()); got != nil {
		t.Errorf("Expected no suggestions, got %v", got)
	}
}

func TestSuggestOrderedBySavings(t *testing.T) {
	big := strings.Repeat("A long paragraph of repeated example material. ", 40)
	text := "# First\n" + big + "\n# Second\n\n# Third\n" + big + "\n"
	rep := report(t, text)

	suggestions := optimizer.Suggest(text, rep, optimizer.DefaultConfig())

	if len(suggestions) < 2 {
		t.Fatalf("Expected at least 2 suggestions, got %v", suggestions)
	}
	for i := 1; i < len(suggestions); i++ {
		if suggestions[i].Savings > suggestions[i-1].Savings {
			t.Errorf("Suggestions not sorted by savings: %v", suggestions)
		}
	}
	// The big duplicate outweighs the empty heading.
	if suggestions[0].Reason != optimizer.ReasonDuplicate {
		t.Errorf("Expected the duplicate first, got %s", suggestions[0].Reason)
	}
}

func TestSuggestSavingsNeverExceedTotal(t *testing.T) {
	texts := []string{
		"# A\nsame body\n# B\nsame body\n# C\nsame body\n",
		"# A\n# B\n# C\n# D\n",
		"# Checklist\n" + longBullets(12),
		"tiny\n",
	}

	for _, text := range texts {
		rep := report(t, text)
		total := 0
		for _, s := range optimizer.Suggest(text, rep, optimizer.DefaultConfig()) {
			total += s.Savings
		}
		if total > rep.TokenCount {
			t.Errorf("Savings %d exceed estimate %d for %q", total, rep.TokenCount, text)
		}
	}
}

func TestSuggestPure(t *testing.T) {
	text := "# A\nsame body\n# B\nsame body\n"
	rep := report(t, text)

	first := optimizer.Suggest(text, rep, optimizer.DefaultConfig())
	second := optimizer.Suggest(text, rep, optimizer.DefaultConfig())

	if !reflect.DeepEqual(first, second) {
		t.Error("Suggest must be deterministic for identical inputs")
	}
}
