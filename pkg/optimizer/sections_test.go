package optimizer_test

import (
	"testing"

	"llmctx/pkg/optimizer"
)

func collect(text string) []optimizer.Section {
	var out []optimizer.Section
	for s := range optimizer.Sections(text) {
		out = append(out, s)
	}
	return out
}

func TestSectionsSplitOnHeadings(t *testing.T) {
	text := "# First\nbody one\n\n## Second\nbody two\n"
	sections := collect(text)

	if len(sections) != 2 {
		t.Fatalf("Expected 2 sections, got %d", len(sections))
	}
	if sections[0].Title != "First" || sections[1].Title != "Second" {
		t.Errorf("Unexpected titles: %q, %q", sections[0].Title, sections[1].Title)
	}
	if sections[0].Index != 0 || sections[1].Index != 1 {
		t.Errorf("Unexpected indexes: %d, %d", sections[0].Index, sections[1].Index)
	}
}

func TestSectionsPreamble(t *testing.T) {
	text := "intro text before any heading\n\n# Heading\nbody\n"
	sections := collect(text)

	if len(sections) != 2 {
		t.Fatalf("Expected preamble plus one section, got %d", len(sections))
	}
	if sections[0].Heading != "" {
		t.Errorf("Preamble should have no heading, got %q", sections[0].Heading)
	}
}

func TestSectionsEmptyText(t *testing.T) {
	if got := collect(""); got != nil {
		t.Errorf("Expected no sections for empty text, got %v", got)
	}
	if got := collect("\n\n\n"); got != nil {
		t.Errorf("Expected no sections for blank text, got %v", got)
	}
}

func TestSectionsHashInBodyIsNotHeading(t *testing.T) {
	text := "# Real\nthis #tag line stays in the body\n#also-not-a-heading\n"
	sections := collect(text)

	if len(sections) != 1 {
		t.Fatalf("Expected 1 section, got %d", len(sections))
	}
}

func TestSectionsRestartable(t *testing.T) {
	text := "# A\none\n# B\ntwo\n"
	seq := optimizer.Sections(text)

	first := 0
	for range seq {
		first++
	}
	second := 0
	for range seq {
		second++
	}

	if first != second || first != 2 {
		t.Errorf("Sequence must be restartable: first pass %d, second pass %d", first, second)
	}
}

func TestSectionsEarlyBreak(t *testing.T) {
	text := "# A\none\n# B\ntwo\n# C\nthree\n"
	count := 0
	for range optimizer.Sections(text) {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Errorf("Expected to stop after 2 sections, got %d", count)
	}
}
