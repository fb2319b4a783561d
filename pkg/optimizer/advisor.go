// Package optimizer analyzes an assembled context document and suggests
// edits that reduce its token footprint. Like the detector and estimator it
// is pure: the same text and report always produce the same suggestions.
package optimizer

import (
	"sort"
	"strings"

	"llmctx/pkg/tokens"
)

// Reason codes attached to suggestions.
const (
	ReasonDuplicate        = "duplicate-example"
	ReasonVerboseList      = "verbose-list"
	ReasonRedundantHeading = "redundant-heading"
)

// Config holds the advisor's heuristic thresholds.
type Config struct {
	// BulletThreshold is the bullet-item count above which a section is
	// considered a verbose list.
	BulletThreshold int
	// ItemMinChars is the per-item length every bullet must exceed for
	// the verbose-list heuristic to fire.
	ItemMinChars int
	// TrimFraction is the share of a verbose section's tokens assumed
	// recoverable by trimming.
	TrimFraction float64
}

// DefaultConfig returns the advisor thresholds used when no configuration
// overrides them.
func DefaultConfig() Config {
	return Config{
		BulletThreshold: 5,
		ItemMinChars:    80,
		TrimFraction:    0.30,
	}
}

// Suggestion is one proposed edit, largest savings first in the advisor's
// output.
type Suggestion struct {
	// Section identifies the target section by heading title, or
	// "(preamble)" for text before the first heading.
	Section string `json:"section"`
	// Reason is one of the Reason* codes.
	Reason string `json:"reason"`
	// Savings is the estimated token reduction if the edit is applied.
	Savings int `json:"savings"`
	// Index is the section's order of appearance, the stable tie-break.
	Index int `json:"-"`
}

// Suggest partitions text into heading-delimited sections and applies the
// advisor heuristics to each. Each section's token share is apportioned from
// report.TokenCount by character count, so suggestions stay consistent with
// the document-level estimate; the summed savings never exceed it. An empty
// result means nothing fired, which is a normal outcome.
func Suggest(text string, report tokens.TokenReport, cfg Config) []Suggestion {
	normalized := tokens.Normalize(text)
	totalChars := len([]rune(normalized))
	if totalChars == 0 || report.TokenCount == 0 {
		return nil
	}

	share := func(chars int) int {
		return int(float64(chars) / float64(totalChars) * float64(report.TokenCount))
	}

	var suggestions []Suggestion
	seenBodies := map[string]int{}

	// One suggestion per section at most. A duplicate section would also
	// tend to trip the verbose-list check; flagging it once keeps the
	// savings apportionment additive.
	for section := range Sections(normalized) {
		name := section.Title
		if name == "" {
			name = "(preamble)"
		}
		body := normalizeBody(section.Body)

		switch {
		case section.Heading != "" && body == "":
			savings := share(len([]rune(section.Heading)))
			if savings < 1 {
				savings = 1
			}
			suggestions = append(suggestions, Suggestion{
				Section: name,
				Reason:  ReasonRedundantHeading,
				Savings: savings,
				Index:   section.Index,
			})

		case body != "" && hasEarlierTwin(seenBodies, body, section.Index):
			suggestions = append(suggestions, Suggestion{
				Section: name,
				Reason:  ReasonDuplicate,
				Savings: share(section.Chars()),
				Index:   section.Index,
			})

		case isVerboseList(section.Body, cfg):
			suggestions = append(suggestions, Suggestion{
				Section: name,
				Reason:  ReasonVerboseList,
				Savings: int(cfg.TrimFraction * float64(share(section.Chars()))),
				Index:   section.Index,
			})
		}
	}

	sort.SliceStable(suggestions, func(a, b int) bool {
		return suggestions[a].Savings > suggestions[b].Savings
	})

	// Clamp against the report total so the sum property holds even when
	// per-section floors push past it.
	remaining := report.TokenCount
	out := suggestions[:0]
	for _, s := range suggestions {
		if remaining == 0 {
			break
		}
		if s.Savings > remaining {
			s.Savings = remaining
		}
		if s.Savings <= 0 {
			continue
		}
		remaining -= s.Savings
		out = append(out, s)
	}
	return out
}

// hasEarlierTwin records body under the section index and reports whether an
// earlier section already carried identical normalized content.
func hasEarlierTwin(seen map[string]int, body string, index int) bool {
	if _, ok := seen[body]; ok {
		return true
	}
	seen[body] = index
	return false
}

// normalizeBody collapses whitespace and folds case so near-identical
// sections compare equal.
func normalizeBody(body string) string {
	return strings.ToLower(strings.Join(strings.Fields(body), " "))
}

// isVerboseList reports whether the section body is a bullet list with more
// than cfg.BulletThreshold items, each longer than cfg.ItemMinChars.
func isVerboseList(body string, cfg Config) bool {
	count := 0
	for _, line := range strings.Split(body, "\n") {
		item, ok := bulletItem(line)
		if !ok {
			continue
		}
		if len([]rune(item)) <= cfg.ItemMinChars {
			return false
		}
		count++
	}
	return count > cfg.BulletThreshold
}

// bulletItem returns the text of a markdown bullet line, if it is one.
func bulletItem(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	for _, marker := range []string{"- ", "* ", "+ "} {
		if strings.HasPrefix(trimmed, marker) {
			return strings.TrimSpace(trimmed[len(marker):]), true
		}
	}
	return "", false
}
