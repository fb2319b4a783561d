// Package detector classifies a project's primary language from a raw
// filename listing using an externally supplied rule set. Detection is a
// pure function over its inputs: no filesystem access, no ambient state.
package detector

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidRuleSet reports a malformed rule configuration: an empty set, or
// an entry declaring zero patterns (such an entry can never become a
// candidate, so its presence is a configuration defect, not a no-op).
var ErrInvalidRuleSet = errors.New("invalid rule set")

// candidate pairs a rule entry with its match evidence during selection.
type candidate struct {
	entry      RuleEntry
	order      int
	confidence float64
	matches    []PatternMatch
}

// Detect scores every rule entry against the given filenames and returns the
// best-matching language. Filenames are bare names (no directories),
// case-sensitive as given.
//
// Confidence per candidate is the count of distinct satisfied patterns over
// the count of declared patterns, so a rule with more of its defining
// signals present beats one matched on a single file. Ties fall to the
// entry with the lowest Priority, then to rule-set order.
func Detect(fileNames []string, rules RuleSet) (DetectionResult, error) {
	if len(rules) == 0 {
		return DetectionResult{}, fmt.Errorf("%w: no entries", ErrInvalidRuleSet)
	}

	var cands []candidate
	for i, entry := range rules {
		if len(entry.Patterns) == 0 {
			return DetectionResult{}, fmt.Errorf("%w: entry %q declares no patterns", ErrInvalidRuleSet, entry.Language)
		}

		matches := matchEntry(fileNames, entry)
		if len(matches) == 0 {
			continue
		}

		conf := float64(len(matches)) / float64(len(entry.Patterns))
		cands = append(cands, candidate{
			entry:      entry,
			order:      i,
			confidence: clamp(conf, 0, 1),
			matches:    matches,
		})
	}

	if len(cands) == 0 {
		return DetectionResult{Language: UnknownLanguage, Confidence: 0}, nil
	}

	// Highest confidence wins; exact ties fall to the lowest priority
	// value, then to rule-set order. SliceStable keeps the order
	// tie-break deterministic.
	sort.SliceStable(cands, func(a, b int) bool {
		if cands[a].confidence != cands[b].confidence {
			return cands[a].confidence > cands[b].confidence
		}
		return cands[a].entry.Priority < cands[b].entry.Priority
	})
	best := cands[0]

	scores := make([]CandidateScore, len(cands))
	for i, c := range cands {
		scores[i] = CandidateScore{
			Language:   c.entry.Language,
			Confidence: c.confidence,
			Matched:    len(c.matches),
			Declared:   len(c.entry.Patterns),
		}
	}

	return DetectionResult{
		Language:         best.entry.Language,
		Confidence:       best.confidence,
		Description:      best.entry.Description,
		Matches:          best.matches,
		MissingMandatory: missingMandatory(fileNames, best.entry),
		Standards:        append([]string(nil), best.entry.Standards...),
		Candidates:       scores,
	}, nil
}

// matchEntry returns one PatternMatch per distinct satisfied pattern, in
// pattern declaration order.
func matchEntry(fileNames []string, entry RuleEntry) []PatternMatch {
	var matches []PatternMatch
	seen := map[string]bool{}
	for _, pattern := range entry.Patterns {
		if seen[pattern] {
			continue
		}
		var files []string
		for _, name := range fileNames {
			if MatchPattern(name, pattern) {
				files = append(files, name)
			}
		}
		if len(files) > 0 {
			seen[pattern] = true
			matches = append(matches, PatternMatch{Pattern: pattern, Files: files})
		}
	}
	return matches
}

// missingMandatory lists mandatory filenames absent from the scanned set.
func missingMandatory(fileNames []string, entry RuleEntry) []string {
	present := make(map[string]bool, len(fileNames))
	for _, name := range fileNames {
		present[name] = true
	}
	var missing []string
	for _, want := range entry.MandatoryFiles {
		if !present[want] {
			missing = append(missing, want)
		}
	}
	return missing
}

// clamp constrains a value between lo and hi.
func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
