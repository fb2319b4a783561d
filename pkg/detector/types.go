package detector

// UnknownLanguage is the terminal verdict when no rule matches.
const UnknownLanguage = "unknown"

// RuleEntry describes how to recognize one language or project type.
// Entries are supplied by an external rule source and never mutated here.
type RuleEntry struct {
	// Language is the unique tag for this entry, e.g. "python".
	Language string
	// Patterns are file globs checked against the scanned filenames.
	// "*" matches any run of characters within a single path segment;
	// anything without a wildcard is an exact, case-sensitive filename.
	Patterns []string
	// MandatoryFiles are filenames the project should contain once this
	// entry is selected. Their absence is reported, not an error.
	MandatoryFiles []string
	// Standards are references to coding-standards documents for the
	// language, resolved by the rules package.
	Standards []string
	// Priority breaks exact confidence ties; lower wins.
	Priority int
	// Description is a human-readable label, e.g. "Python project".
	Description string
}

// RuleSet is an ordered collection of rule entries. Iteration order is the
// final tie-break during selection, so order is significant.
type RuleSet []RuleEntry

// PatternMatch records one satisfied pattern and the filenames behind it.
type PatternMatch struct {
	Pattern string   `json:"pattern"`
	Files   []string `json:"files"`
}

// CandidateScore is the per-language score kept for every rule that matched
// at least one pattern, so callers can audit why a verdict was reached.
type CandidateScore struct {
	Language   string  `json:"language"`
	Confidence float64 `json:"confidence"`
	Matched    int     `json:"matched_patterns"`
	Declared   int     `json:"declared_patterns"`
}

// DetectionResult is the verdict for a single scan. It is built fresh on
// every call to Detect and never mutated afterward.
type DetectionResult struct {
	// Language is the selected tag, or UnknownLanguage.
	Language string `json:"language"`
	// Confidence is the fraction of the selected entry's patterns that
	// were satisfied, in [0,1]. Zero exactly when Language is unknown.
	Confidence float64 `json:"confidence"`
	// Description comes from the selected rule entry.
	Description string `json:"description,omitempty"`
	// Matches lists each satisfied pattern of the selected entry with the
	// filenames that satisfied it, in pattern declaration order.
	Matches []PatternMatch `json:"matches,omitempty"`
	// MissingMandatory lists mandatory filenames of the selected entry
	// absent from the scanned set, in declaration order.
	MissingMandatory []string `json:"missing_mandatory,omitempty"`
	// Standards are the standards references of the selected entry.
	Standards []string `json:"standards,omitempty"`
	// Candidates holds every language that matched at least one pattern,
	// best first, for transparency.
	Candidates []CandidateScore `json:"candidates,omitempty"`
}
