// Package rules loads language-detection rule sets and coding-standards
// text. It is the concrete rule source behind the detector: file formats and
// lookup locations live here, the detector only sees the resulting RuleSet.
package rules

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"llmctx/pkg/detector"
)

// RulesFileName is the rule definition file looked up inside a rules
// directory.
const RulesFileName = "goto.yaml"

// ruleFile mirrors the on-disk YAML layout.
type ruleFile struct {
	LanguageDetection yaml.Node `yaml:"language_detection"`
}

// ruleEntry is the per-language YAML shape.
type ruleEntry struct {
	Files          []string `yaml:"files"`
	MandatoryFiles []string `yaml:"mandatory_files"`
	Standards      []string `yaml:"standards"`
	Description    string   `yaml:"description"`
	Priority       *int     `yaml:"priority"`
}

// Parse decodes rule YAML into an ordered RuleSet. Document order is
// preserved because it is the detector's final tie-break, and an entry's
// priority defaults to its position when the file does not set one.
func Parse(data []byte) (detector.RuleSet, error) {
	var file ruleFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing rules: %w", err)
	}
	if file.LanguageDetection.Kind == 0 {
		return nil, fmt.Errorf("%w: missing language_detection block", detector.ErrInvalidRuleSet)
	}
	if file.LanguageDetection.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: language_detection must be a mapping", detector.ErrInvalidRuleSet)
	}

	content := file.LanguageDetection.Content
	set := make(detector.RuleSet, 0, len(content)/2)
	for i := 0; i+1 < len(content); i += 2 {
		language := content[i].Value

		var entry ruleEntry
		if err := content[i+1].Decode(&entry); err != nil {
			return nil, fmt.Errorf("parsing rule %q: %w", language, err)
		}
		if len(entry.Files) == 0 {
			return nil, fmt.Errorf("%w: entry %q declares no patterns", detector.ErrInvalidRuleSet, language)
		}

		priority := len(set)
		if entry.Priority != nil {
			priority = *entry.Priority
		}
		description := entry.Description
		if description == "" {
			description = language + " project"
		}

		set = append(set, detector.RuleEntry{
			Language:       language,
			Patterns:       entry.Files,
			MandatoryFiles: entry.MandatoryFiles,
			Standards:      entry.Standards,
			Priority:       priority,
			Description:    description,
		})
	}

	if len(set) == 0 {
		return nil, fmt.Errorf("%w: no entries", detector.ErrInvalidRuleSet)
	}
	return set, nil
}

// Load reads and parses the rule file inside dir. An empty dir falls back to
// the embedded defaults.
func Load(dir string) (detector.RuleSet, error) {
	if dir == "" {
		return Default()
	}
	data, err := os.ReadFile(filepath.Join(dir, RulesFileName))
	if err != nil {
		return nil, fmt.Errorf("reading rules: %w", err)
	}
	return Parse(data)
}

// Default returns the rule set embedded in the binary.
func Default() (detector.RuleSet, error) {
	data, err := fs.ReadFile(defaultsFS, "defaults/"+RulesFileName)
	if err != nil {
		return nil, fmt.Errorf("reading embedded rules: %w", err)
	}
	return Parse(data)
}
