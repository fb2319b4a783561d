package optimizer

import (
	"iter"
	"strings"
)

// Section is one heading-delimited block of a markdown document. Text before
// the first heading forms a heading-less preamble section.
type Section struct {
	// Heading is the raw heading line including its marker, empty for the
	// preamble.
	Heading string
	// Title is the heading text without markers.
	Title string
	// Body is everything between this heading and the next one.
	Body string
	// Index is the zero-based order of appearance.
	Index int
}

// Chars returns the section's character count (heading plus body), the unit
// used to apportion the document-level token estimate.
func (s Section) Chars() int {
	return len([]rune(s.Heading)) + len([]rune(s.Body))
}

// Sections yields the heading-delimited sections of text in order. The
// sequence is lazy and restartable: each range re-walks the lines, and no
// state survives between iterations.
func Sections(text string) iter.Seq[Section] {
	return func(yield func(Section) bool) {
		lines := strings.Split(text, "\n")

		current := Section{}
		started := false
		index := 0
		var body strings.Builder

		flush := func() bool {
			current.Body = body.String()
			current.Index = index
			index++
			body.Reset()
			return yield(current)
		}

		for _, line := range lines {
			if isHeading(line) {
				if started {
					if !flush() {
						return
					}
				}
				trimmed := strings.TrimSpace(line)
				current = Section{
					Heading: line,
					Title:   strings.TrimSpace(strings.TrimLeft(trimmed, "#")),
				}
				started = true
				continue
			}
			if !started && strings.TrimSpace(line) != "" {
				// Preamble before the first heading.
				current = Section{}
				started = true
			}
			if started {
				body.WriteString(line)
				body.WriteString("\n")
			}
		}
		if started {
			flush()
		}
	}
}

// isHeading reports whether a line is a markdown ATX heading.
func isHeading(line string) bool {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "#") {
		return false
	}
	rest := strings.TrimLeft(trimmed, "#")
	return rest == "" || strings.HasPrefix(rest, " ")
}
