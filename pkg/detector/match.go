package detector

import "strings"

// MatchPattern reports whether a filename satisfies a file-glob pattern.
// Supported syntax is deliberately small: "*" matches any run of characters
// (filenames carry no path separators here, so a run never crosses a
// segment), and everything else matches literally, case-sensitive. Patterns
// without a wildcard are plain filename equality.
func MatchPattern(filename, pattern string) bool {
	if !strings.Contains(pattern, "*") {
		return filename == pattern
	}

	parts := strings.Split(pattern, "*")

	// Anchored prefix and suffix.
	if !strings.HasPrefix(filename, parts[0]) {
		return false
	}
	rest := filename[len(parts[0]):]

	last := parts[len(parts)-1]
	if !strings.HasSuffix(rest, last) {
		return false
	}
	rest = rest[:len(rest)-len(last)]

	// Interior literals must appear in order.
	for _, part := range parts[1 : len(parts)-1] {
		if part == "" {
			continue
		}
		idx := strings.Index(rest, part)
		if idx < 0 {
			return false
		}
		rest = rest[idx+len(part):]
	}
	return true
}
