package rules

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//go:embed defaults
var defaultsFS embed.FS

// GeneralStandard is the reference applied when detection comes back
// unknown.
const GeneralStandard = "coding-standards/general-principles.md"

// StandardBlock is one ordered block of standards text destined for the
// assembled document.
type StandardBlock struct {
	Ref  string
	Text string
}

// Source resolves standards references to text, preferring an on-disk rules
// directory and falling back to the embedded defaults.
type Source struct {
	dir string
}

// NewSource returns a standards source. dir may be empty, in which case only
// the embedded defaults are consulted.
func NewSource(dir string) *Source {
	return &Source{dir: dir}
}

// Resolve returns one block per reference, in the given order. A reference
// that cannot be read anywhere yields a placeholder block rather than
// failing the whole document, matching how a partially populated rules
// directory should degrade.
func (s *Source) Resolve(refs []string) []StandardBlock {
	if len(refs) == 0 {
		refs = []string{GeneralStandard}
	}
	blocks := make([]StandardBlock, 0, len(refs))
	for _, ref := range refs {
		blocks = append(blocks, StandardBlock{Ref: ref, Text: s.read(ref)})
	}
	return blocks
}

func (s *Source) read(ref string) string {
	if s.dir != "" {
		if data, err := os.ReadFile(filepath.Join(s.dir, filepath.FromSlash(ref))); err == nil {
			return string(data)
		}
	}
	if data, err := fs.ReadFile(defaultsFS, "defaults/"+ref); err == nil {
		return string(data)
	}
	return fmt.Sprintf("# %s\n\n*Content not available*\n", ref)
}

// ListEmbedded returns the standards references shipped with the binary,
// sorted, mainly for diagnostics.
func ListEmbedded() []string {
	var refs []string
	fs.WalkDir(defaultsFS, "defaults/coding-standards", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		refs = append(refs, strings.TrimPrefix(p, "defaults/"))
		return nil
	})
	return refs
}
