package cmakefile

import (
	"fmt"
	"os"
	"strings"
)

// FileName is the build descriptor file name at the project root.
const FileName = "CMakeLists.txt"

// Anchor marker lines. Each must appear exactly once in the descriptor;
// generated file references are inserted immediately before them.
const (
	SourceAnchor = "# @cforge_sources"
	HeaderAnchor = "# @cforge_headers"
)

// AnchorKind selects which anchor an insertion targets.
type AnchorKind int

const (
	KindSource AnchorKind = iota
	KindHeader
)

// Anchor returns the marker line for the kind.
func (k AnchorKind) Anchor() string {
	if k == KindHeader {
		return HeaderAnchor
	}
	return SourceAnchor
}

func (k AnchorKind) String() string {
	if k == KindHeader {
		return "header"
	}
	return "source"
}

// AnchorNotFoundError reports a descriptor whose anchor line is missing or
// duplicated. This signals an incompatible hand edit; the editor refuses to
// guess an insertion point.
type AnchorNotFoundError struct {
	Anchor string
	Count  int
}

func (e *AnchorNotFoundError) Error() string {
	if e.Count == 0 {
		return fmt.Sprintf("anchor %q not found in %s", e.Anchor, FileName)
	}
	return fmt.Sprintf("anchor %q appears %d times in %s, expected exactly one", e.Anchor, e.Count, FileName)
}

// InsertReference inserts ref on its own line immediately before the anchor
// for kind, inheriting the anchor line's indentation. The input is treated
// purely as a line sequence; nothing else in it is touched.
//
// Returns AnchorNotFoundError whenever the anchor is missing or duplicated,
// even if ref is already present: a corrupted descriptor is always reported.
// Otherwise, if ref already appears verbatim (ignoring surrounding
// whitespace) anywhere in lines, the input is returned unchanged, which
// makes the operation idempotent. lines is never modified on failure.
func InsertReference(lines []string, kind AnchorKind, ref string) ([]string, error) {
	anchor := kind.Anchor()

	anchorIdx := -1
	count := 0
	present := false
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == anchor {
			anchorIdx = i
			count++
		}
		if trimmed == ref {
			present = true
		}
	}

	if count != 1 {
		return nil, &AnchorNotFoundError{Anchor: anchor, Count: count}
	}
	if present {
		// Already registered.
		return lines, nil
	}

	indent := lines[anchorIdx][:len(lines[anchorIdx])-len(strings.TrimLeft(lines[anchorIdx], " \t"))]

	out := make([]string, 0, len(lines)+1)
	out = append(out, lines[:anchorIdx]...)
	out = append(out, indent+ref)
	out = append(out, lines[anchorIdx:]...)
	return out, nil
}

// Load reads the descriptor at path into a line sequence. The split is
// lossless: a trailing newline shows up as a final empty element, so
// Save(Load(path)) reproduces the file byte for byte.
func Load(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", FileName, err)
	}
	return strings.Split(string(data), "\n"), nil
}

// Save writes the line sequence back to path.
func Save(path string, lines []string) error {
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", FileName, err)
	}
	return nil
}
