package module

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"hash/fnv"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"text/template"

	"github.com/cforge-dev/cforge/internal/cmakefile"
	"github.com/cforge-dev/cforge/internal/layout"
)

//go:embed templates
var templateFS embed.FS

// namePattern restricts module names to a safe identifier character set.
var namePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// InvalidNameError reports a module name outside the allowed character set.
type InvalidNameError struct {
	Name string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid module name %q: must be non-empty and contain only letters, digits, underscores, and hyphens", e.Name)
}

// AlreadyExistsError reports a creation target that is already present.
// Creation is never implicitly an overwrite.
type AlreadyExistsError struct {
	Path string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s already exists", e.Path)
}

// Module describes the file pair derived from a module name. Paths are
// slash-separated and relative to the project root, matching the form
// registered in the build descriptor.
type Module struct {
	Name       string
	ImplPath   string // src/<name>.c
	HeaderPath string // include/<name>.h
	Guard      string // header guard token
}

// Derive computes the module file paths and header guard for a name.
// The guard combines the uppercased name with a short FNV-1a suffix of the
// raw name, so names differing only by case still get distinct guards.
func Derive(name string) Module {
	return Module{
		Name:       name,
		ImplPath:   path.Join(layout.SrcDir, name+".c"),
		HeaderPath: path.Join(layout.IncludeDir, name+".h"),
		Guard:      guardToken(name),
	}
}

// ValidateName checks a module name against the allowed identifier set.
func ValidateName(name string) error {
	if !namePattern.MatchString(name) {
		return &InvalidNameError{Name: name}
	}
	return nil
}

// Create generates the implementation/header pair for name under root and
// registers both files in the build descriptor.
//
// The operation is atomic: all three effects succeed, or every file written
// during this call is removed again and the project is left exactly as
// before. The descriptor update runs last, after both files are confirmed on
// disk, keeping the cleanup window small.
func Create(root, name string) (*Module, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	m := Derive(name)

	for _, rel := range []string{m.ImplPath, m.HeaderPath} {
		_, err := os.Stat(filepath.Join(root, filepath.FromSlash(rel)))
		switch {
		case err == nil:
			return nil, &AlreadyExistsError{Path: rel}
		case !errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("checking %s: %w", rel, err)
		}
	}

	// Compensating-action stack: each completed step pushes its own undo,
	// and any later failure unwinds the stack in reverse.
	var undo []func()
	unwind := func(err error) (*Module, error) {
		for i := len(undo) - 1; i >= 0; i-- {
			undo[i]()
		}
		return nil, err
	}

	implContent, err := render("module.c.tmpl", m)
	if err != nil {
		return nil, err
	}
	headerContent, err := render("module.h.tmpl", m)
	if err != nil {
		return nil, err
	}

	implAbs := filepath.Join(root, filepath.FromSlash(m.ImplPath))
	if err := os.WriteFile(implAbs, implContent, 0644); err != nil {
		return unwind(fmt.Errorf("writing %s: %w", m.ImplPath, err))
	}
	undo = append(undo, func() { _ = os.Remove(implAbs) })

	headerAbs := filepath.Join(root, filepath.FromSlash(m.HeaderPath))
	if err := os.WriteFile(headerAbs, headerContent, 0644); err != nil {
		return unwind(fmt.Errorf("writing %s: %w", m.HeaderPath, err))
	}
	undo = append(undo, func() { _ = os.Remove(headerAbs) })

	descPath := filepath.Join(root, cmakefile.FileName)
	lines, err := cmakefile.Load(descPath)
	if err != nil {
		return unwind(err)
	}
	lines, err = cmakefile.InsertReference(lines, cmakefile.KindSource, m.ImplPath)
	if err != nil {
		return unwind(err)
	}
	lines, err = cmakefile.InsertReference(lines, cmakefile.KindHeader, m.HeaderPath)
	if err != nil {
		return unwind(err)
	}
	if err := cmakefile.Save(descPath, lines); err != nil {
		return unwind(err)
	}

	return &m, nil
}

// guardToken derives the header guard macro for a module name. Hyphens are
// folded to underscores before uppercasing; the 4-hex FNV-1a suffix keeps
// case-insensitive name collisions apart (Utils vs. utils).
func guardToken(name string) string {
	sanitized := strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
	h := fnv.New32a()
	h.Write([]byte(name))
	return fmt.Sprintf("%s_%04X_H", sanitized, h.Sum32()&0xFFFF)
}

func render(templateName string, m Module) ([]byte, error) {
	tmplBytes, err := templateFS.ReadFile(path.Join("templates", templateName))
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", templateName, err)
	}

	tmpl, err := template.New(templateName).Parse(string(tmplBytes))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", templateName, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, m); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", templateName, err)
	}
	return buf.Bytes(), nil
}
