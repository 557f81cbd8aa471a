package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/cforge-dev/cforge/internal/cmakefile"
	"github.com/cforge-dev/cforge/internal/manifest"
)

//go:embed templates
var templateFS embed.FS

const templatesDir = "templates"

// Data holds all template variables available to project templates.
type Data struct {
	Name         string // Project name, e.g., "my_project"
	Version      string // Initial version, e.g., "0.1.0"
	Edition      string // C edition identifier, e.g., "c99"
	Standard     string // Derived: numeric CMake C standard, e.g., "99"
	Compiler     string // Compiler identifier, e.g., "gcc"
	SourceAnchor string // CMakeLists source anchor line
	HeaderAnchor string // CMakeLists header anchor line
}

// Result holds the outcome of a project render.
type Result struct {
	OutputDir string
	Files     []string
}

// NewData creates a Data with derived fields populated from defaults.
func NewData(name string) *Data {
	return &Data{
		Name:         name,
		Version:      manifest.DefaultVersion,
		Edition:      manifest.DefaultEdition,
		Standard:     standardFromEdition(manifest.DefaultEdition),
		Compiler:     manifest.DefaultCompiler,
		SourceAnchor: cmakefile.SourceAnchor,
		HeaderAnchor: cmakefile.HeaderAnchor,
	}
}

// standardFromEdition maps an edition identifier like "c99" or "c11" to the
// numeric value CMake expects for CMAKE_C_STANDARD.
func standardFromEdition(edition string) string {
	return strings.TrimPrefix(strings.ToLower(edition), "c")
}

// Render writes the initial project files into outputDir from the embedded
// templates. The directory must already exist; Render does not create or
// clean it, that is the layout package's job.
func Render(outputDir string, data *Data) (*Result, error) {
	entries, err := fs.ReadDir(templateFS, templatesDir)
	if err != nil {
		return nil, fmt.Errorf("reading embedded templates: %w", err)
	}

	result := &Result{OutputDir: outputDir}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		tmplPath := filepath.Join(templatesDir, entry.Name())
		tmplBytes, err := fs.ReadFile(templateFS, tmplPath)
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", tmplPath, err)
		}

		outName := outputName(entry.Name())
		outPath := filepath.Join(outputDir, outName)

		tmpl, err := template.New(entry.Name()).Parse(string(tmplBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", entry.Name(), err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return nil, fmt.Errorf("executing template %s: %w", entry.Name(), err)
		}

		if err := os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", outPath, err)
		}

		result.Files = append(result.Files, outName)
	}

	return result, nil
}

// outputName strips the .tmpl extension and restores dotfile names that
// cannot be stored as-is in the embedded FS (gitignore → .gitignore).
func outputName(templateName string) string {
	name := strings.TrimSuffix(templateName, ".tmpl")
	if name == "gitignore" {
		return ".gitignore"
	}
	return name
}
