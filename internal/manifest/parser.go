package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/pelletier/go-toml/v2"
)

// DuplicateDependencyError reports an attempt to declare a dependency name
// that already exists in the manifest.
type DuplicateDependencyError struct {
	Name string
}

func (e *DuplicateDependencyError) Error() string {
	return fmt.Sprintf("dependency %q already declared in %s", e.Name, FileName)
}

// Path returns the manifest path for a project root.
func Path(root string) string {
	return filepath.Join(root, FileName)
}

// Load reads and parses project.toml from the given project root.
// Missing optional fields are filled with defaults.
func Load(root string) (*Manifest, error) {
	path := Path(root)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	applyDefaults(&m)

	for name, dep := range m.Dependencies {
		if dep.Tag != "" && dep.Branch != "" {
			return nil, fmt.Errorf("dependency %q declares both tag and branch", name)
		}
	}

	return &m, nil
}

// Save marshals the manifest and writes it to project.toml under root.
func Save(root string, m *Manifest) error {
	data, err := toml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}

	if err := os.WriteFile(Path(root), data, 0644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}

	return nil
}

// AddDependency appends a dependency entry, rejecting duplicate names.
func (m *Manifest) AddDependency(name string, dep Dependency) error {
	if m.Dependencies == nil {
		m.Dependencies = make(map[string]Dependency)
	}
	if _, exists := m.Dependencies[name]; exists {
		return &DuplicateDependencyError{Name: name}
	}
	m.Dependencies[name] = dep
	return nil
}

// CheckVersion verifies that the project version parses as semver.
// A leading "v" is tolerated.
func CheckVersion(version string) error {
	v := strings.TrimPrefix(version, "v")
	if _, err := semver.NewVersion(v); err != nil {
		return fmt.Errorf("parsing project version %q: %w", version, err)
	}
	return nil
}

func applyDefaults(m *Manifest) {
	if m.Project.Version == "" {
		m.Project.Version = DefaultVersion
	}
	if m.Project.Edition == "" {
		m.Project.Edition = DefaultEdition
	}
	if m.Build.Compiler == "" {
		m.Build.Compiler = DefaultCompiler
	}
	if m.Dependencies == nil {
		m.Dependencies = make(map[string]Dependency)
	}
}
