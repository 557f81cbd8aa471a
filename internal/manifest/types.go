package manifest

// FileName is the manifest file name at the project root.
const FileName = "project.toml"

// Manifest represents the parsed project.toml structure.
type Manifest struct {
	Project      ProjectInfo           `toml:"project"`
	Dependencies map[string]Dependency `toml:"dependencies,omitempty"`
	Build        BuildConfig           `toml:"build"`
}

// ProjectInfo holds the [project] section metadata.
type ProjectInfo struct {
	Name        string `toml:"name"`
	Version     string `toml:"version"`
	Edition     string `toml:"edition"`
	Description string `toml:"description,omitempty"`
}

// Dependency represents one [dependencies] entry: a git source plus an
// optional pinned reference. At most one of Tag and Branch may be set.
type Dependency struct {
	Git    string `toml:"git"`
	Tag    string `toml:"tag,omitempty"`
	Branch string `toml:"branch,omitempty"`
}

// Ref returns the declared reference for the dependency, or empty when
// neither a tag nor a branch is pinned (default branch tip).
func (d Dependency) Ref() string {
	if d.Tag != "" {
		return d.Tag
	}
	return d.Branch
}

// BuildConfig holds the [build] section: compiler identifier and flags.
type BuildConfig struct {
	Compiler string   `toml:"compiler"`
	Flags    []string `toml:"flags,omitempty"`
}

// Defaults applied when fields are absent from the manifest.
const (
	DefaultVersion  = "0.1.0"
	DefaultEdition  = "c99"
	DefaultCompiler = "gcc"
)

// New returns a Manifest pre-filled with defaults for the given project name.
func New(name string) *Manifest {
	return &Manifest{
		Project: ProjectInfo{
			Name:        name,
			Version:     DefaultVersion,
			Edition:     DefaultEdition,
			Description: "A C project created with cforge",
		},
		Dependencies: make(map[string]Dependency),
		Build: BuildConfig{
			Compiler: DefaultCompiler,
			Flags:    []string{"-O3", "-Wall"},
		},
	}
}
