package layout

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cforge-dev/cforge/internal/cmakefile"
	"github.com/cforge-dev/cforge/internal/manifest"
	"github.com/cforge-dev/cforge/internal/scaffold"
)

// Fixed directory names relative to the project root.
const (
	SrcDir      = "src"
	IncludeDir  = "include"
	ExternalDir = "external"
	BuildDir    = "build"
)

// Dirs lists every required directory of a project root.
var Dirs = []string{SrcDir, IncludeDir, ExternalDir, BuildDir}

// RequiredFiles lists every required top-level file of a project root.
var RequiredFiles = []string{
	"main.c",
	cmakefile.FileName,
	manifest.FileName,
	".gitignore",
	"README.md",
}

// NotEmptyError reports an in-place init target that violates the
// emptiness precondition.
type NotEmptyError struct {
	Dir     string
	Entries []string
}

func (e *NotEmptyError) Error() string {
	return fmt.Sprintf("directory %s is not empty (found %s)", e.Dir, strings.Join(e.Entries, ", "))
}

// InitOptions controls how Initialize treats the target directory.
type InitOptions struct {
	// InPlace initializes an existing empty directory instead of
	// creating a new one.
	InPlace bool

	// AllowHidden tolerates dot-entries (.git, .vscode, ...) during the
	// in-place emptiness check.
	AllowHidden bool
}

// Initialize creates and populates the fixed project skeleton under root.
//
// With InPlace false, root must not already exist; a pre-existing directory
// with content fails with NotEmptyError. With InPlace true, root must exist
// and contain no entries (subject to AllowHidden); otherwise Initialize
// fails with NotEmptyError. Population is not rolled back on failure: the
// root was newly created or verified empty, so deleting it and re-running
// init recovers cleanly.
func Initialize(root, name string, opts InitOptions) error {
	if opts.InPlace {
		if err := checkEmpty(root, opts.AllowHidden); err != nil {
			return err
		}
	} else {
		if info, err := os.Stat(root); err == nil {
			if info.IsDir() {
				if err := checkEmpty(root, false); err != nil {
					return err
				}
			}
			return fmt.Errorf("directory %s already exists", root)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("checking target directory: %w", err)
		}
		if err := os.MkdirAll(root, 0755); err != nil {
			return fmt.Errorf("creating project directory: %w", err)
		}
	}

	for _, dir := range Dirs {
		if err := os.MkdirAll(filepath.Join(root, dir), 0755); err != nil {
			return fmt.Errorf("creating %s directory: %w", dir, err)
		}
	}

	if _, err := scaffold.Render(root, scaffold.NewData(name)); err != nil {
		return fmt.Errorf("populating project files: %w", err)
	}

	return nil
}

// Validate returns an error naming every required entry missing from root.
// A directory is a valid project root iff every required entry exists.
func Validate(root string) error {
	var missing []string

	for _, dir := range Dirs {
		info, err := os.Stat(filepath.Join(root, dir))
		if err != nil || !info.IsDir() {
			missing = append(missing, dir+"/")
		}
	}
	for _, file := range RequiredFiles {
		info, err := os.Stat(filepath.Join(root, file))
		if err != nil || info.IsDir() {
			missing = append(missing, file)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("not a valid project root %s: missing %s", root, strings.Join(missing, ", "))
	}
	return nil
}

// IsProjectRoot reports whether root contains a project manifest.
func IsProjectRoot(root string) bool {
	info, err := os.Stat(manifest.Path(root))
	return err == nil && !info.IsDir()
}

// FindRoot walks from start upward to the filesystem root looking for the
// enclosing project (the nearest directory containing project.toml).
func FindRoot(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", start, err)
	}

	for {
		if IsProjectRoot(dir) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not inside a cforge project (no %s found from %s upward)", manifest.FileName, start)
		}
		dir = parent
	}
}

// checkEmpty verifies that dir exists and holds no entries. With allowHidden,
// entries starting with a dot are tolerated.
func checkEmpty(dir string, allowHidden bool) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading target directory: %w", err)
	}

	var offending []string
	for _, entry := range entries {
		if allowHidden && strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		offending = append(offending, entry.Name())
	}

	if len(offending) > 0 {
		return &NotEmptyError{Dir: dir, Entries: offending}
	}
	return nil
}
