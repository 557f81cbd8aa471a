package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cforge-dev/cforge/internal/cmakefile"
	"github.com/cforge-dev/cforge/internal/layout"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getting working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("changing directory to %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restoring working directory: %v", err)
		}
	})
}

func runCommand(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func readProjectFile(t *testing.T, root, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		t.Fatalf("reading %s: %v", rel, err)
	}
	return string(data)
}

func TestInitAndCreate_EndToEnd(t *testing.T) {
	workdir := t.TempDir()
	chdir(t, workdir)

	if err := runCommand(t, "init", "my_project"); err != nil {
		t.Fatalf("init: %v", err)
	}

	root := filepath.Join(workdir, "my_project")
	if err := layout.Validate(root); err != nil {
		t.Fatalf("layout incomplete after init: %v", err)
	}

	chdir(t, root)
	if err := runCommand(t, "create", "utils"); err != nil {
		t.Fatalf("create: %v", err)
	}

	impl := readProjectFile(t, root, "src/utils.c")
	if !strings.Contains(impl, `#include "utils.h"`) {
		t.Errorf("src/utils.c missing include:\n%s", impl)
	}

	header := readProjectFile(t, root, "include/utils.h")
	if !strings.Contains(header, "#ifndef ") {
		t.Errorf("include/utils.h missing header guard:\n%s", header)
	}

	desc := readProjectFile(t, root, cmakefile.FileName)
	lines := strings.Split(desc, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) == "src/utils.c" {
			if strings.TrimSpace(lines[i+1]) != cmakefile.SourceAnchor {
				t.Errorf("src/utils.c not immediately before source anchor")
			}
		}
		if strings.TrimSpace(line) == "include/utils.h" {
			if strings.TrimSpace(lines[i+1]) != cmakefile.HeaderAnchor {
				t.Errorf("include/utils.h not immediately before header anchor")
			}
		}
	}

	// check passes on a freshly scaffolded project.
	if err := runCommand(t, "check"); err != nil {
		t.Errorf("check: %v", err)
	}

	// list on a project without dependencies succeeds.
	if err := runCommand(t, "list"); err != nil {
		t.Errorf("list: %v", err)
	}
}

func TestInit_InPlaceRejectsNonEmptyDirectory(t *testing.T) {
	workdir := t.TempDir()
	chdir(t, workdir)

	if err := os.WriteFile(filepath.Join(workdir, "stray.txt"), []byte("x"), 0644); err != nil {
		t.Fatalf("seeding file: %v", err)
	}

	if err := runCommand(t, "init"); err == nil {
		t.Fatal("expected in-place init of non-empty directory to fail")
	}
}

func TestInit_RejectsInvalidProjectName(t *testing.T) {
	chdir(t, t.TempDir())

	if err := runCommand(t, "init", "bad name!"); err == nil {
		t.Fatal("expected invalid project name to fail")
	}
}

func TestCreate_OutsideProjectFails(t *testing.T) {
	chdir(t, t.TempDir())

	if err := runCommand(t, "create", "utils"); err == nil {
		t.Fatal("expected create outside a project to fail")
	}
}
