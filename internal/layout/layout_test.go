package layout

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestInitialize_NewDirectory(t *testing.T) {
	root := filepath.Join(t.TempDir(), "my_project")

	if err := Initialize(root, "my_project", InitOptions{}); err != nil {
		t.Fatalf("Initialize() error: %v", err)
	}

	if err := Validate(root); err != nil {
		t.Errorf("Validate() after init: %v", err)
	}
	if !IsProjectRoot(root) {
		t.Error("IsProjectRoot() = false after init")
	}
}

func TestInitialize_ExistingTargetRejected(t *testing.T) {
	t.Run("empty directory", func(t *testing.T) {
		root := t.TempDir()

		err := Initialize(root, "clash", InitOptions{})
		if err == nil {
			t.Fatal("expected error for pre-existing target, got nil")
		}
	})

	t.Run("non-empty directory", func(t *testing.T) {
		root := t.TempDir()
		if err := os.WriteFile(filepath.Join(root, "stray.txt"), []byte("x"), 0644); err != nil {
			t.Fatalf("seeding file: %v", err)
		}

		err := Initialize(root, "clash", InitOptions{})
		var notEmpty *NotEmptyError
		if !errors.As(err, &notEmpty) {
			t.Fatalf("expected *NotEmptyError, got %v", err)
		}
		if len(notEmpty.Entries) != 1 || notEmpty.Entries[0] != "stray.txt" {
			t.Errorf("Entries = %v, want [stray.txt]", notEmpty.Entries)
		}
	})
}

func TestInitialize_InPlace(t *testing.T) {
	root := t.TempDir()

	if err := Initialize(root, "inplace", InitOptions{InPlace: true}); err != nil {
		t.Fatalf("Initialize() error: %v", err)
	}
	if err := Validate(root); err != nil {
		t.Errorf("Validate() after in-place init: %v", err)
	}
}

func TestInitialize_InPlaceNotEmpty(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "leftover.txt"), []byte("x"), 0644); err != nil {
		t.Fatalf("seeding file: %v", err)
	}

	err := Initialize(root, "occupied", InitOptions{InPlace: true})
	if err == nil {
		t.Fatal("expected NotEmptyError, got nil")
	}
	var notEmpty *NotEmptyError
	if !errors.As(err, &notEmpty) {
		t.Fatalf("expected *NotEmptyError, got %T", err)
	}
	if len(notEmpty.Entries) != 1 || notEmpty.Entries[0] != "leftover.txt" {
		t.Errorf("Entries = %v, want [leftover.txt]", notEmpty.Entries)
	}

	// Target must be left untouched.
	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatalf("reading root: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("root has %d entries after failed init, want 1", len(entries))
	}
}

func TestInitialize_InPlaceHiddenEntries(t *testing.T) {
	t.Run("rejected by default", func(t *testing.T) {
		root := t.TempDir()
		if err := os.Mkdir(filepath.Join(root, ".git"), 0755); err != nil {
			t.Fatalf("seeding .git: %v", err)
		}

		err := Initialize(root, "strict", InitOptions{InPlace: true})
		var notEmpty *NotEmptyError
		if !errors.As(err, &notEmpty) {
			t.Fatalf("expected *NotEmptyError, got %v", err)
		}
	})

	t.Run("tolerated with AllowHidden", func(t *testing.T) {
		root := t.TempDir()
		if err := os.Mkdir(filepath.Join(root, ".git"), 0755); err != nil {
			t.Fatalf("seeding .git: %v", err)
		}

		err := Initialize(root, "relaxed", InitOptions{InPlace: true, AllowHidden: true})
		if err != nil {
			t.Fatalf("Initialize() error: %v", err)
		}
	})
}

func TestValidate_MissingEntries(t *testing.T) {
	root := t.TempDir()
	if err := Initialize(root, "broken", InitOptions{InPlace: true}); err != nil {
		t.Fatalf("Initialize() error: %v", err)
	}

	if err := os.RemoveAll(filepath.Join(root, IncludeDir)); err != nil {
		t.Fatalf("removing include dir: %v", err)
	}
	if err := os.Remove(filepath.Join(root, "main.c")); err != nil {
		t.Fatalf("removing main.c: %v", err)
	}

	err := Validate(root)
	if err == nil {
		t.Fatal("expected error for incomplete root, got nil")
	}
}

func TestFindRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "proj")
	if err := Initialize(root, "proj", InitOptions{}); err != nil {
		t.Fatalf("Initialize() error: %v", err)
	}

	nested := filepath.Join(root, SrcDir)
	got, err := FindRoot(nested)
	if err != nil {
		t.Fatalf("FindRoot() error: %v", err)
	}
	if got != root {
		t.Errorf("FindRoot() = %q, want %q", got, root)
	}
}

func TestFindRoot_NotInProject(t *testing.T) {
	if _, err := FindRoot(t.TempDir()); err == nil {
		t.Fatal("expected error outside a project, got nil")
	}
}
