package manifest

import (
	"strings"
	"testing"
)

func TestValidate_ValidManifest(t *testing.T) {
	result, err := Validate([]byte(fullManifest))
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if !result.Valid {
		t.Fatalf("expected valid, got issues: %+v", result.Issues)
	}
}

func TestValidate_MissingProjectName(t *testing.T) {
	result, err := Validate([]byte("[project]\ndescription = \"nameless\"\n"))
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if result.Valid {
		t.Fatal("expected invalid for missing project.name")
	}
	if len(result.Issues) == 0 {
		t.Fatal("expected at least one issue")
	}
}

func TestValidate_DependencyWithoutGit(t *testing.T) {
	data := `[project]
name = "demo"

[dependencies]
broken = { tag = "v1.0.0" }
`
	result, err := Validate([]byte(data))
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if result.Valid {
		t.Fatal("expected invalid for dependency without git URL")
	}

	found := false
	for _, issue := range result.Issues {
		if strings.Contains(issue.Path, "/dependencies/broken") {
			found = true
		}
	}
	if !found {
		t.Errorf("no issue pointing at /dependencies/broken: %+v", result.Issues)
	}
}

func TestValidate_TagAndBranchRejected(t *testing.T) {
	data := `[project]
name = "demo"

[dependencies]
bad = { git = "https://example.com/bad.git", tag = "v1.0.0", branch = "main" }
`
	result, err := Validate([]byte(data))
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if result.Valid {
		t.Fatal("expected invalid when both tag and branch are set")
	}
}

func TestValidate_BadTOML(t *testing.T) {
	_, err := Validate([]byte("[project\nname ="))
	if err == nil {
		t.Fatal("expected error for malformed TOML")
	}
}
