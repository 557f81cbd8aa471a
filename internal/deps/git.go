package deps

import (
	"fmt"
	"os/exec"
	"strings"
)

// Git abstracts the version-control operations the synchronizer needs, so
// tests can substitute a fake toolchain.
type Git interface {
	// Clone clones url into dir. A non-empty ref is checked out via a
	// single-branch clone of that tag or branch.
	Clone(url, dir, ref string) error

	// Fetch updates remote refs and tags in dir.
	Fetch(dir string) error

	// Checkout checks out ref in dir.
	Checkout(dir, ref string) error

	// CurrentBranch returns the checked-out branch name in dir, or empty
	// when detached or unavailable.
	CurrentBranch(dir string) string

	// CurrentTag returns the tag the checkout in dir points at exactly,
	// or empty when not on a tag.
	CurrentTag(dir string) string

	// Init initializes a fresh repository in dir.
	Init(dir string) error
}

// ExecGit runs git through the external executable.
type ExecGit struct {
	Bin string
}

// NewExecGit returns an ExecGit using bin, defaulting to "git" on PATH.
func NewExecGit(bin string) *ExecGit {
	if bin == "" {
		bin = "git"
	}
	return &ExecGit{Bin: bin}
}

// Available checks that the git executable can be found.
func (g *ExecGit) Available() error {
	if _, err := exec.LookPath(g.Bin); err != nil {
		return fmt.Errorf("%s is required but not found in PATH", g.Bin)
	}
	return nil
}

func (g *ExecGit) Clone(url, dir, ref string) error {
	args := []string{"clone", url, dir}
	if ref != "" {
		args = append(args, "--branch", ref, "--single-branch")
	}
	_, err := g.run("", args...)
	return err
}

func (g *ExecGit) Fetch(dir string) error {
	_, err := g.run(dir, "fetch", "--tags", "--quiet")
	return err
}

func (g *ExecGit) Checkout(dir, ref string) error {
	_, err := g.run(dir, "checkout", ref)
	return err
}

func (g *ExecGit) CurrentBranch(dir string) string {
	out, err := g.run(dir, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return ""
	}
	// Detached HEAD reports the literal string "HEAD".
	if out == "HEAD" {
		return ""
	}
	return out
}

func (g *ExecGit) CurrentTag(dir string) string {
	out, err := g.run(dir, "describe", "--tags", "--exact-match")
	if err != nil {
		return ""
	}
	return out
}

func (g *ExecGit) Init(dir string) error {
	_, err := g.run(dir, "init")
	return err
}

// run executes git with args, optionally inside dir, and returns trimmed
// combined output. Failures carry the tool's diagnostic.
func (g *ExecGit) run(dir string, args ...string) (string, error) {
	cmd := exec.Command(g.Bin, args...)
	if dir != "" {
		cmd.Dir = dir
	}
	output, err := cmd.CombinedOutput()
	trimmed := strings.TrimSpace(string(output))
	if err != nil {
		return "", fmt.Errorf("git %s: %w\n%s", args[0], err, trimmed)
	}
	return trimmed, nil
}
