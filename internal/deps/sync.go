package deps

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cforge-dev/cforge/internal/layout"
	"github.com/cforge-dev/cforge/internal/manifest"
)

// CloneError reports a failed clone for one dependency entry.
type CloneError struct {
	Name string
	Err  error
}

func (e *CloneError) Error() string {
	return fmt.Sprintf("cloning %s: %v", e.Name, e.Err)
}

func (e *CloneError) Unwrap() error { return e.Err }

// CheckoutError reports a failed checkout of a declared reference.
type CheckoutError struct {
	Name string
	Ref  string
	Err  error
}

func (e *CheckoutError) Error() string {
	return fmt.Sprintf("checking out %s at %s: %v", e.Name, e.Ref, e.Err)
}

func (e *CheckoutError) Unwrap() error { return e.Err }

// State describes one dependency directory relative to its declared spec.
// It is recomputed on every call, never cached.
type State int

const (
	// StateMissing: the destination directory does not exist.
	StateMissing State = iota
	// StateInSync: the checkout matches the declared reference, or no
	// reference is declared for an existing checkout.
	StateInSync
	// StateNeedsCheckout: the directory exists but is not on the
	// declared reference.
	StateNeedsCheckout
)

func (s State) String() string {
	switch s {
	case StateMissing:
		return "missing"
	case StateNeedsCheckout:
		return "needs checkout"
	default:
		return "ok"
	}
}

// Action describes what a sync pass did for one entry.
type Action int

const (
	ActionNone Action = iota
	ActionCloned
	ActionCheckedOut
)

func (a Action) String() string {
	switch a {
	case ActionCloned:
		return "cloned"
	case ActionCheckedOut:
		return "checked out"
	default:
		return "unchanged"
	}
}

// Result is the per-entry outcome of a sync pass.
type Result struct {
	Name   string
	Action Action
	Err    error
}

// Syncer reconciles declared dependencies against the external directory.
type Syncer struct {
	Git Git
}

// NewSyncer returns a Syncer backed by the given git implementation.
func NewSyncer(git Git) *Syncer {
	return &Syncer{Git: git}
}

// State computes the reconciliation state for one entry. An existing
// checkout with no declared reference is never considered out of sync:
// forcing an update against an undeclared reference could silently rewrite
// local changes.
func (s *Syncer) State(externalRoot, name string, dep manifest.Dependency) State {
	dir := filepath.Join(externalRoot, name)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return StateMissing
	}

	switch {
	case dep.Tag != "":
		if s.Git.CurrentTag(dir) == dep.Tag {
			return StateInSync
		}
		return StateNeedsCheckout
	case dep.Branch != "":
		if s.Git.CurrentBranch(dir) == dep.Branch {
			return StateInSync
		}
		return StateNeedsCheckout
	default:
		return StateInSync
	}
}

// SyncOne reconciles a single dependency entry. The outcome depends only on
// the entry's own spec and its own directory state.
func (s *Syncer) SyncOne(externalRoot, name string, dep manifest.Dependency) Result {
	if err := os.MkdirAll(externalRoot, 0755); err != nil {
		return Result{Name: name, Err: fmt.Errorf("creating %s: %w", externalRoot, err)}
	}

	dir := filepath.Join(externalRoot, name)

	switch s.State(externalRoot, name, dep) {
	case StateMissing:
		if err := s.Git.Clone(dep.Git, dir, dep.Ref()); err != nil {
			return Result{Name: name, Err: &CloneError{Name: name, Err: err}}
		}
		return Result{Name: name, Action: ActionCloned}

	case StateNeedsCheckout:
		// Make sure the declared ref is fetchable; a stale local clone
		// may not know a new tag yet. Best effort only.
		_ = s.Git.Fetch(dir)
		if err := s.Git.Checkout(dir, dep.Ref()); err != nil {
			return Result{Name: name, Err: &CheckoutError{Name: name, Ref: dep.Ref(), Err: err}}
		}
		return Result{Name: name, Action: ActionCheckedOut}

	default:
		return Result{Name: name, Action: ActionNone}
	}
}

// Sync reconciles every declared dependency. Entries are processed
// independently: one entry's failure is recorded in its Result and does not
// abort the remaining entries. Names are sorted only for stable output;
// outcomes commute.
func (s *Syncer) Sync(externalRoot string, deps map[string]manifest.Dependency) []Result {
	names := make([]string, 0, len(deps))
	for name := range deps {
		names = append(names, name)
	}
	sort.Strings(names)

	results := make([]Result, 0, len(names))
	for _, name := range names {
		results = append(results, s.SyncOne(externalRoot, name, deps[name]))
	}
	return results
}

// Add declares a new dependency in the manifest and immediately syncs that
// one entry. The dependency name is derived from the URL basename; duplicate
// names are rejected before anything is cloned.
func (s *Syncer) Add(root, url, tag, branch string) (string, Result, error) {
	name := NameFromURL(url)
	if name == "" {
		return "", Result{}, fmt.Errorf("cannot derive dependency name from %q", url)
	}

	m, err := manifest.Load(root)
	if err != nil {
		return "", Result{}, err
	}

	dep := manifest.Dependency{Git: url, Tag: tag, Branch: branch}
	if err := m.AddDependency(name, dep); err != nil {
		return "", Result{}, err
	}
	if err := manifest.Save(root, m); err != nil {
		return "", Result{}, err
	}

	res := s.SyncOne(filepath.Join(root, layout.ExternalDir), name, dep)
	return name, res, nil
}

// NameFromURL derives the dependency name from a repository URL:
// the basename with any .git suffix stripped.
func NameFromURL(url string) string {
	trimmed := strings.TrimSuffix(strings.TrimRight(url, "/"), ".git")
	name := path.Base(trimmed)
	if name == "." || name == "/" {
		return ""
	}
	return name
}
