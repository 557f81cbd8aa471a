package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/cforge-dev/cforge/internal/config"
	"github.com/cforge-dev/cforge/internal/layout"
	"github.com/spf13/cobra"
)

var projectNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init [name]",
	Short: "Initialize a new C project",
	Long: `Initialize a new C project with the fixed directory layout.

With a name, creates ./<name> and populates it. Without a name, initializes
the current directory in place; it must be empty (set init.allow_hidden to
tolerate hidden entries such as .git).`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}

		var root, name string
		var opts layout.InitOptions

		if len(args) == 1 {
			name = args[0]
			if !projectNamePattern.MatchString(name) {
				return fmt.Errorf("invalid project name %q: use letters, digits, underscores, and hyphens", name)
			}
			root = filepath.Join(cwd, name)
			fmt.Printf("Creating project '%s' in '%s'...\n", name, name)
		} else {
			name = filepath.Base(cwd)
			root = cwd
			opts.InPlace = true
			opts.AllowHidden = config.GetBool(config.KeyInitAllowHidden)
			fmt.Printf("Initializing project '%s'...\n", name)
		}

		if err := layout.Initialize(root, name, opts); err != nil {
			return err
		}

		// Best-effort repository init; a missing git toolchain only warns.
		git := newGit()
		if err := git.Available(); err != nil {
			fmt.Fprintln(os.Stderr, "Warning: git not found, skipping git init")
		} else if err := git.Init(root); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: git init failed: %v\n", err)
		} else {
			fmt.Println("Initialized git repository")
		}

		fmt.Printf("Project '%s' initialized successfully.\n", name)
		return nil
	},
}
