package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cforge-dev/cforge/internal/deps"
	"github.com/cforge-dev/cforge/internal/layout"
	"github.com/cforge-dev/cforge/internal/manifest"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(syncCmd)
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync dependencies from project.toml",
	Long: `Reconcile external/ against the dependencies declared in project.toml:
missing dependencies are cloned, existing ones are checked out at their
declared tag or branch. Entries fail independently; sync always processes
the full list.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}

		root, err := layout.FindRoot(cwd)
		if err != nil {
			return err
		}

		m, err := manifest.Load(root)
		if err != nil {
			return err
		}

		if len(m.Dependencies) == 0 {
			fmt.Println("No dependencies to sync")
			return nil
		}

		git := newGit()
		if err := git.Available(); err != nil {
			return err
		}

		results := deps.NewSyncer(git).Sync(filepath.Join(root, layout.ExternalDir), m.Dependencies)

		failed := 0
		for _, res := range results {
			if res.Err != nil {
				failed++
				fmt.Fprintf(os.Stderr, "  ✗ %s: %v\n", res.Name, res.Err)
				continue
			}
			fmt.Printf("  ✓ %s: %s\n", res.Name, res.Action)
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d dependencies failed to sync", failed, len(results))
		}

		fmt.Println("Dependency sync complete")
		return nil
	},
}
