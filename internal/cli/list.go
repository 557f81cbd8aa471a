package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/cforge-dev/cforge/internal/deps"
	"github.com/cforge-dev/cforge/internal/layout"
	"github.com/cforge-dev/cforge/internal/manifest"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List declared dependencies and their sync state",
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
			fmt.Println("No dependencies declared")
			return nil
		}

		names := make([]string, 0, len(m.Dependencies))
		for name := range m.Dependencies {
			names = append(names, name)
		}
		sort.Strings(names)

		syncer := deps.NewSyncer(newGit())
		externalRoot := filepath.Join(root, layout.ExternalDir)

		for _, name := range names {
			dep := m.Dependencies[name]
			ref := describeRef(dep.Tag, dep.Branch)
			state := syncer.State(externalRoot, name, dep)
			fmt.Printf("%-24s %-20s %s\n", name, ref, state)
		}
		return nil
	},
}
