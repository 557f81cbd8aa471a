package cli

import (
	"fmt"
	"os"

	"github.com/cforge-dev/cforge/internal/deps"
	"github.com/cforge-dev/cforge/internal/layout"
	"github.com/spf13/cobra"
)

var (
	addTag    string
	addBranch string
)

func init() {
	addCmd.Flags().StringVar(&addTag, "tag", "", "Check out this tag after cloning")
	addCmd.Flags().StringVar(&addBranch, "branch", "", "Check out this branch after cloning")
	addCmd.MarkFlagsMutuallyExclusive("tag", "branch")
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add <url>",
	Short: "Declare a git dependency and fetch it",
	Long: `Add a dependency to project.toml and immediately clone it into external/.
The dependency name is derived from the repository URL. Without --tag or
--branch the default branch tip is used.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}

		root, err := layout.FindRoot(cwd)
		if err != nil {
			return err
		}

		git := newGit()
		if err := git.Available(); err != nil {
			return err
		}

		name, res, err := deps.NewSyncer(git).Add(root, args[0], addTag, addBranch)
		if err != nil {
			return err
		}
		if res.Err != nil {
			return fmt.Errorf("dependency %s declared, but fetch failed: %w", name, res.Err)
		}

		fmt.Printf("Added %s (%s)\n", name, describeRef(addTag, addBranch))
		return nil
	},
}

func describeRef(tag, branch string) string {
	switch {
	case tag != "":
		return "tag " + tag
	case branch != "":
		return "branch " + branch
	default:
		return "default branch"
	}
}
