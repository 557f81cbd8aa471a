package cli

import (
	"fmt"
	"os"

	"github.com/cforge-dev/cforge/internal/branding"
	"github.com/cforge-dev/cforge/internal/config"
	"github.com/cforge-dev/cforge/internal/deps"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds C projects in a fixed layout, keeps the generated
CMakeLists.txt in sync as modules are added, and manages git dependencies
declared in project.toml.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
}

// Execute runs the root command with build info injected via ldflags.
// Errors are printed once here; commands themselves stay quiet on failure.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

// newGit returns the exec-backed git client, honoring the git.bin config
// override.
func newGit() *deps.ExecGit {
	return deps.NewExecGit(config.Get(config.KeyGitBin))
}
