package cli

import (
	"fmt"
	"os"

	"github.com/cforge-dev/cforge/internal/layout"
	"github.com/cforge-dev/cforge/internal/manifest"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the project layout and manifest",
	Long: `Check that the directory layout is complete, that project.toml conforms
to the manifest schema, and that the project version parses as semver.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}

		root, err := layout.FindRoot(cwd)
		if err != nil {
			return err
		}

		if err := layout.Validate(root); err != nil {
			return err
		}

		data, err := os.ReadFile(manifest.Path(root))
		if err != nil {
			return fmt.Errorf("reading manifest: %w", err)
		}

		result, err := manifest.Validate(data)
		if err != nil {
			return err
		}
		if !result.Valid {
			for _, issue := range result.Issues {
				fmt.Fprintf(os.Stderr, "  %s: %s\n", issue.Path, issue.Message)
			}
			return fmt.Errorf("%s failed schema validation (%d issues)", manifest.FileName, len(result.Issues))
		}

		m, err := manifest.Load(root)
		if err != nil {
			return err
		}
		if err := manifest.CheckVersion(m.Project.Version); err != nil {
			return err
		}

		fmt.Println("Project layout and manifest OK")
		return nil
	},
}
