package cli

import (
	"fmt"
	"os"

	"github.com/cforge-dev/cforge/internal/cmakefile"
	"github.com/cforge-dev/cforge/internal/layout"
	"github.com/cforge-dev/cforge/internal/module"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new module (generates .c and .h files)",
	Long: `Create a module: a matched src/<name>.c and include/<name>.h pair,
registered in CMakeLists.txt. The operation is atomic; a failure leaves the
project untouched.`,
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

		m, err := module.Create(root, args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Created %s and %s\n", m.ImplPath, m.HeaderPath)
		fmt.Printf("Updated %s\n", cmakefile.FileName)
		return nil
	},
}
