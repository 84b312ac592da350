package cli

import (
	"fmt"
	"strings"

	"github.com/agentos-project/agentos/internal/scaffold"
	"github.com/spf13/cobra"
)

var initName string

func init() {
	initCmd.Flags().StringVarP(&initName, "name", "n", "new_agentos",
		"Name of the agent project. Also stamped into the generated descriptors. May not contain ' ', ':', or '/'.")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init [DIR_NAMES...]",
	Short: "Initialize current (or specified) directories as agent projects",
	Long: `Initialize directories as agent projects.

Creates a starter main.go, a go.mod requiring the agent library, a dependency
descriptor (environment.yaml), and a project-run descriptor (project.yaml) in
every directory given, or in the current directory if none are. Directories
are created if they do not exist.

Set AGENTOS_MODULE_DIR to a local checkout of the agent library to add a
replace directive to the generated go.mod, for use before a release of the
library is published.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateProjectName(initName); err != nil {
			return err
		}

		dirs := args
		if len(dirs) == 0 {
			dirs = []string{"."}
		}

		data := scaffold.NewData(initName)
		for _, dir := range dirs {
			result, err := scaffold.Generate(dir, data)
			if err != nil {
				return fmt.Errorf("initializing %s: %w", dir, err)
			}
			for _, w := range result.Warnings {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}

			target := dir
			if dir == "." {
				target = "current working directory"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Finished initializing agent project %q in %s.\n", initName, target)
		}
		return nil
	},
}

// validateProjectName rejects names the descriptors and generated files
// cannot carry.
func validateProjectName(name string) error {
	if name == "" || strings.ContainsAny(name, " :/") {
		return fmt.Errorf("invalid project name %q: may not be empty or contain ' ', ':', or '/'", name)
	}
	return nil
}
