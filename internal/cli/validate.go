package cli

import (
	"fmt"

	"github.com/agentos-project/agentos/internal/descriptor"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a descriptor file against the schema",
	Long:  `Validate a project, environment, or agent descriptor file against the embedded JSON schema.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		result, err := descriptor.ValidateFile(path)
		if err != nil {
			return fmt.Errorf("validating %s: %w", path, err)
		}

		if result.Valid {
			fmt.Fprintf(cmd.OutOrStdout(), "%s is a valid descriptor.\n", path)
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s has %d issue(s):\n", path, len(result.Issues))
		for _, issue := range result.Issues {
			if issue.Path != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s: %s\n", issue.Path, issue.Message)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", issue.Message)
			}
		}
		return fmt.Errorf("%s failed validation", path)
	},
}
