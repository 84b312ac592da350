package cli

import (
	"fmt"

	"github.com/agentos-project/agentos/agent"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered agent and environment implementations",
	Long: `List the qualified names available to 'agentos run' and to descriptor
component references. Implementations register themselves with the agent
registry, typically from an init function.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, "Agents:")
		for _, name := range agent.Agents() {
			fmt.Fprintf(out, "  %s\n", name)
		}

		fmt.Fprintln(out, "Environments:")
		for _, name := range agent.Environments() {
			fmt.Fprintf(out, "  %s\n", name)
		}
		return nil
	},
}
