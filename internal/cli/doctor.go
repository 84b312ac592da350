package cli

import (
	"fmt"
	"os/exec"

	"github.com/agentos-project/agentos/internal/config"
	"github.com/agentos-project/agentos/internal/descriptor"
	"github.com/spf13/cobra"
)

var checkDescriptor string

func init() {
	doctorCmd.Flags().StringVar(&checkDescriptor, "check-descriptor", "", "Validate a descriptor file at the given path")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the agentos installation",
	Long:  `Run diagnostic checks on the environment: the Go toolchain the project runner needs, the config directory, and optionally a descriptor file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		failed := false

		// The project runner launches entry points like `go run main.go`.
		if path, err := exec.LookPath("go"); err == nil {
			fmt.Fprintf(out, "ok    go toolchain found at %s\n", path)
		} else {
			failed = true
			fmt.Fprintln(out, "FAIL  go toolchain not found on PATH; 'agentos run' cannot launch projects")
		}

		if err := config.EnsureDir(); err == nil {
			fmt.Fprintf(out, "ok    config directory %s is writable\n", config.Dir())
		} else {
			failed = true
			fmt.Fprintf(out, "FAIL  config directory: %v\n", err)
		}

		if checkDescriptor != "" {
			result, err := descriptor.ValidateFile(checkDescriptor)
			switch {
			case err != nil:
				failed = true
				fmt.Fprintf(out, "FAIL  %s: %v\n", checkDescriptor, err)
			case !result.Valid:
				failed = true
				fmt.Fprintf(out, "FAIL  %s has %d validation issue(s)\n", checkDescriptor, len(result.Issues))
				for _, issue := range result.Issues {
					fmt.Fprintf(out, "      %s: %s\n", issue.Path, issue.Message)
				}
			default:
				fmt.Fprintf(out, "ok    %s is a valid descriptor\n", checkDescriptor)
			}
		}

		if failed {
			return fmt.Errorf("one or more checks failed")
		}
		return nil
	},
}
