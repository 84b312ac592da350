package cli

import (
	"fmt"
	"os"

	"github.com/agentos-project/agentos/internal/config"
	"github.com/agentos-project/agentos/internal/launch"
	"github.com/spf13/cobra"
)

var (
	runHz       int
	runMaxIters int
)

func init() {
	runCmd.Flags().IntVar(&runHz, "hz", config.DefaultHz, "Frequency of agent advance calls per second")
	runCmd.Flags().IntVarP(&runMaxIters, "max-iters", "m", config.DefaultMaxIters, "Stop running the agent after this many advance calls (0 = unbounded)")
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run [RUN_ARGS...]",
	Short: "Run an agent against an environment",
	Long: `Run an agent against an environment.

RUN_ARGS are 0, 1, or 2 space-delimited arguments, parsed as follows:

If no args are given, look for files defining an agent in the working directory:
  - project.yaml: run the directory as a project via its main entry point.
  - else main.go: run the directory as a project with main.go as entry point.
  - else agent.yaml: resolve the first agent component and first environment
    component it defines and run them through the agent loop.

If 1 arg is given:
  - a directory is treated as a project directory, equivalent to running
    'agentos run' without arguments inside it.
  - a file must be an agent-definition descriptor declaring at least one agent
    component and one environment component; the first of each kind is used.

If 2 args are given, the first names the agent and the second the environment.
Each is independently either a descriptor file (first component of the
matching kind wins) or a qualified name registered with the agent registry,
e.g. 'hallway.RandomAgent'.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()

		// Explicit flags beat config; config beats built-in defaults.
		hz := runHz
		if !cmd.Flags().Changed("hz") {
			hz = config.GetInt(config.KeyRunHz)
		}
		maxIters := runMaxIters
		if !cmd.Flags().Changed("max-iters") {
			maxIters = config.GetInt(config.KeyRunMaxIters)
		}

		workdir, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}

		plan, err := launch.Resolve(args, workdir)
		if err != nil {
			return err
		}

		return launch.Launch(cmd.Context(), plan, launch.Options{
			Hz:       hz,
			MaxIters: maxIters,
			Out:      cmd.OutOrStdout(),
		})
	},
}
