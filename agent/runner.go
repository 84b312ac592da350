package agent

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
)

// DefaultHz is the advance frequency used when no option overrides it.
const DefaultHz = 40

// runConfig collects the knobs applied by RunOption values.
type runConfig struct {
	ctx      context.Context
	hz       int
	maxIters int
	out      io.Writer
}

// RunOption adjusts the behavior of Run.
type RunOption func(*runConfig)

// WithHz sets the advance frequency in calls per second. A value of zero or
// less disables throttling and advances the agent as fast as possible.
func WithHz(hz int) RunOption {
	return func(c *runConfig) { c.hz = hz }
}

// WithMaxIters bounds the number of Advance calls. Zero or less means
// unbounded: the run ends only when the agent reports done, errors, or the
// context is canceled.
func WithMaxIters(n int) RunOption {
	return func(c *runConfig) { c.maxIters = n }
}

// WithContext attaches a context; cancellation stops the run between steps.
func WithContext(ctx context.Context) RunOption {
	return func(c *runConfig) { c.ctx = ctx }
}

// WithOutput redirects the run's progress lines (default os.Stdout).
func WithOutput(w io.Writer) RunOption {
	return func(c *runConfig) { c.out = w }
}

// Run constructs an environment and an agent from the given factories and
// drives the agent's Advance loop. The environment is reset once before the
// agent is constructed. Each run is tagged with a UUID for log correlation.
func Run(agentFactory AgentFactory, envFactory EnvironmentFactory, opts ...RunOption) error {
	if agentFactory == nil {
		return fmt.Errorf("run requires an agent factory")
	}
	if envFactory == nil {
		return fmt.Errorf("run requires an environment factory")
	}

	cfg := runConfig{
		ctx: context.Background(),
		hz:  DefaultHz,
		out: os.Stdout,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	env := envFactory()
	env.Reset()
	ag := agentFactory(env)
	if s, ok := ag.(OutputSetter); ok {
		s.SetOutput(cfg.out)
	}

	runID := uuid.NewString()
	fmt.Fprintf(cfg.out, "Starting agent run %s (hz=%d, max_iters=%s)\n", runID, cfg.hz, formatIters(cfg.maxIters))

	var tick <-chan time.Time
	if cfg.hz > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(cfg.hz))
		defer ticker.Stop()
		tick = ticker.C
	}

	iters := 0
	for cfg.maxIters <= 0 || iters < cfg.maxIters {
		if tick != nil {
			select {
			case <-cfg.ctx.Done():
				return cfg.ctx.Err()
			case <-tick:
			}
		} else if err := cfg.ctx.Err(); err != nil {
			return err
		}

		done, err := ag.Advance()
		if err != nil {
			return fmt.Errorf("advancing agent (step %d): %w", iters, err)
		}
		iters++
		if done {
			break
		}
	}

	fmt.Fprintf(cfg.out, "Agent run %s finished after %d steps.\n", runID, iters)
	return nil
}

func formatIters(n int) string {
	if n <= 0 {
		return "unbounded"
	}
	return fmt.Sprintf("%d", n)
}
