package agent

import "io"

// Observation is an environment's view of its state after a reset or step.
type Observation = any

// Action is a decision emitted by an agent and consumed by an environment.
type Action = any

// Environment exposes gym-style reset/step semantics. Step returns the next
// observation, the reward for the action, whether the episode is done, and
// an info map for implementation-specific extras.
type Environment interface {
	Reset() Observation
	Step(action Action) (Observation, float64, bool, map[string]any)
}

// Agent is a unit implementing a decision loop against an environment.
// Advance performs one decision step and reports whether the agent considers
// the run complete.
type Agent interface {
	Advance() (done bool, err error)
}

// OutputSetter is implemented by agents that write progress output. Run
// redirects implementers to its own writer, so WithOutput captures agent
// prints along with the run loop's.
type OutputSetter interface {
	SetOutput(w io.Writer)
}

// EnvironmentFactory constructs a fresh environment instance.
type EnvironmentFactory func() Environment

// AgentFactory constructs an agent bound to the environment it will act in.
type AgentFactory func(env Environment) Agent
