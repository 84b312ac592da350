package agent

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"
)

// Built-in example implementations. They mirror the starter project that
// `agentos init` generates and give dotted-name resolution something to
// resolve out of the box:
//
//	agentos run hallway.RandomAgent hallway.Environment
func init() {
	RegisterEnvironment("hallway.Environment", NewHallwayEnvironment)
	RegisterAgent("hallway.RandomAgent", NewRandomAgent)
}

// HallwayEnvironment is a minimal 1-D hallway. The position starts at zero;
// each step moves left (negative) or right (positive) by the int action.
// The reward is the distance from the origin and the episode never ends on
// its own.
type HallwayEnvironment struct {
	pos int
}

// NewHallwayEnvironment returns a hallway environment at the origin.
func NewHallwayEnvironment() Environment {
	return &HallwayEnvironment{}
}

func (h *HallwayEnvironment) Reset() Observation {
	h.pos = 0
	return 0
}

func (h *HallwayEnvironment) Step(action Action) (Observation, float64, bool, map[string]any) {
	delta, _ := action.(int)
	h.pos += delta
	reward := float64(h.pos)
	if reward < 0 {
		reward = -reward
	}
	return h.pos, reward, false, map[string]any{}
}

// RandomAgent wanders the hallway, stepping left or right at random.
type RandomAgent struct {
	env       Environment
	stepCount int
	out       io.Writer
}

// NewRandomAgent returns a random-walk agent bound to env.
func NewRandomAgent(env Environment) Agent {
	return &RandomAgent{env: env, out: os.Stdout}
}

// SetOutput redirects the agent's progress lines.
func (a *RandomAgent) SetOutput(w io.Writer) { a.out = w }

func (a *RandomAgent) Advance() (bool, error) {
	fmt.Fprintf(a.out, "Taking step %d\n", a.stepCount)
	action := rand.IntN(2)*2 - 1 // -1 or +1
	obs, _, done, _ := a.env.Step(action)
	fmt.Fprintf(a.out, "Position in env is now: %v\n", obs)
	a.stepCount++
	return done, nil
}
