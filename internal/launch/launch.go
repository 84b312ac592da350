package launch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/agentos-project/agentos/agent"
	"github.com/agentos-project/agentos/internal/descriptor"
	"github.com/agentos-project/agentos/internal/project"
)

// Conventional file names looked up in a project directory, in priority order
// after project.DescriptorFile.
const (
	MainFile  = "main.go"
	AgentFile = "agent.yaml"
)

// ErrUsage marks user-input errors: wrong argument count, arguments that are
// neither files nor directories, or a directory missing all conventional
// files. The CLI surfaces these as usage errors.
var ErrUsage = errors.New("usage error")

// Plan is a resolved launch. Exactly one of Project and Agent is set.
type Plan struct {
	Project *ProjectPlan
	Agent   *AgentPlan
}

// ProjectPlan launches a directory through the project runner.
type ProjectPlan struct {
	Dir string
	// EntryFile is set when the directory has no project descriptor and a
	// bare entry file is used instead.
	EntryFile string
}

// AgentPlan launches resolved agent and environment factories through the
// agent run loop.
type AgentPlan struct {
	AgentName       string
	EnvironmentName string
	AgentFactory    agent.AgentFactory
	EnvFactory      agent.EnvironmentFactory
}

// Resolve turns the run command's positional arguments into a Plan.
func Resolve(args []string, workdir string) (*Plan, error) {
	switch len(args) {
	case 0:
		return resolveDir(workdir)
	case 1:
		return resolveSingle(args[0])
	case 2:
		return resolvePair(args[0], args[1])
	default:
		return nil, fmt.Errorf("%w: run takes 0, 1, or 2 arguments, got %d", ErrUsage, len(args))
	}
}

// resolveDir implements the zero-argument branch rooted at dir: the project
// descriptor wins, then a bare entry file, then an agent-definition
// descriptor.
func resolveDir(dir string) (*Plan, error) {
	if isFile(filepath.Join(dir, project.DescriptorFile)) {
		return &Plan{Project: &ProjectPlan{Dir: dir}}, nil
	}
	if isFile(filepath.Join(dir, MainFile)) {
		return &Plan{Project: &ProjectPlan{Dir: dir, EntryFile: MainFile}}, nil
	}
	if isFile(filepath.Join(dir, AgentFile)) {
		return resolveAgentDescriptor(filepath.Join(dir, AgentFile))
	}
	return nil, fmt.Errorf("%w: no run arguments were given, so one of %s, %s, or %s must exist in %s",
		ErrUsage, project.DescriptorFile, MainFile, AgentFile, dir)
}

// resolveSingle handles one argument: a project directory or an
// agent-definition descriptor file.
func resolveSingle(arg string) (*Plan, error) {
	info, err := os.Stat(arg)
	if err != nil {
		return nil, fmt.Errorf("%w: 1 argument was passed to run and %q is neither a directory nor a descriptor file", ErrUsage, arg)
	}
	if info.IsDir() {
		return resolveDir(arg)
	}
	return resolveAgentDescriptor(arg)
}

// resolvePair handles two arguments: the first names the agent, the second
// the environment. Each is independently a descriptor file or a registered
// qualified name.
func resolvePair(agentArg, envArg string) (*Plan, error) {
	agentName, err := resolveComponentName(agentArg, descriptor.KindAgent)
	if err != nil {
		return nil, err
	}
	envName, err := resolveComponentName(envArg, descriptor.KindEnvironment)
	if err != nil {
		return nil, err
	}
	return planFromNames(agentName, envName)
}

// resolveAgentDescriptor builds an agent plan from an agent-definition
// descriptor, which must define at least one agent component and one
// environment component. The first of each kind wins.
func resolveAgentDescriptor(path string) (*Plan, error) {
	d, err := parseAgentFile(path)
	if err != nil {
		return nil, err
	}

	agentComp, err := d.FirstComponent(descriptor.KindAgent)
	if err != nil {
		return nil, fmt.Errorf("%s must define at least one agent component and one environment component: %w", path, err)
	}
	envComp, err := d.FirstComponent(descriptor.KindEnvironment)
	if err != nil {
		return nil, fmt.Errorf("%s must define at least one agent component and one environment component: %w", path, err)
	}

	return planFromNames(agentComp.Implementation, envComp.Implementation)
}

// resolveComponentName resolves one side of a two-argument run to a
// registered implementation name.
func resolveComponentName(arg, kind string) (string, error) {
	if isFile(arg) {
		d, err := parseAgentFile(arg)
		if err != nil {
			return "", err
		}
		comp, err := d.FirstComponent(kind)
		if err != nil {
			return "", fmt.Errorf("%s must define a %s component: %w", arg, kind, err)
		}
		return comp.Implementation, nil
	}
	// Not a file: treat as a qualified name registered with the agent package.
	return arg, nil
}

// planFromNames looks both implementations up in the registry.
func planFromNames(agentName, envName string) (*Plan, error) {
	agentFactory, err := agent.LookupAgent(agentName)
	if err != nil {
		return nil, err
	}
	envFactory, err := agent.LookupEnvironment(envName)
	if err != nil {
		return nil, err
	}
	return &Plan{Agent: &AgentPlan{
		AgentName:       agentName,
		EnvironmentName: envName,
		AgentFactory:    agentFactory,
		EnvFactory:      envFactory,
	}}, nil
}

// parseAgentFile parses path and requires it to be an agent-definition
// descriptor.
func parseAgentFile(path string) (*descriptor.Agent, error) {
	parsed, err := descriptor.ParseFile(path)
	if err != nil {
		return nil, err
	}
	d, ok := parsed.(*descriptor.Agent)
	if !ok {
		return nil, fmt.Errorf("%s is not an agent-definition descriptor (got type %T)", path, parsed)
	}
	return d, nil
}

// Options controls dispatch of a resolved plan.
type Options struct {
	Hz       int
	MaxIters int
	Out      io.Writer
}

// Launch dispatches a resolved plan: project plans go to the project runner,
// agent plans to the agent run loop.
func Launch(ctx context.Context, plan *Plan, opts Options) error {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	if plan.Project != nil {
		p := plan.Project
		if p.EntryFile != "" {
			fmt.Fprintf(out, "Running agent project in %s via project runner with entry point %s.\n", p.Dir, p.EntryFile)
		} else {
			fmt.Fprintf(out, "Running agent project in %s via project runner.\n", p.Dir)
		}
		output, err := project.Run(ctx, p.Dir, project.Options{EntryFile: p.EntryFile, Stdout: out})
		if err != nil {
			return err
		}
		if output.ExitCode != 0 {
			return fmt.Errorf("project in %s exited with code %d", p.Dir, output.ExitCode)
		}
		return nil
	}

	a := plan.Agent
	fmt.Fprintf(out, "Running agent %s against environment %s.\n", a.AgentName, a.EnvironmentName)
	return agent.Run(a.AgentFactory, a.EnvFactory,
		agent.WithContext(ctx),
		agent.WithHz(opts.Hz),
		agent.WithMaxIters(opts.MaxIters),
		agent.WithOutput(out),
	)
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
