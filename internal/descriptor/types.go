package descriptor

import (
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Base contains fields shared by all descriptor types.
type Base struct {
	Name        string `yaml:"name" json:"name"`
	Type        string `yaml:"type" json:"type"`
	Version     string `yaml:"version,omitempty" json:"version,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// SemVer parses the descriptor's version field, tolerating a leading "v".
// Descriptors without a version return (nil, nil).
func (b *Base) SemVer() (*semver.Version, error) {
	if b.Version == "" {
		return nil, nil
	}
	v, err := semver.NewVersion(b.Version)
	if err != nil {
		return nil, fmt.Errorf("parsing version %q: %w", b.Version, err)
	}
	return v, nil
}

// Project is the project-run descriptor (project.yaml). It declares how to
// execute a packaged agent project: which dependency descriptor it uses and
// which entry point commands exist.
type Project struct {
	Base        `yaml:",inline"`
	Environment string                `yaml:"environment,omitempty" json:"environment,omitempty"`
	EntryPoints map[string]EntryPoint `yaml:"entry_points" json:"entry_points"`
}

// EntryPoint is a named command a project can be launched with.
type EntryPoint struct {
	Command string `yaml:"command" json:"command"`
}

// Environment is the dependency descriptor (environment.yaml): a name plus
// the module dependencies a project needs.
type Environment struct {
	Base         `yaml:",inline"`
	Dependencies []string `yaml:"dependencies,omitempty" json:"dependencies,omitempty"`
}

// Agent is the agent-definition descriptor (agent.yaml). It lists components
// by kind; each component names a registered implementation.
type Agent struct {
	Base       `yaml:",inline"`
	Components []Component `yaml:"components" json:"components"`
}

// Component binds a descriptor-local name to a registered implementation.
type Component struct {
	Name           string `yaml:"name" json:"name"`
	Kind           string `yaml:"kind" json:"kind"`
	Implementation string `yaml:"implementation" json:"implementation"`
}

// Component kinds.
const (
	KindAgent       = "agent"
	KindEnvironment = "environment"
)

// Descriptor type discriminator values.
const (
	TypeProject     = "project"
	TypeEnvironment = "environment"
	TypeAgent       = "agent"
)

// ValidTypes contains all valid descriptor type values.
var ValidTypes = []string{
	TypeProject,
	TypeEnvironment,
	TypeAgent,
}

// ErrNoComponent is returned by FirstComponent when a descriptor lacks any
// component of the requested kind.
var ErrNoComponent = errors.New("no component of requested kind")

// FirstComponent returns the first component of the given kind, preserving
// declaration order.
func (a *Agent) FirstComponent(kind string) (*Component, error) {
	for i := range a.Components {
		if a.Components[i].Kind == kind {
			return &a.Components[i], nil
		}
	}
	return nil, fmt.Errorf("%w: descriptor %q defines no %s component", ErrNoComponent, a.Name, kind)
}
