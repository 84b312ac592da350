package agent

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// The registry maps qualified names to implementation factories. It replaces
// dynamic class scanning: descriptor files and command-line arguments refer
// to implementations by the name they were registered under.
var (
	registryMu   sync.RWMutex
	agents       = make(map[string]AgentFactory)
	environments = make(map[string]EnvironmentFactory)
)

// RegisterAgent records an agent factory under a qualified name of the form
// "<package>.<Type>". It panics on a malformed name, a nil factory, or a
// duplicate registration: these are programmer errors at init time.
func RegisterAgent(name string, factory AgentFactory) {
	if err := validateQualifiedName(name); err != nil {
		panic("agent: RegisterAgent: " + err.Error())
	}
	if factory == nil {
		panic("agent: RegisterAgent: nil factory for " + name)
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := agents[name]; dup {
		panic("agent: RegisterAgent: duplicate registration of " + name)
	}
	agents[name] = factory
}

// RegisterEnvironment records an environment factory under a qualified name.
// Same rules as RegisterAgent.
func RegisterEnvironment(name string, factory EnvironmentFactory) {
	if err := validateQualifiedName(name); err != nil {
		panic("agent: RegisterEnvironment: " + err.Error())
	}
	if factory == nil {
		panic("agent: RegisterEnvironment: nil factory for " + name)
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := environments[name]; dup {
		panic("agent: RegisterEnvironment: duplicate registration of " + name)
	}
	environments[name] = factory
}

// LookupAgent returns the agent factory registered under name.
func LookupAgent(name string) (AgentFactory, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	f, ok := agents[name]
	if !ok {
		return nil, fmt.Errorf("no agent registered under %q (known agents: %s)", name, joinOrNone(agentNamesLocked()))
	}
	return f, nil
}

// LookupEnvironment returns the environment factory registered under name.
func LookupEnvironment(name string) (EnvironmentFactory, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	f, ok := environments[name]
	if !ok {
		return nil, fmt.Errorf("no environment registered under %q (known environments: %s)", name, joinOrNone(environmentNamesLocked()))
	}
	return f, nil
}

// Agents returns the sorted qualified names of all registered agents.
func Agents() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return agentNamesLocked()
}

// Environments returns the sorted qualified names of all registered environments.
func Environments() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return environmentNamesLocked()
}

func agentNamesLocked() []string {
	names := make([]string, 0, len(agents))
	for name := range agents {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func environmentNamesLocked() []string {
	names := make([]string, 0, len(environments))
	for name := range environments {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// validateQualifiedName checks the "<package>.<Type>" form used by the
// registry and by dotted command-line arguments.
func validateQualifiedName(name string) error {
	dot := strings.LastIndex(name, ".")
	if dot <= 0 || dot == len(name)-1 {
		return fmt.Errorf("invalid qualified name %q: expected <package>.<Type>", name)
	}
	return nil
}

func joinOrNone(names []string) string {
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ", ")
}
