// Package launch resolves the run command's positional arguments into a
// launch plan and dispatches it. With no arguments it looks for conventional
// files in the working directory (project.yaml, then main.go, then
// agent.yaml). A single argument may be a project directory or an
// agent-definition descriptor. Two arguments name the agent and the
// environment independently, each either a descriptor file or a qualified
// name registered with the agent package.
package launch
