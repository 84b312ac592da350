// Package descriptor parses and validates the YAML files that describe an
// AgentOS project: the project-run descriptor (project.yaml), the dependency
// descriptor (environment.yaml), and the agent-definition descriptor
// (agent.yaml). Files carry a "type" discriminator field; ParseFile detects
// it and returns the matching typed struct. Validation is backed by an
// embedded JSON Schema.
package descriptor
