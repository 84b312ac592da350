// Package scaffold generates agent project boilerplate from embedded
// templates. It powers the "agentos init" command, producing the dependency
// descriptor (environment.yaml), the project-run descriptor (project.yaml),
// and a runnable starter program (main.go), each stamped with a generation
// timestamp and the project name.
package scaffold
