// Package agent defines the contracts between AgentOS and user code: the
// Agent and Environment interfaces, the factory registry that maps qualified
// names to implementations, and the Run loop that drives an agent against an
// environment at a fixed frequency.
//
// Implementations register themselves under dotted qualified names
// (e.g. "hallway.RandomAgent"), typically from an init function. The CLI's
// run command resolves names found in descriptor files or on the command
// line against this registry.
package agent
