package project

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/agentos-project/agentos/internal/branding"
	"github.com/agentos-project/agentos/internal/descriptor"
)

// DescriptorFile is the conventional name of the project-run descriptor.
const DescriptorFile = "project.yaml"

// DefaultEntryPoint is the entry point used when none is named.
const DefaultEntryPoint = "main"

// Options controls how a project is launched.
type Options struct {
	// EntryPoint names an entry point in the project descriptor.
	// Empty means DefaultEntryPoint.
	EntryPoint string

	// EntryFile, when set, bypasses the descriptor entirely: the file is
	// executed with `go run <file>` from the project directory.
	EntryFile string

	// Stdout and Stderr can be set for testing; defaults to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

// Output captures the result of a project execution.
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Run launches the project in dir and blocks until it exits. The subprocess
// inherits the current environment plus the project directory and name.
// Entry point commands are split on whitespace; shell quoting is not
// interpreted.
func Run(ctx context.Context, dir string, opts Options) (*Output, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving project directory: %w", err)
	}

	argv, name, err := buildCommand(absDir, opts)
	if err != nil {
		return nil, err
	}

	bin, err := exec.LookPath(argv[0])
	if err != nil {
		return nil, fmt.Errorf("entry point command %q not found: %w", argv[0], err)
	}

	cmd := exec.CommandContext(ctx, bin, argv[1:]...)
	cmd.Dir = absDir
	cmd.Env = buildEnv(absDir, name)

	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = io.MultiWriter(stdout, &stdoutBuf)
	cmd.Stderr = io.MultiWriter(stderr, &stderrBuf)

	err = cmd.Run()

	output := &Output{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			output.ExitCode = exitErr.ExitCode()
			return output, nil
		}
		return output, fmt.Errorf("executing project entry point: %w", err)
	}

	output.ExitCode = 0
	return output, nil
}

// buildCommand resolves the argv to execute and the project name, either from
// an explicit entry file or from the project descriptor.
func buildCommand(absDir string, opts Options) ([]string, string, error) {
	if opts.EntryFile != "" {
		entry := filepath.Join(absDir, opts.EntryFile)
		if _, err := os.Stat(entry); err != nil {
			return nil, "", fmt.Errorf("entry file not found at %s: %w", entry, err)
		}
		return []string{"go", "run", opts.EntryFile}, filepath.Base(absDir), nil
	}

	descPath := filepath.Join(absDir, DescriptorFile)
	d, err := descriptor.ParseProject(descPath)
	if err != nil {
		return nil, "", fmt.Errorf("loading project descriptor: %w", err)
	}

	entryName := opts.EntryPoint
	if entryName == "" {
		entryName = DefaultEntryPoint
	}

	ep, ok := d.EntryPoints[entryName]
	if !ok {
		return nil, "", fmt.Errorf("project %q has no entry point %q", d.Name, entryName)
	}

	argv := strings.Fields(ep.Command)
	if len(argv) == 0 {
		return nil, "", fmt.Errorf("entry point %q of project %q has an empty command", entryName, d.Name)
	}

	return argv, d.Name, nil
}

// buildEnv constructs the subprocess environment. Generated projects ship a
// go.mod but no go.sum, so -mod=mod lets `go run` entry points record missing
// module requirements on first launch instead of refusing to build.
func buildEnv(absDir, name string) []string {
	env := os.Environ()
	env = setEnv(env, branding.EnvVar("PROJECT_DIR"), absDir)
	env = setEnv(env, branding.EnvVar("PROJECT_NAME"), name)
	env = setEnv(env, "GOFLAGS", strings.TrimSpace(os.Getenv("GOFLAGS")+" -mod=mod"))
	return env
}

// setEnv sets or replaces an environment variable in the env slice.
func setEnv(env []string, key, value string) []string {
	prefix := key + "="
	for i, e := range env {
		if strings.HasPrefix(e, prefix) {
			env[i] = prefix + value
			return env
		}
	}
	return append(env, prefix+value)
}
