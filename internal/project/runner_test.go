package project

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeDescriptor(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, DescriptorFile), []byte(content), 0644); err != nil {
		t.Fatalf("writing descriptor: %v", err)
	}
}

func TestRunDescriptorEntryPoint(t *testing.T) {
	dir := t.TempDir()
	writeDescriptor(t, dir, `name: demo
type: project
entry_points:
  main:
    command: echo hello from demo
`)

	var stdout, stderr strings.Builder
	out, err := Run(context.Background(), dir, Options{Stdout: &stdout, Stderr: &stderr})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if out.ExitCode != 0 {
		t.Errorf("ExitCode = %d, want 0", out.ExitCode)
	}
	if !strings.Contains(out.Stdout, "hello from demo") {
		t.Errorf("Stdout = %q, want it to contain %q", out.Stdout, "hello from demo")
	}
	if !strings.Contains(stdout.String(), "hello from demo") {
		t.Error("streamed stdout missing entry point output")
	}
}

func TestRunNamedEntryPoint(t *testing.T) {
	dir := t.TempDir()
	writeDescriptor(t, dir, `name: demo
type: project
entry_points:
  main:
    command: echo main
  train:
    command: echo training
`)

	var stdout strings.Builder
	out, err := Run(context.Background(), dir, Options{EntryPoint: "train", Stdout: &stdout, Stderr: &strings.Builder{}})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if !strings.Contains(out.Stdout, "training") {
		t.Errorf("Stdout = %q, want %q", out.Stdout, "training")
	}
}

func TestRunPropagatesExitCode(t *testing.T) {
	dir := t.TempDir()
	writeDescriptor(t, dir, `name: demo
type: project
entry_points:
  main:
    command: false
`)

	out, err := Run(context.Background(), dir, Options{Stdout: &strings.Builder{}, Stderr: &strings.Builder{}})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if out.ExitCode == 0 {
		t.Error("ExitCode = 0, want non-zero")
	}
}

func TestRunMissingDescriptor(t *testing.T) {
	dir := t.TempDir()
	if _, err := Run(context.Background(), dir, Options{}); err == nil {
		t.Error("Run without a descriptor should error")
	}
}

func TestRunUnknownEntryPoint(t *testing.T) {
	dir := t.TempDir()
	writeDescriptor(t, dir, `name: demo
type: project
entry_points:
  main:
    command: echo main
`)

	_, err := Run(context.Background(), dir, Options{EntryPoint: "deploy"})
	if err == nil || !strings.Contains(err.Error(), "deploy") {
		t.Errorf("error = %v, want it to name the missing entry point", err)
	}
}

func TestBuildCommand(t *testing.T) {
	t.Run("entry file bypasses descriptor", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "main.go"), []byte("package main\n"), 0644); err != nil {
			t.Fatalf("seeding main.go: %v", err)
		}

		argv, name, err := buildCommand(dir, Options{EntryFile: "main.go"})
		if err != nil {
			t.Fatalf("buildCommand error: %v", err)
		}
		want := []string{"go", "run", "main.go"}
		if len(argv) != len(want) {
			t.Fatalf("argv = %v, want %v", argv, want)
		}
		for i := range want {
			if argv[i] != want[i] {
				t.Errorf("argv[%d] = %q, want %q", i, argv[i], want[i])
			}
		}
		if name != filepath.Base(dir) {
			t.Errorf("name = %q, want directory base %q", name, filepath.Base(dir))
		}
	})

	t.Run("missing entry file", func(t *testing.T) {
		dir := t.TempDir()
		if _, _, err := buildCommand(dir, Options{EntryFile: "main.go"}); err == nil {
			t.Error("expected error for missing entry file")
		}
	})

	t.Run("empty command", func(t *testing.T) {
		dir := t.TempDir()
		writeDescriptor(t, dir, "name: demo\ntype: project\nentry_points:\n  main:\n    command: \"\"\n")
		if _, _, err := buildCommand(dir, Options{}); err == nil {
			t.Error("expected error for empty command")
		}
	})
}

func TestBuildEnvAddsModFlag(t *testing.T) {
	t.Setenv("GOFLAGS", "-trimpath")

	env := buildEnv("/tmp/demo", "demo")
	var goflags string
	for _, e := range env {
		if strings.HasPrefix(e, "GOFLAGS=") {
			goflags = strings.TrimPrefix(e, "GOFLAGS=")
		}
	}
	if !strings.Contains(goflags, "-mod=mod") {
		t.Errorf("GOFLAGS = %q, want -mod=mod for go run entry points", goflags)
	}
	if !strings.Contains(goflags, "-trimpath") {
		t.Errorf("GOFLAGS = %q, existing flags should be preserved", goflags)
	}
}

func TestSetEnvReplacesExisting(t *testing.T) {
	env := []string{"A=1", "B=2"}
	env = setEnv(env, "A", "9")
	if len(env) != 2 || env[0] != "A=9" {
		t.Errorf("setEnv replace failed: %v", env)
	}
	env = setEnv(env, "C", "3")
	if len(env) != 3 || env[2] != "C=3" {
		t.Errorf("setEnv append failed: %v", env)
	}
}
