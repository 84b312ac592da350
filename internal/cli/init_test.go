package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// execute runs the root command with args and returns combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestValidateProjectName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"plain name", "new_agentos", false},
		{"hyphenated", "my-agent", false},
		{"contains space", "bad name", true},
		{"contains colon", "bad:name", true},
		{"contains slash", "bad/name", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateProjectName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateProjectName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestInitWritesFilesIntoCwd(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	out, err := execute(t, "init", "--name", "walker")
	if err != nil {
		t.Fatalf("init error: %v", err)
	}
	if !strings.Contains(out, "current working directory") {
		t.Errorf("output = %q, want mention of current working directory", out)
	}

	for _, name := range []string{"environment.yaml", "project.yaml", "main.go", "go.mod"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("%s not written: %v", name, err)
		}
		if strings.HasSuffix(name, ".yaml") && !strings.Contains(string(data), "name: walker") {
			t.Errorf("%s missing substituted project name", name)
		}
	}
}

func TestInitMultipleDirs(t *testing.T) {
	t.Chdir(t.TempDir())

	if _, err := execute(t, "init", "left", "right", "--name", "walker"); err != nil {
		t.Fatalf("init error: %v", err)
	}

	for _, dir := range []string{"left", "right"} {
		if _, err := os.Stat(filepath.Join(dir, "project.yaml")); err != nil {
			t.Errorf("project.yaml missing in %s: %v", dir, err)
		}
	}
}

func TestInitBadNameWritesNothing(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	if _, err := execute(t, "init", "--name", "bad name"); err == nil {
		t.Fatal("init with a bad name should fail")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("init wrote %d entries despite the invalid name", len(entries))
	}
}

func TestRunTooManyArgs(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := execute(t, "run", "a", "b", "c")
	if err == nil {
		t.Fatal("run with three args should fail")
	}
	if !strings.Contains(err.Error(), "0, 1, or 2 arguments") {
		t.Errorf("error = %v, want argument-count usage error", err)
	}
}

func TestListShowsBuiltins(t *testing.T) {
	out, err := execute(t, "list")
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if !strings.Contains(out, "hallway.RandomAgent") {
		t.Errorf("list output missing builtin agent:\n%s", out)
	}
	if !strings.Contains(out, "hallway.Environment") {
		t.Errorf("list output missing builtin environment:\n%s", out)
	}
}

func TestValidateCommand(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid descriptor", func(t *testing.T) {
		path := filepath.Join(dir, "env.yaml")
		content := "name: walker\ntype: environment\n"
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("writing descriptor: %v", err)
		}

		out, err := execute(t, "validate", path)
		if err != nil {
			t.Fatalf("validate error: %v", err)
		}
		if !strings.Contains(out, "valid descriptor") {
			t.Errorf("output = %q, want valid confirmation", out)
		}
	})

	t.Run("invalid descriptor", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		if err := os.WriteFile(path, []byte("type: conda\n"), 0644); err != nil {
			t.Fatalf("writing descriptor: %v", err)
		}

		if _, err := execute(t, "validate", path); err == nil {
			t.Error("validate should fail for an invalid descriptor")
		}
	})
}

func TestVersionShort(t *testing.T) {
	buildVersion = "9.9.9"
	out, err := execute(t, "version", "--short")
	if err != nil {
		t.Fatalf("version error: %v", err)
	}
	if !strings.Contains(out, "9.9.9") {
		t.Errorf("output = %q, want version string", out)
	}
}
