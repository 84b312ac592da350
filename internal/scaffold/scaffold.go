package scaffold

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"text/template"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/agentos-project/agentos/internal/branding"
	"github.com/agentos-project/agentos/internal/descriptor"
)

// templateSet is the embedded directory holding the project templates.
const templateSet = "scaffolds/project"

// Data holds all template variables available to project templates.
type Data struct {
	Name         string // project name, e.g. "new_agentos"
	Module       string // module path of the agent library
	AgentVersion string // version of the agent library required by the generated go.mod
	AgentReplace string // optional local path the generated go.mod replaces the agent library with
	Timestamp    string // human-readable generation time
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	OutputDir string
	Files     []string
	Warnings  []string
}

// NewData creates a Data stamped with the current time. The agent library
// version in the generated go.mod follows the running binary's own version;
// the AGENTOS_MODULE_DIR environment variable, when set, adds a replace
// directive pointing the library at a local checkout.
func NewData(name string) *Data {
	return &Data{
		Name:         name,
		Module:       branding.GoModule(),
		AgentVersion: agentVersion(),
		AgentReplace: os.Getenv(branding.EnvVar("MODULE_DIR")),
		Timestamp:    time.Now().Format("Jan 02, 2006 15:04:05"),
	}
}

// agentVersion reports the version to require in generated go.mod files.
// Release builds installed with `go install module@version` carry a usable
// semver; development builds report "(devel)" and fall back to v0.0.0, which
// only resolves through the replace hook.
func agentVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		if _, err := semver.NewVersion(info.Main.Version); err == nil {
			return info.Main.Version
		}
	}
	return "v0.0.0"
}

// Generate renders the project template set into dir, creating the directory
// (and parents) if needed. Existing files are overwritten: init is re-runnable
// to refresh boilerplate. Write failures propagate.
func Generate(dir string, data *Data) (*Result, error) {
	entries, err := fs.ReadDir(scaffoldFS, templateSet)
	if err != nil {
		return nil, fmt.Errorf("template set %q not found: %w", templateSet, err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	result := &Result{
		OutputDir: dir,
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		tmplPath := templateSet + "/" + entry.Name()
		tmplBytes, err := fs.ReadFile(scaffoldFS, tmplPath)
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", tmplPath, err)
		}

		// Strip .tmpl extension for the output filename.
		outName := strings.TrimSuffix(entry.Name(), ".tmpl")
		outPath := filepath.Join(dir, outName)

		tmpl, err := template.New(entry.Name()).Parse(string(tmplBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", entry.Name(), err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return nil, fmt.Errorf("executing template %s: %w", entry.Name(), err)
		}

		if err := os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", outPath, err)
		}

		result.Files = append(result.Files, outName)
	}

	// Validate the generated descriptors against the JSON schema.
	for _, name := range []string{"environment.yaml", "project.yaml"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		valResult, valErr := descriptor.ValidateFile(path)
		if valErr != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Could not validate %s: %v", name, valErr))
			continue
		}
		if !valResult.Valid {
			for _, issue := range valResult.Issues {
				msg := issue.Message
				if issue.Path != "" {
					msg = issue.Path + ": " + msg
				}
				result.Warnings = append(result.Warnings, name+": "+msg)
			}
		}
	}

	return result, nil
}
