package agent

import (
	"strings"
	"testing"
)

func TestValidateQualifiedName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple qualified name", "hallway.RandomAgent", false},
		{"nested packages", "examples.hallway.RandomAgent", false},
		{"missing dot", "RandomAgent", true},
		{"leading dot", ".RandomAgent", true},
		{"trailing dot", "hallway.", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateQualifiedName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateQualifiedName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestLookupBuiltins(t *testing.T) {
	if _, err := LookupAgent("hallway.RandomAgent"); err != nil {
		t.Errorf("LookupAgent(hallway.RandomAgent) error: %v", err)
	}
	if _, err := LookupEnvironment("hallway.Environment"); err != nil {
		t.Errorf("LookupEnvironment(hallway.Environment) error: %v", err)
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, err := LookupAgent("nowhere.Missing"); err == nil {
		t.Error("LookupAgent should fail for an unregistered name")
	} else if !strings.Contains(err.Error(), "nowhere.Missing") {
		t.Errorf("error should name the missing implementation, got: %v", err)
	}

	if _, err := LookupEnvironment("nowhere.Missing"); err == nil {
		t.Error("LookupEnvironment should fail for an unregistered name")
	}
}

func TestRegisterPanics(t *testing.T) {
	t.Run("malformed name", func(t *testing.T) {
		defer expectPanic(t)
		RegisterAgent("NoPackage", func(Environment) Agent { return nil })
	})

	t.Run("nil factory", func(t *testing.T) {
		defer expectPanic(t)
		RegisterAgent("test.NilFactory", nil)
	})

	t.Run("duplicate agent", func(t *testing.T) {
		RegisterAgent("test.DupAgent", NewRandomAgent)
		defer expectPanic(t)
		RegisterAgent("test.DupAgent", NewRandomAgent)
	})

	t.Run("duplicate environment", func(t *testing.T) {
		RegisterEnvironment("test.DupEnv", NewHallwayEnvironment)
		defer expectPanic(t)
		RegisterEnvironment("test.DupEnv", NewHallwayEnvironment)
	})
}

func TestListingsAreSorted(t *testing.T) {
	RegisterAgent("zz.ListAgent", NewRandomAgent)
	RegisterAgent("aa.ListAgent", NewRandomAgent)

	names := Agents()
	if len(names) < 3 {
		t.Fatalf("Agents() = %v, want at least the builtin plus two test agents", names)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("Agents() not sorted: %q before %q", names[i-1], names[i])
		}
	}
}

func expectPanic(t *testing.T) {
	t.Helper()
	if recover() == nil {
		t.Error("expected panic")
	}
}
