package descriptor

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Parse reads a descriptor file and returns only the base fields.
// Useful for quick type detection without full parsing.
func Parse(path string) (*Base, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	var base Base
	if err := yaml.Unmarshal(data, &base); err != nil {
		return nil, fmt.Errorf("parsing descriptor %s: %w", path, err)
	}

	return &base, nil
}

// ParseFile reads a descriptor file, detects its type, and returns the fully
// typed struct. The returned interface{} will be one of *Project,
// *Environment, or *Agent.
func ParseFile(path string) (interface{}, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	typeName, err := detectType(data)
	if err != nil {
		return nil, fmt.Errorf("detecting descriptor type in %s: %w", path, err)
	}

	switch typeName {
	case TypeProject:
		return parseTyped[Project](data, path)
	case TypeEnvironment:
		return parseTyped[Environment](data, path)
	case TypeAgent:
		return parseTyped[Agent](data, path)
	default:
		return nil, fmt.Errorf("unknown descriptor type %q in %s", typeName, path)
	}
}

// ParseProject reads a descriptor file and parses it as a Project.
func ParseProject(path string) (*Project, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return parseTyped[Project](data, path)
}

// ParseEnvironment reads a descriptor file and parses it as an Environment.
func ParseEnvironment(path string) (*Environment, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return parseTyped[Environment](data, path)
}

// ParseAgent reads a descriptor file and parses it as an Agent.
func ParseAgent(path string) (*Agent, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return parseTyped[Agent](data, path)
}

// parseTyped unmarshals YAML data into a typed descriptor struct.
func parseTyped[T any](data []byte, path string) (*T, error) {
	var d T
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parsing descriptor %s: %w", path, err)
	}
	return &d, nil
}

// detectType unmarshals YAML data into a generic map and extracts the type field.
func detectType(data []byte) (string, error) {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return "", fmt.Errorf("unmarshaling YAML: %w", err)
	}

	typeVal, ok := raw["type"]
	if !ok {
		return "", fmt.Errorf("descriptor missing required 'type' field")
	}

	typeName, ok := typeVal.(string)
	if !ok {
		return "", fmt.Errorf("descriptor 'type' field is not a string")
	}

	return typeName, nil
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
