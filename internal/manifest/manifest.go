// Package manifest loads batch emission manifests for the magpie CLI.
//
// A manifest is a YAML file listing source files to emit:
//
//	artifacts:
//	  - source: gen/user_model.go.out
//	    name: user_model
//	    dir: tests/models
//
// Only source is required. Entries are emitted in order.
package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Entry describes a single emission.
type Entry struct {
	Source string `yaml:"source"`         // file holding the source fragment (required)
	Name   string `yaml:"name,omitempty"` // artifact name; empty means timestamp fallback
	Dir    string `yaml:"dir,omitempty"`  // artifact directory; empty means configured default
}

// Manifest is the parsed manifest file.
type Manifest struct {
	Artifacts []Entry `yaml:"artifacts"`
}

// ValidationError describes one invalid manifest field.
type ValidationError struct {
	Field   string // Field path (e.g., "artifacts[2].source")
	Message string
}

// Error returns a formatted error message
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error at %s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error returns all validation errors formatted with clear separation
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation errors"
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	result := fmt.Sprintf("found %d validation errors:\n", len(e))
	for i, err := range e {
		result += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return result
}

// Load reads and parses a manifest file, then validates it.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return ParseBytes(data)
}

// ParseBytes parses a manifest from bytes and validates it.
func ParseBytes(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks that every entry names a source file.
func (m *Manifest) Validate() error {
	var errs ValidationErrors

	if len(m.Artifacts) == 0 {
		errs = append(errs, ValidationError{
			Field:   "artifacts",
			Message: "at least one artifact is required",
		})
	}

	for i, entry := range m.Artifacts {
		if entry.Source == "" {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("artifacts[%d].source", i),
				Message: "source is required",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
