package dataflags

import (
	"bytes"
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"goclim/units"
)

//go:embed variables.yml
var defaultVariablesYAML []byte

// defaultVariables is parsed once from the embedded document.
var defaultVariables = mustParseVariables(defaultVariablesYAML)

// CheckSpec names one configured check and fixes its keyword arguments.
type CheckSpec struct {
	Name   string         `yaml:"name"`
	Kwargs map[string]any `yaml:"kwargs,omitempty"`
}

// Variable describes one configured variable: identifying metadata plus
// the checks that apply to it, in evaluation order.
type Variable struct {
	StandardName   string      `yaml:"standard_name"`
	CanonicalUnits string      `yaml:"canonical_units"`
	CellMethods    string      `yaml:"cell_methods,omitempty"`
	Description    string      `yaml:"description"`
	Checks         []CheckSpec `yaml:"checks"`
}

// Variables is a parsed variable configuration, keyed by variable name.
type Variables struct {
	vars map[string]*Variable
}

type variablesDoc struct {
	Variables map[string]*Variable `yaml:"variables"`
}

// ParseVariables decodes a variable configuration document. Unknown fields
// are rejected, which catches typos before they silently drop a check.
func ParseVariables(data []byte) (*Variables, error) {
	var doc variablesDoc
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse variable configuration: %w", err)
	}
	for name, v := range doc.Variables {
		if err := validateVariable(v); err != nil {
			return nil, fmt.Errorf("variable %q: %w", name, err)
		}
	}
	return &Variables{vars: doc.Variables}, nil
}

func validateVariable(v *Variable) error {
	if v == nil {
		return fmt.Errorf("definition is empty")
	}
	if v.StandardName == "" {
		return fmt.Errorf("standard_name is required")
	}
	if _, err := units.Parse(v.CanonicalUnits); err != nil {
		return fmt.Errorf("canonical_units: %w", err)
	}
	if len(v.Checks) == 0 {
		return fmt.Errorf("checks list is required and must be non-empty")
	}
	for i, c := range v.Checks {
		if c.Name == "" {
			return fmt.Errorf("check %d: name is required", i)
		}
	}
	return nil
}

// Lookup returns the configuration of the named variable.
func (v *Variables) Lookup(name string) (*Variable, error) {
	def, ok := v.vars[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariable, name)
	}
	return def, nil
}

// Names returns the configured variable names in sorted order.
func (v *Variables) Names() []string {
	names := make([]string, 0, len(v.vars))
	for name := range v.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of configured variables.
func (v *Variables) Len() int { return len(v.vars) }

// DefaultVariables returns the embedded configuration. It covers tas,
// tasmax, tasmin and pr.
func DefaultVariables() *Variables { return defaultVariables }

func mustParseVariables(data []byte) *Variables {
	v, err := ParseVariables(data)
	if err != nil {
		panic(fmt.Sprintf("embedded variable configuration: %v", err))
	}
	return v
}
