package dataflags

import (
	"fmt"
	"sort"

	"goclim/array"
	"goclim/units"
)

// CheckFunc adapts a typed check to the dispatcher's calling convention:
// the primary array, the sibling variables resolved from the dataset keyed
// by declared name, and the fixed keyword arguments bound by the variable
// configuration.
type CheckFunc func(da *array.DataArray, extras map[string]*array.DataArray, kwargs map[string]any) (*array.BoolArray, error)

// Need declares one sibling variable a check requires from the dataset,
// together with the physical dimension the check expects of it.
type Need struct {
	Name string
	Dim  units.Dimension
}

// Check is one registered quality control check. Primary is the physical
// dimension expected of the evaluated variable; the zero value accepts
// any. Needs lists the sibling variables the dispatcher must resolve
// before Run can be invoked.
type Check struct {
	Name    string
	Primary units.Dimension
	Needs   []Need
	Run     CheckFunc
}

// Registry maps check names to checks. Build it once and read it
// thereafter; Register exists for construction and test-time overrides,
// not for concurrent mutation.
type Registry struct {
	checks map[string]*Check
}

// NewRegistry builds a registry holding the given checks.
func NewRegistry(checks ...*Check) *Registry {
	r := &Registry{checks: make(map[string]*Check, len(checks))}
	for _, c := range checks {
		r.Register(c)
	}
	return r
}

// Register stores the check under its name and returns it, so call sites
// can register and keep a reference in one step. Registering a name again
// replaces the earlier entry: last registration wins.
func (r *Registry) Register(c *Check) *Check {
	r.checks[c.Name] = c
	return c
}

// Lookup returns the check registered under name.
func (r *Registry) Lookup(name string) (*Check, error) {
	c, ok := r.checks[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCheck, name)
	}
	return c, nil
}

// Names returns the registered check names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.checks))
	for name := range r.checks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered checks.
func (r *Registry) Len() int { return len(r.checks) }
