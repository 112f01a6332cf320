package array

import "fmt"

// Dataset is an ordered collection of named arrays sharing a sampling
// context, typically the variables of one station or grid cell. Order is
// insertion order and is preserved by Names, which keeps downstream
// reports deterministic.
type Dataset struct {
	names []string
	vars  map[string]*DataArray
	attrs Attrs
}

// NewDataset builds a dataset from the given arrays. Every array must be
// non-nil and carry a unique, non-empty name.
func NewDataset(vars ...*DataArray) (*Dataset, error) {
	d := &Dataset{vars: make(map[string]*DataArray, len(vars)), attrs: Attrs{}}
	for _, v := range vars {
		if v == nil {
			return nil, fmt.Errorf("dataset variable is nil")
		}
		if err := d.Set(v); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Set adds the array under its own name, replacing any existing entry.
// Replacement keeps the original insertion position.
func (d *Dataset) Set(v *DataArray) error {
	if v.Name() == "" {
		return fmt.Errorf("dataset variable has no name")
	}
	if _, exists := d.vars[v.Name()]; !exists {
		d.names = append(d.names, v.Name())
	}
	d.vars[v.Name()] = v
	return nil
}

// Get returns the named array and whether it is present. A nil dataset has
// no variables.
func (d *Dataset) Get(name string) (*DataArray, bool) {
	if d == nil {
		return nil, false
	}
	v, ok := d.vars[name]
	return v, ok
}

// Has reports whether the named array is present.
func (d *Dataset) Has(name string) bool {
	_, ok := d.Get(name)
	return ok
}

// Names returns the variable names in insertion order.
func (d *Dataset) Names() []string {
	if d == nil {
		return nil
	}
	return append([]string(nil), d.names...)
}

// Len returns the number of variables.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.names)
}

// Attrs returns the live dataset attribute map.
func (d *Dataset) Attrs() Attrs { return d.attrs }
