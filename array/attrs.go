package array

// Standard attribute keys shared across the module.
const (
	AttrUnits       = "units"
	AttrDescription = "description"
	AttrComment     = "comment"
	AttrLongName    = "long_name"
	AttrCellMethods = "cell_methods"
	AttrHistory     = "history"
	AttrMode        = "mode"
)

// Attrs holds free-form string metadata attached to an array or dataset.
type Attrs map[string]string

// Copy returns an independent copy of the attribute map. A nil receiver
// copies to an empty, non-nil map so callers can assign into the result.
func (a Attrs) Copy() Attrs {
	out := make(Attrs, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Get returns the value for key and whether it was present.
func (a Attrs) Get(key string) (string, bool) {
	v, ok := a[key]
	return v, ok
}
